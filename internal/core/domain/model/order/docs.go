// Package order provides domain entities and business logic for order
// fulfillment. It implements the Order aggregate root with lifecycle
// management, the item reconciliation ledger, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the canonical status, the items, and
//     the side-effect bookkeeping (wallet credit, proof of delivery)
//   - OrderItem: A line item carrying found/foundQuantity reconciliation state
//   - Status: A state machine that enforces valid lifecycle transitions
//   - OrderType: Classification deciding whether a shopping phase applies
//   - Pure ledger aggregations (units found/short, refund value)
//
// Key business rules:
//   - The lifecycle is accepted -> shopping -> on_the_way -> at_customer ->
//     delivered, with picked as an alternate intermediate for restaurant and
//     pre-made reel orders, which skip shopping
//   - Items are mutable only while the order is shopping; leaving shopping
//     requires at least one resolved item
//   - Delivered is terminal
//   - The worker's fee wallet credit fires at most once per order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
