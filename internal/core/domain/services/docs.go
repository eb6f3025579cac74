// Package services contains stateless domain services operating across
// aggregates.
//
// The package includes:
//   - PricingEngine: derives subtotal/VAT/discount/refund/total for orders and
//     batches from the item reconciliation ledger, with VAT extracted from
//     tax-inclusive prices at a configured rate
//   - UrgencyClassifier: derives the dispatch priority bucket from order
//     status and timing, reading the wall clock on each evaluation
//
// Both services are pure with respect to their inputs and safe for concurrent
// use; neither performs I/O.
package services
