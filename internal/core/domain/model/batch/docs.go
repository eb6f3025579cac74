// Package batch provides the delivery worker's unit of work and the derived
// grouping views over it.
//
// The package includes:
//   - Batch: one primary order plus the combined orders delivered in the same
//     trip, all assigned to the same worker
//   - CustomerGroup / ShopGroup: derived partitions of a batch's orders and
//     items by customer identity or shop, recomputed on every read
//   - The customer grouping key and the visible-shop filter for active work
//     views
//
// Groups are pure derived state: nothing in this package is persisted, and the
// grouping functions are order-preserving and idempotent.
package batch
