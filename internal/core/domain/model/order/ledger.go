package order

import "fulfillment/internal/core/domain/model/kernel"

// Pure aggregations over item reconciliation state. These never mutate items;
// they are recomputed on every call so progress reporting and pricing always
// reflect the latest found-state.

// UnitsRequested returns the total number of units across all items.
func UnitsRequested(items []*OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity()
	}
	return total
}

// UnitsFound returns the total number of units actually picked, accounting for
// partially found items.
func UnitsFound(items []*OrderItem) int {
	total := 0
	for _, item := range items {
		if item.Found() {
			total += item.FoundQuantity()
		}
	}
	return total
}

// UnitsShort returns the number of requested units that were not found.
func UnitsShort(items []*OrderItem) int {
	return UnitsRequested(items) - UnitsFound(items)
}

// ResolvedItemCount returns the number of items with a recorded availability
// decision, in either direction.
func ResolvedItemCount(items []*OrderItem) int {
	count := 0
	for _, item := range items {
		if item.Resolved() {
			count++
		}
	}
	return count
}

// ListedValue returns the full listed value of the items:
// sum of unitPrice x quantity.
func ListedValue(items []*OrderItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.UnitPrice().MulInt(item.Quantity()))
	}
	return total
}

// FoundValue returns the value of the units actually picked:
// sum of unitPrice x foundQuantity over found items.
func FoundValue(items []*OrderItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		if item.Found() {
			total = total.Add(item.UnitPrice().MulInt(item.FoundQuantity()))
		}
	}
	return total
}

// RefundValue returns the value of the units that were requested but not
// found: ListedValue minus FoundValue. The result is never negative because
// foundQuantity can not exceed quantity.
func RefundValue(items []*OrderItem) kernel.Money {
	return ListedValue(items).SubFloorZero(FoundValue(items))
}
