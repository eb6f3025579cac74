package batch

import (
	"fulfillment/internal/core/domain/model/order"
)

// Grouping functions are pure, order-preserving, and idempotent: the same
// input always yields the same group membership and ordering. They must be
// called fresh on every state change rather than cached, because item
// found-state and order status change which shop groups are visible, even
// though the grouping keys themselves do not move.

// CustomerGroup is a derived, non-persistent aggregation of orders sharing a
// customer identity key. Groups are ordered by first appearance in the input;
// orders within a group keep their input order.
type CustomerGroup struct {
	Key    string
	Orders []*order.Order
}

// ShopGroup is a derived aggregation of items sharing a shop identifier,
// scoped to one batch. Groups are ordered by first appearance in the input.
type ShopGroup struct {
	ShopID string
	Items  []*order.OrderItem
}

// GroupByCustomer partitions orders into customer groups keyed by
// CustomerKeyOf. The result is a slice rather than a map because group
// ordering (first-seen) is part of the contract.
func GroupByCustomer(orders []*order.Order) []CustomerGroup {
	groups := make([]CustomerGroup, 0)
	index := make(map[string]int)

	for _, o := range orders {
		key := CustomerKeyOf(o)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CustomerGroup{Key: key})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}

	return groups
}

// GroupByShop partitions items into shop groups. An item without a shop
// identifier falls back to fallbackShopID, then to "unknown".
func GroupByShop(items []*order.OrderItem, fallbackShopID string) []ShopGroup {
	groups := make([]ShopGroup, 0)
	index := make(map[string]int)

	for _, item := range items {
		key := shopKey(item.ShopID(), fallbackShopID)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ShopGroup{ShopID: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// VisibleShopGroups returns the batch's shop groups that still need picking
// work. A shop group is hidden once every order touching that shop has left
// the picking phase, so a fully picked shop in a multi-shop batch is not shown
// again.
func VisibleShopGroups(b *Batch) []ShopGroup {
	orders := b.Orders()
	fallbackShopID := b.Primary().ShopID()
	groups := GroupByShop(b.Items(), fallbackShopID)

	visible := make([]ShopGroup, 0, len(groups))
	for _, group := range groups {
		if shopStillPicking(group.ShopID, fallbackShopID, orders) {
			visible = append(visible, group)
		}
	}
	return visible
}

// shopStillPicking reports whether any order scoped to the shop is still in
// the picking phase (accepted or shopping). Orders are matched through the
// same fallback chain that derived the group key, so a group keyed by the
// fallback still finds its owning order.
func shopStillPicking(shopID string, fallbackShopID string, orders []*order.Order) bool {
	for _, o := range orders {
		if shopKey(o.ShopID(), fallbackShopID) == shopID && o.Status().IsPicking() {
			return true
		}
	}
	return false
}

// shopKey derives the grouping key for a shop identifier: the identifier
// itself, then fallbackShopID, then "unknown".
func shopKey(shopID string, fallbackShopID string) string {
	if shopID == "" {
		shopID = fallbackShopID
	}
	if shopID == "" {
		return UnknownIdentity
	}
	return shopID
}
