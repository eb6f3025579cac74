package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// DefaultVATRatePercent is the marketplace's standard VAT rate. Listed prices
// are tax-inclusive, so the rate is used for extraction, never addition.
var DefaultVATRatePercent = decimal.NewFromInt(18)

// ErrCrossShopTotals is returned when a single merged total is requested for a
// batch spanning multiple shops. Cross-shop batches are priced per shop.
var ErrCrossShopTotals = errors.New("cross-shop batch totals are reported per shop")

// Summary is the priced view of an order or a same-shop batch.
//
// Total is the tax-inclusive amount after discount; VAT is the portion of
// Total extracted at the engine's rate; Subtotal is Total minus VAT. Refund is
// the value of requested units that were not found at the shop. Service and
// delivery fees are not part of any of these figures; they are worker
// compensation credited at departure.
type Summary struct {
	Subtotal kernel.Money
	VAT      kernel.Money
	Discount kernel.Money
	Refund   kernel.Money
	Total    kernel.Money
}

// ShopSummary pairs a shop identifier with the summary of that shop's orders
// within a cross-shop batch.
type ShopSummary struct {
	ShopID  string
	Summary Summary
}

// PricingEngine derives subtotal, VAT, discount, refund, and total figures for
// orders and batches, consuming the item ledger's reconciliation state.
//
// Pricing rules:
//   - While an order is shopping, its items total is the value of the units
//     actually found so far (partial fulfillment). Once shopping is complete
//     or not applicable, the full listed value applies; restaurant and
//     pre-made reel orders always use listed price times quantity.
//   - The discount is subtracted from the items total, floored at zero.
//   - VAT is extracted from the tax-inclusive result: total x rate/(100+rate).
//   - Same-shop combined orders are summed order by order; cross-shop batches
//     are priced per shop and never merged.
//
// The engine is stateless and safe for concurrent use.
type PricingEngine struct {
	vatRatePercent decimal.Decimal
}

// NewPricingEngine creates a pricing engine with the given VAT rate in
// percent. The rate is a business-policy constant configured at composition
// time; use DefaultVATRatePercent unless policy says otherwise.
func NewPricingEngine(vatRatePercent decimal.Decimal) (PricingEngine, error) {
	if vatRatePercent.IsNegative() {
		return PricingEngine{}, errs.NewValueIsInvalidErrorWithCause("vatRatePercent",
			fmt.Errorf("%s is negative", vatRatePercent))
	}

	return PricingEngine{vatRatePercent: vatRatePercent}, nil
}

// VATRatePercent returns the configured VAT rate in percent.
func (e PricingEngine) VATRatePercent() decimal.Decimal {
	return e.vatRatePercent
}

// ItemsTotal returns the chargeable items value of the order under the
// partial-fulfillment rule.
func (e PricingEngine) ItemsTotal(o *order.Order) kernel.Money {
	if o.ShoppingRequired() && o.Status() == order.Shopping {
		return order.FoundValue(o.Items())
	}
	return order.ListedValue(o.Items())
}

// ComputeOrderSummary prices a single order.
func (e PricingEngine) ComputeOrderSummary(o *order.Order) (Summary, error) {
	if err := o.Validate(); err != nil {
		return Summary{}, err
	}

	itemsTotal := e.ItemsTotal(o)
	total := itemsTotal.SubFloorZero(o.Discount())
	vat, subtotal := e.extractVAT(total)

	return Summary{
		Subtotal: subtotal,
		VAT:      vat,
		Discount: o.Discount(),
		Refund:   e.refund(o),
		Total:    total,
	}, nil
}

// ComputeBatchSummary prices a same-shop batch: each order is priced
// independently under the partial-fulfillment rule and the results are
// summed. Returns ErrCrossShopTotals when the batch spans more than one shop;
// use ComputeShopSummaries for those.
func (e PricingEngine) ComputeBatchSummary(b *batch.Batch) (Summary, error) {
	if err := b.Validate(); err != nil {
		return Summary{}, err
	}

	shopID := b.Primary().ShopID()
	for _, o := range b.Combined() {
		if o.ShopID() != shopID {
			return Summary{}, ErrCrossShopTotals
		}
	}

	return e.sumOrders(b.Orders())
}

// ComputeShopSummaries prices a batch per shop, in first-seen shop order.
// Single-shop batches yield one entry equal to ComputeBatchSummary.
func (e PricingEngine) ComputeShopSummaries(b *batch.Batch) ([]ShopSummary, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var shopIDs []string
	byShop := make(map[string][]*order.Order)
	for _, o := range b.Orders() {
		if _, ok := byShop[o.ShopID()]; !ok {
			shopIDs = append(shopIDs, o.ShopID())
		}
		byShop[o.ShopID()] = append(byShop[o.ShopID()], o)
	}

	summaries := make([]ShopSummary, 0, len(shopIDs))
	for _, shopID := range shopIDs {
		summary, err := e.sumOrders(byShop[shopID])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ShopSummary{ShopID: shopID, Summary: summary})
	}

	return summaries, nil
}

func (e PricingEngine) sumOrders(orders []*order.Order) (Summary, error) {
	sum := Summary{
		Subtotal: kernel.ZeroMoney(),
		VAT:      kernel.ZeroMoney(),
		Discount: kernel.ZeroMoney(),
		Refund:   kernel.ZeroMoney(),
		Total:    kernel.ZeroMoney(),
	}

	for _, o := range orders {
		summary, err := e.ComputeOrderSummary(o)
		if err != nil {
			return Summary{}, err
		}
		sum.Subtotal = sum.Subtotal.Add(summary.Subtotal)
		sum.VAT = sum.VAT.Add(summary.VAT)
		sum.Discount = sum.Discount.Add(summary.Discount)
		sum.Refund = sum.Refund.Add(summary.Refund)
		sum.Total = sum.Total.Add(summary.Total)
	}

	return sum, nil
}

// refund returns the unfound-units value for orders with a shopping phase.
// Orders without one have no found-item discount, and an order that has not
// started shopping has nothing to refund yet.
func (e PricingEngine) refund(o *order.Order) kernel.Money {
	if !o.ShoppingRequired() || o.Status() == order.Accepted {
		return kernel.ZeroMoney()
	}
	return order.RefundValue(o.Items())
}

// extractVAT splits a tax-inclusive total into its VAT portion and net
// subtotal: vat = total x rate/(100+rate).
func (e PricingEngine) extractVAT(total kernel.Money) (vat kernel.Money, subtotal kernel.Money) {
	rate := e.vatRatePercent
	vatAmount := total.Decimal().Mul(rate).Div(decimal.NewFromInt(100).Add(rate))

	// Money construction can not fail here: total is non-negative and the
	// rate is validated non-negative, so the extracted portion is too.
	vat, _ = kernel.NewMoneyFromDecimal(vatAmount)
	subtotal = total.SubFloorZero(vat)
	return vat, subtotal
}
