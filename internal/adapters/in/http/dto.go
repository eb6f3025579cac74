package http

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TransitionRequest asks to move an order to a named lifecycle status.
type TransitionRequest struct {
	Target string `json:"target"`
}

// ItemFoundRequest records the shopping outcome for one order item.
// FoundQuantity may be omitted for a fully found item; it must be absent when
// the item is marked unavailable.
type ItemFoundRequest struct {
	Found         bool `json:"found"`
	FoundQuantity *int `json:"foundQuantity,omitempty"`
}

// ProofRequest attaches a proof-of-delivery reference to an order.
type ProofRequest struct {
	ProofRef string `json:"proofRef"`
}

// GroupDeliveryRequest confirms delivery of an entire customer group.
type GroupDeliveryRequest struct {
	CustomerKey string `json:"customerKey"`
}

// ActiveBatchRow is one undelivered order in the dispatch view.
type ActiveBatchRow struct {
	ID                string  `json:"id"`
	PublicOrderNumber string  `json:"publicOrderNumber"`
	ShopID            string  `json:"shopId"`
	CustomerKey       string  `json:"customerKey"`
	WorkerID          string  `json:"workerId"`
	Status            string  `json:"status"`
	DeliveryDeadline  *string `json:"deliveryDeadline,omitempty"`
	Urgency           string  `json:"urgency"`
	OverdueBy         string  `json:"overdueBy,omitempty"`
	UnitsRequested    int     `json:"unitsRequested"`
	UnitsFound        int     `json:"unitsFound"`
}

// ShopSummary is the priced view of one shop within a batch.
type ShopSummary struct {
	ShopID   string `json:"shopId"`
	Subtotal string `json:"subtotal"`
	VAT      string `json:"vat"`
	Discount string `json:"discount"`
	Refund   string `json:"refund"`
	Total    string `json:"total"`
}

// BatchSummary is the priced batch, one entry per shop.
type BatchSummary struct {
	Shops []ShopSummary `json:"shops"`
}
