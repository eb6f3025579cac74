// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by worker, customer grouping key, and status.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PublicOrderNumber  string
	ShopID             string    `gorm:"index"`
	CustomerID         string    `gorm:"index:idx_orders_customer"`
	CustomerPhone      string    `gorm:"index:idx_orders_customer"`
	WorkerID           uuid.UUID `gorm:"type:uuid;index"`
	OrderType          string
	ShoppingRequired   bool
	Status             int `gorm:"index"`
	CreatedAt          time.Time
	DeliveryDeadline   *time.Time
	ServiceFee         decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee        decimal.Decimal `gorm:"type:numeric"`
	Discount           decimal.Decimal `gorm:"type:numeric"`
	ProofOfDeliveryRef string
	WalletCredited     bool

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one requested item of an order, including its
// found/not-found reconciliation state.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ShopID        string
	Name          string
	UnitPrice     decimal.Decimal `gorm:"type:numeric"`
	Quantity      int
	Found         bool
	FoundQuantity int
	Resolved      bool
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the item ledger.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			ShopID:        item.ShopID(),
			Name:          item.Name(),
			UnitPrice:     item.UnitPrice().Decimal(),
			Quantity:      item.Quantity(),
			Found:         item.Found(),
			FoundQuantity: item.FoundQuantity(),
			Resolved:      item.Resolved(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		PublicOrderNumber:  aggregate.PublicOrderNumber(),
		ShopID:             aggregate.ShopID(),
		CustomerID:         aggregate.CustomerID(),
		CustomerPhone:      aggregate.CustomerPhone(),
		WorkerID:           aggregate.WorkerID().Bytes(),
		OrderType:          aggregate.Type().String(),
		ShoppingRequired:   aggregate.ShoppingRequired(),
		Status:             int(aggregate.Status()),
		CreatedAt:          aggregate.CreatedAt(),
		DeliveryDeadline:   aggregate.DeliveryDeadline(),
		ServiceFee:         aggregate.ServiceFee().Decimal(),
		DeliveryFee:        aggregate.DeliveryFee().Decimal(),
		Discount:           aggregate.Discount().Decimal(),
		ProofOfDeliveryRef: aggregate.ProofOfDeliveryRef(),
		WalletCredited:     aggregate.WalletCredited(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including item reconciliation state
// and side-effect bookkeeping using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	serviceFee, err := kernel.NewMoneyFromDecimal(dto.ServiceFee)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoneyFromDecimal(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoneyFromDecimal(dto.Discount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ID:                id,
			PublicOrderNumber: dto.PublicOrderNumber,
			ShopID:            dto.ShopID,
			CustomerID:        dto.CustomerID,
			CustomerPhone:     dto.CustomerPhone,
			WorkerID:          workerID,
			Type:              orderType,
			// ShoppingRequired is derived, not stored as authority: a reel
			// order without a shopping phase is one attached to a restaurant.
			ReelFromRestaurant: orderType == order.TypeReel && !dto.ShoppingRequired,
			CreatedAt:          dto.CreatedAt,
			DeliveryDeadline:   dto.DeliveryDeadline,
			ServiceFee:         serviceFee,
			DeliveryFee:        deliveryFee,
			Discount:           discount,
			Items:              items,
		},
		Status:             order.Status(dto.Status),
		ProofOfDeliveryRef: dto.ProofOfDeliveryRef,
		WalletCredited:     dto.WalletCredited,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(
		id,
		dto.ShopID,
		dto.Name,
		unitPrice,
		dto.Quantity,
		dto.Found,
		dto.FoundQuantity,
		dto.Resolved,
	)
}
