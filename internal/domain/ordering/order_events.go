package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Event types for the ordering context
const (
	EventOrderPlaced         = "ordering.order_placed"
	EventFulfillmentAdvanced = "ordering.fulfillment_advanced"
	EventOrderCancelled      = "ordering.order_cancelled"
	EventOrderDeleted        = "ordering.order_deleted"
)

// OrderPlacedEvent is raised when a new order is created from a cart
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	CustomerID    uuid.UUID       `json:"customer_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SellerCount   int             `json:"seller_count"`
}

// NewOrderPlacedEvent creates an order placed event
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderPlaced, "Order", order.ID),
		CustomerID:      order.CustomerID,
		PaymentMethod:   order.PaymentMethod,
		TotalAmount:     order.TotalAmount(),
		SellerCount:     len(order.Fulfillments),
	}
}

// FulfillmentAdvancedEvent is raised when a seller's slot changes status
type FulfillmentAdvancedEvent struct {
	shared.BaseDomainEvent
	SellerID   uuid.UUID         `json:"seller_id"`
	FromStatus FulfillmentStatus `json:"from_status"`
	ToStatus   FulfillmentStatus `json:"to_status"`
}

// NewFulfillmentAdvancedEvent creates a fulfillment advanced event
func NewFulfillmentAdvancedEvent(order *Order, sellerID uuid.UUID, from, to FulfillmentStatus) *FulfillmentAdvancedEvent {
	return &FulfillmentAdvancedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventFulfillmentAdvanced, "Order", order.ID),
		SellerID:        sellerID,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// OrderCancelledEvent is raised when an order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewOrderCancelledEvent creates an order cancelled event
func NewOrderCancelledEvent(order *Order) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCancelled, "Order", order.ID),
		CustomerID:      order.CustomerID,
	}
}

// OrderDeletedEvent is raised when an admin removes an order entirely
type OrderDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewOrderDeletedEvent creates an order deleted event
func NewOrderDeletedEvent(orderID uuid.UUID) *OrderDeletedEvent {
	return &OrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderDeleted, "Order", orderID),
	}
}
