package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// FulfillmentStatus represents the delivery state of a seller's slice of an order
type FulfillmentStatus string

const (
	StatusPending        FulfillmentStatus = "PENDING"
	StatusOrdered        FulfillmentStatus = "ORDERED"
	StatusShipped        FulfillmentStatus = "SHIPPED"
	StatusOutForDelivery FulfillmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      FulfillmentStatus = "DELIVERED"
	StatusCancelled      FulfillmentStatus = "CANCELLED"
	StatusReturned       FulfillmentStatus = "RETURNED"
)

// IsValid checks if the status is a known value
func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusOrdered, StatusShipped, StatusOutForDelivery,
		StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// String returns the string representation
func (s FulfillmentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed from this status
func (s FulfillmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// CanTransitionTo checks whether a transition from s to target is allowed.
// RETURNED has no inbound transition here; returns are recorded through
// a separate flow, not by advancing a fulfillment.
func (s FulfillmentStatus) CanTransitionTo(target FulfillmentStatus) bool {
	allowed := map[FulfillmentStatus][]FulfillmentStatus{
		StatusPending:        {StatusOrdered, StatusCancelled, StatusShipped},
		StatusOrdered:        {StatusShipped, StatusCancelled},
		StatusShipped:        {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
		StatusReturned:       {},
	}
	for _, t := range allowed[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PaymentMethod identifies how an order is paid
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCreditCard     PaymentMethod = "credit_card"
)

// IsValid checks if the payment method is known
func (p PaymentMethod) IsValid() bool {
	return p == PaymentCashOnDelivery || p == PaymentCreditCard
}

// OrderItem is a purchased line within an order
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,8);not null"`
}

// Subtotal returns quantity times unit price
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Fulfillment tracks one seller's delivery progress within an order
type Fulfillment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_fulfillment_order_seller,unique"`
	SellerID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_fulfillment_order_seller,unique"`
	Status    FulfillmentStatus `gorm:"not null"`
	UpdatedAt time.Time
}

// OrderLine is the input to order creation, one purchased product
type OrderLine struct {
	ProductID uuid.UUID
	SellerID  uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is the order aggregate root. Each distinct seller among the
// items gets its own Fulfillment slot; the order-level Status is
// derived from the slots when they agree.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderDate     time.Time         `gorm:"not null"`
	PaymentMethod PaymentMethod     `gorm:"not null"`
	Status        FulfillmentStatus `gorm:"not null"`
	Items         []OrderItem       `gorm:"foreignKey:OrderID"`
	Fulfillments  []Fulfillment     `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order from purchased lines. Every line must carry a
// positive quantity and a non-negative price. One fulfillment slot is
// created per distinct seller, in first-appearance order, all PENDING.
func NewOrder(customerID uuid.UUID, paymentMethod PaymentMethod, lines []OrderLine) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID is required")
	}
	if paymentMethod == "" {
		paymentMethod = PaymentCashOnDelivery
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown payment method")
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		OrderDate:         time.Now(),
		PaymentMethod:     paymentMethod,
		Status:            StatusPending,
	}

	seen := make(map[uuid.UUID]bool)
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item quantity must be at least 1")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item price cannot be negative")
		}
		if line.SellerID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item seller is required")
		}
		order.Items = append(order.Items, OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			SellerID:  line.SellerID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
		if !seen[line.SellerID] {
			seen[line.SellerID] = true
			order.Fulfillments = append(order.Fulfillments, Fulfillment{
				ID:        uuid.New(),
				OrderID:   order.ID,
				SellerID:  line.SellerID,
				Status:    StatusPending,
				UpdatedAt: time.Now(),
			})
		}
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))
	return order, nil
}

// TotalAmount returns the sum of all item subtotals
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// FulfillmentFor returns the fulfillment slot for the given seller, if any
func (o *Order) FulfillmentFor(sellerID uuid.UUID) *Fulfillment {
	for i := range o.Fulfillments {
		if o.Fulfillments[i].SellerID == sellerID {
			return &o.Fulfillments[i]
		}
	}
	return nil
}

// ItemsForSeller returns the items belonging to the given seller
func (o *Order) ItemsForSeller(sellerID uuid.UUID) []OrderItem {
	var items []OrderItem
	for _, item := range o.Items {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	return items
}

// CurrentStatus returns the order-level status. When every fulfillment
// slot carries the same status that value wins; otherwise the stored
// aggregate status stands.
func (o *Order) CurrentStatus() FulfillmentStatus {
	if len(o.Fulfillments) == 0 {
		return o.Status
	}
	first := o.Fulfillments[0].Status
	for _, f := range o.Fulfillments[1:] {
		if f.Status != first {
			return o.Status
		}
	}
	return first
}

// AdvanceFulfillment moves one seller's slot to the target status.
// The caller identifies the seller; a missing slot means the seller
// has no part in this order.
func (o *Order) AdvanceFulfillment(sellerID uuid.UUID, target FulfillmentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown fulfillment status")
	}
	slot := o.FulfillmentFor(sellerID)
	if slot == nil {
		return shared.ErrForbidden
	}
	if !slot.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition fulfillment from "+slot.Status.String()+" to "+target.String())
	}
	from := slot.Status
	slot.Status = target
	slot.UpdatedAt = time.Now()
	o.recomputeStatus()
	o.AddDomainEvent(NewFulfillmentAdvancedEvent(o, sellerID, from, target))
	return nil
}

// AdvanceAll moves every slot that accepts the target status, skipping
// the rest. It returns how many slots changed; zero changed slots with
// a valid target is an invalid-state error.
func (o *Order) AdvanceAll(target FulfillmentStatus) (int, error) {
	if !target.IsValid() {
		return 0, shared.NewDomainError("INVALID_INPUT", "Unknown fulfillment status")
	}
	changed := 0
	for i := range o.Fulfillments {
		slot := &o.Fulfillments[i]
		if !slot.Status.CanTransitionTo(target) {
			continue
		}
		from := slot.Status
		slot.Status = target
		slot.UpdatedAt = time.Now()
		o.AddDomainEvent(NewFulfillmentAdvancedEvent(o, slot.SellerID, from, target))
		changed++
	}
	if changed == 0 {
		return 0, shared.NewDomainError("INVALID_STATE",
			"No fulfillment can transition to "+target.String())
	}
	o.recomputeStatus()
	return changed, nil
}

// Cancel cancels the whole order. Every slot must still accept
// CANCELLED; a single shipped slot blocks the cancellation and leaves
// the order untouched.
func (o *Order) Cancel() error {
	for i := range o.Fulfillments {
		if !o.Fulfillments[i].Status.CanTransitionTo(StatusCancelled) {
			return shared.NewDomainError("INVALID_STATE",
				"Order can no longer be cancelled: a fulfillment is already "+o.Fulfillments[i].Status.String())
		}
	}
	if _, err := o.AdvanceAll(StatusCancelled); err != nil {
		return err
	}
	o.AddDomainEvent(NewOrderCancelledEvent(o))
	return nil
}

// recomputeStatus lifts the slot status onto the aggregate when all
// slots agree
func (o *Order) recomputeStatus() {
	if len(o.Fulfillments) == 0 {
		return
	}
	first := o.Fulfillments[0].Status
	for _, f := range o.Fulfillments[1:] {
		if f.Status != first {
			return
		}
	}
	o.Status = first
}
