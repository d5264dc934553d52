package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/ordering"
)

// CheckoutRequest represents a request to convert the cart into an order
type CheckoutRequest struct {
	PaymentMethod string           `json:"payment_method" binding:"omitempty,oneof=cash_on_delivery credit_card"`
	Profile       *ProfileInput    `json:"profile"`
	Card          *CreditCardInput `json:"card"`
}

// BuyNowRequest represents a direct purchase of one product that
// bypasses the cart
type BuyNowRequest struct {
	ProductID     uuid.UUID        `json:"product_id" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	PaymentMethod string           `json:"payment_method" binding:"omitempty,oneof=cash_on_delivery credit_card"`
	Profile       *ProfileInput    `json:"profile"`
	Card          *CreditCardInput `json:"card"`
}

// ProfileInput carries shipping details submitted with checkout
type ProfileInput struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address" binding:"required,min=5,max=500"`
}

// CreditCardInput carries card details submitted with checkout
type CreditCardInput struct {
	CardNumber  string `json:"card_number" binding:"required"`
	HolderName  string `json:"holder_name" binding:"required"`
	ExpiryMonth int    `json:"expiry_month" binding:"required"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
}

// UpdateStatusRequest represents a request to advance fulfillment status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	SellerID  uuid.UUID       `json:"seller_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// FulfillmentResponse represents a seller's fulfillment slot
type FulfillmentResponse struct {
	SellerID  uuid.UUID `json:"seller_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID             `json:"id"`
	CustomerID    uuid.UUID             `json:"customer_id"`
	OrderDate     time.Time             `json:"order_date"`
	PaymentMethod string                `json:"payment_method"`
	Status        string                `json:"status"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	Items         []OrderItemResponse   `json:"items"`
	Fulfillments  []FulfillmentResponse `json:"fulfillments"`
	Version       int                   `json:"version"`
}

// BulkUpdateResponse reports how many fulfillment slots changed
type BulkUpdateResponse struct {
	Order   OrderResponse `json:"order"`
	Changed int           `json:"changed"`
}

// ToOrderResponse maps an order aggregate to its API representation
func ToOrderResponse(order *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	fulfillments := make([]FulfillmentResponse, 0, len(order.Fulfillments))
	for _, f := range order.Fulfillments {
		fulfillments = append(fulfillments, FulfillmentResponse{
			SellerID:  f.SellerID,
			Status:    f.Status.String(),
			UpdatedAt: f.UpdatedAt,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		OrderDate:     order.OrderDate,
		PaymentMethod: string(order.PaymentMethod),
		Status:        order.CurrentStatus().String(),
		TotalAmount:   order.TotalAmount(),
		Items:         items,
		Fulfillments:  fulfillments,
		Version:       order.Version,
	}
}

// ToSellerOrderResponse maps an order to the view a seller is allowed
// to see: only their own items and their own fulfillment slot.
func ToSellerOrderResponse(order *ordering.Order, sellerID uuid.UUID) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		OrderDate:     order.OrderDate,
		PaymentMethod: string(order.PaymentMethod),
		Status:        order.CurrentStatus().String(),
		Version:       order.Version,
	}
	total := decimal.Zero
	for _, item := range order.ItemsForSeller(sellerID) {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
		total = total.Add(item.Subtotal())
	}
	resp.TotalAmount = total
	if slot := order.FulfillmentFor(sellerID); slot != nil {
		resp.Fulfillments = []FulfillmentResponse{{
			SellerID:  slot.SellerID,
			Status:    slot.Status.String(),
			UpdatedAt: slot.UpdatedAt,
		}}
	}
	return resp
}
