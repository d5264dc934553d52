package shopping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to change a cart line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartItemResponse represents a cart line in API responses
type CartItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	InStock     bool            `json:"in_stock"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	Items      []CartItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
}

// ToCartResponse maps a cart to its API representation. Prices come
// from the cart's stored values; the catalog only supplies the product
// name and availability.
func ToCartResponse(cart *shopping.Cart, products map[uuid.UUID]*catalog.Product) CartResponse {
	response := CartResponse{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		Items:      make([]CartItemResponse, 0, len(cart.Items)),
		Total:      decimal.Zero,
	}
	for _, item := range cart.Items {
		line := CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if product, ok := products[item.ProductID]; ok {
			line.ProductName = product.Name
			line.InStock = product.IsInStock()
		}
		response.Items = append(response.Items, line)
		response.Total = response.Total.Add(line.Subtotal)
	}
	return response
}
