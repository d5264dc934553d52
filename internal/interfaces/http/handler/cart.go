package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/shopping"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// CartHandler handles the customer's shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *shoppingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *shoppingapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers cart routes. All of them require the
// customer role.
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart", middleware.RequireRole(identity.RoleCustomer))
	cart.GET("", h.Get)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:id", h.UpdateItem)
	cart.DELETE("/items/:id", h.RemoveItem)
	cart.DELETE("", h.Clear)
}

// Get returns the caller's cart, creating an empty one on first use
func (h *CartHandler) Get(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	cart, err := h.cartService.Get(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds a product to the cart, merging with an existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	var req shoppingapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	cart, err := h.cartService.AddItem(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateItem sets the quantity of a cart line. Zero removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req shoppingapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	cart, err := h.cartService.UpdateItem(c.Request.Context(), customerID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem deletes a product line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	cart, err := h.cartService.RemoveItem(c.Request.Context(), customerID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	if err := h.cartService.Clear(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
