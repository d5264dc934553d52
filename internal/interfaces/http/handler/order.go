package handler

import (
	"github.com/gin-gonic/gin"

	orderingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order lifecycle endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *orderingapp.CheckoutService
	orderService    *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *orderingapp.CheckoutService, orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// RegisterRoutes registers order routes. Role scoping beyond
// authentication happens inside the services, which see the actor.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.POST("/checkout", middleware.RequireRole(identity.RoleCustomer), h.Checkout)
	orders.POST("/buy-now", middleware.RequireRole(identity.RoleCustomer), h.BuyNow)
	orders.GET("", h.List)
	orders.GET("/:id", h.GetByID)
	orders.PUT("/:id/status", middleware.RequireRole(identity.RoleAdmin, identity.RoleSeller), h.UpdateStatus)
	orders.POST("/:id/cancel", middleware.RequireRole(identity.RoleCustomer, identity.RoleAdmin), h.Cancel)
	orders.DELETE("/:id", middleware.RequireRole(identity.RoleAdmin), h.Delete)
}

// Checkout turns the caller's cart into an order
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	var req orderingapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	order, err := h.checkoutService.Checkout(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// BuyNow places a single-product order without touching the cart
func (h *OrderHandler) BuyNow(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	var req orderingapp.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	order, err := h.checkoutService.BuyNow(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List returns the orders visible to the caller
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	page, err := h.orderService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a single order scoped to the caller's role
func (h *OrderHandler) GetByID(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	orderID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), actor, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus advances fulfillment. Sellers advance their own slot,
// admins advance every slot that allows the transition.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	orderID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	var req orderingapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	result, err := h.orderService.UpdateStatus(c.Request.Context(), actor, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Cancel cancels the order while every slot still allows it
func (h *OrderHandler) Cancel(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	orderID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	order, err := h.orderService.Cancel(c.Request.Context(), actor, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order entirely. Admin only.
func (h *OrderHandler) Delete(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	orderID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), actor, orderID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
