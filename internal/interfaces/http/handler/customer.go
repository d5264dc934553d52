package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/Abdelrahman-cSharp/UShop/internal/application/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer profile and saved card endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes registers customer self-service routes plus the admin
// listing
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/customers/me", middleware.RequireRole(identity.RoleCustomer))
	me.GET("", h.GetProfile)
	me.PUT("", h.UpdateProfile)
	me.GET("/card", h.GetCard)
	me.PUT("/card", h.SaveCard)
	me.DELETE("/card", h.DeleteCard)

	rg.GET("/customers", middleware.RequireRole(identity.RoleAdmin), h.List)
}

// GetProfile returns the caller's profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	profile, err := h.customerService.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile sets the caller's contact details
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	var req partnerapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	profile, err := h.customerService.UpdateProfile(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// GetCard returns the caller's saved card, masked
func (h *CustomerHandler) GetCard(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	card, err := h.customerService.GetCard(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// SaveCard stores the caller's card, replacing any existing one
func (h *CustomerHandler) SaveCard(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	var req partnerapp.SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	card, err := h.customerService.SaveCard(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// DeleteCard removes the caller's saved card
func (h *CustomerHandler) DeleteCard(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	if err := h.customerService.DeleteCard(c.Request.Context(), customerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// List returns all customers. Admin only.
func (h *CustomerHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	page, err := h.customerService.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
