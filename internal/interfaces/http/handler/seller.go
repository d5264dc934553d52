package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/Abdelrahman-cSharp/UShop/internal/application/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// SellerHandler handles seller store profile endpoints
type SellerHandler struct {
	BaseHandler
	sellerService *partnerapp.SellerService
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(sellerService *partnerapp.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// RegisterRoutes registers seller self-service routes plus the admin
// listing
func (h *SellerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/sellers/me", middleware.RequireRole(identity.RoleSeller))
	me.GET("", h.GetProfile)
	me.PUT("", h.UpdateProfile)

	rg.GET("/sellers", middleware.RequireRole(identity.RoleAdmin), h.List)
}

// GetProfile returns the caller's store profile
func (h *SellerHandler) GetProfile(c *gin.Context) {
	sellerID, ok := h.sellerID(c)
	if !ok {
		return
	}
	profile, err := h.sellerService.GetProfile(c.Request.Context(), sellerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile sets the caller's store details
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	sellerID, ok := h.sellerID(c)
	if !ok {
		return
	}
	var req partnerapp.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	profile, err := h.sellerService.UpdateProfile(c.Request.Context(), sellerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// List returns all sellers. Admin only.
func (h *SellerHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	page, err := h.sellerService.ListSellers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
