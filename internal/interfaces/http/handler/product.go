package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/Abdelrahman-cSharp/UShop/internal/application/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes. Reads are open to any
// authenticated role, writes to sellers and admins.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.List)
	products.GET("/:id", h.GetByID)

	write := products.Group("", middleware.RequireRole(identity.RoleSeller, identity.RoleAdmin))
	write.POST("", h.Create)
	write.PUT("/:id", h.Update)
	write.DELETE("/:id", h.Delete)

	rg.GET("/sellers/me/products", middleware.RequireRole(identity.RoleSeller), h.ListMine)
}

// List returns products, optionally filtered by category
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}
	page, err := h.productService.List(c.Request.Context(), categoryID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListMine returns the caller's own listings
func (h *ProductHandler) ListMine(c *gin.Context) {
	sellerID, ok := h.sellerID(c)
	if !ok {
		return
	}
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	page, err := h.productService.ListBySeller(c.Request.Context(), sellerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a single product
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create lists a new product under the caller's store
func (h *ProductHandler) Create(c *gin.Context) {
	sellerID, ok := h.sellerID(c)
	if !ok {
		return
	}
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	product, err := h.productService.Create(c.Request.Context(), sellerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update edits a listing. Sellers may only touch their own products,
// admins may touch any.
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	var sellerID *uuid.UUID
	if !actor.IsAdmin() {
		sellerID = actor.SellerID
	}
	product, err := h.productService.Update(c.Request.Context(), sellerID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a listing with the same ownership rules as Update
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := h.currentActor(c)
	if !ok {
		return
	}
	productID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var sellerID *uuid.UUID
	if !actor.IsAdmin() {
		sellerID = actor.SellerID
	}
	if err := h.productService.Delete(c.Request.Context(), sellerID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
