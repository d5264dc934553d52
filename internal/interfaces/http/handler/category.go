package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/Abdelrahman-cSharp/UShop/internal/application/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes. Mutations are admin only.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", h.List)

	admin := categories.Group("", middleware.RequireRole(identity.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Rename)
	admin.DELETE("/:id", h.Delete)
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}
	page, err := h.categoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create adds a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// Rename changes a category's name
func (h *CategoryHandler) Rename(c *gin.Context) {
	categoryID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}
	var req catalogapp.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	category, err := h.categoryService.Rename(c.Request.Context(), categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete removes an empty category
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), categoryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
