package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/dto"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message))
}

// BindError sends a 400 response for a request binding failure,
// translating validator errors into per-field messages
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidInput, middleware.BindingMessage(err)))
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, message))
}

// HandleError converts domain errors to HTTP responses. Unknown error
// types surface as 500 without leaking internals.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}

// parseID extracts and parses the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// bindFilter binds pagination query parameters into a domain filter
func bindFilter(c *gin.Context) (shared.Filter, error) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	req.Normalize()
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}, nil
}

// currentActor resolves the authenticated actor or writes a 401
func (h *BaseHandler) currentActor(c *gin.Context) (orderingapp.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return orderingapp.Actor{}, false
	}
	return actor, true
}

// customerID resolves the caller's customer profile ID or writes a 401
func (h *BaseHandler) customerID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := h.currentActor(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := actor.RequireCustomer()
	if err != nil {
		h.Unauthorized(c, "Customer profile required")
		return uuid.Nil, false
	}
	return id, true
}

// sellerID resolves the caller's seller profile ID or writes a 401
func (h *BaseHandler) sellerID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := h.currentActor(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := actor.RequireSeller()
	if err != nil {
		h.Unauthorized(c, "Seller profile required")
		return uuid.Nil, false
	}
	return id, true
}
