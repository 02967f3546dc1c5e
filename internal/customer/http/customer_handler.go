// Package http provides HTTP handlers for the customer directory.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokens/internal/customer/http/dto"
	customerUseCase "github.com/allisson/tokens/internal/customer/usecase"
	"github.com/allisson/tokens/internal/httputil"
)

// CustomerHandler handles HTTP requests for customer directory operations.
type CustomerHandler struct {
	customerUseCase customerUseCase.CustomerUseCase
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler with required dependencies.
func NewCustomerHandler(
	useCase customerUseCase.CustomerUseCase,
	logger *slog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: useCase,
		logger:          logger,
	}
}

// RegisterRoutes registers the customer directory routes.
func (h *CustomerHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/customers", h.ListCustomersHandler)
	router.GET("/v1/customers/:code", h.GetCustomerHandler)
}

// ListCustomersHandler lists the customer directory.
// GET /v1/customers - Returns 200 OK with all customers and their endpoints.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.customerUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomersToListResponse(customers))
}

// GetCustomerHandler retrieves a single customer by code.
// GET /v1/customers/:code - Returns 200 OK with the customer.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	customer, err := h.customerUseCase.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}
