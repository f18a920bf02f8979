package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TargetKart/targetkart-backend/internal/services"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load customers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomerCount handles GET /customers/count
func (h *CustomerHandler) GetCustomerCount(c *gin.Context) {
	count, err := h.customerService.CustomerCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count customers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
