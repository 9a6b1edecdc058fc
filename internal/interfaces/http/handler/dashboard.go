package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/Arthur-Marques-IA/moneytora/internal/application/ledger"
)

// DashboardHandler serves aggregated views over the ledger
type DashboardHandler struct {
	BaseHandler
	service *ledgerapp.TransactionService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *ledgerapp.TransactionService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/spending-by-category", h.SpendingByCategory)
	}
}

// CategorySpendingResponse is one aggregated category row
type CategorySpendingResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SpendingByCategory returns expense totals grouped by category.
// Totals are reported as positive magnitudes for charting.
func (h *DashboardHandler) SpendingByCategory(c *gin.Context) {
	totals, err := h.service.SpendingByCategory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CategorySpendingResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, CategorySpendingResponse{
			Category: total.Category,
			Total:    total.Total.Abs().InexactFloat64(),
		})
	}

	h.Success(c, responses)
}
