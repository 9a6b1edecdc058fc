package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arthur-Marques-IA/moneytora/internal/application/report"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/middleware"
)

// ReportHandler handles spending report generation
type ReportHandler struct {
	BaseHandler
	service *report.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes on the given group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.Generate)
}

// GenerateReportRequest selects the reporting period
type GenerateReportRequest struct {
	From string `json:"from" binding:"required,datetime=2006-01-02"`
	To   string `json:"to" binding:"required,datetime=2006-01-02"`
}

// GenerateReportResponse points at the rendered artifact
type GenerateReportResponse struct {
	Path         string `json:"path"`
	From         string `json:"from"`
	To           string `json:"to"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	Outliers     int    `json:"outliers"`
}

// Generate renders a PDF spending report for the period
func (h *ReportHandler) Generate(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	from, _ := time.Parse(dateLayout, req.From)
	to, _ := time.Parse(dateLayout, req.To)
	if to.Before(from) {
		h.BadRequest(c, "Period end must not precede its start")
		return
	}
	// Make the end date inclusive of the whole day.
	to = to.Add(24*time.Hour - time.Nanosecond)

	path, summary, err := h.service.Generate(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, GenerateReportResponse{
		Path:         path,
		From:         summary.From.Format(dateLayout),
		To:           summary.To.Format(dateLayout),
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		Balance:      summary.Balance.StringFixed(2),
		Outliers:     len(summary.Outliers),
	})
}
