package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ledgerapp "github.com/Arthur-Marques-IA/moneytora/internal/application/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/application/pipeline"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/dto"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/middleware"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction-related API endpoints
type TransactionHandler struct {
	BaseHandler
	processor *pipeline.Processor
	service   *ledgerapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(processor *pipeline.Processor, service *ledgerapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		processor: processor,
		service:   service,
	}
}

// RegisterRoutes registers transaction routes on the given group
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	{
		transactions.POST("/process", h.Process)
		transactions.POST("", h.Create)
		transactions.GET("", h.List)
		transactions.GET("/:id", h.Get)
		transactions.PUT("/:id", h.Update)
		transactions.DELETE("/:id", h.Delete)
	}
}

// ProcessTransactionRequest carries a raw notification text
type ProcessTransactionRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

// ProcessTransactionResponse reports a successfully processed text
type ProcessTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// Process runs the extract-classify-persist pipeline on a raw text.
// A pipeline failure is a client-visible 400 carrying the reason.
func (h *TransactionHandler) Process(c *gin.Context) {
	var req ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	state := h.processor.Process(c.Request.Context(), req.Text)
	if state.Failed() {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeExtraction), dto.ErrCodeExtraction, state.Err)
		return
	}

	h.Success(c, ProcessTransactionResponse{
		TransactionID: state.TransactionID.String(),
		Message:       "Transação processada e armazenada com sucesso.",
	})
}

// CreateTransactionRequest creates a transaction manually
type CreateTransactionRequest struct {
	RawText  string `json:"raw_text" binding:"max=2000"`
	Amount   string `json:"amount" binding:"required"`
	Merchant string `json:"merchant" binding:"required,min=1,max=255"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Category string `json:"category" binding:"max=100"`
}

// UpdateTransactionRequest carries partial updates; absent fields keep their value
type UpdateTransactionRequest struct {
	RawText  *string `json:"raw_text" binding:"omitempty,max=2000"`
	Amount   *string `json:"amount"`
	Merchant *string `json:"merchant" binding:"omitempty,min=1,max=255"`
	Date     *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category *string `json:"category" binding:"omitempty,max=100"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID        string `json:"id"`
	RawText   string `json:"raw_text,omitempty"`
	Amount    string `json:"amount"`
	Merchant  string `json:"merchant"`
	Date      string `json:"date"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID.String(),
		RawText:   tx.RawText,
		Amount:    tx.Amount.StringFixed(2),
		Merchant:  tx.Merchant,
		Date:      tx.Date.Format(dateLayout),
		Category:  tx.Category,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tx.UpdatedAt.Format(time.RFC3339),
	}
}

// Create stores a manually entered transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.BadRequest(c, "Invalid amount")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date")
		return
	}

	tx, err := h.service.Create(c.Request.Context(), ledgerapp.CreateTransactionInput{
		RawText:  req.RawText,
		Amount:   amount,
		Merchant: req.Merchant,
		Date:     date,
		Category: req.Category,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toTransactionResponse(tx))
}

// Get returns a single transaction by id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toTransactionResponse(tx))
}

// ListTransactionsRequest carries list query parameters
type ListTransactionsRequest struct {
	dto.ListRequest
	Category string `form:"category"`
	Merchant string `form:"merchant"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// List returns transactions, newest first
func (h *TransactionHandler) List(c *gin.Context) {
	req := ListTransactionsRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := ledger.TransactionFilter{
		Category: req.Category,
		Merchant: req.Merchant,
		Limit:    req.PageSize,
		Offset:   (req.Page - 1) * req.PageSize,
	}
	if req.From != "" {
		from, _ := time.Parse(dateLayout, req.From)
		filter.From = &from
	}
	if req.To != "" {
		to, _ := time.Parse(dateLayout, req.To)
		filter.To = &to
	}

	txs, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, toTransactionResponse(&txs[i]))
	}

	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// Update applies a partial update to a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	input := ledgerapp.UpdateTransactionInput{
		RawText:  req.RawText,
		Merchant: req.Merchant,
		Category: req.Category,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			h.BadRequest(c, "Invalid amount")
			return
		}
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			h.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}

	tx, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toTransactionResponse(tx))
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
