package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arthur-Marques-IA/moneytora/internal/application/advisor"
	"github.com/Arthur-Marques-IA/moneytora/internal/interfaces/http/middleware"
)

// ChatHandler handles coach conversations
type ChatHandler struct {
	BaseHandler
	gate  *advisor.SecurityGate
	coach *advisor.Coach
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(gate *advisor.SecurityGate, coach *advisor.Coach) *ChatHandler {
	return &ChatHandler{gate: gate, coach: coach}
}

// RegisterRoutes registers chat routes on the given group
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.Chat)
}

// ChatRequest carries a user message to the coach
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=4000"`
}

// ChatResponse is the chat reply envelope. A blocked message is a
// normal outcome and still answers with HTTP 200.
type ChatResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Classification string `json:"classification,omitempty"`
}

// Chat screens the message through the security gate and, when safe,
// hands it to the coach.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ctx := c.Request.Context()

	verdict := h.gate.Evaluate(ctx, req.Message)
	if !verdict.Safe {
		c.JSON(http.StatusOK, ChatResponse{
			Success:        false,
			Message:        "Sua mensagem foi bloqueada pelo sistema de segurança.",
			Classification: verdict.Classification,
		})
		return
	}

	reply := h.coach.Answer(ctx, req.Message)
	c.JSON(http.StatusOK, ChatResponse{
		Success: true,
		Message: reply,
	})
}
