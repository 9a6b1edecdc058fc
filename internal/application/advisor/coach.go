package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/application/report"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
)

// Intent is the action the coach decided the user is asking for.
type Intent string

const (
	IntentDataQuery Intent = "consultar_sql"
	IntentReport    Intent = "gerar_relatorio"
	IntentGeneral   Intent = "resposta_geral"
)

// Messages returned when a downstream dependency is unavailable. The
// chat surface treats these as normal replies, never as server faults.
const (
	msgNoData = "Não encontrei dados para essa consulta. " +
		"Tente especificar o período (ex: 'neste mês', 'em outubro', 'nos últimos 30 dias') ou a categoria."
	msgUnavailable = "Não consegui responder agora. Tente novamente em instantes."
)

// dataContextWindow bounds how far back the coach looks when injecting
// transaction data into the conversation.
const dataContextWindow = 90 * 24 * time.Hour

// dataContextLimit caps how many transactions go into the prompt.
const dataContextLimit = 200

// ReportGenerator produces a rendered spending report for a period.
type ReportGenerator interface {
	Generate(ctx context.Context, from, to time.Time) (string, *report.Summary, error)
}

// Coach answers user questions about their finances. It classifies the
// intent of each message, then either answers over the user's own
// transaction data, generates a report, or replies with the coach
// persona. It always returns a reply; failures degrade into friendly
// messages.
type Coach struct {
	oracle       Oracle
	transactions ledger.TransactionRepository
	reports      ReportGenerator
	logger       *zap.Logger
	now          func() time.Time
}

func NewCoach(oracle Oracle, transactions ledger.TransactionRepository, reports ReportGenerator, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{
		oracle:       oracle,
		transactions: transactions,
		reports:      reports,
		logger:       logger,
		now:          time.Now,
	}
}

// Answer routes the message by intent and returns the reply.
func (c *Coach) Answer(ctx context.Context, message string) string {
	intent := c.classifyIntent(ctx, message)
	c.logger.Debug("coach intent classified", zap.String("intent", string(intent)))

	switch intent {
	case IntentDataQuery:
		return c.answerWithData(ctx, message)
	case IntentReport:
		return c.answerWithReport(ctx)
	default:
		return c.answerGeneral(ctx, message)
	}
}

// classifyIntent asks the model which action the message calls for.
// The reply is matched by substring so that verbose completions still
// resolve; anything unrecognized falls back to a general answer.
func (c *Coach) classifyIntent(ctx context.Context, message string) Intent {
	reply, err := c.oracle.Complete(ctx, fmt.Sprintf(intentPrompt, message))
	if err != nil {
		c.logger.Warn("intent classification failed, falling back to general answer", zap.Error(err))
		return IntentGeneral
	}

	normalized := strings.ToLower(strings.TrimSpace(reply))
	if strings.Contains(normalized, string(IntentDataQuery)) {
		return IntentDataQuery
	}
	if strings.Contains(normalized, string(IntentReport)) {
		return IntentReport
	}
	return IntentGeneral
}

// transactionContext is the JSON shape injected into the coach prompt.
type transactionContext struct {
	ID        string  `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
	Categoria string  `json:"categoria"`
}

type categoryContext struct {
	Categoria string  `json:"categoria"`
	Total     float64 `json:"total"`
}

func (c *Coach) answerWithData(ctx context.Context, message string) string {
	from := c.now().Add(-dataContextWindow)
	txs, err := c.transactions.FindAll(ctx, ledger.TransactionFilter{
		From:  &from,
		Limit: dataContextLimit,
	})
	if err != nil {
		c.logger.Error("transaction lookup for coach failed", zap.Error(err))
		return fmt.Sprintf("Não consegui consultar seus dados agora. Detalhes técnicos: %v", err)
	}
	if len(txs) == 0 {
		return msgNoData
	}

	totals, err := c.transactions.SumByCategory(ctx)
	if err != nil {
		c.logger.Error("category totals for coach failed", zap.Error(err))
		return fmt.Sprintf("Não consegui consultar seus dados agora. Detalhes técnicos: %v", err)
	}

	prompt, err := c.buildDataPrompt(message, txs, totals)
	if err != nil {
		c.logger.Error("building coach data context failed", zap.Error(err))
		return msgUnavailable
	}

	reply, err := c.oracle.Complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("coach data answer failed", zap.Error(err))
		return msgUnavailable
	}
	return strings.TrimSpace(reply)
}

func (c *Coach) buildDataPrompt(message string, txs []ledger.Transaction, totals []ledger.CategoryTotal) (string, error) {
	txContext := make([]transactionContext, 0, len(txs))
	for _, tx := range txs {
		txContext = append(txContext, transactionContext{
			ID:        tx.ID.String(),
			Descricao: tx.Merchant,
			Valor:     tx.Amount.InexactFloat64(),
			Data:      tx.Date.Format("2006-01-02"),
			Categoria: tx.Category,
		})
	}
	catContext := make([]categoryContext, 0, len(totals))
	for _, total := range totals {
		catContext = append(catContext, categoryContext{
			Categoria: total.Category,
			Total:     total.Total.InexactFloat64(),
		})
	}

	txJSON, err := json.Marshal(txContext)
	if err != nil {
		return "", err
	}
	catJSON, err := json.Marshal(catContext)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(coachSystemPrompt)
	b.WriteString("\n\nTransações do usuário:\n")
	b.Write(txJSON)
	b.WriteString("\n\nTotais por categoria:\n")
	b.Write(catJSON)
	b.WriteString("\n\nUsuário: ")
	b.WriteString(message)
	b.WriteString("\nCoach (responda em português, de forma clara e baseada apenas nos dados acima):")
	return b.String(), nil
}

func (c *Coach) answerWithReport(ctx context.Context) string {
	now := c.now()
	from := now.AddDate(0, 0, -30)

	path, _, err := c.reports.Generate(ctx, from, now)
	if err != nil {
		if errors.Is(err, report.ErrNoTransactions) {
			return report.ErrNoTransactions.Message
		}
		c.logger.Error("coach report generation failed", zap.Error(err))
		return fmt.Sprintf("Tentei gerar o relatório, mas houve um erro: %v", err)
	}

	return "Aqui está o relatório de gastos que gerei para você:\n" +
		path +
		"\nSe quiser, posso te ajudar a interpretar."
}

func (c *Coach) answerGeneral(ctx context.Context, message string) string {
	prompt := coachSystemPrompt +
		"\nUsuário: " + message +
		"\nCoach (responda em português, com 3 a 6 tópicos práticos se fizer sentido):"

	reply, err := c.oracle.Complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("coach general answer failed", zap.Error(err))
		return msgUnavailable
	}
	return strings.TrimSpace(reply)
}
