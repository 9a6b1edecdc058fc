package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/infrastructure/llm"
)

// Oracle is the single-prompt completion surface the pipeline needs
// from a language model.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const extractPrompt = `Você é um especialista em extrair informações financeiras de textos.
Analise o texto a seguir e extraia o valor, a empresa e a data da transação.
Se a data não especificar o ano, assuma o ano corrente (%d).
Use valor negativo para despesas e positivo para recebimentos.

Responda APENAS com JSON válido, sem cercas de código, neste formato:
{"valor": -55.90, "empresa": "iFood", "data": "2024-08-15"}

Texto da transação:
%s`

// Extractor turns a free-form notification text into structured
// transaction fields using the language model.
type Extractor struct {
	oracle Oracle
	logger *zap.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor.
func NewExtractor(oracle Oracle, logger *zap.Logger) *Extractor {
	return &Extractor{
		oracle: oracle,
		logger: logger.Named("extractor"),
		now:    time.Now,
	}
}

type extractedPayload struct {
	Valor   *decimal.Decimal `json:"valor"`
	Empresa string           `json:"empresa"`
	Data    string           `json:"data"`
}

// Extract fills Amount, Merchant and Date on the state. Failures are
// recorded on the state, never returned.
func (e *Extractor) Extract(ctx context.Context, state *State) {
	raw, err := e.oracle.Complete(ctx, fmt.Sprintf(extractPrompt, e.now().Year(), state.RawText))
	if err != nil {
		state.Err = fmt.Sprintf("Falha na extração: %v", err)
		return
	}

	var payload extractedPayload
	if err := json.Unmarshal([]byte(llm.CleanJSON(raw)), &payload); err != nil {
		e.logger.Warn("unparseable model output", zap.String("raw", raw))
		state.Err = fmt.Sprintf("Falha na extração: %v", err)
		return
	}

	if payload.Valor == nil || payload.Empresa == "" || payload.Data == "" {
		state.Err = "Falha na extração: resposta do modelo sem valor, empresa ou data."
		return
	}

	date, err := parseDate(payload.Data, e.now().Year())
	if err != nil {
		state.Err = fmt.Sprintf("Falha na extração: %v", err)
		return
	}

	state.Amount = payload.Valor
	state.Merchant = strings.TrimSpace(payload.Empresa)
	state.Date = &date
}

// parseDate accepts ISO dates, Brazilian day/month/year dates, and a
// day/month shorthand that takes the current year.
func parseDate(value string, currentYear int) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("02/01", value); err == nil {
		return t.AddDate(currentYear, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}
