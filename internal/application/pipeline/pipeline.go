package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
)

// Processor runs the extract, classify and persist stages over a
// notification text. A stage that records an error short-circuits the
// rest of the run; the final state always comes back to the caller.
type Processor struct {
	extractor    *Extractor
	classifier   *Classifier
	transactions ledger.TransactionRepository
	logger       *zap.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(extractor *Extractor, classifier *Classifier, transactions ledger.TransactionRepository, logger *zap.Logger) *Processor {
	return &Processor{
		extractor:    extractor,
		classifier:   classifier,
		transactions: transactions,
		logger:       logger.Named("pipeline"),
	}
}

// Process runs the full pipeline for the given text.
func (p *Processor) Process(ctx context.Context, rawText string) *State {
	state := NewState(rawText)

	p.extractor.Extract(ctx, state)
	p.classifier.Classify(ctx, state)
	p.persist(ctx, state)

	if state.Failed() {
		p.logger.Warn("pipeline run failed",
			zap.String("error", state.Err),
			zap.String("merchant", state.Merchant),
		)
	} else {
		p.logger.Info("pipeline run stored transaction",
			zap.String("transaction_id", state.TransactionID.String()),
			zap.String("merchant", state.Merchant),
			zap.String("category", state.Category),
		)
	}
	return state
}

func (p *Processor) persist(ctx context.Context, state *State) {
	if state.Failed() {
		return
	}
	if state.Amount == nil || state.Date == nil || state.Category == "" || state.Merchant == "" {
		state.Err = "Dados insuficientes para persistir a transação."
		return
	}

	tx, err := ledger.NewTransaction(state.RawText, *state.Amount, state.Merchant, *state.Date, state.Category)
	if err != nil {
		state.Err = fmt.Sprintf("Falha na persistência: %v", err)
		return
	}
	if err := p.transactions.Create(ctx, tx); err != nil {
		state.Err = fmt.Sprintf("Falha na persistência: %v", err)
		return
	}
	state.TransactionID = &tx.ID
}
