package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
)

// ErrNoTransactions is returned when the requested period has no data.
var ErrNoTransactions = shared.NewDomainError("NOT_FOUND", "Não há transações no período informado.")

// Summary is the aggregated content of a financial report.
type Summary struct {
	From         time.Time
	To           time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	ByCategory   []CategoryShare
	TopExpenses  []ledger.Transaction
	TopIncomes   []ledger.Transaction
	Outliers     []ledger.Transaction
	DailyFlow    []DailyFlow
}

// Renderer turns a report summary into a finished PDF document.
type Renderer interface {
	RenderReport(ctx context.Context, summary *Summary) ([]byte, error)
}

// Service builds report summaries and writes the rendered PDFs to disk.
type Service struct {
	transactions ledger.TransactionRepository
	renderer     Renderer
	outputDir    string
	topN         int
	logger       *zap.Logger
}

// NewService creates a report Service.
func NewService(transactions ledger.TransactionRepository, renderer Renderer, outputDir string, topN int, logger *zap.Logger) *Service {
	return &Service{
		transactions: transactions,
		renderer:     renderer,
		outputDir:    outputDir,
		topN:         topN,
		logger:       logger.Named("report"),
	}
}

// Summarize aggregates the period's transactions into a Summary.
func (s *Service) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	txs, err := s.transactions.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	summary := &Summary{From: from, To: to}
	var expenses []ledger.Transaction
	for _, tx := range txs {
		if tx.IsExpense() {
			summary.TotalExpense = summary.TotalExpense.Add(tx.Magnitude())
			expenses = append(expenses, tx)
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.ByCategory = ExpensesByCategory(txs)
	summary.TopExpenses = TopExpenses(txs, s.topN)
	summary.TopIncomes = TopIncomes(txs, s.topN)
	summary.Outliers = DetectOutliers(expenses)
	summary.DailyFlow = CashflowByDay(txs)
	return summary, nil
}

// Generate renders the period's report and returns the PDF path.
func (s *Service) Generate(ctx context.Context, from, to time.Time) (string, *Summary, error) {
	summary, err := s.Summarize(ctx, from, to)
	if err != nil {
		return "", nil, err
	}

	pdf, err := s.renderer.RenderReport(ctx, summary)
	if err != nil {
		return "", nil, fmt.Errorf("render report: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.outputDir, fmt.Sprintf("report_%s_%s.pdf",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", nil, fmt.Errorf("write report: %w", err)
	}

	s.logger.Info("report generated",
		zap.String("path", path),
		zap.Int("bytes", len(pdf)),
	)
	return path, summary, nil
}
