package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
)

// Quantile returns the p-quantile (0 <= p <= 1) of sorted values using
// linear interpolation between the two nearest ranks.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	k := float64(n-1) * p
	f := int(k)
	c := f + 1
	if c > n-1 {
		c = n - 1
	}
	if f == c {
		return sorted[f]
	}
	d0 := sorted[f] * (float64(c) - k)
	d1 := sorted[c] * (k - float64(f))
	return d0 + d1
}

// DetectOutliers returns the transactions whose absolute amount exceeds
// Q3 + 1.5*IQR of the group. Empty and single-element groups have no
// outliers by definition.
func DetectOutliers(txs []ledger.Transaction) []ledger.Transaction {
	if len(txs) < 2 {
		return nil
	}

	values := make([]float64, len(txs))
	for i, tx := range txs {
		values[i] = tx.Magnitude().InexactFloat64()
	}
	sort.Float64s(values)

	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	upper := q3 + 1.5*(q3-q1)

	var outliers []ledger.Transaction
	for _, tx := range txs {
		if tx.Magnitude().InexactFloat64() > upper {
			outliers = append(outliers, tx)
		}
	}
	return outliers
}

// TopExpenses returns up to n expenses ordered by largest absolute amount.
func TopExpenses(txs []ledger.Transaction, n int) []ledger.Transaction {
	var expenses []ledger.Transaction
	for _, tx := range txs {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Magnitude().GreaterThan(expenses[j].Magnitude())
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}

// TopIncomes returns up to n incomes ordered by largest amount.
func TopIncomes(txs []ledger.Transaction, n int) []ledger.Transaction {
	var incomes []ledger.Transaction
	for _, tx := range txs {
		if !tx.IsExpense() {
			incomes = append(incomes, tx)
		}
	}
	sort.SliceStable(incomes, func(i, j int) bool {
		return incomes[i].Amount.GreaterThan(incomes[j].Amount)
	})
	if len(incomes) > n {
		incomes = incomes[:n]
	}
	return incomes
}

// CategoryShare is a category's share of total expenses.
type CategoryShare struct {
	Category string
	Total    decimal.Decimal
}

// ExpensesByCategory sums expense magnitudes per category, largest first.
func ExpensesByCategory(txs []ledger.Transaction) []CategoryShare {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		category := tx.Category
		if category == "" {
			category = ledger.CategoryOther
		}
		totals[category] = totals[category].Add(tx.Magnitude())
	}

	shares := make([]CategoryShare, 0, len(totals))
	for category, total := range totals {
		shares = append(shares, CategoryShare{Category: category, Total: total})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total.Equal(shares[j].Total) {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Total.GreaterThan(shares[j].Total)
	})
	return shares
}

// DailyFlow is the money in and out of a single day.
type DailyFlow struct {
	Day     time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CashflowByDay aggregates incomes and expense magnitudes per day,
// oldest day first.
func CashflowByDay(txs []ledger.Transaction) []DailyFlow {
	byDay := make(map[time.Time]*DailyFlow)
	for _, tx := range txs {
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		flow, ok := byDay[day]
		if !ok {
			flow = &DailyFlow{Day: day}
			byDay[day] = flow
		}
		if tx.IsExpense() {
			flow.Expense = flow.Expense.Add(tx.Magnitude())
		} else {
			flow.Income = flow.Income.Add(tx.Amount)
		}
	}

	flows := make([]DailyFlow, 0, len(byDay))
	for _, flow := range byDay {
		flows = append(flows, *flow)
	}
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Day.Before(flows[j].Day)
	})
	return flows
}
