package printing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Arthur-Marques-IA/moneytora/internal/application/report"
)

// pieColors are cycled over the expense categories in the pie chart.
var pieColors = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#9c755f",
}

// TemplateEngine renders report summaries to HTML. Charts are plain
// CSS (a conic-gradient pie and flex bars) so the page needs no
// scripts or external assets.
type TemplateEngine struct {
	tmpl *template.Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in report template.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"title":       titleCase,
		"abs": func(d decimal.Decimal) decimal.Decimal {
			return d.Abs()
		},
	}
	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &TemplateEngine{tmpl: tmpl}, nil
}

// formatMoney renders a decimal as Brazilian currency, e.g. R$ 1.234,56
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// pieSlice is one category's segment in the conic-gradient pie.
type pieSlice struct {
	Category string
	Total    decimal.Decimal
	Percent  float64
	Color    string
}

// barColumn is one day in the cashflow bar chart. Heights are in
// percent of the tallest column.
type barColumn struct {
	Label         string
	Income        decimal.Decimal
	Expense       decimal.Decimal
	IncomeHeight  float64
	ExpenseHeight float64
}

// reportView is the data handed to the HTML template.
type reportView struct {
	*report.Summary
	Slices      []pieSlice
	PieGradient template.CSS
	Bars        []barColumn
}

// RenderHTML renders the summary to a complete HTML document.
func (e *TemplateEngine) RenderHTML(summary *report.Summary) (string, error) {
	view := &reportView{Summary: summary}
	view.Slices, view.PieGradient = buildPie(summary.ByCategory)
	view.Bars = buildBars(summary.DailyFlow)

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}
	return buf.String(), nil
}

func buildPie(shares []report.CategoryShare) ([]pieSlice, template.CSS) {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Total)
	}
	if total.IsZero() {
		return nil, ""
	}

	slices := make([]pieSlice, 0, len(shares))
	var stops []string
	cumulative := 0.0
	for i, share := range shares {
		percent := share.Total.Div(total).InexactFloat64() * 100
		color := pieColors[i%len(pieColors)]
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", color, cumulative, cumulative+percent))
		cumulative += percent
		slices = append(slices, pieSlice{
			Category: share.Category,
			Total:    share.Total,
			Percent:  percent,
			Color:    color,
		})
	}
	gradient := template.CSS(fmt.Sprintf("conic-gradient(%s)", strings.Join(stops, ", ")))
	return slices, gradient
}

func buildBars(flows []report.DailyFlow) []barColumn {
	max := decimal.Zero
	for _, flow := range flows {
		if flow.Income.GreaterThan(max) {
			max = flow.Income
		}
		if flow.Expense.GreaterThan(max) {
			max = flow.Expense
		}
	}
	if max.IsZero() {
		return nil
	}

	bars := make([]barColumn, 0, len(flows))
	for _, flow := range flows {
		bars = append(bars, barColumn{
			Label:         flow.Day.Format("02/01"),
			Income:        flow.Income,
			Expense:       flow.Expense,
			IncomeHeight:  flow.Income.Div(max).InexactFloat64() * 100,
			ExpenseHeight: flow.Expense.Div(max).InexactFloat64() * 100,
		})
	}
	return bars
}

// ReportRenderer combines the template engine and a PDF backend into
// the renderer the report service expects.
type ReportRenderer struct {
	engine *TemplateEngine
	pdf    PDFRenderer
}

// NewReportRenderer creates a ReportRenderer.
func NewReportRenderer(engine *TemplateEngine, pdf PDFRenderer) *ReportRenderer {
	return &ReportRenderer{engine: engine, pdf: pdf}
}

// RenderReport renders the summary to a finished PDF.
func (r *ReportRenderer) RenderReport(ctx context.Context, summary *report.Summary) ([]byte, error) {
	html, err := r.engine.RenderHTML(summary)
	if err != nil {
		return nil, err
	}
	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:  html,
		Title: "Relatório Financeiro",
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}

var _ report.Renderer = (*ReportRenderer)(nil)
