package finance

import (
	"fmt"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// Snapshot builders run the row walker against a fixed table of
// field → candidate-label pairs. They never fail: an unmatched field
// defaults to 0.0 and its field name is returned so callers can log it
// and count it, instead of zeros silently reaching financial displays.

// fieldSpec binds one snapshot field to its candidate report labels.
type fieldSpec struct {
	field   string
	labels  []string
	line    bool // plain Data line rather than a section total
	dest    func(v float64)
}

func extract(report *domain.Report, specs []fieldSpec) (missing []string) {
	for _, spec := range specs {
		var (
			v  float64
			ok bool
		)
		if spec.line {
			v, ok = LineValue(report, spec.labels...)
		} else {
			v, ok = SectionTotal(report, spec.labels...)
		}
		spec.dest(v)
		if !ok {
			missing = append(missing, spec.field)
		}
	}
	return missing
}

// ProfitAndLossFromReport extracts the P&L snapshot for one period.
func ProfitAndLossFromReport(report *domain.Report) (domain.ProfitAndLossSnapshot, []string) {
	var s domain.ProfitAndLossSnapshot
	missing := extract(report, []fieldSpec{
		{field: "total_income", labels: []string{"Total Income", "Total Revenue"}, dest: func(v float64) { s.TotalIncome = v }},
		{field: "cogs", labels: []string{"Total Cost of Goods Sold", "Total Cost of Sales"}, dest: func(v float64) { s.COGS = v }},
		{field: "gross_profit", labels: []string{"Gross Profit"}, dest: func(v float64) { s.GrossProfit = v }},
		{field: "operating_expenses", labels: []string{"Total Operating Expenses", "Operating Expenses", "Total Expenses"}, dest: func(v float64) { s.OperatingExpenses = v }},
		{field: "net_income", labels: []string{"Net Income"}, dest: func(v float64) { s.NetIncome = v }},
		{field: "interest_expense", labels: []string{"Interest Expense", "Total Interest Expense", "Interest Paid"}, line: true, dest: func(v float64) { s.InterestExpense = v }},
	})
	return s, missing
}

// BalanceSheetFromReport extracts the balance sheet snapshot.
func BalanceSheetFromReport(report *domain.Report) (domain.BalanceSheetSnapshot, []string) {
	var s domain.BalanceSheetSnapshot
	missing := extract(report, []fieldSpec{
		{field: "current_assets", labels: []string{"Total Current Assets"}, dest: func(v float64) { s.CurrentAssets = v }},
		{field: "current_liabilities", labels: []string{"Total Current Liabilities"}, dest: func(v float64) { s.CurrentLiabilities = v }},
		{field: "total_liabilities", labels: []string{"Total Liabilities"}, dest: func(v float64) { s.TotalLiabilities = v }},
		{field: "total_equity", labels: []string{"Total Equity"}, dest: func(v float64) { s.TotalEquity = v }},
		{field: "cash", labels: []string{"Cash and Cash Equivalents", "Cash and cash equivalents", "Cash and Cash Equivalents (Bank Accounts)", "Total Bank Accounts"}, dest: func(v float64) { s.Cash = v }},
		{field: "accounts_receivable", labels: []string{"Accounts Receivable", "Accounts receivable", "Total Accounts Receivable"}, line: true, dest: func(v float64) { s.AccountsReceivable = v }},
		{field: "accounts_payable", labels: []string{"Accounts Payable", "Accounts payable", "Total Accounts Payable"}, line: true, dest: func(v float64) { s.AccountsPayable = v }},
		{field: "inventory", labels: []string{"Inventory Asset", "Inventory"}, line: true, dest: func(v float64) { s.Inventory = v }},
	})
	return s, missing
}

// CashFlowFromReport extracts the cash flow snapshot for one period.
func CashFlowFromReport(report *domain.Report) (domain.CashFlowSnapshot, []string) {
	var s domain.CashFlowSnapshot
	missing := extract(report, []fieldSpec{
		{field: "net_cash_operating", labels: []string{"Net Cash Provided by Operating Activities", "Net Cash from Operating Activities", "Net cash provided by operating activities"}, dest: func(v float64) { s.NetCashOperating = v }},
		{field: "net_cash_investing", labels: []string{"Net Cash Provided by Investing Activities", "Net Cash from Investing Activities"}, dest: func(v float64) { s.NetCashInvesting = v }},
		{field: "net_cash_financing", labels: []string{"Net Cash Provided by Financing Activities", "Net Cash from Financing Activities"}, dest: func(v float64) { s.NetCashFinancing = v }},
		{field: "net_change_cash", labels: []string{"Net Change in Cash", "Net cash increase for period"}, dest: func(v float64) { s.NetChangeCash = v }},
	})
	return s, missing
}

// valueColumnLabels returns the report's value column titles, skipping
// the leading account-name column.
func valueColumnLabels(report *domain.Report) []string {
	cols := report.Columns.Column
	if len(cols) > 0 {
		cols = cols[1:]
	}
	labels := make([]string, 0, len(cols))
	for _, col := range cols {
		label := col.ColTitle
		if label == "" {
			label = col.ColType
		}
		labels = append(labels, label)
	}
	return labels
}

// MonthlyNetIncomeSeries pairs the report's month columns with the Net
// Income row values for the trend/forecast helpers. Months missing a
// value are reported as 0.
func MonthlyNetIncomeSeries(report *domain.Report) []domain.MonthlyPoint {
	labels := valueColumnLabels(report)
	values, _ := SeriesByLabel(report, "Net Income")

	series := make([]domain.MonthlyPoint, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			label = fmt.Sprintf("Month-%d", i+1)
		}
		v := 0.0
		if i < len(values) {
			v = values[i]
		}
		series = append(series, domain.MonthlyPoint{Label: label, Value: v})
	}
	return series
}

// RevenueTimeSeries extracts the per-column revenue series from a P&L
// report requested with day/week/month columns.
func RevenueTimeSeries(report *domain.Report, granularity string) []domain.SalesPoint {
	labels := valueColumnLabels(report)
	values, _ := SectionSeriesByLabel(report, "Total Income", "Total Revenue")

	points := make([]domain.SalesPoint, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			label = fmt.Sprintf("Period-%d", i+1)
		}
		v := 0.0
		if i < len(values) {
			v = values[i]
		}
		points = append(points, domain.SalesPoint{
			Period:      label,
			Revenue:     round2(v),
			Granularity: granularity,
		})
	}
	return points
}
