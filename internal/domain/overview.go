package domain

// Snapshots are flat, request-scoped records extracted from one report
// tree. They are built once per request and never mutated afterwards.

// ProfitAndLossSnapshot holds the P&L totals for one period.
type ProfitAndLossSnapshot struct {
	TotalIncome       float64 `json:"total_income"`
	COGS              float64 `json:"cogs"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NetIncome         float64 `json:"net_income"`
	InterestExpense   float64 `json:"interest_expense"`
}

// BalanceSheetSnapshot holds balance sheet lines at one instant in time.
type BalanceSheetSnapshot struct {
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	TotalEquity        float64 `json:"total_equity"`
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	AccountsPayable    float64 `json:"accounts_payable"`
	Inventory          float64 `json:"inventory"`
}

// CashFlowSnapshot holds cash flow totals for one period.
type CashFlowSnapshot struct {
	NetCashOperating float64 `json:"net_cash_operating"`
	NetCashInvesting float64 `json:"net_cash_investing"`
	NetCashFinancing float64 `json:"net_cash_financing"`
	NetChangeCash    float64 `json:"net_change_cash"`
}

// Period keys used across the overview pipeline.
const (
	PeriodMTD        = "mtd"
	PeriodQTD        = "qtd"
	PeriodYTD        = "ytd"
	PeriodLastMonth  = "last_month"
	PeriodLast3Months = "custom_last_3_months"
)

// MonthlyPoint is one month of a short metric series (e.g. net income).
type MonthlyPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ForecastPoint is a naive forward projection with a best/worst band.
type ForecastPoint struct {
	Month string  `json:"month"`
	Base  float64 `json:"base"`
	Best  float64 `json:"best"`
	Worst float64 `json:"worst"`
}

// VarianceEntry compares one metric against the prior period.
// VariancePct is nil when the baseline is zero.
type VarianceEntry struct {
	Metric      string   `json:"metric"`
	Actual      float64  `json:"actual"`
	Forecast    float64  `json:"forecast"`
	VariancePct *float64 `json:"variance_pct"`
}

// Risk is a rule-derived risk flag with a suggested mitigation.
type Risk struct {
	Title         string  `json:"title"`
	Note          string  `json:"note"`
	Mitigation    string  `json:"mitigation"`
	ConfidencePct float64 `json:"confidence_pct"`
	Percentile    int     `json:"percentile"`
}

// OverviewKPIs are the headline numbers of the overview. Nullable ratios
// marshal as JSON null, meaning "unknown" rather than zero.
type OverviewKPIs struct {
	RevenueMTD      float64  `json:"revenue_mtd"`
	RevenueQTD      float64  `json:"revenue_qtd"`
	RevenueYTD      float64  `json:"revenue_ytd"`
	GrossMarginPct  *float64 `json:"gross_margin_pct"`
	OpexRatioPct    *float64 `json:"opex_ratio_pct"`
	NetMarginPct    *float64 `json:"net_margin_pct"`
	CashFlowMTD     *float64 `json:"cash_flow_mtd"`
	RunwayMonths    *float64 `json:"runway_months"`
	AIConfidencePct float64  `json:"ai_confidence_pct"`
	IndustryNotes   []string `json:"industry_notes"`
}

// CalculationValues exposes the raw inputs behind each headline ratio so
// the frontend can show "how was this computed".
type CalculationValues struct {
	Revenue            float64 `json:"revenue"`
	COGS               float64 `json:"cogs"`
	Opex               float64 `json:"opex"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	EBITDA             float64 `json:"ebitda"`
	DebtService        float64 `json:"debt_service"`
	MonthlyExpenses    float64 `json:"monthly_expenses"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	GrossProfit        float64 `json:"gross_profit"`
	NetIncome          float64 `json:"net_income"`
	OperatingIncome    float64 `json:"operating_income"`
	InterestExpense    float64 `json:"interest_expense"`
}

// Liquidity ratios; nil means the denominator was unknown or zero.
type Liquidity struct {
	CurrentRatio  *float64 `json:"current_ratio"`
	QuickRatio    *float64 `json:"quick_ratio"`
	DebtToEquity  *float64 `json:"dte"`
	InterestCover *float64 `json:"interest_cover"`
}

// Efficiency expresses balance sheet lines as days of flow.
type Efficiency struct {
	DSODays        *float64 `json:"dso_days"`
	DPODays        *float64 `json:"dpo_days"`
	InventoryTurns *float64 `json:"inv_turns"`
	CCCDays        *float64 `json:"ccc_days"`
}

// Cashflow holds burn/runway and the short net income trend.
type Cashflow struct {
	BurnRateMonthly float64         `json:"burn_rate_monthly"`
	RunwayMonths    *float64        `json:"runway_months"`
	Forecast        []ForecastPoint `json:"forecast"`
	NetTrend3Mo     string          `json:"net_trend_3mo"`
}

// FinancialOverview is the single composite returned to the caller:
// snapshots distilled into ratios, variance, trends, insights and risks.
type FinancialOverview struct {
	KPIs              OverviewKPIs      `json:"kpis"`
	CalculationValues CalculationValues `json:"calculation_values"`
	Insights          []string          `json:"insights"`
	Liquidity         Liquidity         `json:"liquidity"`
	Efficiency        Efficiency        `json:"efficiency"`
	Cashflow          Cashflow          `json:"cashflow"`
	Variance          []VarianceEntry   `json:"variance"`
	Risks             []Risk            `json:"risks"`
}

// DashboardKPIs is the reduced KPI card set for the dashboard header.
type DashboardKPIs struct {
	RevenueMTD   float64  `json:"revenue_mtd"`
	NetMarginPct *float64 `json:"net_margin_pct"`
	Cash         float64  `json:"cash"`
	RunwayMonths *float64 `json:"runway_months"`
}

// Alert is one contextual threshold alert.
type Alert struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Metric  string `json:"metric"`
}

// AlertsResponse wraps the alert list with generation metadata.
type AlertsResponse struct {
	Alerts      []Alert `json:"alerts"`
	Count       int     `json:"count"`
	GeneratedAt string  `json:"generated_at"`
}

// SalesPoint is one bucket of the historical revenue series.
type SalesPoint struct {
	Period      string  `json:"period"`
	Revenue     float64 `json:"revenue"`
	Granularity string  `json:"granularity"`
}
