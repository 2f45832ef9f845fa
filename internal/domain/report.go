package domain

// QuickBooks report wire types. The reports API returns a strict tree of
// rows: Section rows carry their total in a Summary ColData array (or in a
// child row), Data rows carry ColData directly.

// Report is the raw report tree returned by the QuickBooks reports endpoint
// (ProfitAndLoss, BalanceSheet, CashFlow).
type Report struct {
	Header  ReportHeader  `json:"Header"`
	Columns ReportColumns `json:"Columns"`
	Rows    ReportRows    `json:"Rows"`
}

// ReportHeader describes the report and the period it covers.
type ReportHeader struct {
	ReportName  string `json:"ReportName"`
	StartPeriod string `json:"StartPeriod"`
	EndPeriod   string `json:"EndPeriod"`
	Currency    string `json:"Currency"`
	Time        string `json:"Time"`
}

// ReportColumns names each value column of the report.
type ReportColumns struct {
	Column []ReportColumn `json:"Column"`
}

// ReportColumn is one named value column.
type ReportColumn struct {
	ColTitle string `json:"ColTitle"`
	ColType  string `json:"ColType"`
}

// ReportRows wraps the row list; QuickBooks nests rows under a "Row" key.
type ReportRows struct {
	Row []ReportRow `json:"Row"`
}

// ReportRow is either a Section (Header/Summary/child Rows) or a Data row
// (ColData). QuickBooks emits the row kind as "RowType" in some report
// shapes and lowercase "type" in others; Kind() accepts both.
type ReportRow struct {
	RowType  string     `json:"RowType"`
	TypeAlt  string     `json:"type"`
	Header   RowHeader  `json:"Header"`
	Summary  RowSummary `json:"Summary"`
	ColData  []ColData  `json:"ColData"`
	Rows     ReportRows `json:"Rows"`
	Group    string     `json:"group"`
}

// Row kinds as emitted by the QuickBooks reports API.
const (
	RowKindSection = "Section"
	RowKindData    = "Data"
)

// Kind returns the row kind regardless of which JSON key carried it.
func (r *ReportRow) Kind() string {
	if r.RowType != "" {
		return r.RowType
	}
	return r.TypeAlt
}

// RowHeader labels a Section row.
type RowHeader struct {
	ColData []ColData `json:"ColData"`
}

// RowSummary carries a Section row's total line.
type RowSummary struct {
	ColData []ColData `json:"ColData"`
}

// ColData is one cell: a label or a numeric string value.
type ColData struct {
	Value string `json:"value"`
	ID    string `json:"id,omitempty"`
}

// CompanyInfo is the flattened company resource for the dashboard.
type CompanyInfo struct {
	CompanyName          string `json:"company_name"`
	LegalName            string `json:"legal_name"`
	Country              string `json:"country"`
	FiscalYearStartMonth string `json:"fiscal_year_start_month,omitempty"`
	CompanyStartDate     string `json:"company_start_date,omitempty"`
}
