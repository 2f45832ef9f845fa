// Package finance implements the financial snapshot extractor: a row
// walker over QuickBooks report trees, snapshot builders, and the derived
// ratio calculations behind the financial overview.
package finance

import (
	"strconv"
	"strings"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// ParseMoney converts a report cell to a float. Thousands separators are
// stripped; blank or lone-dash cells parse to 0. Malformed numeric text
// also parses to 0 — upstream data quality is outside this package's
// control, so the policy is lenient rather than failing the request.
func ParseMoney(value string) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" || value == "-" {
		return 0.0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// SectionTotal locates a Section whose summary line matches one of the
// candidate labels and returns its value column. Depth-first; a node's own
// Summary is checked before its children so an outer section beats a
// same-named descendant, and the first match stops the search. Some report
// shapes render totals as standalone Data rows, so those match too.
// The bool is false when no label matched (the value is then 0).
func SectionTotal(report *domain.Report, labels ...string) (float64, bool) {
	return walk(report.Rows.Row, labels, true)
}

// LineValue locates a Data row whose first cell matches one of the
// candidate labels and returns its value column. Used for plain account
// lines (e.g. "Accounts Receivable") that are not section totals.
func LineValue(report *domain.Report, labels ...string) (float64, bool) {
	return walk(report.Rows.Row, labels, false)
}

func walk(rows []domain.ReportRow, labels []string, sections bool) (float64, bool) {
	for i := range rows {
		row := &rows[i]
		switch row.Kind() {
		case domain.RowKindSection:
			if sections {
				if v, ok := summaryValue(row, labels); ok {
					return v, true
				}
			}
			if v, ok := walk(row.Rows.Row, labels, sections); ok {
				return v, true
			}
		case domain.RowKindData:
			if v, ok := colValue(row.ColData, labels); ok {
				return v, true
			}
		default:
			// Unknown row kinds still get their children searched.
			if v, ok := walk(row.Rows.Row, labels, sections); ok {
				return v, true
			}
		}
	}
	return 0.0, false
}

func summaryValue(row *domain.ReportRow, labels []string) (float64, bool) {
	return colValue(row.Summary.ColData, labels)
}

func colValue(cols []domain.ColData, labels []string) (float64, bool) {
	if len(cols) < 2 {
		return 0.0, false
	}
	for _, label := range labels {
		if cols[0].Value == label {
			return ParseMoney(cols[1].Value), true
		}
	}
	return 0.0, false
}

// SeriesByLabel finds a Data row matching one of the labels and returns
// all of its value columns, one per report column. Used for reports
// requested with monthly/weekly/daily columns.
func SeriesByLabel(report *domain.Report, labels ...string) ([]float64, bool) {
	return walkSeries(report.Rows.Row, labels, false)
}

// SectionSeriesByLabel is SeriesByLabel for section summary rows.
func SectionSeriesByLabel(report *domain.Report, labels ...string) ([]float64, bool) {
	return walkSeries(report.Rows.Row, labels, true)
}

func walkSeries(rows []domain.ReportRow, labels []string, sections bool) ([]float64, bool) {
	for i := range rows {
		row := &rows[i]
		var cols []domain.ColData
		if sections && row.Kind() == domain.RowKindSection {
			cols = row.Summary.ColData
		} else if !sections && row.Kind() == domain.RowKindData {
			cols = row.ColData
		}
		if len(cols) > 1 {
			for _, label := range labels {
				if cols[0].Value == label {
					values := make([]float64, 0, len(cols)-1)
					for _, col := range cols[1:] {
						values = append(values, ParseMoney(col.Value))
					}
					return values, true
				}
			}
		}
		if v, ok := walkSeries(row.Rows.Row, labels, sections); ok {
			return v, true
		}
	}
	return nil, false
}
