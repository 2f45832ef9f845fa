package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

func section(label string, total string, children ...domain.ReportRow) domain.ReportRow {
	return domain.ReportRow{
		RowType: domain.RowKindSection,
		Header:  domain.RowHeader{ColData: []domain.ColData{{Value: label}}},
		Summary: domain.RowSummary{ColData: []domain.ColData{{Value: "Total " + label}, {Value: total}}},
		Rows:    domain.ReportRows{Row: children},
	}
}

func dataRow(label, value string) domain.ReportRow {
	return domain.ReportRow{
		RowType: domain.RowKindData,
		ColData: []domain.ColData{{Value: label}, {Value: value}},
	}
}

func reportOf(rows ...domain.ReportRow) *domain.Report {
	return &domain.Report{Rows: domain.ReportRows{Row: rows}}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12,345.67", 12345.67},
		{"1,234,567.89", 1234567.89},
		{"-2,500.00", -2500.00},
		{"", 0},
		{"-", 0},
		{"  42.5 ", 42.5},
		{"N/A", 0},
		{"12.34.56", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseMoney(tc.in), "input %q", tc.in)
	}
}

func TestSectionTotal_MatchesSummary(t *testing.T) {
	report := reportOf(
		section("Income", "5000.00",
			dataRow("Sales of Product Income", "4200.00"),
			dataRow("Services", "800.00"),
		),
	)

	v, ok := SectionTotal(report, "Total Income", "Total Revenue")
	require.True(t, ok)
	assert.Equal(t, 5000.00, v)
}

func TestSectionTotal_AbsentLabelIsZeroNotFound(t *testing.T) {
	report := reportOf(section("Expenses", "1200.00"))

	v, ok := SectionTotal(report, "Total Income")
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestSectionTotal_OuterSectionWins(t *testing.T) {
	// Both the outer section and a nested child summarize under the
	// same label; the outer total must win because a node's own
	// summary is checked before descending.
	inner := section("Income", "999.00")
	outer := domain.ReportRow{
		RowType: domain.RowKindSection,
		Summary: domain.RowSummary{ColData: []domain.ColData{{Value: "Total Income"}, {Value: "5000.00"}}},
		Rows:    domain.ReportRows{Row: []domain.ReportRow{inner}},
	}
	report := reportOf(outer)

	v, ok := SectionTotal(report, "Total Income")
	require.True(t, ok)
	assert.Equal(t, 5000.00, v)
}

func TestSectionTotal_FirstMatchStops(t *testing.T) {
	report := reportOf(
		section("Income", "5000.00"),
		section("Income", "7777.00"),
	)

	v, ok := SectionTotal(report, "Total Income")
	require.True(t, ok)
	assert.Equal(t, 5000.00, v)
}

func TestSectionTotal_DataRowTotalMatches(t *testing.T) {
	// Some report shapes render totals as plain Data rows.
	report := reportOf(
		section("Income", "5000.00",
			dataRow("Net Income", "1234.50"),
		),
	)

	v, ok := SectionTotal(report, "Net Income")
	require.True(t, ok)
	assert.Equal(t, 1234.50, v)
}

func TestSectionTotal_LowercaseTypeKey(t *testing.T) {
	// Row kind under the lowercase "type" key instead of "RowType".
	report := reportOf(domain.ReportRow{
		TypeAlt: domain.RowKindSection,
		Summary: domain.RowSummary{ColData: []domain.ColData{{Value: "Total Income"}, {Value: "310.50"}}},
	})

	v, ok := SectionTotal(report, "Total Income")
	require.True(t, ok)
	assert.Equal(t, 310.50, v)
}

func TestSectionTotal_MalformedValueParsesToZero(t *testing.T) {
	report := reportOf(domain.ReportRow{
		RowType: domain.RowKindSection,
		Summary: domain.RowSummary{ColData: []domain.ColData{{Value: "Total Income"}, {Value: "not-a-number"}}},
	})

	v, ok := SectionTotal(report, "Total Income")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestLineValue_FindsNestedDataRow(t *testing.T) {
	report := reportOf(
		section("Assets", "90000.00",
			section("Current Assets", "30000.00",
				dataRow("Accounts Receivable", "8,000.00"),
			),
		),
	)

	v, ok := LineValue(report, "Accounts Receivable")
	require.True(t, ok)
	assert.Equal(t, 8000.00, v)
}

func TestLineValue_IgnoresSectionSummaries(t *testing.T) {
	report := reportOf(section("Income", "5000.00"))

	_, ok := LineValue(report, "Total Income")
	assert.False(t, ok)
}

func TestWalk_UnknownRowKindStillDescends(t *testing.T) {
	report := reportOf(domain.ReportRow{
		RowType: "Group",
		Rows: domain.ReportRows{Row: []domain.ReportRow{
			dataRow("Net Income", "42.00"),
		}},
	})

	v, ok := LineValue(report, "Net Income")
	require.True(t, ok)
	assert.Equal(t, 42.00, v)
}

func TestSeriesByLabel_ReturnsAllValueColumns(t *testing.T) {
	report := reportOf(domain.ReportRow{
		RowType: domain.RowKindData,
		ColData: []domain.ColData{
			{Value: "Net Income"},
			{Value: "100.00"},
			{Value: "-250.00"},
			{Value: "1,000.00"},
		},
	})

	values, ok := SeriesByLabel(report, "Net Income")
	require.True(t, ok)
	assert.Equal(t, []float64{100, -250, 1000}, values)
}

func TestSectionSeriesByLabel_MatchesSummaryRow(t *testing.T) {
	report := reportOf(domain.ReportRow{
		RowType: domain.RowKindSection,
		Summary: domain.RowSummary{ColData: []domain.ColData{
			{Value: "Total Income"},
			{Value: "1000.00"},
			{Value: "1100.00"},
		}},
	})

	values, ok := SectionSeriesByLabel(report, "Total Income", "Total Revenue")
	require.True(t, ok)
	assert.Equal(t, []float64{1000, 1100}, values)
}
