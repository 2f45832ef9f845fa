package finance

import (
	"fmt"
	"math"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// Trend labels for the trailing net income series.
const (
	TrendPositive         = "positive"
	TrendNegative         = "negative"
	TrendFlat             = "flat"
	TrendInsufficientData = "insufficient-data"
)

// TrendLabel classifies the trailing series by comparing the latest
// value against the first, with a 5% deadband either way.
func TrendLabel(series []domain.MonthlyPoint) string {
	if len(series) < 2 {
		return TrendInsufficientData
	}
	first := series[0].Value
	last := series[len(series)-1].Value
	switch {
	case last > first*1.05:
		return TrendPositive
	case last < first*0.95:
		return TrendNegative
	default:
		return TrendFlat
	}
}

// BuildForecast projects three months forward from the series mean,
// with a flat +/-20% best/worst band around the base case.
func BuildForecast(series []domain.MonthlyPoint) []domain.ForecastPoint {
	if len(series) == 0 {
		return []domain.ForecastPoint{}
	}
	var sum float64
	for _, p := range series {
		sum += p.Value
	}
	base := sum / float64(len(series))

	forecast := make([]domain.ForecastPoint, 0, 3)
	for i := 1; i <= 3; i++ {
		forecast = append(forecast, domain.ForecastPoint{
			Month: fmt.Sprintf("+%d", i),
			Base:  round2(base),
			Best:  round2(base * 1.2),
			Worst: round2(base * 0.8),
		})
	}
	return forecast
}

// BuildVariance compares the current month's P&L lines against the prior
// full month, used as the naive forecast. A zero base yields a null
// variance percentage rather than a division blowup.
func BuildVariance(current, previous domain.ProfitAndLossSnapshot) []domain.VarianceEntry {
	mapping := []struct {
		metric   string
		actual   float64
		forecast float64
	}{
		{"Revenue", current.TotalIncome, previous.TotalIncome},
		{"COGS", current.COGS, previous.COGS},
		{"Expenses", current.OperatingExpenses, previous.OperatingExpenses},
		{"Net Profit", current.NetIncome, previous.NetIncome},
	}

	entries := make([]domain.VarianceEntry, 0, len(mapping))
	for _, m := range mapping {
		var variancePct *float64
		if m.forecast != 0 {
			variancePct = Float(math.Round((m.actual-m.forecast)/m.forecast*1000) / 1000)
		}
		entries = append(entries, domain.VarianceEntry{
			Metric:      m.metric,
			Actual:      round2(m.actual),
			Forecast:    round2(m.forecast),
			VariancePct: variancePct,
		})
	}
	return entries
}

// BuildInsights produces the short narrative bullets shown on the
// overview card. Rule based, always at least one line.
func BuildInsights(current, previous domain.ProfitAndLossSnapshot, grossMarginPct, quickRatio, inventoryTurns *float64) []string {
	var insights []string

	if grossMarginPct != nil && previous.TotalIncome != 0 {
		prevMargin := deref(SafeDivide(previous.GrossProfit, previous.TotalIncome))
		delta := (*grossMarginPct - prevMargin) * 100
		if math.Abs(delta) >= 0.5 {
			direction := "improved"
			if delta < 0 {
				direction = "declined"
			}
			insights = append(insights, fmt.Sprintf("Gross margin %s %.1f%% versus last month.", direction, math.Abs(delta)))
		}
	}

	if quickRatio != nil {
		if *quickRatio < 1 {
			insights = append(insights, "Quick ratio below 1.0; cash buffer is thin.")
		} else if *quickRatio > 2 {
			insights = append(insights, "Quick ratio above 2.0; short-term liquidity is strong.")
		}
	}

	if inventoryTurns != nil {
		if *inventoryTurns < 4 {
			insights = append(insights, "Inventory turns lag peers; review stock efficiency.")
		} else {
			insights = append(insights, "Inventory turnover is healthy relative to typical benchmarks.")
		}
	}

	if len(insights) == 0 {
		insights = append(insights, "Financial trends stable this period.")
	}
	return insights
}

// BuildRisks flags threshold breaches on margin, liquidity, runway and
// the cash conversion cycle.
func BuildRisks(grossMarginPct, quickRatio, runwayMonths, ccc *float64) []domain.Risk {
	risks := []domain.Risk{}

	if grossMarginPct != nil && *grossMarginPct < 0.3 {
		risks = append(risks, domain.Risk{
			Title:         "Margin pressure",
			Note:          "Gross margin has dipped below 30%.",
			Mitigation:    "Review pricing and cost drivers.",
			ConfidencePct: 0.7,
			Percentile:    40,
		})
	}

	if quickRatio != nil && *quickRatio < 1 {
		risks = append(risks, domain.Risk{
			Title:         "Liquidity warning",
			Note:          "Quick ratio under 1.0 limits short-term flexibility.",
			Mitigation:    "Build cash reserves or extend payables.",
			ConfidencePct: 0.75,
			Percentile:    45,
		})
	}

	if runwayMonths != nil && *runwayMonths < 6 {
		risks = append(risks, domain.Risk{
			Title:         "Runway tight",
			Note:          fmt.Sprintf("Cash runway projected at %.1f months.", *runwayMonths),
			Mitigation:    "Moderate spending or raise capital to extend runway.",
			ConfidencePct: 0.68,
			Percentile:    50,
		})
	}

	if ccc != nil && *ccc > 70 {
		risks = append(risks, domain.Risk{
			Title:         "Cash conversion drag",
			Note:          "Cash conversion cycle exceeds 70 days.",
			Mitigation:    "Accelerate AR collection and optimize inventory.",
			ConfidencePct: 0.64,
			Percentile:    55,
		})
	}

	return risks
}

// BuildIndustryNotes benchmarks margins against rough industry bands.
func BuildIndustryNotes(grossMarginPct, netMarginPct *float64) []string {
	var notes []string

	if grossMarginPct != nil {
		switch pct := *grossMarginPct * 100; {
		case pct >= 40:
			notes = append(notes, "Gross margin trends ahead of typical industry peers.")
		case pct <= 25:
			notes = append(notes, "Gross margin trails industry midpoint; monitor cost structure closely.")
		}
	}

	if netMarginPct != nil {
		switch pct := *netMarginPct * 100; {
		case pct >= 15:
			notes = append(notes, "Net profitability ranks in the top quartile for comparable companies.")
		case pct <= 5:
			notes = append(notes, "Net margin under 5%; consider expense optimization.")
		}
	}

	if len(notes) == 0 {
		notes = append(notes, "Performance is within standard industry bands.")
	}
	return notes
}
