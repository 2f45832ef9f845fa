package finance

import (
	"math"
	"time"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// OverviewInput bundles everything the assembler consumes. All fields
// are plain values; assembly itself performs no I/O.
type OverviewInput struct {
	Today         time.Time
	Profit        map[string]domain.ProfitAndLossSnapshot
	BalanceSheet  domain.BalanceSheetSnapshot
	Cashflow      map[string]domain.CashFlowSnapshot
	MonthlySeries []domain.MonthlyPoint
	FiscalDays    int
}

// AssembleOverview folds the extracted snapshots into the composite
// overview. Deterministic: the same input always yields the same
// output, so responses are safely cacheable.
func AssembleOverview(in OverviewInput) domain.FinancialOverview {
	mtd := in.Profit[domain.PeriodMTD]
	qtd := in.Profit[domain.PeriodQTD]
	ytd := in.Profit[domain.PeriodYTD]
	lastMonth := in.Profit[domain.PeriodLastMonth]
	bs := in.BalanceSheet

	fiscalDays := in.FiscalDays
	if fiscalDays <= 0 {
		fiscalStart := time.Date(in.Today.Year(), time.January, 1, 0, 0, 0, 0, in.Today.Location())
		fiscalDays = daysBetween(fiscalStart, truncateDay(in.Today)) + 1
	}

	eff := ComputeEfficiency(
		bs.AccountsReceivable, bs.AccountsPayable, bs.Inventory,
		ytd.TotalIncome, ytd.COGS,
		fiscalDays, int(in.Today.Month()),
	)

	grossMarginPct := SafeDivide(mtd.GrossProfit, mtd.TotalIncome)
	opexRatioPct := SafeDivide(mtd.OperatingExpenses, mtd.TotalIncome)
	netMarginPct := SafeDivide(mtd.NetIncome, mtd.TotalIncome)

	quickRatio := SafeDivide(bs.CurrentAssets-bs.Inventory, bs.CurrentLiabilities)
	currentRatio := SafeDivide(bs.CurrentAssets, bs.CurrentLiabilities)
	debtToEquity := SafeDivide(bs.TotalLiabilities, bs.TotalEquity)

	operatingIncome := mtd.GrossProfit - mtd.OperatingExpenses
	interestCover := InterestCover(operatingIncome, mtd.InterestExpense)

	cfMTD := in.Cashflow[domain.PeriodMTD]
	cfLastMonth := in.Cashflow[domain.PeriodLastMonth]

	cashFlowMTD := cfMTD.NetCashOperating
	if cashFlowMTD == 0 {
		cashFlowMTD = cfMTD.NetChangeCash
	}
	lastMonthOperating := cfLastMonth.NetCashOperating
	if lastMonthOperating == 0 {
		lastMonthOperating = cfLastMonth.NetChangeCash
	}
	burnRate := BurnRate(lastMonthOperating)
	runway := Runway(bs.Cash, burnRate)

	forecast := BuildForecast(in.MonthlySeries)
	netTrend := TrendLabel(in.MonthlySeries)

	variance := BuildVariance(mtd, lastMonth)
	insights := BuildInsights(mtd, lastMonth, grossMarginPct, quickRatio, eff.InventoryTurns)
	risks := BuildRisks(grossMarginPct, quickRatio, runway, eff.CCC)

	aiConfidence := confidenceFromCoverage(
		grossMarginPct, opexRatioPct, netMarginPct,
		currentRatio, quickRatio, debtToEquity, interestCover,
		eff.DSO, eff.DPO, eff.InventoryTurns, eff.DIO, eff.CCC,
		Float(cashFlowMTD), Float(burnRate), runway,
	)

	ebitda := operatingIncome + mtd.InterestExpense
	monthlyExpenses := mtd.OperatingExpenses + mtd.InterestExpense

	return domain.FinancialOverview{
		KPIs: domain.OverviewKPIs{
			RevenueMTD:      round2(mtd.TotalIncome),
			RevenueQTD:      round2(qtd.TotalIncome),
			RevenueYTD:      round2(ytd.TotalIncome),
			GrossMarginPct:  roundPtr(grossMarginPct, round4),
			OpexRatioPct:    roundPtr(opexRatioPct, round4),
			NetMarginPct:    roundPtr(netMarginPct, round4),
			CashFlowMTD:     Float(round2(cashFlowMTD)),
			RunwayMonths:    roundPtr(runway, round2),
			AIConfidencePct: round2(aiConfidence),
			IndustryNotes:   BuildIndustryNotes(grossMarginPct, netMarginPct),
		},
		CalculationValues: domain.CalculationValues{
			Revenue:            round2(mtd.TotalIncome),
			COGS:               round2(mtd.COGS),
			Opex:               round2(mtd.OperatingExpenses),
			CurrentAssets:      round2(bs.CurrentAssets),
			CurrentLiabilities: round2(bs.CurrentLiabilities),
			Cash:               round2(bs.Cash),
			AccountsReceivable: round2(bs.AccountsReceivable),
			EBITDA:             round2(ebitda),
			DebtService:        round2(mtd.InterestExpense),
			MonthlyExpenses:    round2(monthlyExpenses),
			MonthlyRevenue:     round2(mtd.TotalIncome),
			GrossProfit:        round2(mtd.GrossProfit),
			NetIncome:          round2(mtd.NetIncome),
			OperatingIncome:    round2(operatingIncome),
			InterestExpense:    round2(mtd.InterestExpense),
		},
		Insights: insights,
		Liquidity: domain.Liquidity{
			CurrentRatio:  roundPtr(currentRatio, round2),
			QuickRatio:    roundPtr(quickRatio, round2),
			DebtToEquity:  roundPtr(debtToEquity, round2),
			InterestCover: roundPtr(interestCover, round2),
		},
		Efficiency: domain.Efficiency{
			DSODays:        roundPtr(eff.DSO, round1),
			DPODays:        roundPtr(eff.DPO, round1),
			InventoryTurns: roundPtr(eff.InventoryTurns, round2),
			CCCDays:        roundPtr(eff.CCC, round1),
		},
		Cashflow: domain.Cashflow{
			BurnRateMonthly: round2(burnRate),
			RunwayMonths:    roundPtr(runway, round2),
			Forecast:        forecast,
			NetTrend3Mo:     netTrend,
		},
		Variance: variance,
		Risks:    risks,
	}
}

// confidenceFromCoverage scales a confidence score with the number of
// metrics that could actually be computed, capped at 0.95.
func confidenceFromCoverage(metrics ...*float64) float64 {
	available := 0
	for _, m := range metrics {
		if m != nil {
			available++
		}
	}
	return math.Min(0.5+0.03*float64(available), 0.95)
}
