// Package assets computes depreciation, health and fleet KPI summaries
// for caller-provided asset lists. Everything here is pure compute;
// nothing is persisted.
package assets

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// IRS MACRS half-year convention rates for 5-year property.
var macrs5YearRates = []float64{0.20, 0.32, 0.192, 0.1152, 0.1152, 0.0576}

// Depreciation methods accepted on input.
const (
	MethodStraightLine    = "SL"
	MethodDoubleDeclining = "DDB"
	MethodMACRS           = "MACRS"
)

// MonthsInService counts whole calendar months between the in-service
// date and the reference date, clamped at zero.
func MonthsInService(reference time.Time, start *time.Time) int {
	if start == nil {
		return 0
	}
	months := (reference.Year()-start.Year())*12 + int(reference.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// DepreciationFor dispatches on the asset's method and returns the
// computed summary as of the reference date. Unknown methods fall back
// to straight line.
func DepreciationFor(asset domain.Asset, reference time.Time) domain.DepreciationSummary {
	method := asset.DepreciationMethod
	if method != MethodDoubleDeclining && method != MethodMACRS {
		method = MethodStraightLine
	}

	inService := asset.InServiceDate
	if inService == nil {
		inService = asset.PurchaseDate
	}
	months := MonthsInService(reference, inService)

	var summary domain.DepreciationSummary
	switch method {
	case MethodDoubleDeclining:
		summary = doubleDeclining(asset.PurchasePrice, asset.SalvageValue, asset.UsefulLifeMonths, months)
	case MethodMACRS:
		summary = macrs(asset.PurchasePrice, months)
	default:
		summary = straightLine(asset.PurchasePrice, asset.SalvageValue, asset.UsefulLifeMonths, months)
	}

	summary.Method = method
	summary.MonthsInService = months
	summary.Cost = asset.PurchasePrice
	summary.SalvageValue = asset.SalvageValue
	return summary
}

func straightLine(cost, salvage float64, lifeMonths, monthsInService int) domain.DepreciationSummary {
	if lifeMonths <= 0 {
		return domain.DepreciationSummary{BookValue: cost, Schedule: []domain.DepreciationPeriod{}}
	}

	costD := decimal.NewFromFloat(cost)
	salvageD := decimal.NewFromFloat(salvage)

	depreciable := decimal.Max(costD.Sub(salvageD), decimal.Zero)
	monthly := depreciable.Div(decimal.NewFromInt(int64(lifeMonths)))
	accumulated := decimal.Min(monthly.Mul(decimal.NewFromInt(int64(monthsInService))), depreciable)
	bookValue := decimal.Max(costD.Sub(accumulated), salvageD)

	return domain.DepreciationSummary{
		BookValue:     bookValue.Round(2).InexactFloat64(),
		Accumulated:   accumulated.Round(2).InexactFloat64(),
		MonthlyAmount: monthly.Round(2).InexactFloat64(),
		Schedule: []domain.DepreciationPeriod{
			{Period: "Month 1", Amount: monthly.Round(2).InexactFloat64()},
			{Period: "Month 12", Amount: monthly.Mul(decimal.NewFromInt(12)).Round(2).InexactFloat64()},
		},
	}
}

func doubleDeclining(cost, salvage float64, lifeMonths, monthsInService int) domain.DepreciationSummary {
	if lifeMonths <= 0 {
		return domain.DepreciationSummary{BookValue: cost, Schedule: []domain.DepreciationPeriod{}}
	}

	monthlyRate := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(lifeMonths)))
	salvageD := decimal.NewFromFloat(salvage)
	book := decimal.NewFromFloat(cost)
	accumulated := decimal.Zero
	yearDep := decimal.Zero
	schedule := []domain.DepreciationPeriod{}

	for month := 1; month <= monthsInService; month++ {
		dep := book.Mul(monthlyRate)
		if book.Sub(dep).LessThan(salvageD) {
			dep = book.Sub(salvageD)
		}

		book = book.Sub(dep)
		accumulated = accumulated.Add(dep)
		yearDep = yearDep.Add(dep)

		atSalvage := book.LessThanOrEqual(salvageD)
		if month%12 == 0 || month == monthsInService || atSalvage {
			schedule = append(schedule, domain.DepreciationPeriod{
				Period:    fmt.Sprintf("Year %d", (month-1)/12+1),
				Amount:    yearDep.Round(2).InexactFloat64(),
				BookValue: book.Round(2).InexactFloat64(),
			})
			yearDep = decimal.Zero
		}

		if atSalvage {
			break
		}
	}

	return domain.DepreciationSummary{
		BookValue:   book.Round(2).InexactFloat64(),
		Accumulated: accumulated.Round(2).InexactFloat64(),
		Schedule:    schedule,
	}
}

func macrs(cost float64, monthsInService int) domain.DepreciationSummary {
	costD := decimal.NewFromFloat(cost)
	accumulated := decimal.Zero
	monthsRemaining := monthsInService
	schedule := []domain.DepreciationPeriod{}

	for idx, rate := range macrs5YearRates {
		if monthsRemaining <= 0 {
			break
		}

		monthsForYear := monthsRemaining
		if monthsForYear > 12 {
			monthsForYear = 12
		}
		fraction := decimal.NewFromInt(int64(monthsForYear)).Div(decimal.NewFromInt(12))
		amount := costD.Mul(decimal.NewFromFloat(rate)).Mul(fraction)
		accumulated = accumulated.Add(amount)

		schedule = append(schedule, domain.DepreciationPeriod{
			Period:    fmt.Sprintf("Year %d", idx+1),
			Rate:      rate,
			Amount:    amount.Round(2).InexactFloat64(),
			BookValue: decimal.Max(costD.Sub(accumulated), decimal.Zero).Round(2).InexactFloat64(),
		})

		monthsRemaining -= 12
	}

	return domain.DepreciationSummary{
		BookValue:   decimal.Max(costD.Sub(accumulated), decimal.Zero).Round(2).InexactFloat64(),
		Accumulated: accumulated.Round(2).InexactFloat64(),
		Schedule:    schedule,
	}
}
