package finance

import "math"

// Nullable ratio helpers. A nil *float64 means "unknown" and marshals as
// JSON null; it is never coerced to zero.

// SafeDivide returns num/den, or nil when the denominator is zero or
// either operand is unknown.
func SafeDivide(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}

// SafeDividePtr is SafeDivide over nullable operands.
func SafeDividePtr(num, den *float64) *float64 {
	if num == nil || den == nil {
		return nil
	}
	return SafeDivide(*num, *den)
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func roundPtr(v *float64, round func(float64) float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(round(*v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// BurnRate returns the magnitude of negative operating cash flow for the
// prior full month. Positive operating cash flow means zero burn.
func BurnRate(netCashOperating float64) float64 {
	return math.Abs(math.Min(netCashOperating, 0))
}

// Runway returns cash/burn in months, or nil when burn is zero —
// "infinite runway" is reported as unknown, not as a sentinel infinity.
func Runway(cash, burnRateMonthly float64) *float64 {
	if burnRateMonthly == 0 {
		return nil
	}
	return SafeDivide(cash, burnRateMonthly)
}

// InterestCover floors the denominator at 0.0001 so a debt-free company
// yields a finite, very large cover rather than null: "no debt burden"
// is distinct from "unknown".
func InterestCover(operatingIncome, interestExpense float64) *float64 {
	return SafeDivide(operatingIncome, math.Max(interestExpense, 0.0001))
}

// EfficiencyDays holds the working-capital day metrics for one period.
type EfficiencyDays struct {
	DSO            *float64
	DPO            *float64
	InventoryTurns *float64
	DIO            *float64
	CCC            *float64
}

// ComputeEfficiency derives DSO/DPO/inventory turns/DIO and the cash
// conversion cycle. fiscalDays is the number of days elapsed in the
// fiscal year; revenueYTD and cogsYTD are the year-to-date flows.
func ComputeEfficiency(accountsReceivable, accountsPayable, inventory, revenueYTD, cogsYTD float64, fiscalDays int, monthOfYear int) EfficiencyDays {
	var e EfficiencyDays

	revenuePerDay := SafeDivide(revenueYTD, float64(fiscalDays))
	cogsPerDay := SafeDivide(cogsYTD, float64(fiscalDays))

	e.DSO = SafeDividePtr(Float(accountsReceivable), revenuePerDay)
	e.DPO = SafeDividePtr(Float(accountsPayable), cogsPerDay)

	if inventory != 0 {
		// Annualized estimate, replaced by plain YTD turns once COGS exists.
		if monthOfYear < 1 {
			monthOfYear = 1
		}
		e.InventoryTurns = SafeDivide(cogsYTD*12/float64(monthOfYear), inventory)
		if cogsYTD != 0 {
			if t := SafeDivide(cogsYTD, inventory); t != nil {
				e.InventoryTurns = t
			}
		}
	}
	if e.InventoryTurns != nil && *e.InventoryTurns != 0 {
		e.DIO = SafeDivide(365, *e.InventoryTurns)
	}

	if e.DSO != nil || e.DPO != nil || e.DIO != nil {
		ccc := deref(e.DSO) + deref(e.DIO) - deref(e.DPO)
		e.CCC = &ccc
	}
	return e
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
