package finance

import "time"

// DateRange is a closed [Start, End] reporting window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PeriodWindows carries every reporting window the overview pipeline
// needs for a given as-of date. The fiscal year starts January 1.
type PeriodWindows struct {
	MTD        DateRange
	QTD        DateRange
	YTD        DateRange
	LastMonth  DateRange
	Last3Mo    DateRange
	FiscalDays int
	// MonthLabels are the short names of the three trailing full
	// months, oldest first, e.g. ["May" "Jun" "Jul"].
	MonthLabels []string
}

// ComputePeriods derives all reporting windows from the as-of date.
func ComputePeriods(today time.Time) PeriodWindows {
	today = truncateDay(today)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	fiscalStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())

	quarterStartMonth := time.Month((int(today.Month())-1)/3*3 + 1)
	quarterStart := time.Date(today.Year(), quarterStartMonth, 1, 0, 0, 0, 0, today.Location())

	lastMonthEnd := firstOfMonth.AddDate(0, 0, -1)
	lastMonthStart := time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, today.Location())

	// Three trailing full months, oldest first.
	var monthRanges []DateRange
	cursor := firstOfMonth
	for i := 0; i < 3; i++ {
		end := cursor.AddDate(0, 0, -1)
		start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, today.Location())
		monthRanges = append([]DateRange{{Start: start, End: end}}, monthRanges...)
		cursor = start
	}

	labels := make([]string, 0, len(monthRanges))
	for _, r := range monthRanges {
		labels = append(labels, r.Start.Format("Jan"))
	}

	return PeriodWindows{
		MTD:         DateRange{Start: firstOfMonth, End: today},
		QTD:         DateRange{Start: quarterStart, End: today},
		YTD:         DateRange{Start: fiscalStart, End: today},
		LastMonth:   DateRange{Start: lastMonthStart, End: lastMonthEnd},
		Last3Mo:     DateRange{Start: monthRanges[0].Start, End: monthRanges[2].End},
		FiscalDays:  daysBetween(fiscalStart, today) + 1,
		MonthLabels: labels,
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// Params renders a range as QuickBooks report query parameters.
func (r DateRange) Params() map[string]string {
	return map[string]string{
		"start_date": r.Start.Format("2006-01-02"),
		"end_date":   r.End.Format("2006-01-02"),
	}
}
