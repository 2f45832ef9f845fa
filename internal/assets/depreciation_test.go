package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

var reference = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMonthsInService(t *testing.T) {
	assert.Equal(t, 0, MonthsInService(reference, nil))
	assert.Equal(t, 0, MonthsInService(reference, datePtr(2027, 1, 1)))
	assert.Equal(t, 24, MonthsInService(reference, datePtr(2024, 8, 15)))
	assert.Equal(t, 26, MonthsInService(reference, datePtr(2024, 6, 15)))
}

func TestDepreciationFor_StraightLine(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:    13000,
		SalvageValue:     1000,
		UsefulLifeMonths: 60,
		InServiceDate:    datePtr(2024, 8, 30),
	}

	s := DepreciationFor(asset, reference)

	assert.Equal(t, MethodStraightLine, s.Method)
	assert.Equal(t, 24, s.MonthsInService)
	assert.Equal(t, 200.0, s.MonthlyAmount)
	assert.Equal(t, 4800.0, s.Accumulated)
	assert.Equal(t, 8200.0, s.BookValue)
	require.Len(t, s.Schedule, 2)
	assert.Equal(t, "Month 1", s.Schedule[0].Period)
	assert.Equal(t, 200.0, s.Schedule[0].Amount)
	assert.Equal(t, "Month 12", s.Schedule[1].Period)
	assert.Equal(t, 2400.0, s.Schedule[1].Amount)
}

func TestDepreciationFor_StraightLineFloorsAtSalvage(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:    13000,
		SalvageValue:     1000,
		UsefulLifeMonths: 60,
		InServiceDate:    datePtr(2016, 1, 1),
	}

	s := DepreciationFor(asset, reference)

	assert.Equal(t, 12000.0, s.Accumulated)
	assert.Equal(t, 1000.0, s.BookValue)
}

func TestDepreciationFor_UnknownMethodFallsBackToStraightLine(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:      6000,
		UsefulLifeMonths:   60,
		DepreciationMethod: "units-of-production",
		PurchaseDate:       datePtr(2025, 8, 30),
	}

	s := DepreciationFor(asset, reference)

	// Purchase date stands in for a missing in-service date.
	assert.Equal(t, MethodStraightLine, s.Method)
	assert.Equal(t, 12, s.MonthsInService)
	assert.Equal(t, 100.0, s.MonthlyAmount)
	assert.Equal(t, 4800.0, s.BookValue)
}

func TestDepreciationFor_ZeroLife(t *testing.T) {
	s := DepreciationFor(domain.Asset{PurchasePrice: 5000}, reference)

	assert.Equal(t, 5000.0, s.BookValue)
	assert.Equal(t, 0.0, s.Accumulated)
	assert.Empty(t, s.Schedule)
}

func TestDepreciationFor_DoubleDeclining(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:      10000,
		SalvageValue:       1000,
		UsefulLifeMonths:   60,
		DepreciationMethod: MethodDoubleDeclining,
		InServiceDate:      datePtr(2025, 8, 30),
	}

	s := DepreciationFor(asset, reference)

	// 12 months at a 2/60 monthly rate: 10000 * (29/30)^12.
	assert.InDelta(t, 6657.64, s.BookValue, 0.5)
	assert.InDelta(t, 3342.36, s.Accumulated, 0.5)
	assert.InDelta(t, 10000, s.BookValue+s.Accumulated, 0.01)
	require.Len(t, s.Schedule, 1)
	assert.Equal(t, "Year 1", s.Schedule[0].Period)
	assert.InDelta(t, s.Accumulated, s.Schedule[0].Amount, 0.01)
}

func TestDepreciationFor_DoubleDecliningStopsAtSalvage(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:      1000,
		SalvageValue:       900,
		UsefulLifeMonths:   12,
		DepreciationMethod: MethodDoubleDeclining,
		InServiceDate:      datePtr(2025, 8, 30),
	}

	s := DepreciationFor(asset, reference)

	assert.Equal(t, 900.0, s.BookValue)
	assert.Equal(t, 100.0, s.Accumulated)
	require.Len(t, s.Schedule, 1)
	assert.Equal(t, 100.0, s.Schedule[0].Amount)
	assert.Equal(t, 900.0, s.Schedule[0].BookValue)
}

func TestDepreciationFor_MACRS(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:      10000,
		DepreciationMethod: MethodMACRS,
		InServiceDate:      datePtr(2024, 2, 28),
	}

	s := DepreciationFor(asset, reference)
	require.Equal(t, 30, s.MonthsInService)

	require.Len(t, s.Schedule, 3)
	assert.Equal(t, 0.20, s.Schedule[0].Rate)
	assert.Equal(t, 2000.0, s.Schedule[0].Amount)
	assert.Equal(t, 0.32, s.Schedule[1].Rate)
	assert.Equal(t, 3200.0, s.Schedule[1].Amount)
	// Final year is prorated for the 6 remaining months.
	assert.Equal(t, 0.192, s.Schedule[2].Rate)
	assert.Equal(t, 960.0, s.Schedule[2].Amount)

	assert.Equal(t, 6160.0, s.Accumulated)
	assert.Equal(t, 3840.0, s.BookValue)
}

func TestDepreciationFor_MACRSNotYetInService(t *testing.T) {
	asset := domain.Asset{
		PurchasePrice:      10000,
		DepreciationMethod: MethodMACRS,
		InServiceDate:      datePtr(2026, 8, 30),
	}

	s := DepreciationFor(asset, reference)

	assert.Equal(t, 10000.0, s.BookValue)
	assert.Empty(t, s.Schedule)
}
