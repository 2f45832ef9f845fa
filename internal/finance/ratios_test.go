package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDivide(t *testing.T) {
	v := SafeDivide(10, 4)
	require.NotNil(t, v)
	assert.Equal(t, 2.5, *v)

	assert.Nil(t, SafeDivide(10, 0))
	assert.Nil(t, SafeDivide(0, 0))
}

func TestSafeDividePtr(t *testing.T) {
	assert.Nil(t, SafeDividePtr(nil, Float(5)))
	assert.Nil(t, SafeDividePtr(Float(5), nil))
	assert.Nil(t, SafeDividePtr(Float(5), Float(0)))

	v := SafeDividePtr(Float(9), Float(3))
	require.NotNil(t, v)
	assert.Equal(t, 3.0, *v)
}

func TestNetMarginFromFormattedValues(t *testing.T) {
	income := ParseMoney("12,345.67")
	netIncome := ParseMoney("1,234.34")

	margin := SafeDivide(netIncome, income)
	require.NotNil(t, margin)
	assert.InDelta(t, 0.09998, *margin, 0.0001)
}

func TestQuickRatio(t *testing.T) {
	currentAssets, inventory, currentLiabilities := 20000.0, 5000.0, 20000.0

	qr := SafeDivide(currentAssets-inventory, currentLiabilities)
	require.NotNil(t, qr)
	assert.Equal(t, 0.75, *qr)
}

func TestBurnRate(t *testing.T) {
	assert.Equal(t, 10000.0, BurnRate(-10000))
	assert.Equal(t, 0.0, BurnRate(2500))
	assert.Equal(t, 0.0, BurnRate(0))
}

func TestRunway(t *testing.T) {
	r := Runway(60000, 10000)
	require.NotNil(t, r)
	assert.Equal(t, 6.0, *r)

	// Zero burn means indefinite runway, reported as unknown.
	assert.Nil(t, Runway(60000, 0))
}

func TestRunwayTimesBurnRecoversCash(t *testing.T) {
	cash, operating := 84321.55, -7311.42

	burn := BurnRate(operating)
	r := Runway(cash, burn)
	require.NotNil(t, r)
	assert.InDelta(t, cash, *r*burn, 0.01)
}

func TestInterestCover(t *testing.T) {
	v := InterestCover(5000, 250)
	require.NotNil(t, v)
	assert.Equal(t, 20.0, *v)

	// Debt-free companies get a finite, very large cover.
	v = InterestCover(5000, 0)
	require.NotNil(t, v)
	assert.Equal(t, 5000/0.0001, *v)

	v = InterestCover(5000, -10)
	require.NotNil(t, v)
	assert.Equal(t, 5000/0.0001, *v)
}

func TestComputeEfficiency(t *testing.T) {
	e := ComputeEfficiency(6000, 4000, 9125, 73000, 36500, 365, 12)

	require.NotNil(t, e.DSO)
	assert.InDelta(t, 30.0, *e.DSO, 0.001)
	require.NotNil(t, e.DPO)
	assert.InDelta(t, 40.0, *e.DPO, 0.001)
	require.NotNil(t, e.InventoryTurns)
	assert.InDelta(t, 4.0, *e.InventoryTurns, 0.001)
	require.NotNil(t, e.DIO)
	assert.InDelta(t, 91.25, *e.DIO, 0.001)
	require.NotNil(t, e.CCC)
	assert.InDelta(t, *e.DSO+*e.DIO-*e.DPO, *e.CCC, 0.0001)
}

func TestComputeEfficiency_NoCOGSUsesAnnualizedEstimate(t *testing.T) {
	// With zero YTD COGS the annualized estimate is also zero; DIO and
	// the inventory leg of the cycle stay out of the result.
	e := ComputeEfficiency(3000, 0, 5000, 30000, 0, 180, 6)

	require.NotNil(t, e.InventoryTurns)
	assert.Equal(t, 0.0, *e.InventoryTurns)
	assert.Nil(t, e.DIO)
	assert.Nil(t, e.DPO)
	require.NotNil(t, e.CCC)
	assert.InDelta(t, *e.DSO, *e.CCC, 0.0001)
}

func TestComputeEfficiency_AllUnknown(t *testing.T) {
	e := ComputeEfficiency(0, 0, 0, 0, 0, 100, 4)

	assert.Nil(t, e.DSO)
	assert.Nil(t, e.DPO)
	assert.Nil(t, e.InventoryTurns)
	assert.Nil(t, e.DIO)
	assert.Nil(t, e.CCC)
}
