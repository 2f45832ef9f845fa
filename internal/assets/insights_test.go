package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

func fleetFixture() []domain.Asset {
	return []domain.Asset{
		{
			AssetID:            "truck-1",
			Category:           "Vehicles",
			Type:               "Box Truck",
			PurchasePrice:      13000,
			SalvageValue:       1000,
			UsefulLifeMonths:   60,
			InServiceDate:      datePtr(2024, 8, 30),
			BookValue:          9000,
			ReplacementValue:   15000,
			NextServiceDate:    datePtr(2026, 10, 1),
			WarrantyExpiration: datePtr(2026, 9, 15),
		},
		{
			AssetID:          "press-2",
			Type:             "Hydraulic Press",
			BookValue:        2000,
			ReplacementValue: 10000,
			DowntimeHours30d: 100,
		},
	}
}

func TestComputeInsights(t *testing.T) {
	out := ComputeInsights(fleetFixture(), reference)

	assert.Equal(t, "2026-08-30", out.AsOf)
	require.Len(t, out.Assets, 2)

	truck := out.Assets[0]
	assert.Equal(t, "truck-1", truck.AssetID)
	assert.Equal(t, 8200.0, truck.Depreciation.BookValue)
	assert.Equal(t, StatusGood, truck.Health.Status)
	assert.Equal(t, "2026-10-01", truck.NextServiceDate)

	press := out.Assets[1]
	assert.Equal(t, StatusCritical, press.Health.Status)
	assert.Empty(t, press.NextServiceDate)
}

func TestComputeInsights_Recommendations(t *testing.T) {
	out := ComputeInsights(fleetFixture(), reference)

	// The truck's book value is above half of replacement and health is
	// good; only the press draws recommendations.
	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, "press-2", out.Recommendations[0].AssetID)
	assert.Equal(t, "Review maintenance plan", out.Recommendations[0].Action)
	assert.Equal(t, "press-2", out.Recommendations[1].AssetID)
	assert.Equal(t, "Consider replacement", out.Recommendations[1].Action)
}

func TestComputeInsights_ReplacementUsesComputedBookValue(t *testing.T) {
	// A fully depreciated machine with an optimistic submitted book value
	// still flags for replacement; the computed value decides.
	fleet := []domain.Asset{{
		AssetID:          "lathe-3",
		Category:         "Machinery",
		PurchasePrice:    6000,
		UsefulLifeMonths: 12,
		InServiceDate:    datePtr(2020, 1, 1),
		BookValue:        9000,
		ReplacementValue: 10000,
	}}

	out := ComputeInsights(fleet, reference)

	assert.Equal(t, 0.0, out.Assets[0].Depreciation.BookValue)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, "lathe-3", out.Recommendations[0].AssetID)
	assert.Equal(t, "Consider replacement", out.Recommendations[0].Action)
}

func TestComputeInsights_KPIs(t *testing.T) {
	out := ComputeInsights(fleetFixture(), reference)
	kpis := out.KPIs

	assert.Equal(t, 2, kpis.Totals.Assets)
	assert.Equal(t, map[string]int{"Vehicles": 1, "Other": 1}, kpis.Totals.ByCategory)
	assert.Equal(t, 11000.0, kpis.Values.BookValue)
	assert.Equal(t, 25000.0, kpis.Values.ReplacementValue)
	assert.Equal(t, 100.0, kpis.Utilization.DowntimeHours30d)
	assert.Equal(t, 1, kpis.Maintenance.UpcomingServices90d)
	assert.Equal(t, 1, kpis.Risk.WarrantiesExpiring60d)
	assert.Equal(t, 70.0, kpis.Risk.HealthScore)

	// One percent of fleet purchase cost per month, six months year to date.
	assert.Equal(t, 130.0, kpis.Depreciation.MTD)
	assert.Equal(t, 780.0, kpis.Depreciation.YTD)
}

func TestComputeInsights_IncludesWebhooksAndTooltips(t *testing.T) {
	out := ComputeInsights(fleetFixture(), reference)

	require.Len(t, out.Webhooks, 2)
	assert.Equal(t, "asset.fault.created", out.Webhooks[0].Event)
	assert.Equal(t, "warranty.expiring", out.Webhooks[1].Event)
	assert.Equal(t, "ASSET-456", out.Webhooks[1].RecommendedPayload["asset_id"])

	assert.Contains(t, out.Tooltips, "depreciation")
	assert.Contains(t, out.Tooltips, "health")
	assert.Contains(t, out.Tooltips, "replace_vs_repair")
}

func TestComputeInsights_EmptyFleet(t *testing.T) {
	out := ComputeInsights(nil, reference)

	assert.Equal(t, 0, out.KPIs.Totals.Assets)
	assert.Empty(t, out.Assets)
	assert.Empty(t, out.Recommendations)
	assert.Equal(t, 0.0, out.KPIs.Risk.HealthScore)
}

func TestWithinWindow(t *testing.T) {
	day := func(offset int) *time.Time {
		t := reference.AddDate(0, 0, offset)
		return &t
	}

	assert.True(t, within(day(0), reference, 90))
	assert.True(t, within(day(90), reference, 90))
	assert.False(t, within(day(91), reference, 90))
	assert.False(t, within(day(-1), reference, 90))
	assert.False(t, within(nil, reference, 90))
}
