package assets

import (
	"math"
	"time"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// ComputeInsights enriches each asset with depreciation, health and
// utilization, aggregates fleet KPIs, and derives repair-vs-replace
// recommendations.
func ComputeInsights(list []domain.Asset, reference time.Time) domain.AssetInsights {
	enriched := make([]domain.EnrichedAsset, 0, len(list))
	for _, asset := range list {
		enriched = append(enriched, domain.EnrichedAsset{
			AssetID:             asset.AssetID,
			Category:            asset.Category,
			Type:                asset.Type,
			PurchasePrice:       asset.PurchasePrice,
			Depreciation:        DepreciationFor(asset, reference),
			Health:              HealthFor(asset),
			Utilization:         UtilizationFor(asset),
			NextServiceDate:     formatDate(asset.NextServiceDate),
			WarrantyExpiration:  formatDate(asset.WarrantyExpiration),
			InsuranceExpiration: formatDate(asset.InsuranceExpiration),
		})
	}

	recommendations := []domain.AssetRecommendation{}
	for i, asset := range list {
		health := enriched[i].Health
		bookValue := enriched[i].Depreciation.BookValue

		if health.Score < 65 {
			recommendations = append(recommendations, domain.AssetRecommendation{
				AssetID: asset.AssetID,
				Action:  "Review maintenance plan",
				Reason:  "Health score trending critical; inspect faults, downtime, and operator usage.",
			})
		}
		if asset.ReplacementValue > 0 && bookValue <= 0.5*asset.ReplacementValue {
			recommendations = append(recommendations, domain.AssetRecommendation{
				AssetID: asset.AssetID,
				Action:  "Consider replacement",
				Reason:  "Book value is <50% of replacement value; evaluate repair vs replace.",
			})
		}
	}

	return domain.AssetInsights{
		AsOf:            reference.Format("2006-01-02"),
		KPIs:            computeKPIs(list, reference),
		Assets:          enriched,
		Recommendations: recommendations,
		Webhooks:        webhookTemplates(),
		Tooltips: map[string]string{
			"depreciation":      "Straight-line = (cost - salvage) / useful life. DDB accelerates early years. MACRS follows IRS tables.",
			"health":            "Health blends maintenance compliance, utilization, downtime, faults, and availability.",
			"replace_vs_repair": "If repair + downtime > ~65% of new asset cost, consider replacement.",
		},
	}
}

// webhookTemplates lists the integration events external maintenance and
// telemetry systems can push, with recommended payload shapes.
func webhookTemplates() []domain.WebhookTemplate {
	return []domain.WebhookTemplate{
		{
			Event:       "asset.fault.created",
			Description: "Triggered when telemetry, sensors, or maintenance logs detect a new fault code.",
			RecommendedPayload: map[string]any{
				"asset_id":    "ASSET-123",
				"fault_code":  "P0420",
				"severity":    "high",
				"detected_at": "2025-12-01T14:30:00Z",
			},
		},
		{
			Event:       "warranty.expiring",
			Description: "Triggered when an asset warranty is within the reminder window (default 60 days).",
			RecommendedPayload: map[string]any{
				"asset_id":          "ASSET-456",
				"warranty_provider": "OEM",
				"expiration_date":   "2025-09-01",
				"days_remaining":    240,
			},
		},
	}
}

func computeKPIs(list []domain.Asset, reference time.Time) domain.AssetKPIs {
	var kpis domain.AssetKPIs
	kpis.Totals.Assets = len(list)
	kpis.Totals.ByCategory = map[string]int{}

	var bookValue, replacementValue, downtime float64
	var maintenanceSum, utilizationSum, healthSum float64
	var depreciationMTD float64

	for _, asset := range list {
		category := asset.Category
		if category == "" {
			category = "Other"
		}
		kpis.Totals.ByCategory[category]++

		bookValue += asset.BookValue
		replacementValue += asset.ReplacementValue
		downtime += asset.DowntimeHours30d
		maintenanceSum += asset.MaintenanceCompliancePct
		utilizationSum += asset.UtilizationPct
		healthSum += HealthFor(asset).Score
		depreciationMTD += asset.PurchasePrice * 0.01

		if within(asset.NextServiceDate, reference, 90) {
			kpis.Maintenance.UpcomingServices90d++
		}
		if within(asset.WarrantyExpiration, reference, 60) {
			kpis.Risk.WarrantiesExpiring60d++
		}
	}

	kpis.Values.BookValue = round2(bookValue)
	kpis.Values.ReplacementValue = round2(replacementValue)
	kpis.Utilization.DowntimeHours30d = round1(downtime)
	kpis.Depreciation.MTD = round2(depreciationMTD)
	kpis.Depreciation.YTD = round2(depreciationMTD * 6)

	if n := float64(len(list)); n > 0 {
		kpis.Utilization.AvgLast30DaysPct = round1(utilizationSum / n)
		kpis.Maintenance.CompliancePct = round1(maintenanceSum / n)
		kpis.Risk.HealthScore = round1(healthSum / n)
	}
	return kpis
}

// within reports whether t falls inside [reference, reference+days].
func within(t *time.Time, reference time.Time, days int) bool {
	if t == nil {
		return false
	}
	delta := int(t.Sub(reference).Hours() / 24)
	return delta >= 0 && delta <= days
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
