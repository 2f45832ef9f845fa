package assets

import (
	"math"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

// Health statuses by score band.
const (
	StatusGood     = "good"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// HealthFor scores an asset from telemetry. Missing utilization and
// maintenance figures assume a moderately healthy asset rather than
// dragging the score to zero.
func HealthFor(asset domain.Asset) domain.AssetHealth {
	utilization := asset.UtilizationPct
	if utilization == 0 {
		utilization = 75
	}
	maintenance := asset.MaintenanceCompliancePct
	if maintenance == 0 {
		maintenance = 90
	}
	downtime := asset.DowntimeHours30d
	faults := asset.FaultsLast30d

	score := 100.0
	score -= downtime * 0.6
	score -= faults * 1.5
	score -= math.Max(0, 90-maintenance) * 0.4
	score -= math.Max(0, 70-utilization) * 0.2
	score = math.Max(10, math.Min(score, 100))

	status := StatusCritical
	switch {
	case score >= 85:
		status = StatusGood
	case score >= 65:
		status = StatusWarning
	}

	return domain.AssetHealth{
		Score:  math.Round(score*10) / 10,
		Status: status,
		Drivers: map[string]float64{
			"utilization_pct":            utilization,
			"downtime_hours_30d":         downtime,
			"faults_last_30d":            faults,
			"maintenance_compliance_pct": maintenance,
		},
	}
}

// UtilizationFor summarizes the last 30 days of use.
func UtilizationFor(asset domain.Asset) domain.AssetUtilization {
	idle := 100 - asset.UtilizationPct
	if idle < 0 {
		idle = 0
	}
	return domain.AssetUtilization{
		Last30DaysPct:   asset.UtilizationPct,
		IdlePct:         math.Round(idle*10) / 10,
		AvailabilityPct: asset.AvailabilityPct,
	}
}
