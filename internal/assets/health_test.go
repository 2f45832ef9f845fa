package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight/biz-advisor-go/internal/domain"
)

func TestHealthFor_DefaultsWhenTelemetryMissing(t *testing.T) {
	h := HealthFor(domain.Asset{})

	assert.Equal(t, 100.0, h.Score)
	assert.Equal(t, StatusGood, h.Status)
	assert.Equal(t, 75.0, h.Drivers["utilization_pct"])
	assert.Equal(t, 90.0, h.Drivers["maintenance_compliance_pct"])
}

func TestHealthFor_PenaltiesStack(t *testing.T) {
	h := HealthFor(domain.Asset{
		DowntimeHours30d:         20,
		FaultsLast30d:            4,
		MaintenanceCompliancePct: 70,
		UtilizationPct:           50,
	})

	// 100 - 12 - 6 - 8 - 4
	assert.Equal(t, 70.0, h.Score)
	assert.Equal(t, StatusWarning, h.Status)
}

func TestHealthFor_GoodBandEdge(t *testing.T) {
	h := HealthFor(domain.Asset{FaultsLast30d: 10})

	assert.Equal(t, 85.0, h.Score)
	assert.Equal(t, StatusGood, h.Status)
}

func TestHealthFor_CriticalAndClamped(t *testing.T) {
	h := HealthFor(domain.Asset{DowntimeHours30d: 100})
	assert.Equal(t, 40.0, h.Score)
	assert.Equal(t, StatusCritical, h.Status)

	h = HealthFor(domain.Asset{DowntimeHours30d: 1000})
	assert.Equal(t, 10.0, h.Score)
	assert.Equal(t, StatusCritical, h.Status)
}

func TestUtilizationFor(t *testing.T) {
	u := UtilizationFor(domain.Asset{UtilizationPct: 40, AvailabilityPct: 97})
	assert.Equal(t, 40.0, u.Last30DaysPct)
	assert.Equal(t, 60.0, u.IdlePct)
	assert.Equal(t, 97.0, u.AvailabilityPct)

	u = UtilizationFor(domain.Asset{UtilizationPct: 120})
	assert.Equal(t, 0.0, u.IdlePct)
}
