package domain

import "time"

// Asset is one tracked business asset as submitted by the caller.
// The insights endpoint is pure compute: nothing here is persisted.
type Asset struct {
	AssetID       string  `json:"asset_id"`
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	PurchasePrice float64 `json:"purchase_price"`
	SalvageValue  float64 `json:"salvage_value"`

	// "SL", "DDB" or "MACRS"; defaults to straight line.
	DepreciationMethod string `json:"depreciation_method"`
	UsefulLifeMonths   int    `json:"useful_life_months"`

	PurchaseDate        *time.Time `json:"purchase_date,omitempty"`
	InServiceDate       *time.Time `json:"in_service_date,omitempty"`
	NextServiceDate     *time.Time `json:"next_service_date,omitempty"`
	WarrantyExpiration  *time.Time `json:"warranty_expiration,omitempty"`
	InsuranceExpiration *time.Time `json:"insurance_expiration,omitempty"`

	BookValue        float64 `json:"book_value"`
	ReplacementValue float64 `json:"replacement_value"`

	UtilizationPct           float64 `json:"utilization_pct"`
	AvailabilityPct          float64 `json:"availability_pct"`
	DowntimeHours30d         float64 `json:"downtime_hours_30d"`
	FaultsLast30d            float64 `json:"faults_last_30d"`
	MaintenanceCompliancePct float64 `json:"maintenance_compliance_pct"`
}

// DepreciationPeriod is one line of a depreciation schedule.
type DepreciationPeriod struct {
	Period    string  `json:"period"`
	Rate      float64 `json:"rate,omitempty"`
	Amount    float64 `json:"amount"`
	BookValue float64 `json:"book_value,omitempty"`
}

// DepreciationSummary is the computed depreciation state of one asset.
type DepreciationSummary struct {
	Method          string               `json:"method"`
	MonthsInService int                  `json:"months_in_service"`
	Cost            float64              `json:"cost"`
	SalvageValue    float64              `json:"salvage_value"`
	BookValue       float64              `json:"book_value"`
	Accumulated     float64              `json:"accumulated"`
	MonthlyAmount   float64              `json:"monthly_amount,omitempty"`
	Schedule        []DepreciationPeriod `json:"schedule"`
}

// AssetHealth scores an asset from utilization, downtime, faults and
// maintenance compliance.
type AssetHealth struct {
	Score   float64            `json:"score"`
	Status  string             `json:"status"`
	Drivers map[string]float64 `json:"drivers"`
}

// AssetUtilization summarizes the last 30 days of use.
type AssetUtilization struct {
	Last30DaysPct   float64 `json:"last_30_days_pct"`
	IdlePct         float64 `json:"idle_pct"`
	AvailabilityPct float64 `json:"availability_pct"`
}

// EnrichedAsset is one asset with its computed summaries attached.
type EnrichedAsset struct {
	AssetID       string              `json:"asset_id"`
	Category      string              `json:"category"`
	Type          string              `json:"type"`
	PurchasePrice float64             `json:"purchase_price"`
	Depreciation  DepreciationSummary `json:"depreciation"`
	Health        AssetHealth         `json:"health"`
	Utilization   AssetUtilization    `json:"utilization"`

	NextServiceDate     string `json:"next_service_date,omitempty"`
	WarrantyExpiration  string `json:"warranty_expiration,omitempty"`
	InsuranceExpiration string `json:"insurance_expiration,omitempty"`
}

// AssetRecommendation is an actionable fleet recommendation.
type AssetRecommendation struct {
	AssetID string `json:"asset_id"`
	Action  string `json:"action"`
	Reason  string `json:"reason"`
}

// AssetKPIs aggregates fleet-wide totals and averages.
type AssetKPIs struct {
	Totals struct {
		Assets     int            `json:"assets"`
		ByCategory map[string]int `json:"by_category"`
	} `json:"totals"`
	Values struct {
		BookValue        float64 `json:"book_value"`
		ReplacementValue float64 `json:"replacement_value"`
	} `json:"values"`
	Utilization struct {
		AvgLast30DaysPct float64 `json:"avg_last_30_days_pct"`
		DowntimeHours30d float64 `json:"downtime_hours_30d"`
	} `json:"utilization"`
	Maintenance struct {
		CompliancePct       float64 `json:"compliance_pct"`
		UpcomingServices90d int     `json:"upcoming_services_90d"`
	} `json:"maintenance"`
	Risk struct {
		WarrantiesExpiring60d int     `json:"warranties_expiring_60d"`
		HealthScore           float64 `json:"health_score"`
	} `json:"risk"`
	Depreciation struct {
		MTD float64 `json:"mtd"`
		YTD float64 `json:"ytd"`
	} `json:"depreciation"`
}

// WebhookTemplate documents an integration event a CMMS or telemetry
// system can push at the fleet, with a recommended payload shape.
type WebhookTemplate struct {
	Event              string         `json:"event"`
	Description        string         `json:"description"`
	RecommendedPayload map[string]any `json:"recommended_payload"`
}

// AssetInsights is the full response of the asset insights endpoint.
type AssetInsights struct {
	AsOf            string                `json:"as_of"`
	KPIs            AssetKPIs             `json:"kpis"`
	Assets          []EnrichedAsset       `json:"assets"`
	Recommendations []AssetRecommendation `json:"recommendations"`
	Webhooks        []WebhookTemplate     `json:"webhooks"`
	Tooltips        map[string]string     `json:"tooltips"`
}
