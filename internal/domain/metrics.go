package domain

// PipelineMetrics is a point-in-time summary of the extraction
// pipeline, derived from the Prometheus counters.
type PipelineMetrics struct {
	TotalRequests int64   `json:"total_requests"`
	ReportFetches int64   `json:"report_fetches"`
	ErrorRate     float64 `json:"error_rate"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	Period        string  `json:"period"`
}
