package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}

// AppMetrics is returned by GET /v1/metrics/app.
type AppMetrics struct {
	TotalRequests      int64   `json:"totalRequests"`
	ErrorRate          float64 `json:"errorRate"`
	TransactionsTotal  int64   `json:"transactionsTotal"`
	TransfersTotal     int64   `json:"transfersTotal"`
	ConfirmationsTotal int64   `json:"confirmationsTotal"`
	CacheHitRate       float64 `json:"cacheHitRate"`
	Period             string  `json:"period"`
}

// ============================================================
// Generic API Response wrappers
// ============================================================

// ListResponse wraps paginated list results.
type ListResponse[T any] struct {
	Data     []T  `json:"data"`
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}

// SuccessResponse wraps a successful single-entity response.
type SuccessResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
