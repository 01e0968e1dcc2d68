package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// LocationPage mirrors the backend's pagination envelope.
type LocationPage struct {
	Content       []Location `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Page          int        `json:"page"`
}

type TransportationPage struct {
	Content       []Transportation `json:"content"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
	Page          int              `json:"page"`
}

type RouteSearchMetadata struct {
	TotalResults         int    `json:"total_results"`
	SearchTimeMs         int64  `json:"search_time_ms"`
	CacheHit             bool   `json:"cache_hit"`
	AlternativeDays      []int  `json:"alternative_days,omitempty"`
	AlternativeDaysLabel string `json:"alternative_days_label,omitempty"`
}
