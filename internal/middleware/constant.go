package middleware

import "time"

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// Rate limiter cache sizing
const (
	LimiterCacheSize = 1000
	LimiterCacheTTL  = 5 * time.Minute
)
