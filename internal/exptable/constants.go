package exptable

import "time"

// Cache defaults, overridden by TABLE_CACHE_SIZE and TABLE_CACHE_TTL
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgTableBuilt  = "Built exp table"
	LogMsgCachePurged = "Table cache purged after catalogue reload"
)
