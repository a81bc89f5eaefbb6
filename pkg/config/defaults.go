package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "driveway"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultListingsBaseURL = "http://localhost:8080"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100

	// Listing defaults applied when an owner omits the availability window.
	DefaultDefaultOpenTime  = "08:00"
	DefaultDefaultCloseTime = "20:00"
	DefaultMaxHourlyRate    = 1000.0

	DefaultQueryEventsTopic    = "parking.query.resolved"
	DefaultQueryEventsDLQTopic = "parking.query.resolved.dlq"
	DefaultQueryEventsGroupID  = "driveway-insights"
)

// Resolver fallbacks. The query resolver degrades to these instead of
// failing, so they are named here where tests can reference them.
const (
	// DefaultLocationToken is assumed when no location keyword matches.
	DefaultLocationToken = "downtown"

	// DefaultQuerySpan is the implied parking duration when the query
	// mentions a single time ("at 2pm" means 2pm-4pm).
	DefaultQuerySpan = 2 * time.Hour
)

var (
	// Default weekday availability by owner region, weekdays indexed
	// 0=Sunday..6=Saturday. Israeli work week runs Sunday-Thursday.
	DefaultAvailableDaysIsrael = []int{0, 1, 2, 3, 4}
	DefaultAvailableDaysUs     = []int{1, 2, 3, 4, 5}
)
