package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvListingsBaseURL = "LISTINGS_BASE_URL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDefaultOpenTime  = "DEFAULT_OPEN_TIME"
	EnvDefaultCloseTime = "DEFAULT_CLOSE_TIME"
	EnvMaxHourlyRate    = "MAX_HOURLY_RATE"

	EnvQueryEventsTopic    = "QUERY_EVENTS_TOPIC"
	EnvQueryEventsDLQTopic = "QUERY_EVENTS_DLQ_TOPIC"
	EnvQueryEventsGroupID  = "QUERY_EVENTS_GROUP_ID"
)
