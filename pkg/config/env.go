package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvCalendarID      = "CALENDAR_ID"
	EnvCalendarTZ      = "CALENDAR_TIMEZONE"
	EnvReminderMinutes = "CALENDAR_REMINDER_MINUTES"
	EnvLookaheadDays   = "CALENDAR_LOOKAHEAD_DAYS"
	EnvLockIdleTTL     = "USER_LOCK_IDLE_TTL"

	EnvGoogleClientID     = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvGoogleRedirectURL  = "GOOGLE_REDIRECT_URL"
	EnvTokenSealKey       = "TOKEN_SEAL_KEY"

	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvOpenAIModel  = "OPENAI_MODEL"

	EnvKafkaScheduledTopic = "KAFKA_SCHEDULED_TOPIC"
	EnvKafkaEnabled        = "KAFKA_ENABLED"
)
