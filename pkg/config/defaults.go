package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "planfit"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCalendarID      = "primary"
	DefaultCalendarTZ      = "UTC"
	DefaultReminderMinutes = "30,10"
	DefaultLookaheadDays   = 7
	DefaultLockIdleTTL     = 1 * time.Hour

	DefaultOpenAIModel = "gpt-3.5-turbo"

	DefaultKafkaScheduledTopic = "workout.scheduled"
)
