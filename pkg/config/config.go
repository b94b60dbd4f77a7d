package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"planfit/pkg/client"
	"planfit/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CalendarID      string
	CalendarTZ      string
	ReminderMinutes []int
	LookaheadDays   int
	LockIdleTTL     time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	TokenSealKey       []byte // 32 bytes for AES-256-GCM, base64 in env

	OpenAIAPIKey string
	OpenAIModel  string

	KafkaScheduledTopic string
	KafkaEnabled        bool

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		CalendarID:      getEnvStr(EnvCalendarID, DefaultCalendarID),
		CalendarTZ:      getEnvStr(EnvCalendarTZ, DefaultCalendarTZ),
		ReminderMinutes: getEnvNumList(EnvReminderMinutes, DefaultReminderMinutes),
		LookaheadDays:   getEnvNum(EnvLookaheadDays, DefaultLookaheadDays),
		LockIdleTTL:     getEnvDuration(EnvLockIdleTTL, DefaultLockIdleTTL),

		GoogleClientID:     getEnvStr(EnvGoogleClientID, ""),
		GoogleClientSecret: getEnvStr(EnvGoogleClientSecret, ""),
		GoogleRedirectURL:  getEnvStr(EnvGoogleRedirectURL, ""),

		OpenAIAPIKey: getEnvStr(EnvOpenAIAPIKey, ""),
		OpenAIModel:  getEnvStr(EnvOpenAIModel, DefaultOpenAIModel),

		KafkaScheduledTopic: getEnvStr(EnvKafkaScheduledTopic, DefaultKafkaScheduledTopic),
		KafkaEnabled:        getEnvBool(EnvKafkaEnabled, false),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTokenSealKey)); raw != "" {
		key, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			cfg.Log.Fatal("TOKEN_SEAL_KEY is not valid base64", "error", err)
		}
		cfg.TokenSealKey = key
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errs = append(errs, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	for name, d := range map[string]time.Duration{
		"RateLimitWindow": cfg.RateLimitWindow,
		"RequestTimeout":  cfg.RequestTimeout,
		"IdempotencyTTL":  cfg.IdempotencyTTL,
		"ReadTimeout":     cfg.ReadTimeout,
		"WriteTimeout":    cfg.WriteTimeout,
		"IdleTimeout":     cfg.IdleTimeout,
		"ShutdownTimeout": cfg.ShutdownTimeout,
		"LockIdleTTL":     cfg.LockIdleTTL,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.CalendarID == "" {
		errs = append(errs, "CalendarID cannot be empty")
	}
	if _, err := time.LoadLocation(cfg.CalendarTZ); err != nil {
		errs = append(errs, fmt.Sprintf("CalendarTZ is not a valid IANA timezone, got: %s", cfg.CalendarTZ))
	}
	if cfg.LookaheadDays < 1 || cfg.LookaheadDays > 60 {
		errs = append(errs, fmt.Sprintf("LookaheadDays must be between 1 and 60, got: %d", cfg.LookaheadDays))
	}
	if len(cfg.ReminderMinutes) == 0 {
		errs = append(errs, "ReminderMinutes cannot be empty")
	}
	for _, m := range cfg.ReminderMinutes {
		if m < 0 {
			errs = append(errs, fmt.Sprintf("ReminderMinutes entries cannot be negative, got: %d", m))
		}
	}

	if len(cfg.TokenSealKey) > 0 && len(cfg.TokenSealKey) != 32 {
		errs = append(errs, fmt.Sprintf("TokenSealKey must decode to 32 bytes, got: %d", len(cfg.TokenSealKey)))
	}

	if len(errs) > 0 {
		msg := "Configuration validation failed:\n"
		for i, e := range errs {
			msg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"calendar_id", cfg.CalendarID,
		"calendar_timezone", cfg.CalendarTZ,
		"reminder_minutes", cfg.ReminderMinutes,
		"lookahead_days", cfg.LookaheadDays,
		"lock_idle_ttl", cfg.LockIdleTTL,
		"google_client_set", cfg.GoogleClientID != "",
		"token_seal_key_set", len(cfg.TokenSealKey) == 32,
		"openai_key_set", cfg.OpenAIAPIKey != "",
		"openai_model", cfg.OpenAIModel,
		"kafka_enabled", cfg.KafkaEnabled,
		"kafka_scheduled_topic", cfg.KafkaScheduledTopic,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvNumList parses a comma-separated list of integers, e.g. "30,10".
func getEnvNumList(key, fallback string) []int {
	raw := getEnvStr(key, fallback)
	parts := strings.Split(raw, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}
