package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // empty disables authentication outside prod
	TrustedProxies []string

	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// DataSource selects the loader backend: "postgres" or "snapshot"
	DataSource     string
	SnapshotPath   string
	DeadLetterPath string

	FrameInterval   time.Duration
	WorkerCount     int
	QueueSize       int
	InboxSize       int
	SourceCacheSize int
	SourceCacheTTL  time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, real env vars may be set
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", EnvDev),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		DataSource:     strings.ToLower(getEnv("DATA_SOURCE", DataSourcePostgres)),
		SnapshotPath:   getEnv("SNAPSHOT_PATH", ""),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		FrameInterval:   getEnvAsDuration("FRAME_INTERVAL", DefaultFrameInterval),
		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		QueueSize:       getEnvAsInt("QUEUE_SIZE", DefaultQueueSize),
		InboxSize:       getEnvAsInt("INBOX_SIZE", DefaultInboxSize),
		SourceCacheSize: getEnvAsInt("SOURCE_CACHE_SIZE", DefaultSourceCacheSize),
		SourceCacheTTL:  getEnvAsDuration("SOURCE_CACHE_TTL", DefaultSourceCacheTTL),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port)
	}
	switch c.DataSource {
	case DataSourcePostgres:
	case DataSourceSnapshot:
		if c.SnapshotPath == "" {
			return fmt.Errorf("%s", ErrMsgSnapshotPathRequired)
		}
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownDataSource, c.DataSource)
	}
	if c.Environment == EnvProd && c.APIKey == "" {
		return fmt.Errorf("%s", ErrMsgAPIKeyRequired)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%s: FRAME_INTERVAL", ErrMsgMustBePositive)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("%s: WORKER_COUNT", ErrMsgMustBePositive)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%s: QUEUE_SIZE", ErrMsgMustBePositive)
	}
	if c.InboxSize <= 0 {
		return fmt.Errorf("%s: INBOX_SIZE", ErrMsgMustBePositive)
	}
	return nil
}

// UsesDatabase reports whether a Postgres pool is needed
func (c *Config) UsesDatabase() bool {
	return c.DataSource == DataSourcePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or not a Go duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
