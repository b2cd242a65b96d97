package config

import "time"

// Data source kinds
const (
	DataSourcePostgres = "postgres"
	DataSourceSnapshot = "snapshot"
)

// Environments
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Defaults
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultServiceName       = "farmplanner"
	DefaultVersion           = "dev"
	DefaultDBName            = "farmplanner"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultDeadLetterPath    = "logs/deadletter.jsonl"
	DefaultFrameInterval     = 50 * time.Millisecond
	DefaultWorkerCount       = 4
	DefaultQueueSize         = 256
	DefaultInboxSize         = 1024
	DefaultSourceCacheSize   = 4096
	DefaultSourceCacheTTL    = 6 * time.Hour
	DefaultShutdownTimeout   = 10 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort          = "invalid PORT"
	ErrMsgSnapshotPathRequired = "SNAPSHOT_PATH must be set when DATA_SOURCE is snapshot"
	ErrMsgUnknownDataSource    = "unknown DATA_SOURCE"
	ErrMsgAPIKeyRequired       = "API_KEY must be set in prod"
	ErrMsgMustBePositive       = "value must be positive"
)
