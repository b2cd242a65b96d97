package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting FarmPlanner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Data Source
// =============================================================================

const (
	LogMsgDataSourceReady              = "Data source ready"
	ErrMsgFailedConnectDatabase        = "failed to connect to database"
	ErrMsgFailedMigrateDatabase        = "failed to migrate database"
	ErrMsgFailedOpenDataSource         = "failed to open data source"
	ErrMsgFailedCreateDeadLetterDir    = "failed to create dead-letter directory"
	ErrMsgFailedCreateDeadLetterWriter = "failed to create dead-letter writer"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingPlanner      = "Stopping planner..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgPlannerStopTimedOut  = "Planner did not stop before the shutdown deadline"
	LogMsgDeadLetterCloseFail  = "Dead-letter writer close failed"
)
