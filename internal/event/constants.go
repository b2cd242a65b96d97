package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Inbox configuration constants
const (
	// DefaultInboxSize is the number of events the inbox buffers between two frames
	DefaultInboxSize = 1024
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Error messages
const (
	ErrMsgInboxFull = "inbox full"
)

// Log message constants
const (
	LogMsgEventPosted           = "Event posted"
	LogMsgWriteDeadLettered     = "Persistence write dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
)
