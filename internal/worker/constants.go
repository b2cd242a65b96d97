package worker

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	// DefaultWorkerCount is used when a pool is created with no workers
	DefaultWorkerCount = 4
	// DefaultQueueSize is used when a pool is created with no queue
	DefaultQueueSize = 256
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgPoolStopped = "worker pool stopped"
	ErrMsgQueueFull   = "worker queue full"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStarted     = "Worker pool started"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
