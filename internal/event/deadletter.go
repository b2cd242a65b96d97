package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format
// Increment this when changing the DeadLetterEntry structure
const DeadLetterSchemaVersion = "1.0"

// Write operations recorded in the dead-letter log
const (
	WriteOpUpsert = "upsert"
	WriteOpDelete = "delete"
)

// Tables targeted by persistence writes
const (
	WriteTableWishList  = "user_items"
	WriteTableInventory = "user_ingredients"
)

// FailedWrite describes a persistence write that did not reach the store
type FailedWrite struct {
	Table    string          `json:"table"`
	Op       string          `json:"op"`
	ItemID   domain.ItemID   `json:"item_id"`
	Quantity domain.Quantity `json:"quantity,omitempty"`
}

// DeadLetterWriter appends failed persistence writes to a JSON-lines file so they
// can be replayed by hand. The in-memory state is not affected.
type DeadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string      `json:"schema_version"` // Format version for future migrations
	Timestamp     time.Time   `json:"timestamp"`
	Write         FailedWrite `json:"write"`
	LastError     string      `json:"last_error,omitempty"`
}

// NewDeadLetterWriter creates a new DeadLetterWriter
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends a failed write to the dead-letter file
func (dlw *DeadLetterWriter) Write(ctx context.Context, write FailedWrite, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Write:         write,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.FromContext(ctx).Warn(LogMsgWriteDeadLettered,
		"table", write.Table,
		"op", write.Op,
		"item_id", write.ItemID,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}
