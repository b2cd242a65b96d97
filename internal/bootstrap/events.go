package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/FarmPlanner_Go/internal/config"
	"github.com/osse101/FarmPlanner_Go/internal/event"
)

// InitializeDeadLetter opens the file that receives user state writes the data
// source rejected. An empty path disables dead-lettering.
func InitializeDeadLetter(cfg *config.Config) (*event.DeadLetterWriter, error) {
	if cfg.DeadLetterPath == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}
	w, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterWriter, err)
	}
	return w, nil
}
