package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nmthang194/chapter-flow/internal/logger"
)

// New creates a Watcher that hands newly dropped identifier list files to
// handler, with at most maxConcurrent runs in flight.
func New(dropDir string, handler RunHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dropDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to one run at a time if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		dropDir:   dropDir,
		handler:   handler,
		logger:    log,
		watcher:   fsw,
		semaphore: newSemaphore(maxConcurrent),
	}, nil
}
