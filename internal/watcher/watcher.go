package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nmthang194/chapter-flow/internal/logger"
)

type implWatcher struct {
	dropDir   string
	handler   RunHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore *semaphore
	wg        sync.WaitGroup
}

// Start begins monitoring the drop directory for new identifier list files.
// Each new .txt file becomes one batch run.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watch mode started. Monitoring: %s", w.dropDir)
	w.logger.Info(ctx, "Drop .txt files with one video identifier per line")

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if !isListFile(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-list file: %s", event.Name)
					continue
				}

				w.logger.Info(ctx, "New identifier list detected: %s", event.Name)

				// Small delay to ensure file is fully written
				time.Sleep(500 * time.Millisecond)

				if err := w.semaphore.acquire(ctx); err != nil {
					return w.drain(ctx, err)
				}
				w.wg.Add(1)
				go func(listPath string) {
					defer w.wg.Done()
					defer w.semaphore.release()

					if err := w.handler(ctx, listPath); err != nil {
						w.logger.Error(ctx, "Run failed for %s: %v", listPath, err)
					}
				}(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// drain waits for in-flight runs before Start returns. Every cancelled exit
// goes through here so shutdown never abandons a running batch.
func (w *implWatcher) drain(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for in-flight runs to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "Watch mode stopped")
	return err
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isListFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
