package watcher

import "context"

// Watcher defines the interface for drop-directory monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RunHandler schedules one identifier list file as a batch run
type RunHandler func(ctx context.Context, listPath string) error
