package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...interface{}) {}

func dropFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("video-01\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsListFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"videos.txt", true},
		{"VIDEOS.TXT", true},
		{"videos.csv", false},
		{"videos", false},
		{"videos.txt.tmp", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isListFile(tt.path); got != tt.want {
				t.Errorf("isListFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestStartDrainsInFlightRuns(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{})
	release := make(chan struct{})
	var completed atomic.Bool

	handler := func(ctx context.Context, listPath string) error {
		close(started)
		<-release
		completed.Store(true)
		return nil
	}

	w, err := New(dir, handler, nopLogger{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	dropFile(t, dir, "run.txt")

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not start")
	}

	cancel()

	// Shutdown must wait for the in-flight run, not abandon it.
	select {
	case <-done:
		t.Fatal("Start returned with a run still in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the run completed")
	}

	if !completed.Load() {
		t.Error("shutdown finished before the in-flight run completed")
	}
}

func TestStartDrainsWhenCancelledAwaitingSlot(t *testing.T) {
	dir := t.TempDir()
	release := make(chan struct{})
	var starts atomic.Int32
	var completed atomic.Int32

	handler := func(ctx context.Context, listPath string) error {
		starts.Add(1)
		<-release
		completed.Add(1)
		return nil
	}

	w, err := New(dir, handler, nopLogger{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	dropFile(t, dir, "first.txt")

	deadline := time.Now().Add(5 * time.Second)
	for starts.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first run did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Second list blocks the event loop waiting for the single slot.
	dropFile(t, dir, "second.txt")
	time.Sleep(1200 * time.Millisecond)

	cancel()

	select {
	case <-done:
		t.Fatal("Start returned with a run still in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the run completed")
	}

	if got := completed.Load(); got != 1 {
		t.Errorf("completed runs = %d, want 1", got)
	}
}
