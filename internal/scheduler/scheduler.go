package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RunParallel partitions identifiers into contiguous batches of size
// concurrency, preserving input order, and dispatches each batch
// concurrently. Every member of a batch settles before the next batch starts
// dispatching; within a batch there is no ordering among members.
func (s *implScheduler) RunParallel(ctx context.Context, identifiers []string, concurrency int) *Report {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	report := &Report{RunID: uuid.New().String(), Total: len(identifiers)}
	if len(identifiers) == 0 {
		return report
	}

	batches := chunk(identifiers, concurrency)
	s.logger.Info(ctx, "[RUN %s] Submitting %d videos in %d batches (concurrency: %d)",
		report.RunID, len(identifiers), len(batches), concurrency)

	for i, batch := range batches {
		s.logger.Info(ctx, "[RUN %s] Batch %d/%d: %d videos", report.RunID, i+1, len(batches), len(batch))

		outcomes := make(chan Outcome, len(batch))
		for j, identifier := range batch {
			go func(index int, identifier string) {
				outcomes <- s.submit(ctx, index, len(identifiers), identifier)
			}(i*concurrency+j, identifier)
		}

		// Settlement barrier: every member of this batch is collected
		// before the next batch dispatches.
		for range batch {
			report.add(<-outcomes)
		}

		if i < len(batches)-1 {
			s.pause(ctx, s.batchDelay)
		}
	}

	s.logger.Info(ctx, "[RUN %s] Done: %d succeeded, %d failed",
		report.RunID, len(report.Successes), len(report.Failures))
	return report
}

// RunSequential dispatches one identifier at a time in input order.
func (s *implScheduler) RunSequential(ctx context.Context, identifiers []string) *Report {
	report := &Report{RunID: uuid.New().String(), Total: len(identifiers)}
	if len(identifiers) == 0 {
		return report
	}

	s.logger.Info(ctx, "[RUN %s] Submitting %d videos sequentially", report.RunID, len(identifiers))

	for i, identifier := range identifiers {
		report.add(s.submit(ctx, i, len(identifiers), identifier))
		if i < len(identifiers)-1 {
			s.pause(ctx, s.itemDelay)
		}
	}

	s.logger.Info(ctx, "[RUN %s] Done: %d succeeded, %d failed",
		report.RunID, len(report.Successes), len(report.Failures))
	return report
}

// submit performs one submission and converts any error into a failed
// Outcome; per-video errors never escape the scheduler.
func (s *implScheduler) submit(ctx context.Context, index, total int, identifier string) Outcome {
	s.logger.Info(ctx, "[%d/%d] Submitting: %s", index+1, total, identifier)

	result, err := s.submitter.Submit(ctx, identifier, s.opts)
	if err != nil {
		s.logger.Error(ctx, "[%d/%d] FAILED %s: %v", index+1, total, identifier, err)
		return Outcome{Identifier: identifier, Err: err}
	}

	s.logger.Info(ctx, "[%d/%d] OK %s", index+1, total, identifier)
	return Outcome{Identifier: identifier, Result: result}
}

// chunk splits identifiers into contiguous groups of at most size, preserving
// input order.
func chunk(identifiers []string, size int) [][]string {
	batches := make([][]string, 0, (len(identifiers)+size-1)/size)
	for size < len(identifiers) {
		batches = append(batches, identifiers[:size])
		identifiers = identifiers[size:]
	}
	return append(batches, identifiers)
}

// pause spaces out remote calls between batches. It ends early when ctx is
// done; pacing is not a correctness concern.
func (s *implScheduler) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
