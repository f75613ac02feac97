package scheduler

import "context"

// Scheduler drives submissions for a list of video identifiers and
// aggregates the per-video outcomes into a Report. Both modes run to
// completion: a failed submission is recorded, never propagated.
type Scheduler interface {
	RunParallel(ctx context.Context, identifiers []string, concurrency int) *Report
	RunSequential(ctx context.Context, identifiers []string) *Report
}
