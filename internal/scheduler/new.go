package scheduler

import (
	"time"

	"github.com/nmthang194/chapter-flow/internal/logger"
	"github.com/nmthang194/chapter-flow/internal/submitter"
)

// DefaultConcurrency is used when the caller supplies no usable batch size.
const DefaultConcurrency = 2

const (
	defaultBatchDelay = 2 * time.Second
	defaultItemDelay  = 1 * time.Second
)

type implScheduler struct {
	submitter  submitter.Submitter
	opts       submitter.Options
	logger     logger.Logger
	batchDelay time.Duration
	itemDelay  time.Duration
}

// New creates a Scheduler with the default inter-batch and inter-item pacing.
func New(sub submitter.Submitter, opts submitter.Options, log logger.Logger) Scheduler {
	return NewWithDelays(sub, opts, log, defaultBatchDelay, defaultItemDelay)
}

// NewWithDelays creates a Scheduler with explicit pacing. The delays only
// space out remote calls so the API is not hit in one burst; zero disables
// pacing entirely.
func NewWithDelays(sub submitter.Submitter, opts submitter.Options, log logger.Logger, batchDelay, itemDelay time.Duration) Scheduler {
	return &implScheduler{
		submitter:  sub,
		opts:       opts,
		logger:     log,
		batchDelay: batchDelay,
		itemDelay:  itemDelay,
	}
}
