package scheduler

import "github.com/nmthang194/chapter-flow/internal/submitter"

// Outcome is the settled result of one submission. Exactly one of Result and
// Err is set.
type Outcome struct {
	Identifier string
	Result     *submitter.Result
	Err        error
}

// Failed reports whether the submission settled with an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report partitions the settled outcomes of one run. Successes and Failures
// are in settlement order, not input order.
type Report struct {
	RunID     string
	Total     int
	Successes []Outcome
	Failures  []Outcome
}

func (r *Report) add(o Outcome) {
	if o.Failed() {
		r.Failures = append(r.Failures, o)
	} else {
		r.Successes = append(r.Successes, o)
	}
}

// AllSucceeded reports whether every submission settled successfully.
func (r *Report) AllSucceeded() bool {
	return len(r.Failures) == 0
}
