package submitter

import "context"

// Submitter requests remote AI processing for a single video. The call only
// confirms that the request was accepted; the processing itself runs
// asynchronously on the remote side.
type Submitter interface {
	Submit(ctx context.Context, identifier string, opts Options) (*Result, error)
}
