package submitter

import (
	"fmt"
	"time"
)

// Asset delivery types accepted by the remote API.
const (
	AssetTypeUpload        = "upload"
	AssetTypePrivate       = "private"
	AssetTypeAuthenticated = "authenticated"
)

// Options configures one submission. A batch run shares a single Options
// value across all of its videos; it is never mutated after construction.
type Options struct {
	AssetType       string
	NotificationURL string
	Invalidate      bool
}

// Normalize applies defaults and rejects unknown asset types.
func (o *Options) Normalize() error {
	if o.AssetType == "" {
		o.AssetType = AssetTypeUpload
	}
	switch o.AssetType {
	case AssetTypeUpload, AssetTypePrivate, AssetTypeAuthenticated:
		return nil
	}
	return fmt.Errorf("invalid asset type %q (must be upload, private or authenticated)", o.AssetType)
}

// Result is the acknowledgement for an accepted submission. The scheduler
// treats it as opaque.
type Result struct {
	PublicID    string
	AssetID     string
	SubmittedAt time.Time
}
