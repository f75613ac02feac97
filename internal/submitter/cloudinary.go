package submitter

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Submit asks Cloudinary to run the configured AI pipeline against an
// already-stored video via an explicit call. Any API or transport error is
// returned wrapped; the caller decides how to aggregate it.
func (s *implSubmitter) Submit(ctx context.Context, identifier string, opts Options) (*Result, error) {
	params := uploader.ExplicitParams{
		PublicID:        identifier,
		Type:            api.DeliveryType(opts.AssetType),
		ResourceType:    "video",
		RawConvert:      s.rawConvert,
		NotificationURL: opts.NotificationURL,
		Invalidate:      api.Bool(opts.Invalidate),
	}

	resp, err := s.cld.Upload.Explicit(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("explicit call for %s: %w", identifier, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("remote api rejected %s: %s", identifier, resp.Error.Message)
	}

	return &Result{
		PublicID:    resp.PublicID,
		AssetID:     resp.AssetID,
		SubmittedAt: time.Now().UTC(),
	}, nil
}
