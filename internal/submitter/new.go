package submitter

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

type implSubmitter struct {
	cld        *cloudinary.Cloudinary
	rawConvert string
}

// New creates a Submitter backed by the Cloudinary upload API. Credentials
// come from cloudinaryURL (cloudinary://<api_key>:<api_secret>@<cloud_name>);
// rawConvert names the AI add-on pipeline to request for each video.
func New(cloudinaryURL, rawConvert string) (Submitter, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}

	return &implSubmitter{
		cld:        cld,
		rawConvert: rawConvert,
	}, nil
}
