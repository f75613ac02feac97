package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nmthang194/chapter-flow/internal/config"
	"github.com/nmthang194/chapter-flow/internal/logger"
	"github.com/nmthang194/chapter-flow/internal/submitter"
)

func main() {
	// Load .env file if it exists; environment may also be set directly
	_ = godotenv.Load()

	var (
		assetType  = flag.String("type", "", "asset delivery type: upload, private or authenticated")
		notifyURL  = flag.String("notification-url", "", "webhook URL notified when remote processing finishes")
		invalidate = flag.Bool("invalidate", false, "invalidate cached copies of the processed video")
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Exactly one video identifier is required.")
		flag.Usage()
		os.Exit(1)
	}
	identifier := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	opts := submitter.Options{
		AssetType:       cfg.Processing.AssetType,
		NotificationURL: cfg.Processing.NotificationURL,
		Invalidate:      cfg.Processing.Invalidate,
	}
	if *assetType != "" {
		opts.AssetType = *assetType
	}
	if *notifyURL != "" {
		opts.NotificationURL = *notifyURL
	}
	if *invalidate {
		opts.Invalidate = true
	}
	if err := opts.Normalize(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sub, err := submitter.New(cfg.Cloudinary.URL, cfg.Cloudinary.RawConvert)
	if err != nil {
		log.Error(ctx, "Failed to initialize submitter: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Submitting: %s (type: %s)", identifier, opts.AssetType)

	result, err := sub.Submit(ctx, identifier, opts)
	if err != nil {
		log.Error(ctx, "Submission failed: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Submission accepted for %s", result.PublicID)
	if result.AssetID != "" {
		log.Info(ctx, "Asset ID: %s", result.AssetID)
	}
	log.Info(ctx, "Processing runs asynchronously on the remote side; results arrive via the notification URL if one was set")
}

func usage() {
	fmt.Fprintf(os.Stderr, `Submit one video for AI chaptering and transcription.

Usage:
  submit [flags] <identifier>

Flags:
  --type=<type>              asset delivery type: upload, private or authenticated
  --notification-url=<url>   webhook URL notified when remote processing finishes
  --invalidate               invalidate cached copies of the processed video
  --config=<path>            YAML config file (default config.yaml)
  --help                     show this help

Credentials are read from the CLOUDINARY_URL environment variable
(cloudinary://<api_key>:<api_secret>@<cloud_name>), optionally via a .env file.
`)
}
