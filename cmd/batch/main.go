package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nmthang194/chapter-flow/internal/config"
	"github.com/nmthang194/chapter-flow/internal/logger"
	"github.com/nmthang194/chapter-flow/internal/report"
	"github.com/nmthang194/chapter-flow/internal/scheduler"
	"github.com/nmthang194/chapter-flow/internal/source"
	"github.com/nmthang194/chapter-flow/internal/submitter"
	"github.com/nmthang194/chapter-flow/internal/watcher"
)

func main() {
	// Load .env file if it exists; environment may also be set directly
	_ = godotenv.Load()

	var (
		filePath   = flag.String("file", "", "path to a file with one video identifier per line")
		parallel   = flag.String("parallel", "", "submit in concurrent batches of N videos (default 2)")
		sequential = flag.Bool("sequential", false, "submit one video at a time")
		assetType  = flag.String("type", "", "asset delivery type: upload, private or authenticated")
		notifyURL  = flag.String("notification-url", "", "webhook URL notified when remote processing finishes")
		invalidate = flag.Bool("invalidate", false, "invalidate cached copies of the processed videos")
		watchDir   = flag.String("watch", "", "watch a directory for identifier list files instead of running once")
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
	)
	flag.Usage = usage
	flag.Parse()

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

	sched := scheduler.NewWithDelays(sub, opts, log,
		cfg.Scheduler.BatchDelay(), cfg.Scheduler.ItemDelay())
	concurrency := parseConcurrency(*parallel, cfg.Scheduler.Concurrency)

	if *watchDir != "" {
		if err := runWatch(ctx, cfg, log, sched, *sequential, concurrency, *watchDir); err != nil {
			os.Exit(1)
		}
		return
	}

	identifiers := source.FromArgs(flag.Args())
	if *filePath != "" {
		fileIdentifiers, err := source.FromFile(*filePath)
		if err != nil {
			log.Error(ctx, "Failed to read identifier list: %v", err)
			os.Exit(1)
		}
		identifiers = append(identifiers, fileIdentifiers...)
	}
	if len(identifiers) == 0 {
		fmt.Fprintln(os.Stderr, "No video identifiers given.")
		flag.Usage()
		os.Exit(1)
	}

	rep := run(ctx, sched, identifiers, *sequential, concurrency)
	report.Render(os.Stdout, rep)
	if !rep.AllSucceeded() {
		os.Exit(1)
	}
}

func run(ctx context.Context, sched scheduler.Scheduler, identifiers []string, sequential bool, concurrency int) *scheduler.Report {
	if sequential {
		return sched.RunSequential(ctx, identifiers)
	}
	return sched.RunParallel(ctx, identifiers, concurrency)
}

// runWatch monitors a drop directory and schedules each new identifier list
// file as its own batch run. Blocks until SIGINT/SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger, sched scheduler.Scheduler, sequential bool, concurrency int, dir string) error {
	handler := func(ctx context.Context, listPath string) error {
		identifiers, err := source.FromFile(listPath)
		if err != nil {
			return err
		}
		if len(identifiers) == 0 {
			return fmt.Errorf("no identifiers in %s", listPath)
		}

		rep := run(ctx, sched, identifiers, sequential, concurrency)
		report.Render(os.Stdout, rep)
		if !rep.AllSucceeded() {
			return fmt.Errorf("%d of %d submissions failed", len(rep.Failures), rep.Total)
		}
		return nil
	}

	w, err := watcher.New(dir, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	var watchErr error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		// Start drains in-flight runs before returning; wait for it.
		watchErr = <-errChan
	case watchErr = <-errChan:
	}

	if watchErr != nil && watchErr != context.Canceled {
		log.Error(ctx, "Watcher error: %v", watchErr)
		return watchErr
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Submit videos for AI chaptering and transcription.

Usage:
  batch [flags] [identifier ...]

Flags:
  --file=<path>              read identifiers from a file (one per line, # comments)
  --parallel=<N>             submit in concurrent batches of N videos (default 2)
  --sequential               submit one video at a time
  --type=<type>              asset delivery type: upload, private or authenticated
  --notification-url=<url>   webhook URL notified when remote processing finishes
  --invalidate               invalidate cached copies of the processed videos
  --watch=<dir>              watch a directory for identifier list files
  --config=<path>            YAML config file (default config.yaml)
  --help                     show this help

Credentials are read from the CLOUDINARY_URL environment variable
(cloudinary://<api_key>:<api_secret>@<cloud_name>), optionally via a .env file.
`)
}
