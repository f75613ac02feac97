package config

import (
	"fmt"
	"time"
)

type Config struct {
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Processing ProcessingConfig `yaml:"processing"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Watch      WatchConfig      `yaml:"watch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CloudinaryConfig holds the remote API settings. The credential URL is never
// read from the config file; it comes from the CLOUDINARY_URL environment
// variable at load time.
type CloudinaryConfig struct {
	URL        string `yaml:"-"`
	RawConvert string `yaml:"raw_convert"`
}

type ProcessingConfig struct {
	AssetType       string `yaml:"asset_type"`
	NotificationURL string `yaml:"notification_url"`
	Invalidate      bool   `yaml:"invalidate"`
}

// SchedulerConfig tunes batching. The delay fields are pointers so an
// explicit 0 (pacing disabled) is distinct from unset (default pacing).
type SchedulerConfig struct {
	Concurrency   int  `yaml:"concurrency"`
	BatchDelaySec *int `yaml:"batch_delay_sec"`
	ItemDelaySec  *int `yaml:"item_delay_sec"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BatchDelay is the pause between parallel batches.
func (c SchedulerConfig) BatchDelay() time.Duration {
	if c.BatchDelaySec == nil {
		return 2 * time.Second
	}
	return time.Duration(*c.BatchDelaySec) * time.Second
}

// ItemDelay is the pause between sequential submissions.
func (c SchedulerConfig) ItemDelay() time.Duration {
	if c.ItemDelaySec == nil {
		return time.Second
	}
	return time.Duration(*c.ItemDelaySec) * time.Second
}

func (c *Config) Validate() error {
	if c.Cloudinary.URL == "" {
		return fmt.Errorf("CLOUDINARY_URL environment variable is required (cloudinary://<api_key>:<api_secret>@<cloud_name>)")
	}

	if c.Cloudinary.RawConvert == "" {
		c.Cloudinary.RawConvert = "google_speech:srt:vtt"
	}
	if c.Processing.AssetType == "" {
		c.Processing.AssetType = "upload"
	}
	if c.Scheduler.Concurrency <= 0 {
		c.Scheduler.Concurrency = 2
	}
	if c.Scheduler.BatchDelaySec == nil {
		d := 2
		c.Scheduler.BatchDelaySec = &d
	}
	if c.Scheduler.ItemDelaySec == nil {
		d := 1
		c.Scheduler.ItemDelaySec = &d
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
