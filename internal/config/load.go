package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path and merges in environment credentials.
// A missing file is not an error: every setting has a default and the
// credentials come from the environment anyway.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Cloudinary.URL = os.Getenv("CLOUDINARY_URL")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
