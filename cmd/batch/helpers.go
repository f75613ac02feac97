package main

import (
	"strconv"
	"strings"

	"github.com/nmthang194/chapter-flow/internal/scheduler"
)

// parseConcurrency coerces the --parallel flag value to a usable batch size.
// Empty means "use the configured default"; non-numeric or non-positive
// values also fall back rather than failing the run.
func parseConcurrency(raw string, fallback int) int {
	if fallback < 1 {
		fallback = scheduler.DefaultConcurrency
	}
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
