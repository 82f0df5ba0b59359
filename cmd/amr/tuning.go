package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adaptive-recall/amr"
)

// loadTuning reads scheduling constants from a YAML file. An empty path
// returns a zero Config, which NewScheduler resolves to the defaults; unset
// fields in the file likewise keep their defaults.
func loadTuning(path string) (amr.Config, error) {
	var cfg amr.Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing tuning file %s: %w", path, err)
	}
	return cfg, nil
}

// buildScheduler constructs a Scheduler from the --tuning flag.
func buildScheduler() (*amr.Scheduler, error) {
	cfg, err := loadTuning(globalTuning)
	if err != nil {
		return nil, err
	}
	s, err := amr.NewScheduler(cfg)
	if err != nil {
		return nil, fmt.Errorf("building scheduler: %w", err)
	}
	return s, nil
}

// resolveNow returns the injected --now instant, or the wall clock in UTC.
func resolveNow() (time.Time, error) {
	if globalNow == "" {
		return time.Now().UTC(), nil
	}
	t, err := amr.ParseTimestamp(globalNow)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --now: %w", err)
	}
	return t, nil
}
