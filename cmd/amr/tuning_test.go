package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningEmpty(t *testing.T) {
	cfg, err := loadTuning("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.RetentionTarget, "empty path yields zero config for default resolution")
}

func TestLoadTuningOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
retention_target: 0.9
min_interval: 1.0
multipliers: [0.5, 0.6, 0.8, 1.0, 1.2, 1.4]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.RetentionTarget)
	assert.Equal(t, 1.0, cfg.MinInterval)
	assert.Equal(t, [6]float64{0.5, 0.6, 0.8, 1.0, 1.2, 1.4}, cfg.Multipliers)
	// Unset fields stay zero and resolve to defaults downstream.
	assert.Equal(t, 0, cfg.BoxCount)
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := loadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTuningMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retention_target: [not a number"), 0o644))
	_, err := loadTuning(path)
	assert.Error(t, err)
}

func TestBuildSchedulerRejectsBadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retention_target: 2.0"), 0o644))

	old := globalTuning
	globalTuning = path
	defer func() { globalTuning = old }()

	_, err := buildScheduler()
	assert.Error(t, err)
}

func TestResolveNowInjected(t *testing.T) {
	old := globalNow
	globalNow = "2025-06-15T10:00:00"
	defer func() { globalNow = old }()

	now, err := resolveNow()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), now)
}

func TestResolveNowWallClock(t *testing.T) {
	old := globalNow
	globalNow = ""
	defer func() { globalNow = old }()

	now, err := resolveNow()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), now, time.Minute)
	assert.Equal(t, time.UTC, now.Location())
}

func TestResolveNowInvalid(t *testing.T) {
	old := globalNow
	globalNow = "noon-ish"
	defer func() { globalNow = old }()

	_, err := resolveNow()
	assert.Error(t, err)
}
