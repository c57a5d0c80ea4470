package logsink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies defaults are valid and copies are independent
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(1000), cfg.MaxEntries)
	assert.Equal(t, 24.0, cfg.RetentionPeriodHrs)
	assert.Equal(t, time.RFC3339Nano, cfg.TimestampFormat)

	cfg.MaxEntries = 1
	assert.Equal(t, int64(1000), DefaultConfig().MaxEntries)
}

// TestConfigValidation covers the rejection rules for pathological policies
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
			valid:  true,
		},
		{
			name:   "zero max entries",
			mutate: func(c *Config) { c.MaxEntries = 0 },
		},
		{
			name:   "negative max entries",
			mutate: func(c *Config) { c.MaxEntries = -5 },
		},
		{
			name:   "negative retention",
			mutate: func(c *Config) { c.RetentionPeriodHrs = -1.0 },
		},
		{
			name:   "zero retention is allowed",
			mutate: func(c *Config) { c.RetentionPeriodHrs = 0 },
			valid:  true,
		},
		{
			name:   "empty timestamp format",
			mutate: func(c *Config) { c.TimestampFormat = "  " },
		},
		{
			name:   "zero subscriber buffer",
			mutate: func(c *Config) { c.SubscriberBuffer = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// TestRetentionPeriodConversion checks hours-to-duration conversion
func TestRetentionPeriodConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RetentionPeriodHrs = 1.5
	assert.Equal(t, 90*time.Minute, cfg.RetentionPeriod())
}

// TestNewConfigFromDefaults tests map-based overrides with type conversion
func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"max_entries":          int64(50),
		"retention_period_hrs": 0.5,
		"subscriber_buffer":    16,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50), cfg.MaxEntries)
	assert.Equal(t, 0.5, cfg.RetentionPeriodHrs)
	assert.Equal(t, int64(16), cfg.SubscriberBuffer)
}

// TestNewConfigFromDefaultsRejectsUnknownKey verifies unknown keys fail fast
func TestNewConfigFromDefaultsRejectsUnknownKey(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"buffer_size": int64(10)})
	assert.Error(t, err)
}

// TestNewConfigFromDefaultsRejectsInvalid verifies overrides still pass validation
func TestNewConfigFromDefaultsRejectsInvalid(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"max_entries": int64(0)})
	assert.Error(t, err)
}

// TestNewConfigFromFile loads a TOML file through the config loader
func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logsink.toml")

	content := `[logsink]
max_entries = 250
retention_period_hrs = 2.0
subscriber_buffer = 32
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, int64(250), cfg.MaxEntries)
	assert.Equal(t, 2.0, cfg.RetentionPeriodHrs)
	assert.Equal(t, int64(32), cfg.SubscriberBuffer)
	// Untouched fields keep their defaults
	assert.Equal(t, time.RFC3339Nano, cfg.TimestampFormat)
}

// TestNewConfigFromFileMissing verifies a missing file falls back to defaults
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestConfigClone ensures clones do not alias the original
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.MaxEntries = 7

	assert.Equal(t, int64(1000), cfg.MaxEntries)
	assert.Equal(t, int64(7), clone.MaxEntries)
}
