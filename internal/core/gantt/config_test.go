package gantt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.LeadDays.Critical)
	assert.Equal(t, 3, cfg.LeadDays.High)
	assert.Equal(t, 4, cfg.LeadDays.Medium)
	assert.Equal(t, 5, cfg.LeadDays.Low)
	assert.Equal(t, 7, cfg.DefaultSpanDays)
	assert.Equal(t, 7, cfg.PaddingBeforeDays)
	assert.Equal(t, 14, cfg.PaddingAfterDays)
	assert.Equal(t, 30, cfg.EmptyWindowDays)
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantt.yaml")
	content := `lead_days:
  critical: 1
default_span_days: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.LeadDays.Critical)
	assert.Equal(t, 10, cfg.DefaultSpanDays)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.LeadDays.High)
	assert.Equal(t, 14, cfg.PaddingAfterDays)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lead_days: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLeadDaysFor(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.leadDaysFor(model.PriorityCritical))
	assert.Equal(t, 3, cfg.leadDaysFor(model.PriorityHigh))
	assert.Equal(t, 4, cfg.leadDaysFor(model.PriorityMedium))
	assert.Equal(t, 5, cfg.leadDaysFor(model.PriorityLow))
	assert.Equal(t, 5, cfg.leadDaysFor(""))
}
