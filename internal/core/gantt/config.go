package gantt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// Config holds the tunable constants of the layout engine. The inference
// heuristics (lead days, default span) are product-chosen values; they are
// configurable rather than hard-coded so they can be revisited against
// real data.
type Config struct {
	LeadDays struct {
		Critical int `yaml:"critical"` // days before due date when no start recorded
		High     int `yaml:"high"`
		Medium   int `yaml:"medium"`
		Low      int `yaml:"low"` // also used when priority is unset
	} `yaml:"lead_days"`
	DefaultSpanDays   int `yaml:"default_span_days"`   // duration when only a start date exists
	PaddingBeforeDays int `yaml:"padding_before_days"` // window padding before the earliest date
	PaddingAfterDays  int `yaml:"padding_after_days"`  // window padding after the latest date
	EmptyWindowDays   int `yaml:"empty_window_days"`   // window length when no item has dates
}

// DefaultConfig returns the engine defaults: higher-priority items are
// assumed to have shorter lead times, one week of padding before the window
// and two after, and a 30-day window when nothing is scheduled.
func DefaultConfig() Config {
	var c Config
	c.LeadDays.Critical = 2
	c.LeadDays.High = 3
	c.LeadDays.Medium = 4
	c.LeadDays.Low = 5
	c.DefaultSpanDays = 7
	c.PaddingBeforeDays = 7
	c.PaddingAfterDays = 14
	c.EmptyWindowDays = 30
	return c
}

// LoadConfig loads engine settings from a YAML file, or returns the defaults
// when no path is given. Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// leadDaysFor returns the start-date offset applied when an item only has a
// due date.
func (c Config) leadDaysFor(p model.Priority) int {
	switch p {
	case model.PriorityCritical:
		return c.LeadDays.Critical
	case model.PriorityHigh:
		return c.LeadDays.High
	case model.PriorityMedium:
		return c.LeadDays.Medium
	default:
		return c.LeadDays.Low
	}
}
