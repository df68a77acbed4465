package model

import (
	"strings"
	"time"
)

// Priority classifies how urgent a scheduled item is. It never changes the
// layout order of bars; it only selects the lead-time fallback applied when
// an item has a due date but no recorded start date.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority converts a raw string to a Priority. Unknown or empty values
// map to the zero Priority, which behaves like "low" during date inference.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "critical":
		return PriorityCritical
	default:
		return ""
	}
}

// Mode selects which aggregation level the layout engine works at.
type Mode string

const (
	ModeTasks  Mode = "tasks"
	ModePhases Mode = "phases"
)

// ParseMode converts a raw string to a Mode, defaulting to task view.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModePhases)) {
		return ModePhases
	}
	return ModeTasks
}

// ScheduledItem is the unit placed on the timeline. Either date may be nil;
// an item with neither date is excluded from geometry and reported in the
// layout's Dateless list instead.
type ScheduledItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"startDate,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Priority  Priority   `json:"priority,omitempty"`
	GroupKey  int        `json:"groupKey,omitempty"` // phase number; 0 means ungrouped
}

// HasDates reports whether the item carries at least one usable date.
func (s ScheduledItem) HasDates() bool {
	return s.StartDate != nil || s.DueDate != nil
}

// Phase aggregates all items sharing a group key. It is derived on every
// layout invocation and never stored; StartDate/EndDate span the dated
// members only, while ItemCount includes dateless members for display.
type Phase struct {
	GroupKey  int        `json:"groupKey"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	ItemCount int        `json:"itemCount"`
}

// DateWindow is the visible calendar range, always week-aligned: Start falls
// on a Sunday and End on a Saturday.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TotalDays returns the inclusive day count of the window. It is the
// denominator for all percentage math and is at least 1 by construction.
func (w DateWindow) TotalDays() int {
	return int(w.End.Sub(w.Start)/(24*time.Hour)) + 1
}

// Contains reports whether the given day (already truncated to midnight)
// falls inside the window.
func (w DateWindow) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// ColumnBucket is one week's worth of contiguous days inside the window,
// used for header columns. Concatenating all buckets' Days reconstructs the
// window with no gaps or duplicates.
type ColumnBucket struct {
	WeekStart time.Time   `json:"weekStart"`
	Days      []time.Time `json:"days"`
}

// BarGeometry positions one bar inside the window. LeftPercent and
// WidthPercent are percentages of the window's total days; EffectiveStart
// and EffectiveEnd are the unclipped resolved dates, kept for tooltips.
type BarGeometry struct {
	ItemID         string    `json:"itemId"`
	Label          string    `json:"label"`
	GroupKey       int       `json:"groupKey,omitempty"`
	LeftPercent    float64   `json:"leftPercent"`
	WidthPercent   float64   `json:"widthPercent"`
	EffectiveStart time.Time `json:"effectiveStart"`
	EffectiveEnd   time.Time `json:"effectiveEnd"`
}

// Layout is the render-ready output of one engine invocation.
type Layout struct {
	Mode         Mode            `json:"mode"`
	Window       DateWindow      `json:"window"`
	Columns      []ColumnBucket  `json:"columns"`
	Bars         []BarGeometry   `json:"bars"`
	TodayPercent *float64        `json:"todayPercent"`
	Dateless     []ScheduledItem `json:"dateless"`
	Phases       []Phase         `json:"phases,omitempty"`
}
