package gantt

import (
	"fmt"
	"sort"
	"time"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// Engine converts scheduled items into a render-ready Gantt layout. It is a
// pure function of its inputs: no ambient clock, no I/O, no mutation of the
// item slice, so one Engine can be shared across concurrent callers.
type Engine struct {
	cfg   Config
	names map[int]string
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// SetPhaseNames installs the group-key to display-name lookup used in phase
// mode. Keys without an entry fall back to "Phase {n}".
func (e *Engine) SetPhaseNames(names map[int]string) {
	e.names = names
}

// Layout runs the three stages of the engine: resolve effective date pairs,
// derive the visible window, then map every placeable unit to percentage
// geometry. The now argument is the only time dependency; passing it
// explicitly keeps the result deterministic for a given input.
func (e *Engine) Layout(items []model.ScheduledItem, mode model.Mode, now time.Time) *model.Layout {
	today := dateOnly(now)
	resolved, dateless := e.resolveItems(items)

	out := &model.Layout{
		Mode:     mode,
		Bars:     make([]model.BarGeometry, 0, len(resolved)),
		Dateless: dateless,
	}

	var pairs []datePair
	if mode == model.ModePhases {
		out.Phases = e.buildPhases(items, resolved)
		for _, p := range out.Phases {
			if p.StartDate != nil {
				pairs = append(pairs, datePair{start: *p.StartDate, end: *p.EndDate})
			}
		}
	} else {
		for _, r := range resolved {
			pairs = append(pairs, datePair{start: r.start, end: r.end})
		}
	}

	out.Window = e.deriveWindow(pairs, today)
	out.Columns = buildColumns(out.Window)
	out.TodayPercent = todayPercent(today, out.Window)

	if mode == model.ModePhases {
		for _, p := range out.Phases {
			if p.StartDate == nil {
				continue
			}
			bar := barFor(fmt.Sprintf("phase-%d", p.GroupKey), p.Name, p.GroupKey, *p.StartDate, *p.EndDate, out.Window)
			out.Bars = append(out.Bars, bar)
		}
	} else {
		for _, r := range resolved {
			bar := barFor(r.item.ID, r.item.Title, r.item.GroupKey, r.start, r.end, out.Window)
			out.Bars = append(out.Bars, bar)
		}
	}

	return out
}

// buildPhases aggregates items by group key. Dated members define the phase
// range; dateless members still count toward ItemCount. Ungrouped items
// (key 0) belong to no phase. Phases come back in ascending key order.
func (e *Engine) buildPhases(items []model.ScheduledItem, resolved []resolvedItem) []model.Phase {
	byKey := make(map[int]*model.Phase)

	for _, item := range items {
		if item.GroupKey == 0 {
			continue
		}
		p, ok := byKey[item.GroupKey]
		if !ok {
			p = &model.Phase{GroupKey: item.GroupKey, Name: e.PhaseName(item.GroupKey)}
			byKey[item.GroupKey] = p
		}
		p.ItemCount++
	}

	for _, r := range resolved {
		p, ok := byKey[r.item.GroupKey]
		if !ok {
			continue
		}
		if p.StartDate == nil || r.start.Before(*p.StartDate) {
			start := r.start
			p.StartDate = &start
		}
		if p.EndDate == nil || r.end.After(*p.EndDate) {
			end := r.end
			p.EndDate = &end
		}
	}

	phases := make([]model.Phase, 0, len(byKey))
	for _, p := range byKey {
		phases = append(phases, *p)
	}
	sort.Slice(phases, func(i, j int) bool {
		return phases[i].GroupKey < phases[j].GroupKey
	})
	return phases
}

// PhaseName resolves a group key to its display name, falling back to a
// generated "Phase {n}" label.
func (e *Engine) PhaseName(key int) string {
	if name, ok := e.names[key]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Phase %d", key)
}

// barFor clips an effective date range to the window and converts it to
// percentage geometry. The span is inclusive of both endpoints, so a
// one-day bar still gets a nonzero width. The unclipped dates ride along
// for tooltips.
func barFor(id, label string, groupKey int, start, end time.Time, w model.DateWindow) model.BarGeometry {
	displayStart := start
	if displayStart.Before(w.Start) {
		displayStart = w.Start
	}
	displayEnd := end
	if displayEnd.After(w.End) {
		displayEnd = w.End
	}

	totalDays := w.TotalDays()
	daysFromStart := diffDays(w.Start, displayStart)
	daysSpan := diffDays(displayStart, displayEnd) + 1

	return model.BarGeometry{
		ItemID:         id,
		Label:          label,
		GroupKey:       groupKey,
		LeftPercent:    100 * float64(daysFromStart) / float64(totalDays),
		WidthPercent:   100 * float64(daysSpan) / float64(totalDays),
		EffectiveStart: start,
		EffectiveEnd:   end,
	}
}

// todayPercent places the zero-width today marker with the same left-offset
// formula as the bars. When today lies outside the window the marker is nil
// rather than clamped, so it never shows up at a misleading edge position.
func todayPercent(today time.Time, w model.DateWindow) *float64 {
	if !w.Contains(today) {
		return nil
	}
	pct := 100 * float64(diffDays(w.Start, today)) / float64(w.TotalDays())
	return &pct
}
