package gantt

import (
	"sort"
	"strings"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// DisplayGroup is a render-order bucket of bars sharing a group key,
// together with the group's dateless members. Ordering inside a group and
// across groups is presentational only and never feeds back into geometry.
type DisplayGroup struct {
	GroupKey int
	Name     string
	Bars     []model.BarGeometry
	Dateless []model.ScheduledItem
}

// DisplayOrder arranges a task-mode layout for rendering: the ungrouped
// bucket comes first, remaining groups follow by display name
// case-insensitively, bars inside a group sort by effective due date
// ascending, and dateless members trail in their original input order.
func (e *Engine) DisplayOrder(layout *model.Layout) []DisplayGroup {
	byKey := make(map[int]*DisplayGroup)

	groupFor := func(key int) *DisplayGroup {
		g, ok := byKey[key]
		if !ok {
			name := "Unassigned"
			if key != 0 {
				name = e.PhaseName(key)
			}
			g = &DisplayGroup{GroupKey: key, Name: name}
			byKey[key] = g
		}
		return g
	}

	for _, bar := range layout.Bars {
		g := groupFor(bar.GroupKey)
		g.Bars = append(g.Bars, bar)
	}
	for _, item := range layout.Dateless {
		g := groupFor(item.GroupKey)
		g.Dateless = append(g.Dateless, item)
	}

	groups := make([]DisplayGroup, 0, len(byKey))
	for _, g := range byKey {
		sort.SliceStable(g.Bars, func(i, j int) bool {
			return g.Bars[i].EffectiveEnd.Before(g.Bars[j].EffectiveEnd)
		})
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		// Ungrouped always leads.
		if groups[i].GroupKey == 0 || groups[j].GroupKey == 0 {
			return groups[i].GroupKey == 0 && groups[j].GroupKey != 0
		}
		return strings.ToLower(groups[i].Name) < strings.ToLower(groups[j].Name)
	})

	return groups
}
