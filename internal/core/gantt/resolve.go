package gantt

import (
	"time"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// resolvedItem pairs an item with the effective date range used for layout.
// Start and End are UTC midnights with Start <= End.
type resolvedItem struct {
	item  model.ScheduledItem
	start time.Time
	end   time.Time
}

// resolveItems applies the date inference rules to every item, splitting the
// input into items that can be placed on the timeline and items with no date
// information at all. Dateless items keep their input order.
func (e *Engine) resolveItems(items []model.ScheduledItem) ([]resolvedItem, []model.ScheduledItem) {
	resolved := make([]resolvedItem, 0, len(items))
	dateless := make([]model.ScheduledItem, 0)

	for _, item := range items {
		start, end, ok := e.resolve(item)
		if !ok {
			dateless = append(dateless, item)
			continue
		}
		resolved = append(resolved, resolvedItem{item: item, start: start, end: end})
	}

	return resolved, dateless
}

// resolve computes the effective date pair for one item. The rules, in
// order: both dates present are used verbatim; a lone due date gets a
// priority-based lead time subtracted to infer the start; a lone start date
// gets the default span added to infer the end; an inverted pair is fixed by
// clamping the start to one day before the end. Items with neither date
// report ok=false.
func (e *Engine) resolve(item model.ScheduledItem) (start, end time.Time, ok bool) {
	switch {
	case item.StartDate != nil && item.DueDate != nil:
		start = dateOnly(*item.StartDate)
		end = dateOnly(*item.DueDate)
	case item.DueDate != nil:
		end = dateOnly(*item.DueDate)
		start = end.AddDate(0, 0, -e.cfg.leadDaysFor(item.Priority))
	case item.StartDate != nil:
		start = dateOnly(*item.StartDate)
		end = start.AddDate(0, 0, e.cfg.DefaultSpanDays)
	default:
		return time.Time{}, time.Time{}, false
	}

	if start.After(end) {
		start = end.AddDate(0, 0, -1)
	}
	return start, end, true
}
