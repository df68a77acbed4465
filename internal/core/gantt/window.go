package gantt

import (
	"time"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// datePair is one start/end contribution to the window extrema. Task mode
// feeds resolved items, phase mode feeds aggregated phase ranges.
type datePair struct {
	start time.Time
	end   time.Time
}

// deriveWindow computes the visible, week-aligned calendar range. Padding is
// asymmetric on purpose: one week of history keeps context, two weeks of
// future keep upcoming work visible. With no dated input the window falls
// back to today plus EmptyWindowDays, so the range is never degenerate.
func (e *Engine) deriveWindow(pairs []datePair, today time.Time) model.DateWindow {
	if len(pairs) == 0 {
		return model.DateWindow{
			Start: startOfWeek(today),
			End:   endOfWeek(today.AddDate(0, 0, e.cfg.EmptyWindowDays)),
		}
	}

	minDate := pairs[0].start
	maxDate := pairs[0].end
	for _, p := range pairs[1:] {
		if p.start.Before(minDate) {
			minDate = p.start
		}
		if p.end.After(maxDate) {
			maxDate = p.end
		}
	}

	return model.DateWindow{
		Start: startOfWeek(minDate.AddDate(0, 0, -e.cfg.PaddingBeforeDays)),
		End:   endOfWeek(maxDate.AddDate(0, 0, e.cfg.PaddingAfterDays)),
	}
}
