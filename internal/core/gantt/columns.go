package gantt

import (
	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// buildColumns partitions the window into week buckets for the header row.
// Every calendar day in [Start, End] lands in exactly one bucket, buckets
// are chronological, and only the first or last bucket may hold fewer than
// seven days.
func buildColumns(w model.DateWindow) []model.ColumnBucket {
	var columns []model.ColumnBucket

	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		week := startOfWeek(d)
		if len(columns) == 0 || !columns[len(columns)-1].WeekStart.Equal(week) {
			columns = append(columns, model.ColumnBucket{WeekStart: week})
		}
		last := len(columns) - 1
		columns[last].Days = append(columns[last].Days, d)
	}

	return columns
}
