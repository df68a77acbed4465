package gantt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

func TestBuildColumns_RoundTrip(t *testing.T) {
	w := model.DateWindow{Start: date(2024, 6, 2), End: date(2024, 6, 29)}

	columns := buildColumns(w)

	// Concatenating all bucket days must reconstruct the window exactly.
	var all []time.Time
	for _, bucket := range columns {
		all = append(all, bucket.Days...)
	}
	require.Len(t, all, w.TotalDays())

	expected := w.Start
	for _, d := range all {
		assert.Equal(t, expected, d)
		expected = expected.AddDate(0, 0, 1)
	}
	assert.Equal(t, w.End, all[len(all)-1])
}

func TestBuildColumns_ChronologicalWholeWeeks(t *testing.T) {
	w := model.DateWindow{Start: date(2024, 6, 2), End: date(2024, 7, 6)}

	columns := buildColumns(w)

	require.Len(t, columns, 5)
	for i, bucket := range columns {
		// A week-aligned window yields only full weeks.
		assert.Len(t, bucket.Days, 7)
		assert.Equal(t, time.Sunday, bucket.WeekStart.Weekday())
		assert.Equal(t, bucket.WeekStart, bucket.Days[0])
		if i > 0 {
			assert.True(t, columns[i-1].WeekStart.Before(bucket.WeekStart))
		}
	}
}

func TestBuildColumns_PartialBoundaryWeeks(t *testing.T) {
	// A non-aligned window may only be ragged at the two ends.
	w := model.DateWindow{Start: date(2024, 6, 5), End: date(2024, 6, 24)}

	columns := buildColumns(w)

	require.Len(t, columns, 4)
	assert.Len(t, columns[0].Days, 4) // Wed..Sat
	assert.Len(t, columns[1].Days, 7)
	assert.Len(t, columns[2].Days, 7)
	assert.Len(t, columns[3].Days, 2) // Sun..Mon
}

func TestBuildColumns_SingleWeek(t *testing.T) {
	w := model.DateWindow{Start: date(2024, 6, 2), End: date(2024, 6, 8)}

	columns := buildColumns(w)

	require.Len(t, columns, 1)
	assert.Len(t, columns[0].Days, 7)
}
