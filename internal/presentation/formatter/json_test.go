package formatter

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleLayout() *model.Layout {
	today := 20.0
	return &model.Layout{
		Mode:   model.ModeTasks,
		Window: model.DateWindow{Start: day(2024, 6, 2), End: day(2024, 6, 29)},
		Columns: []model.ColumnBucket{
			{WeekStart: day(2024, 6, 2), Days: weekDays(day(2024, 6, 2))},
			{WeekStart: day(2024, 6, 9), Days: weekDays(day(2024, 6, 9))},
			{WeekStart: day(2024, 6, 16), Days: weekDays(day(2024, 6, 16))},
			{WeekStart: day(2024, 6, 23), Days: weekDays(day(2024, 6, 23))},
		},
		Bars: []model.BarGeometry{
			{
				ItemID:         "t1",
				Label:          "Kickoff",
				LeftPercent:    17.857142857142858,
				WidthPercent:   14.285714285714286,
				EffectiveStart: day(2024, 6, 7),
				EffectiveEnd:   day(2024, 6, 10),
			},
		},
		TodayPercent: &today,
		Dateless: []model.ScheduledItem{
			{ID: "t2", Title: "Backlog item"},
		},
	}
}

func weekDays(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.Format(sampleLayout()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "tasks", decoded["mode"])
	assert.InDelta(t, 20.0, decoded["todayPercent"], 1e-9)

	bars, ok := decoded["bars"].([]interface{})
	require.True(t, ok)
	require.Len(t, bars, 1)
	bar := bars[0].(map[string]interface{})
	assert.Equal(t, "t1", bar["itemId"])
	assert.InDelta(t, 14.285714285714286, bar["widthPercent"], 1e-9)
}

func TestJSONFormatter_NullTodayMarker(t *testing.T) {
	layout := sampleLayout()
	layout.TodayPercent = nil

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(layout))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "todayPercent")
	assert.Nil(t, decoded["todayPercent"])
}
