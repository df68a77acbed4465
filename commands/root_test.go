package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/gantt"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

func TestParseNow(t *testing.T) {
	got, err := parseNow("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 1, got.Day())

	got, err = parseNow("2024-06-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseNow("yesterday")
	assert.Error(t, err)

	got, err = parseNow("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, time.Minute)
}

func TestOrderBarsForDisplay(t *testing.T) {
	engine := gantt.New(gantt.DefaultConfig())
	engine.SetPhaseNames(map[int]string{1: "Build", 2: "Alpha"})

	due := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	items := []model.ScheduledItem{
		{ID: "b1", GroupKey: 1, DueDate: due(2024, 6, 20)},
		{ID: "a1", GroupKey: 2, DueDate: due(2024, 6, 15)},
		{ID: "u1", DueDate: due(2024, 6, 10)},
	}
	layout := engine.Layout(items, model.ModeTasks, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	orderBarsForDisplay(engine, layout)

	require.Len(t, layout.Bars, 3)
	assert.Equal(t, "u1", layout.Bars[0].ItemID, "unassigned renders first")
	assert.Equal(t, "a1", layout.Bars[1].ItemID)
	assert.Equal(t, "b1", layout.Bars[2].ItemID)
}
