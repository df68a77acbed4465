package formatter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.Format(sampleLayout()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header, one bar, one dateless item")

	assert.Equal(t, []string{
		"Section", "ID", "Label", "Group",
		"Start", "End", "Left %", "Width %",
	}, records[0])

	assert.Equal(t, []string{
		"bar", "t1", "Kickoff", "",
		"2024-06-07", "2024-06-10", "17.86", "14.29",
	}, records[1])

	assert.Equal(t, "dateless", records[2][0])
	assert.Equal(t, "t2", records[2][1])
	assert.Equal(t, "", records[2][4], "dateless rows carry no geometry")
}

func TestCSVFormatter_EmptyLayout(t *testing.T) {
	layout := &model.Layout{
		Mode:   model.ModeTasks,
		Window: model.DateWindow{Start: day(2024, 6, 2), End: day(2024, 6, 8)},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(layout))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "only the header row")
}

func TestCSVFormatter_GroupColumn(t *testing.T) {
	layout := sampleLayout()
	layout.Bars[0].GroupKey = 4

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(layout))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "4", records[1][3])
}
