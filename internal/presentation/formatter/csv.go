package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

type CSVFormatter struct {
	writer io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// Format writes one row per bar, then one row per dateless item, so export
// consumers see the same schedule the chart shows and nothing gets silently
// dropped.
func (f *CSVFormatter) Format(layout *model.Layout) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	headers := []string{
		"Section", "ID", "Label", "Group",
		"Start", "End", "Left %", "Width %",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, bar := range layout.Bars {
		record := []string{
			"bar",
			bar.ItemID,
			bar.Label,
			groupField(bar.GroupKey),
			util.FormatDate(bar.EffectiveStart),
			util.FormatDate(bar.EffectiveEnd),
			fmt.Sprintf("%.2f", bar.LeftPercent),
			fmt.Sprintf("%.2f", bar.WidthPercent),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	for _, item := range layout.Dateless {
		record := []string{
			"dateless",
			item.ID,
			item.Title,
			groupField(item.GroupKey),
			"", "", "", "",
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

func (f *CSVFormatter) GetName() string {
	return "csv"
}

func groupField(key int) string {
	if key == 0 {
		return ""
	}
	return strconv.Itoa(key)
}
