package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

const (
	maxLabelWidth = 24
	minLabelWidth = 10
	minChartWidth = 28

	barRune    = '█'
	todayRune  = '│'
	weekRune   = '┊'
	emptyRune  = ' '
	rulerRune  = '─'
	markerRune = '▼'
)

// GanttFormatter draws the layout as a proportional text chart: a label
// column, one row per bar, week tick marks, and a today marker.
type GanttFormatter struct {
	writer io.Writer
	width  int // 0 means autodetect from the terminal
}

func NewGanttFormatter(w io.Writer) *GanttFormatter {
	return &GanttFormatter{writer: w}
}

// SetWidth pins the total chart width, bypassing terminal detection.
func (f *GanttFormatter) SetWidth(width int) {
	f.width = width
}

func (f *GanttFormatter) GetName() string {
	return "gantt"
}

func (f *GanttFormatter) Format(layout *model.Layout) error {
	totalWidth := f.width
	if totalWidth <= 0 {
		totalWidth = sharedSizer.GetMaxWidth()
	}

	labelWidth := f.labelWidth(layout)
	chartWidth := totalWidth - labelWidth - 2
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}

	totalDays := layout.Window.TotalDays()
	fmt.Fprintf(f.writer, "%s (%s, %d bars)\n",
		util.FormatDateRange(layout.Window.Start, layout.Window.End),
		util.FormatDayCount(totalDays), len(layout.Bars))

	f.printWeekHeader(layout, labelWidth, chartWidth)
	f.printRuler(layout, labelWidth, chartWidth)

	counts := phaseCounts(layout)
	for _, bar := range layout.Bars {
		f.printBar(layout, bar, counts, labelWidth, chartWidth)
	}

	if layout.TodayPercent != nil {
		fmt.Fprintf(f.writer, "%s %s today\n",
			pad("", labelWidth), string(todayRune))
	}

	if len(layout.Dateless) > 0 {
		fmt.Fprintf(f.writer, "\nUnscheduled (%d):\n", len(layout.Dateless))
		for _, item := range layout.Dateless {
			title := item.Title
			if title == "" {
				title = item.ID
			}
			fmt.Fprintf(f.writer, "  • %s\n", title)
		}
	}

	return nil
}

// labelWidth sizes the label column to the longest bar label within bounds.
func (f *GanttFormatter) labelWidth(layout *model.Layout) int {
	width := minLabelWidth
	for _, bar := range layout.Bars {
		if w := sharedSizer.displayWidth(barLabel(bar)); w > width {
			width = w
		}
	}
	if width > maxLabelWidth {
		width = maxLabelWidth
	}
	return width
}

// printWeekHeader writes week-start labels at their proportional columns.
func (f *GanttFormatter) printWeekHeader(layout *model.Layout, labelWidth, chartWidth int) {
	row := emptyRow(chartWidth)
	totalDays := layout.Window.TotalDays()

	for _, bucket := range layout.Columns {
		if len(bucket.Days) == 0 {
			continue
		}
		cell := dayCell(layout.Window.Start, bucket.Days[0], totalDays, chartWidth)
		label := util.FormatDateShort(bucket.Days[0])
		writeAt(row, cell, label)
	}

	fmt.Fprintf(f.writer, "%s %s\n", pad("", labelWidth), string(row))
}

// printRuler draws the horizontal axis with week ticks and the today marker.
func (f *GanttFormatter) printRuler(layout *model.Layout, labelWidth, chartWidth int) {
	row := make([]rune, chartWidth)
	for i := range row {
		row[i] = rulerRune
	}

	totalDays := layout.Window.TotalDays()
	for _, bucket := range layout.Columns {
		if len(bucket.Days) == 0 {
			continue
		}
		cell := dayCell(layout.Window.Start, bucket.Days[0], totalDays, chartWidth)
		if cell < chartWidth {
			row[cell] = '┬'
		}
	}

	if layout.TodayPercent != nil {
		cell := percentCell(*layout.TodayPercent, chartWidth)
		if cell < chartWidth {
			row[cell] = markerRune
		}
	}

	fmt.Fprintf(f.writer, "%s %s\n", pad("", labelWidth), string(row))
}

// printBar renders one bar row with week ticks and today marker behind it.
func (f *GanttFormatter) printBar(layout *model.Layout, bar model.BarGeometry, counts map[int]int, labelWidth, chartWidth int) {
	row := emptyRow(chartWidth)
	totalDays := layout.Window.TotalDays()

	for _, bucket := range layout.Columns {
		if len(bucket.Days) == 0 {
			continue
		}
		cell := dayCell(layout.Window.Start, bucket.Days[0], totalDays, chartWidth)
		if cell < chartWidth {
			row[cell] = weekRune
		}
	}
	if layout.TodayPercent != nil {
		cell := percentCell(*layout.TodayPercent, chartWidth)
		if cell < chartWidth {
			row[cell] = todayRune
		}
	}

	start := percentCell(bar.LeftPercent, chartWidth)
	span := int(bar.WidthPercent/100*float64(chartWidth) + 0.5)
	if span < 1 {
		span = 1
	}
	for i := start; i < start+span && i < chartWidth; i++ {
		row[i] = barRune
	}

	label := barLabel(bar)
	if layout.Mode == model.ModePhases {
		if n, ok := counts[bar.GroupKey]; ok {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
	}

	fmt.Fprintf(f.writer, "%s %s\n", pad(label, labelWidth), string(row))
}

func barLabel(bar model.BarGeometry) string {
	if bar.Label != "" {
		return bar.Label
	}
	return bar.ItemID
}

func phaseCounts(layout *model.Layout) map[int]int {
	counts := make(map[int]int, len(layout.Phases))
	for _, p := range layout.Phases {
		counts[p.GroupKey] = p.ItemCount
	}
	return counts
}

func pad(s string, width int) string {
	return sharedSizer.PadString(s, width, true)
}

func emptyRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = emptyRune
	}
	return row
}

// dayCell maps a calendar day to its chart column.
func dayCell(windowStart, d time.Time, totalDays, chartWidth int) int {
	days := int(d.Sub(windowStart) / (24 * time.Hour))
	return percentCell(100*float64(days)/float64(totalDays), chartWidth)
}

// percentCell maps a left-offset percentage to a chart column.
func percentCell(pct float64, chartWidth int) int {
	cell := int(pct / 100 * float64(chartWidth))
	if cell < 0 {
		cell = 0
	}
	if cell >= chartWidth {
		cell = chartWidth - 1
	}
	return cell
}

// writeAt overlays text into a rune row when there is room for it.
func writeAt(row []rune, at int, text string) {
	for i, r := range text {
		if at+i >= len(row) {
			return
		}
		row[at+i] = r
	}
}
