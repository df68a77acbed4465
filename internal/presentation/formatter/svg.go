package formatter

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
	"github.com/JoinFullStackDev/blueprint-timeline/internal/util"
)

// SVG canvas constants. The plot scales horizontally with the window via the
// bar percentages, so only the frame is fixed.
const (
	svgWidth      = 1200
	svgRowHeight  = 28
	svgBarHeight  = 18
	svgHeaderH    = 40
	svgMarginLeft = 180
	svgMarginX    = 20
	svgMarginY    = 20
	svgFooterH    = 16
)

// SVGFormatter renders the layout as a standalone SVG document: week
// gridlines, one bar row per item, and a today line.
type SVGFormatter struct {
	writer io.Writer
}

func NewSVGFormatter(w io.Writer) *SVGFormatter {
	return &SVGFormatter{writer: w}
}

func (f *SVGFormatter) GetName() string {
	return "svg"
}

func (f *SVGFormatter) Format(layout *model.Layout) error {
	plotWidth := float64(svgWidth - svgMarginLeft - svgMarginX)
	plotX := float64(svgMarginLeft)
	plotTop := float64(svgMarginY + svgHeaderH)
	plotHeight := float64(len(layout.Bars) * svgRowHeight)
	if plotHeight == 0 {
		plotHeight = svgRowHeight
	}
	height := int(plotTop+plotHeight) + svgMarginY + svgFooterH

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<defs>
<style>
.label-text { font-family: Arial, sans-serif; font-size: 12px; fill: #333333; }
.header-text { font-family: Arial, sans-serif; font-size: 11px; fill: #666666; }
.bar { fill: #4285f4; }
.bar-phase { fill: #34a853; }
.grid { stroke: #e0e0e0; stroke-width: 1; }
.today { stroke: #ea4335; stroke-width: 2; }
</style>
</defs>
`, svgWidth, height))

	totalDays := layout.Window.TotalDays()

	// Week gridlines and header labels.
	for _, bucket := range layout.Columns {
		if len(bucket.Days) == 0 {
			continue
		}
		days := int(bucket.Days[0].Sub(layout.Window.Start).Hours() / 24)
		x := plotX + float64(days)/float64(totalDays)*plotWidth
		svg.WriteString(fmt.Sprintf(`<line class="grid" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			x, plotTop, x, plotTop+plotHeight))
		svg.WriteString(fmt.Sprintf(`<text class="header-text" x="%.1f" y="%.1f">%s</text>`+"\n",
			x+2, plotTop-6, util.FormatDateShort(bucket.Days[0])))
	}

	// Bars with labels.
	barClass := "bar"
	if layout.Mode == model.ModePhases {
		barClass = "bar-phase"
	}
	for i, bar := range layout.Bars {
		y := plotTop + float64(i*svgRowHeight)
		x := plotX + bar.LeftPercent/100*plotWidth
		w := bar.WidthPercent / 100 * plotWidth

		svg.WriteString(fmt.Sprintf(`<text class="label-text" x="%d" y="%.1f">%s</text>`+"\n",
			svgMarginX, y+svgBarHeight-4, html.EscapeString(barLabel(bar))))
		svg.WriteString(fmt.Sprintf(`<rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%d" rx="3">`+
			`<title>%s</title></rect>`+"\n",
			barClass, x, y, w, svgBarHeight,
			html.EscapeString(util.FormatDateRange(bar.EffectiveStart, bar.EffectiveEnd))))
	}

	// Today marker.
	if layout.TodayPercent != nil {
		x := plotX + *layout.TodayPercent/100*plotWidth
		svg.WriteString(fmt.Sprintf(`<line class="today" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			x, plotTop-4, x, plotTop+plotHeight+4))
	}

	svg.WriteString("</svg>\n")

	_, err := io.WriteString(f.writer, svg.String())
	return err
}
