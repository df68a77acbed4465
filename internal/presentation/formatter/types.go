package formatter

import (
	"io"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

// Formatter renders a computed layout to its output writer.
type Formatter interface {
	Format(layout *model.Layout) error
	GetName() string
}

// GetFormatter returns the formatter for the requested output style,
// defaulting to the terminal Gantt chart for unknown names.
func GetFormatter(name string, w io.Writer) Formatter {
	switch name {
	case "json":
		return NewJSONFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	case "svg":
		return NewSVGFormatter(w)
	default:
		return NewGanttFormatter(w)
	}
}
