package formatter

import (
	"encoding/json"
	"io"

	"github.com/JoinFullStackDev/blueprint-timeline/internal/core/model"
)

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) Format(layout *model.Layout) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(layout)
}

func (f *JSONFormatter) GetName() string {
	return "json"
}
