package formatter

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// displayWidth calculates the actual display width of a string containing
// emojis and Unicode characters
func (s Sizer) displayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadString pads a string to a specific display width, handling wide
// characters correctly. Strings already at or past the width are truncated.
func (s Sizer) PadString(str string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(str)
	if actualWidth > width {
		return runewidth.Truncate(str, width, "…")
	}
	if actualWidth == width {
		return str
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return str + padding
	}
	return padding + str
}

// GetMaxWidth returns the usable terminal width with a fallback for
// non-terminal writers.
func (s Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 60 {
		termWidth = 100 // Default fallback
	}

	maxWidth := termWidth - 2
	if maxWidth > 140 {
		maxWidth = 140
	}
	return maxWidth
}
