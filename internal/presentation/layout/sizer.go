package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal size fallbacks used when stdout is not a terminal
const (
	DefaultWidth  = 100
	DefaultHeight = 30
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{fd: int(os.Stdout.Fd())}

// Sizer measures the terminal and pads strings by display width
type Sizer struct {
	fd int
}

// NewSizer creates a sizer for the terminal behind fd
func NewSizer(fd int) *Sizer {
	return &Sizer{fd: fd}
}

// SharedSizer returns the sizer bound to stdout
func SharedSizer() *Sizer {
	return sharedSizer
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width, handling emojis correctly
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Size returns the terminal width and height, falling back to defaults
func (i Sizer) Size() (int, int) {
	width, height, err := term.GetSize(i.fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the terminal width
func (i Sizer) Width() int {
	w, _ := i.Size()
	return w
}
