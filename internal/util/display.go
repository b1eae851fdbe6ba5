package util

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ClearScreen     = "\033[2J"     // Clear entire screen
	ClearScrollback = "\033[3J"     // Clear scrollback buffer
	MoveCursorHome  = "\033[H"      // Move cursor to home position
	HideCursor      = "\033[?25l"   // Hide cursor
	ShowCursor      = "\033[?25h"   // Show cursor
	EnterAltScreen  = "\033[?1049h" // Switch to the alternate screen buffer
	ExitAltScreen   = "\033[?1049l" // Return to the main screen buffer
	DisableLineWrap = "\033[?7l"
	EnableLineWrap  = "\033[?7h"
)

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to width display cells, ending with "…" when cut
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// Wrap breaks text into lines of at most width display cells, splitting on
// spaces and hard-cutting words longer than a line
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if lineWidth > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// CreateSliderBar draws a slider track of width cells with the knob at value
func CreateSliderBar(value, min, max, width int) string {
	if width < 3 {
		width = 3
	}
	if max <= min {
		max = min + 1
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	pos := (value - min) * (width - 1) / (max - min)
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}
