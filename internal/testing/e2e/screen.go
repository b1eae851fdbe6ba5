// Package e2e drives the real binary inside a pseudo terminal and replays its
// output onto a virtual screen, so tests can assert on what a user would see.
package e2e

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[?0-9;]*[a-zA-Z]`)

// StripANSI removes all CSI escape sequences from a string
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Screen is a virtual terminal screen fed with raw program output.
// It understands the subset of escape sequences the browser emits.
type Screen struct {
	rows, cols int
	cells      [][]rune
	x, y       int
}

// NewScreen creates a blank screen of the given size
func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range s.cells {
		s.cells[i] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Feed applies program output to the screen
func (s *Screen) Feed(output string) {
	runes := []rune(output)
	for i := 0; i < len(runes); {
		switch r := runes[i]; {
		case r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			i = s.csi(runes, i+2)
		case r == '\r':
			s.x = 0
			i++
		case r == '\n':
			s.lineFeed()
			i++
		case r == '\b':
			if s.x > 0 {
				s.x--
			}
			i++
		case r < ' ':
			i++
		default:
			s.put(r)
			i++
		}
	}
}

// csi parses one control sequence starting after "ESC [" and returns the
// index following it
func (s *Screen) csi(runes []rune, i int) int {
	private := false
	if i < len(runes) && runes[i] == '?' {
		private = true
		i++
	}

	var params []int
	current, seen := 0, false
	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			current = current*10 + int(r-'0')
			seen = true
		case r == ';':
			params = append(params, current)
			current, seen = 0, false
		default:
			if seen {
				params = append(params, current)
			}
			if private {
				s.mode(r, params)
			} else {
				s.command(r, params)
			}
			return i + 1
		}
	}
	return i
}

func param(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

// mode handles private sequences; switching screen buffers starts blank
func (s *Screen) mode(cmd rune, params []int) {
	if param(params, 0, 0) == 1049 && (cmd == 'h' || cmd == 'l') {
		s.clear(0, s.rows)
		s.x, s.y = 0, 0
	}
}

func (s *Screen) command(cmd rune, params []int) {
	switch cmd {
	case 'H', 'f':
		s.y = min(param(params, 0, 1)-1, s.rows-1)
		s.x = min(param(params, 1, 1)-1, s.cols-1)
	case 'J':
		switch param(params, 0, 0) {
		case 0:
			s.clearLine(s.x, s.cols)
			s.clear(s.y+1, s.rows)
		case 1:
			s.clear(0, s.y)
			s.clearLine(0, s.x+1)
		case 2, 3:
			s.clear(0, s.rows)
		}
	case 'K':
		switch param(params, 0, 0) {
		case 0:
			s.clearLine(s.x, s.cols)
		case 1:
			s.clearLine(0, s.x+1)
		case 2:
			s.clearLine(0, s.cols)
		}
	case 'A':
		s.y = max(0, s.y-param(params, 0, 1))
	case 'B':
		s.y = min(s.rows-1, s.y+param(params, 0, 1))
	case 'C':
		s.x = min(s.cols-1, s.x+param(params, 0, 1))
	case 'D':
		s.x = max(0, s.x-param(params, 0, 1))
	}
	// Everything else, SGR colors included, does not move text
}

func (s *Screen) put(r rune) {
	// Line wrap is disabled by the browser, so overflow is dropped
	if s.x >= s.cols || s.y >= s.rows {
		return
	}
	s.cells[s.y][s.x] = r
	s.x++
}

func (s *Screen) lineFeed() {
	s.y++
	if s.y < s.rows {
		return
	}
	copy(s.cells, s.cells[1:])
	s.cells[s.rows-1] = blankRow(s.cols)
	s.y = s.rows - 1
}

func (s *Screen) clear(from, to int) {
	for i := max(from, 0); i < min(to, s.rows); i++ {
		s.cells[i] = blankRow(s.cols)
	}
}

func (s *Screen) clearLine(from, to int) {
	if s.y >= s.rows {
		return
	}
	for j := max(from, 0); j < min(to, s.cols); j++ {
		s.cells[s.y][j] = ' '
	}
}

// Line returns one screen row without trailing blanks
func (s *Screen) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[row]), " ")
}

// Render returns the whole screen, one row per line
func (s *Screen) Render() string {
	lines := make([]string, s.rows)
	for i := range lines {
		lines[i] = s.Line(i)
	}
	return strings.Join(lines, "\n")
}

// Contains reports whether text appears on a single row of the screen
func (s *Screen) Contains(text string) bool {
	for i := 0; i < s.rows; i++ {
		if strings.Contains(s.Line(i), text) {
			return true
		}
	}
	return false
}
