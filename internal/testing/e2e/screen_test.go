package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Budget $50", StripANSI("\x1b[1;34mBudget\x1b[0m \x1b[?25l$50\x1b[K"))
}

func TestScreenFeed(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "plain lines",
			output: "one\r\ntwo",
			want:   []string{"one", "two", ""},
		},
		{
			name:   "home redraw overwrites",
			output: "hello\r\nworld\x1b[Hbye\x1b[K\x1b[J",
			want:   []string{"bye", "", ""},
		},
		{
			name:   "cursor position",
			output: "\x1b[2;3Hx",
			want:   []string{"", "  x", ""},
		},
		{
			name:   "colors are ignored",
			output: "\x1b[38;5;12mblue\x1b[0m",
			want:   []string{"blue", "", ""},
		},
		{
			name:   "alternate screen starts blank",
			output: "shell prompt\x1b[?1049h\x1b[?25lapp",
			want:   []string{"app", "", ""},
		},
		{
			name:   "overflow is dropped",
			output: "0123456789abc",
			want:   []string{"0123456789", "", ""},
		},
		{
			name:   "scrolls at the bottom",
			output: "a\r\nb\r\nc\r\nd",
			want:   []string{"b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(3, 10)
			s.Feed(tt.output)
			for i, want := range tt.want {
				assert.Equal(t, want, s.Line(i), "row %d", i)
			}
		})
	}
}

func TestScreenContains(t *testing.T) {
	s := NewScreen(2, 20)
	s.Feed("GitHub Copilot (3)\r\nCursor (1)")

	assert.True(t, s.Contains("Cursor (1)"))
	assert.False(t, s.Contains("Copilot (3)\nCursor"))
	assert.Equal(t, "GitHub Copilot (3)\nCursor (1)", s.Render())
}
