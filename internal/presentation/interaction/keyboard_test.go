package interaction

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []KeyEvent
	}{
		{name: "regular_char", input: "a", expected: []KeyEvent{{Key: 'a', Type: KeyChar}}},
		{name: "escape", input: "\x1b", expected: []KeyEvent{{Key: 27, Type: KeyEscape}}},
		{name: "ctrl_c", input: "\x03", expected: []KeyEvent{{Key: 3, Type: KeyCtrlC}}},
		{name: "enter_cr", input: "\r", expected: []KeyEvent{{Key: '\r', Type: KeyEnter}}},
		{name: "left", input: "\x1b[D", expected: []KeyEvent{{Key: 27, Type: KeyLeft}}},
		{name: "right", input: "\x1b[C", expected: []KeyEvent{{Key: 27, Type: KeyRight}}},
		{name: "up_app_mode", input: "\x1bOA", expected: []KeyEvent{{Key: 27, Type: KeyUp}}},
		{name: "down", input: "\x1b[B", expected: []KeyEvent{{Key: 27, Type: KeyDown}}},
		{name: "home_csi", input: "\x1b[H", expected: []KeyEvent{{Key: 27, Type: KeyHome}}},
		{name: "home_vt", input: "\x1b[1~", expected: []KeyEvent{{Key: 27, Type: KeyHome}}},
		{name: "home_rxvt", input: "\x1b[7~", expected: []KeyEvent{{Key: 27, Type: KeyHome}}},
		{name: "home_ss3", input: "\x1bOH", expected: []KeyEvent{{Key: 27, Type: KeyHome}}},
		{name: "end_csi", input: "\x1b[F", expected: []KeyEvent{{Key: 27, Type: KeyEnd}}},
		{name: "end_vt", input: "\x1b[4~", expected: []KeyEvent{{Key: 27, Type: KeyEnd}}},
		{name: "end_rxvt", input: "\x1b[8~", expected: []KeyEvent{{Key: 27, Type: KeyEnd}}},
		{name: "end_ss3", input: "\x1bOF", expected: []KeyEvent{{Key: 27, Type: KeyEnd}}},
		{name: "unknown_sequence_dropped", input: "\x1b[5~", expected: nil},
		{name: "unknown_then_char", input: "\x1b[3;5~q", expected: []KeyEvent{{Key: 'q', Type: KeyChar}}},
		{name: "escape_then_char", input: "\x1bx", expected: []KeyEvent{{Key: 27, Type: KeyEscape}, {Key: 'x', Type: KeyChar}}},
		{name: "utf8_rune", input: "é", expected: []KeyEvent{{Key: 'é', Type: KeyChar}}},
		{
			name:  "burst",
			input: "l\x1b[Dh\x1b[C",
			expected: []KeyEvent{
				{Key: 'l', Type: KeyChar},
				{Key: 27, Type: KeyLeft},
				{Key: 'h', Type: KeyChar},
				{Key: 27, Type: KeyRight},
			},
		},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInput([]byte(tt.input)))
		})
	}
}

func TestKeyTypeString(t *testing.T) {
	assert.Equal(t, "left", KeyLeft.String())
	assert.Equal(t, "home", KeyHome.String())
	assert.Equal(t, "unknown", KeyType(99).String())
}

func TestKeyboardReaderStreamsUntilEOF(t *testing.T) {
	defer goleak.VerifyNone(t)

	kr := NewReader(strings.NewReader("a\x1b[Cq"))
	var got []KeyEvent
	for ev := range kr.Events() {
		got = append(got, ev)
	}
	assert.Equal(t, []KeyEvent{
		{Key: 'a', Type: KeyChar},
		{Key: 27, Type: KeyRight},
		{Key: 'q', Type: KeyChar},
	}, got)
	assert.NoError(t, kr.Close())
	assert.NoError(t, kr.Close())
}

func TestKeyboardReaderCloseStopsDelivery(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, w := io.Pipe()
	kr := NewReader(r)

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	select {
	case ev := <-kr.Events():
		assert.Equal(t, KeyEvent{Key: 'x', Type: KeyChar}, ev)
	case <-time.After(2 * time.Second):
		t.Fatal("no key event")
	}

	require.NoError(t, kr.Close())
	// Unblock the pending read so the goroutine observes the stop
	w.Close()

	select {
	case _, ok := <-kr.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}
