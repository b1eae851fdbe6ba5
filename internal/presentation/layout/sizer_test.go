package layout

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizerPadString(t *testing.T) {
	s := Sizer{}
	tests := []struct {
		name      string
		input     string
		width     int
		leftAlign bool
		want      string
	}{
		{name: "left", input: "ab", width: 5, leftAlign: true, want: "ab   "},
		{name: "right", input: "ab", width: 5, leftAlign: false, want: "   ab"},
		{name: "wide_runes", input: "日本", width: 6, leftAlign: true, want: "日本  "},
		{name: "already_wide_enough", input: "abcdef", width: 3, leftAlign: true, want: "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.PadString(tt.input, tt.width, tt.leftAlign))
		})
	}
}

func TestSizerFallsBackWhenNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "sizer")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, h := NewSizer(int(f.Fd())).Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
	assert.Equal(t, DefaultWidth, NewSizer(int(f.Fd())).Width())
}
