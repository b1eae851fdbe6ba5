package interaction

import (
	"io"
	"os"
	"sync"
	"unicode/utf8"
)

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

func (t KeyType) String() string {
	switch t {
	case KeyChar:
		return "char"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// escapeSequences maps the bytes after ESC to keys. Both the CSI ("[") and
// the application-mode SS3 ("O") forms are accepted.
var escapeSequences = map[string]KeyType{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"[C":  KeyRight,
	"[D":  KeyLeft,
	"OA":  KeyUp,
	"OB":  KeyDown,
	"OC":  KeyRight,
	"OD":  KeyLeft,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"OH":  KeyHome,
	"OF":  KeyEnd,
	"[1~": KeyHome,
	"[7~": KeyHome,
	"[4~": KeyEnd,
	"[8~": KeyEnd,
}

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	in      io.Reader
	restore func() error
	input   chan KeyEvent
	stop    chan struct{}
	once    sync.Once
}

// NewKeyboardReader puts stdin into raw mode and starts reading keys
func NewKeyboardReader() (*KeyboardReader, error) {
	restore, err := enableRawMode(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	kr := newReader(os.Stdin, restore)
	go kr.readInput()
	return kr, nil
}

// NewReader reads keys from in without touching any terminal state
func NewReader(in io.Reader) *KeyboardReader {
	kr := newReader(in, nil)
	go kr.readInput()
	return kr
}

func newReader(in io.Reader, restore func() error) *KeyboardReader {
	return &KeyboardReader{
		in:      in,
		restore: restore,
		input:   make(chan KeyEvent, 10),
		stop:    make(chan struct{}),
	}
}

// readInput reads keyboard input until the input ends or the reader is closed.
// The events channel is closed when reading stops.
func (kr *KeyboardReader) readInput() {
	defer close(kr.input)
	buf := make([]byte, 64)

	for {
		n, err := kr.in.Read(buf)
		for _, event := range ParseInput(buf[:n]) {
			select {
			case kr.input <- event:
			case <-kr.stop:
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-kr.stop:
			return
		default:
		}
	}
}

// ParseInput parses one read of raw keyboard input into key events
func ParseInput(buf []byte) []KeyEvent {
	var events []KeyEvent
	for len(buf) > 0 {
		switch b := buf[0]; {
		case b == 3:
			events = append(events, KeyEvent{Key: 3, Type: KeyCtrlC})
			buf = buf[1:]
		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: rune(b), Type: KeyEnter})
			buf = buf[1:]
		case b == 27:
			event, size := parseEscape(buf)
			if event != nil {
				events = append(events, *event)
			}
			buf = buf[size:]
		default:
			r, size := utf8.DecodeRune(buf)
			events = append(events, KeyEvent{Key: r, Type: KeyChar})
			buf = buf[size:]
		}
	}
	return events
}

// parseEscape parses a sequence starting with ESC and returns how many bytes
// it consumed. Unknown sequences are consumed and dropped.
func parseEscape(buf []byte) (*KeyEvent, int) {
	if len(buf) == 1 || (buf[1] != '[' && buf[1] != 'O') {
		return &KeyEvent{Key: 27, Type: KeyEscape}, 1
	}
	// A CSI sequence ends at its first byte in 0x40..0x7E after the introducer
	end := 2
	for end < len(buf) {
		c := buf[end]
		end++
		if c >= 0x40 && c <= 0x7E {
			break
		}
	}
	if t, ok := escapeSequences[string(buf[1:end])]; ok {
		return &KeyEvent{Key: 27, Type: t}, end
	}
	return nil, end
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	var err error
	kr.once.Do(func() {
		close(kr.stop)
		if kr.restore != nil {
			err = kr.restore()
		}
	})
	return err
}
