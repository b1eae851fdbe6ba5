package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
)

// Config describes the program run by a Session
type Config struct {
	// Binary and arguments to run
	Binary string
	Args   []string

	// Extra environment variables, appended to the current environment
	Env []string

	// Terminal size
	Rows uint16
	Cols uint16

	// Timeout bounds the whole session
	Timeout time.Duration
}

// Session is a program running inside a pseudo terminal
type Session struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	cancel context.CancelFunc
	rows   int
	cols   int

	mu     sync.RWMutex
	output bytes.Buffer

	readDone chan struct{}
	exitOnce sync.Once
	exitErr  error
	exited   chan struct{}
}

// Start launches the program with its stdio attached to a new pty
func Start(config Config) (*Session, error) {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Rows == 0 {
		config.Rows = 40
	}
	if config.Cols == 0 {
		config.Cols = 160
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)

	cmd := exec.CommandContext(ctx, config.Binary, config.Args...)
	cmd.Env = append(os.Environ(), config.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: config.Rows, Cols: config.Cols})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}

	s := &Session{
		cmd:      cmd,
		ptmx:     ptmx,
		cancel:   cancel,
		rows:     int(config.Rows),
		cols:     int(config.Cols),
		readDone: make(chan struct{}),
		exited:   make(chan struct{}),
	}

	go s.capture()
	go func() {
		err := cmd.Wait()
		s.exitOnce.Do(func() {
			s.exitErr = err
			close(s.exited)
		})
	}()

	return s, nil
}

// capture copies pty output until the program closes its side
func (s *Session) capture() {
	defer close(s.readDone)

	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.output.Write(buf[:n])
			s.mu.Unlock()
		}
		// EOF, or EIO on Linux once the program side closes
		if err != nil {
			return
		}
	}
}

// Send writes keystrokes to the program
func (s *Session) Send(keys string) error {
	_, err := io.WriteString(s.ptmx, keys)
	return err
}

// Output returns everything the program wrote so far
func (s *Session) Output() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.output.String()
}

// Screen replays the output onto a virtual screen of the pty size
func (s *Session) Screen() *Screen {
	screen := NewScreen(s.rows, s.cols)
	screen.Feed(s.Output())
	return screen
}

// WaitForText polls the screen until text is visible
func (s *Session) WaitForText(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Screen().Contains(text) {
			return nil
		}
		select {
		case <-s.exited:
			if s.Screen().Contains(text) {
				return nil
			}
			return fmt.Errorf("program exited before showing %q", text)
		case <-time.After(50 * time.Millisecond):
		}
	}
	return fmt.Errorf("timeout waiting for text %q; screen:\n%s", text, s.Screen().Render())
}

// Wait blocks until the program exits and returns its exit error
func (s *Session) Wait(timeout time.Duration) error {
	select {
	case <-s.exited:
		return s.exitErr
	case <-time.After(timeout):
		return fmt.Errorf("program still running after %s", timeout)
	}
}

// Close kills the program if needed and releases the pty
func (s *Session) Close() error {
	s.cancel()
	<-s.exited
	err := s.ptmx.Close()
	<-s.readDone
	return err
}
