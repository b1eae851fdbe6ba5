// Package preferences persists the user's UI choices between runs.
package preferences

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// Preferences is the persisted document. Budget and type filter are
// session state and are not stored.
type Preferences struct {
	Theme layout.ThemeName `json:"theme,omitempty"`
}

// Store reads and writes the preferences file
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the preferences file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored preferences; a missing file yields empty preferences
func (s *Store) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs Preferences
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := sonic.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if prefs.Theme != "" {
		if _, err := layout.ParseThemeName(string(prefs.Theme)); err != nil {
			util.LogWarnf("Ignoring stored theme: %v", err)
			prefs.Theme = ""
		}
	}
	return prefs, nil
}

// Save writes preferences atomically
func (s *Store) Save(prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := sonic.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename preferences file: %w", err)
	}
	return nil
}

// SaveTheme stores the theme, keeping any other stored values
func (s *Store) SaveTheme(theme layout.ThemeName) error {
	prefs, err := s.Load()
	if err != nil {
		util.LogWarnf("Overwriting unreadable preferences: %v", err)
		prefs = Preferences{}
	}
	prefs.Theme = theme
	return s.Save(prefs)
}

// DetectDark reports whether the terminal background is dark
type DetectDark func() bool

// InitialTheme picks the stored theme, else the detected terminal
// background, else light. A nil detector skips detection.
func (s *Store) InitialTheme(detect DetectDark) layout.ThemeName {
	prefs, err := s.Load()
	if err != nil {
		util.LogWarnf("Failed to load preferences: %v", err)
	}
	if prefs.Theme != "" {
		return prefs.Theme
	}
	if detect != nil && detect() {
		return layout.ThemeDark
	}
	return layout.ThemeLight
}

// TerminalBackground detects the background through lipgloss
func TerminalBackground() bool {
	return lipgloss.HasDarkBackground()
}
