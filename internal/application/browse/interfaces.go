package browse

import (
	"context"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/display"
	"github.com/penwyp/go-plan-compare/internal/presentation/interaction"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
)

// CatalogSource supplies the plan catalog; catalog.Provider satisfies it
type CatalogSource interface {
	// Plans returns the catalog, loading it on first use
	Plans(ctx context.Context) ([]model.Plan, error)
	// Refresh loads the catalog again
	Refresh(ctx context.Context) error
}

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// Render draws a frame and returns the largest useful scroll offset
	Render(state display.ViewState, width, height int) int
}

// InputHandler processes keyboard input events
type InputHandler interface {
	// Events returns a channel of keyboard events; it is closed when input ends
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}

// SizeSource reports the terminal size
type SizeSource interface {
	Size() (width, height int)
}

// ThemeStore persists the chosen theme
type ThemeStore interface {
	SaveTheme(theme layout.ThemeName) error
}
