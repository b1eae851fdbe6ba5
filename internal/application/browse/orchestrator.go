package browse

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/presentation/display"
	"github.com/penwyp/go-plan-compare/internal/presentation/interaction"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// Dependencies are the components the orchestrator drives
type Dependencies struct {
	Source CatalogSource
	Input  InputHandler
	Sizer  SizeSource
	// Display draws to stdout when nil
	Display DisplayController
	// Grid is built from the config when nil
	Grid *layout.GridRenderer
	// Prefs is optional; without it theme changes are not persisted
	Prefs ThemeStore
	// Renderer binds theme styles; nil uses the lipgloss default
	Renderer *lipgloss.Renderer
}

// Orchestrator coordinates all components for the browse command
type Orchestrator struct {
	config *BrowseConfig

	// Core components
	stateManager *StateManager
	fetcher      *Fetcher

	// UI components
	grid     *layout.GridRenderer
	display  DisplayController
	input    InputHandler
	sizer    SizeSource
	prefs    ThemeStore
	renderer *lipgloss.Renderer

	lastWidth, lastHeight int
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *BrowseConfig, deps Dependencies) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Source == nil || deps.Input == nil || deps.Sizer == nil {
		return nil, fmt.Errorf("browse needs a catalog source, an input handler and a sizer")
	}

	grid := deps.Grid
	if grid == nil {
		grid = layout.NewGridRenderer(layout.NewTheme(config.Theme, deps.Renderer), *config.Grid)
	}
	disp := deps.Display
	if disp == nil {
		disp = display.NewTerminalDisplay(os.Stdout, grid)
	}

	return &Orchestrator{
		config:       config,
		stateManager: NewStateManager(config.Budget, config.Filter, config.Theme),
		fetcher:      NewFetcher(deps.Source, config.FetchTimeout),
		grid:         grid,
		display:      disp,
		input:        deps.Input,
		sizer:        deps.Sizer,
		prefs:        deps.Prefs,
		renderer:     deps.Renderer,
	}, nil
}

// NewTerminalDependencies wires the real terminal: raw keyboard input and the
// stdout sizer. The display defaults to stdout.
func NewTerminalDependencies(source CatalogSource, prefs ThemeStore) (Dependencies, error) {
	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return Dependencies{}, fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	return Dependencies{
		Source: source,
		Input:  keyboard,
		Sizer:  layout.SharedSizer(),
		Prefs:  prefs,
	}, nil
}

// State returns the state manager
func (o *Orchestrator) State() *StateManager {
	return o.stateManager
}

// Run starts the orchestrator main loop. It returns when the user quits,
// the input ends or ctx is done. A fetch still in flight is abandoned.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting plan browser")

	ctx, cancel := context.WithCancel(ctx)
	defer o.fetcher.Wait()
	defer cancel()
	defer o.input.Close()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.stateManager.SetLoading()
	o.fetcher.Start(ctx, false)
	o.updateDisplay()

	ticker := time.NewTicker(o.config.RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down plan browser")
			return nil

		case res := <-o.fetcher.Results():
			o.handleFetchResult(res)
			o.updateDisplay()

		case <-ticker.C:
			// Redraw on terminal resize
			if w, h := o.sizer.Size(); w != o.lastWidth || h != o.lastHeight {
				util.LogDebug("Terminal resized, redrawing")
				o.updateDisplay()
			}

		case event, ok := <-o.input.Events():
			if !ok {
				util.LogInfo("Input closed, leaving plan browser")
				return nil
			}
			if o.handleKeyboard(ctx, event) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

func (o *Orchestrator) handleFetchResult(res FetchResult) {
	if !o.fetcher.Accept(res) {
		util.LogDebugf("Ignoring superseded catalog fetch %d", res.Generation)
		return
	}
	if res.Err != nil {
		msg := ErrorMessage(res.Err)
		util.LogErrorf("Failed to load plans: %v", res.Err)
		o.stateManager.SetError(msg)
		return
	}
	util.LogInfof("Loaded %d plans", len(res.Plans))
	o.stateManager.SetPlans(res.Plans)
}

// handleKeyboard applies a key and reports whether the browser should exit
func (o *Orchestrator) handleKeyboard(ctx context.Context, event interaction.KeyEvent) bool {
	next, action := HandleKey(o.stateManager.Snapshot(), event)
	o.stateManager.Update(func(s *State) {
		s.Budget = next.Budget
		s.Filter = next.Filter
		s.Theme = next.Theme
		s.Scroll = next.Scroll
	})

	switch action {
	case ActionQuit:
		return true
	case ActionReload:
		util.LogInfo("Reloading plans")
		o.stateManager.SetLoading()
		o.fetcher.Start(ctx, true)
	case ActionThemeChanged:
		o.grid.SetTheme(layout.NewTheme(next.Theme, o.renderer))
		if o.prefs != nil {
			if err := o.prefs.SaveTheme(next.Theme); err != nil {
				util.LogWarnf("Failed to save theme preference: %v", err)
			}
		}
	}
	return false
}

// updateDisplay recomputes the comparison and redraws
func (o *Orchestrator) updateDisplay() {
	s := o.stateManager.Snapshot()
	width, height := o.sizer.Size()
	o.lastWidth, o.lastHeight = width, height

	view := display.ViewState{
		Theme:   s.Theme,
		Budget:  s.Budget,
		Filter:  s.Filter,
		Loading: s.Loading,
		Error:   s.Error,
		Scroll:  s.Scroll,
	}
	if s.Loading || s.Error != "" {
		// Failed or pending fetches show no plans, never stale ones
		view.Result = compare.Compose(nil, s.Budget, s.Filter, compare.Options{})
	} else {
		view.Result = o.grid.Compose(s.Plans, s.Budget, s.Filter, width)
	}

	o.stateManager.SetMaxScroll(o.display.Render(view, width, height))
}
