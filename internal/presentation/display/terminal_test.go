package display

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplay(t *testing.T, theme layout.ThemeName) (*TerminalDisplay, *layout.GridRenderer, *bytes.Buffer) {
	t.Helper()
	grid := layout.NewGridRenderer(layout.NewTheme(theme, lipgloss.NewRenderer(io.Discard)), layout.DefaultGridOptions())
	var buf bytes.Buffer
	return NewTerminalDisplay(&buf, grid), grid, &buf
}

func TestViewStateMode(t *testing.T) {
	assert.Equal(t, ModeLoading, ViewState{Loading: true}.Mode())
	assert.Equal(t, ModeError, ViewState{Loading: true, Error: "boom"}.Mode())
	assert.Equal(t, ModeNormal, ViewState{}.Mode())
}

func TestFrameLoading(t *testing.T) {
	td, _, _ := newTestDisplay(t, layout.ThemeLight)
	frame, _ := td.Frame(ViewState{Loading: true, Filter: model.FilterAll}, 120, 40)

	assert.Contains(t, frame, Title)
	assert.Contains(t, frame, "☀ light")
	assert.Contains(t, frame, LoadingMessage)
	assert.Contains(t, frame, "$0.00")
	assert.Contains(t, frame, "$200.00")
	assert.Contains(t, frame, "[All]")
	assert.Contains(t, frame, "q quit")
}

func TestFrameErrorShowsMessageVerbatim(t *testing.T) {
	td, _, _ := newTestDisplay(t, layout.ThemeDark)
	frame, _ := td.Frame(ViewState{Error: "Failed to load plans data", Filter: model.FilterAll}, 120, 40)

	assert.Contains(t, frame, "☾ dark")
	assert.Contains(t, frame, ErrorTitle)
	assert.Contains(t, frame, "Failed to load plans data")
	assert.NotContains(t, frame, LoadingMessage)
}

func TestFrameNormal(t *testing.T) {
	plans, err := catalog.NewEmbeddedProvider().Plans(context.Background())
	require.NoError(t, err)

	td, grid, _ := newTestDisplay(t, layout.ThemeLight)
	state := ViewState{Budget: 50, Filter: model.FilterIndividual}
	state.Result = grid.Compose(plans, state.Budget, state.Filter, 140)

	frame, maxScroll := td.Frame(state, 140, 500)
	assert.Zero(t, maxScroll)
	assert.Contains(t, frame, "Budget up to $50.00/mo")
	assert.Contains(t, frame, "[Individual]")
	assert.NotContains(t, frame, "[All]")
	for _, tool := range model.Tools() {
		assert.Contains(t, frame, tool.DisplayName())
	}
}

func TestFrameScrolling(t *testing.T) {
	plans, err := catalog.NewEmbeddedProvider().Plans(context.Background())
	require.NoError(t, err)

	td, grid, _ := newTestDisplay(t, layout.ThemeLight)
	state := ViewState{Budget: 200, Filter: model.FilterAll}
	state.Result = grid.Compose(plans, state.Budget, state.Filter, 140)

	top, maxScroll := td.Frame(state, 140, 20)
	require.Positive(t, maxScroll)
	assert.Len(t, strings.Split(top, "\n"), 20)

	state.Scroll = maxScroll + 50
	bottom, again := td.Frame(state, 140, 20)
	assert.Equal(t, maxScroll, again)
	assert.Len(t, strings.Split(bottom, "\n"), 20)
	assert.NotEqual(t, top, bottom)

	state.Scroll = -5
	clamped, _ := td.Frame(state, 140, 20)
	assert.Equal(t, top, clamped)
}

func TestRenderWritesControlSequences(t *testing.T) {
	td, _, buf := newTestDisplay(t, layout.ThemeLight)

	td.EnterAlternateScreen()
	td.EnterAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), "\033[?1049h"))

	buf.Reset()
	td.Render(ViewState{Loading: true}, 100, 30)
	out := buf.String()
	assert.Contains(t, out, "\033[2J")
	assert.Contains(t, out, LoadingMessage)

	buf.Reset()
	td.Render(ViewState{Loading: true}, 100, 30)
	assert.NotContains(t, buf.String(), "\033[2J")

	buf.Reset()
	td.Render(ViewState{Error: "boom"}, 100, 30)
	assert.Contains(t, buf.String(), "\033[2J")

	buf.Reset()
	td.ExitAlternateScreen()
	td.ExitAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), "\033[?1049l"))
}
