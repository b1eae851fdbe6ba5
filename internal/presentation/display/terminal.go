package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// Title is the screen heading
const Title = "AI Coding Assistant Plans"

// Messages shown instead of the columns
const (
	LoadingMessage = "Loading plans..."
	ErrorTitle     = "Error loading plans"
)

// HelpLine lists the key bindings
const HelpLine = "←/→ budget  Home/End min/max  a/i/e type  t theme  ↑/↓ scroll  r reload  q quit"

// sliderWidth is the track length of the budget slider
const sliderWidth = 30

// DisplayMode is what the body of the screen shows
type DisplayMode int

const (
	ModeLoading DisplayMode = iota
	ModeError
	ModeNormal
)

// ViewState is everything one frame depends on
type ViewState struct {
	Theme   layout.ThemeName
	Budget  int
	Filter  model.TypeFilter
	Loading bool
	Error   string
	Result  compare.Result
	Scroll  int
}

// Mode returns the body shown for the state. Errors win over loading.
func (s ViewState) Mode() DisplayMode {
	switch {
	case s.Error != "":
		return ModeError
	case s.Loading:
		return ModeLoading
	default:
		return ModeNormal
	}
}

// TerminalDisplay draws frames to a terminal
type TerminalDisplay struct {
	out               io.Writer
	grid              *layout.GridRenderer
	inAlternateScreen bool
	isFirstRender     bool
	currentMode       DisplayMode
}

func NewTerminalDisplay(out io.Writer, grid *layout.GridRenderer) *TerminalDisplay {
	return &TerminalDisplay{
		out:           out,
		grid:          grid,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen+util.ClearScreen+util.MoveCursorHome+
		util.ClearScrollback+util.HideCursor+util.DisableLineWrap)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome+util.EnableLineWrap+
		util.ShowCursor+util.ExitAltScreen)
	td.inAlternateScreen = false
}

// Render draws a frame and returns the largest useful scroll offset
func (td *TerminalDisplay) Render(state ViewState, width, height int) int {
	mode := state.Mode()
	if td.isFirstRender || mode != td.currentMode {
		fmt.Fprint(td.out, util.ClearScreen)
		td.isFirstRender = false
		td.currentMode = mode
	}

	frame, maxScroll := td.Frame(state, width, height)

	var b strings.Builder
	b.WriteString(util.MoveCursorHome)
	for i, line := range strings.Split(frame, "\n") {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(line)
		b.WriteString("\033[K") // Clear to end of line
	}
	b.WriteString("\033[J") // Clear from cursor to end of screen
	fmt.Fprint(td.out, b.String())
	return maxScroll
}

// Frame builds the screen text for a state at the given size
func (td *TerminalDisplay) Frame(state ViewState, width, height int) (string, int) {
	theme := td.grid.Theme()

	top := []string{
		td.header(theme, width),
		td.controls(theme, state),
		"",
	}
	bottom := []string{"", theme.Muted().Render(util.Truncate(HelpLine, width))}

	var body []string
	switch state.Mode() {
	case ModeLoading:
		body = strings.Split(td.messageBox(theme, width, theme.Accent().Render(LoadingMessage)), "\n")
	case ModeError:
		msg := theme.Error().Render(ErrorTitle) + "\n\n" + theme.Text().Render(state.Error) +
			"\n\n" + theme.Muted().Render("Press r to retry or q to quit")
		body = strings.Split(td.messageBox(theme, width, msg), "\n")
	default:
		body = strings.Split(td.grid.Render(state.Result, width), "\n")
	}

	visible := height - len(top) - len(bottom)
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(body) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	offset := state.Scroll
	if offset > maxScroll {
		offset = maxScroll
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(body) {
		end = len(body)
	}

	lines := make([]string, 0, height)
	lines = append(lines, top...)
	lines = append(lines, body[offset:end]...)
	lines = append(lines, bottom...)
	return strings.Join(lines, "\n"), maxScroll
}

func (td *TerminalDisplay) header(theme *layout.Theme, width int) string {
	indicator := "☀ light"
	if theme.Name() == layout.ThemeDark {
		indicator = "☾ dark"
	}
	title := theme.Accent().Render(Title)
	right := theme.Muted().Render(indicator + " (t)")
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + right
}

func (td *TerminalDisplay) controls(theme *layout.Theme, state ViewState) string {
	slider := theme.Muted().Render(util.FormatCurrency(model.MinBudget)) + " " +
		theme.Accent().Render(util.CreateSliderBar(state.Budget, model.MinBudget, model.MaxBudget, sliderWidth)) + " " +
		theme.Muted().Render(util.FormatCurrency(model.MaxBudget))

	segments := make([]string, 0, len(model.TypeFilters()))
	for _, f := range model.TypeFilters() {
		if f == state.Filter {
			segments = append(segments, theme.Accent().Render("["+f.Label()+"]"))
		} else {
			segments = append(segments, theme.Muted().Render(" "+f.Label()+" "))
		}
	}

	return theme.Text().Render("Budget up to "+util.FormatCurrency(state.Budget)+"/mo  ") + slider +
		"   " + theme.Text().Render("Type ") + strings.Join(segments, "")
}

func (td *TerminalDisplay) messageBox(theme *layout.Theme, width int, content string) string {
	boxWidth := 50
	if boxWidth > width {
		boxWidth = width
	}
	box := theme.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Palette().Border).
		Padding(1, 2).
		Width(boxWidth - 2).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
