package layout

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// EmptyColumnText is shown in a column with no plans in range
const EmptyColumnText = "No plans available within budget"

// maxStackedWidth caps card width in the stacked layout
const maxStackedWidth = 72

// GridOptions tune the column layout
type GridOptions struct {
	// Gap is the number of blank lines between cards of a column
	Gap int
	// ColumnGap is the number of spaces between columns
	ColumnGap int
	// MinColumnWidth is the narrowest column kept side by side
	MinColumnWidth int
}

// DefaultGridOptions returns the layout used when nothing is configured
func DefaultGridOptions() GridOptions {
	return GridOptions{Gap: 1, ColumnGap: 2, MinColumnWidth: 24}
}

// LayoutStrategy defines the interface for different layout rendering strategies
type LayoutStrategy interface {
	Render(result compare.Result) string
	GetName() string
	// Cards returns the renderer used for every card of the layout
	Cards() *CardRenderer
	// Balanced reports whether card paddings apply to this layout
	Balanced() bool
}

// GetLayoutStrategy picks side-by-side columns when all four fit at the
// minimum column width and a stacked single column otherwise
func GetLayoutStrategy(theme *Theme, width int, opts GridOptions) LayoutStrategy {
	if cw := ColumnWidth(width, opts); cw >= opts.MinColumnWidth && cw >= MinCardWidth {
		return &ColumnsStrategy{theme: theme, opts: opts, cards: NewCardRenderer(theme, cw)}
	}
	sw := width
	if sw > maxStackedWidth {
		sw = maxStackedWidth
	}
	return &StackedStrategy{theme: theme, opts: opts, cards: NewCardRenderer(theme, sw)}
}

// ColumnWidth is the width of one of the four side-by-side columns
func ColumnWidth(width int, opts GridOptions) int {
	return (width - opts.ColumnGap*(model.NumTools-1)) / model.NumTools
}

// ColumnsStrategy renders the four tools next to each other
type ColumnsStrategy struct {
	theme *Theme
	opts  GridOptions
	cards *CardRenderer
}

func (s *ColumnsStrategy) GetName() string {
	return "columns"
}

func (s *ColumnsStrategy) Cards() *CardRenderer {
	return s.cards
}

func (s *ColumnsStrategy) Balanced() bool {
	return true
}

// RenderColumns renders every column as its own block
func (s *ColumnsStrategy) RenderColumns(result compare.Result) []string {
	blocks := make([]string, 0, len(result.Columns))
	for _, col := range result.Columns {
		blocks = append(blocks, renderColumn(s.theme, s.cards, col, s.opts.Gap, true))
	}
	return blocks
}

func (s *ColumnsStrategy) Render(result compare.Result) string {
	blocks := s.RenderColumns(result)
	spacer := strings.Repeat(" ", s.opts.ColumnGap)
	parts := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 && s.opts.ColumnGap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// StackedStrategy renders one tool after another for narrow terminals.
// Columns are not side by side, so no balancing is applied.
type StackedStrategy struct {
	theme *Theme
	opts  GridOptions
	cards *CardRenderer
}

func (s *StackedStrategy) GetName() string {
	return "stacked"
}

func (s *StackedStrategy) Cards() *CardRenderer {
	return s.cards
}

func (s *StackedStrategy) Balanced() bool {
	return false
}

func (s *StackedStrategy) Render(result compare.Result) string {
	blocks := make([]string, 0, len(result.Columns))
	for _, col := range result.Columns {
		blocks = append(blocks, renderColumn(s.theme, s.cards, col, s.opts.Gap, false))
	}
	return strings.Join(blocks, "\n\n")
}

func renderColumn(theme *Theme, cards *CardRenderer, col compare.Column, gap int, padded bool) string {
	width := cards.Width()
	if width < MinCardWidth {
		width = MinCardWidth
	}

	title := col.Tool.DisplayName()
	count := " (" + strconv.Itoa(len(col.Entries)) + ")"
	header := theme.Accent().Render(util.Truncate(title, width-len(count))) + theme.Muted().Render(count)

	lines := []string{header, theme.Muted().Render(strings.Repeat("─", width))}
	if len(col.Entries) == 0 {
		lines = append(lines, theme.Placeholder(width).Render(EmptyColumnText))
		return strings.Join(lines, "\n")
	}
	for i, e := range col.Entries {
		if i > 0 {
			for g := 0; g < gap; g++ {
				lines = append(lines, "")
			}
		}
		extra := 0
		if padded {
			extra = e.ExtraPadding
		}
		lines = append(lines, cards.Render(e.Plan, extra))
	}
	return strings.Join(lines, "\n")
}
