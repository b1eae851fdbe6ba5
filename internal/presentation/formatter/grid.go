package formatter

import (
	"io"

	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
)

// GridFormatter draws the four balanced columns as cards
type GridFormatter struct {
	w     io.Writer
	grid  *layout.GridRenderer
	width int
}

// NewGridFormatter creates a grid formatter; a nil grid uses the light theme
// and default options, a non-positive width uses the terminal width
func NewGridFormatter(w io.Writer, grid *layout.GridRenderer, width int) *GridFormatter {
	if grid == nil {
		grid = layout.NewGridRenderer(layout.NewTheme(layout.ThemeLight, nil), layout.DefaultGridOptions())
	}
	if width <= 0 {
		width = layout.SharedSizer().Width()
	}
	return &GridFormatter{w: w, grid: grid, width: width}
}

// Compose measures cards at the formatter's width and balances the columns
func (f *GridFormatter) Compose(plans []model.Plan, budget int, filter model.TypeFilter) compare.Result {
	return f.grid.Compose(plans, budget, filter, f.width)
}

func (f *GridFormatter) Format(result compare.Result) error {
	_, err := io.WriteString(f.w, f.grid.Render(result, f.width)+"\n")
	return err
}
