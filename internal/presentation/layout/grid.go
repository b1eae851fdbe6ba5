package layout

import (
	"sync"

	"github.com/penwyp/go-plan-compare/internal/core/balance"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// GridRenderer runs the two-phase layout: cards are measured at their
// natural height, balanced, then rendered with the computed paddings.
type GridRenderer struct {
	opts     GridOptions
	balancer *balance.Balancer

	mu        sync.Mutex
	theme     *Theme
	cardWidth int
}

// NewGridRenderer creates a grid renderer
func NewGridRenderer(theme *Theme, opts GridOptions) *GridRenderer {
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.ColumnGap < 0 {
		opts.ColumnGap = 0
	}
	return &GridRenderer{
		opts:     opts,
		balancer: balance.NewBalancer(opts.Gap),
		theme:    theme,
	}
}

// Theme returns the current theme
func (g *GridRenderer) Theme() *Theme {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.theme
}

// SetTheme switches the palette; card heights do not depend on it
func (g *GridRenderer) SetTheme(theme *Theme) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.theme = theme
}

// Balancer exposes the cached balancer
func (g *GridRenderer) Balancer() *balance.Balancer {
	return g.balancer
}

// Strategy returns the layout used at width
func (g *GridRenderer) Strategy(width int) LayoutStrategy {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := GetLayoutStrategy(g.theme, width, g.opts)
	if cw := s.Cards().Width(); cw != g.cardWidth {
		util.LogDebugf("Card width changed %d -> %d, layout %s", g.cardWidth, cw, s.GetName())
		g.cardWidth = cw
		g.balancer.Invalidate()
	}
	return s
}

// Compose filters, groups and, when the columns sit side by side, balances
// plans for the given terminal width
func (g *GridRenderer) Compose(plans []model.Plan, budget int, filter model.TypeFilter, width int) compare.Result {
	s := g.Strategy(width)
	opts := compare.Options{}
	if s.Balanced() {
		opts.Measurer = s.Cards()
		opts.Balancer = g.balancer
	}
	return compare.Compose(plans, budget, filter, opts)
}

// Render draws a composed result at width
func (g *GridRenderer) Render(result compare.Result, width int) string {
	return g.Strategy(width).Render(result)
}

// RenderColumns draws each column separately; nil in the stacked layout
func (g *GridRenderer) RenderColumns(result compare.Result, width int) []string {
	if s, ok := g.Strategy(width).(*ColumnsStrategy); ok {
		return s.RenderColumns(result)
	}
	return nil
}
