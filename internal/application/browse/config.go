package browse

import (
	"time"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
)

// BrowseConfig contains configuration for the browse command
type BrowseConfig struct {
	// Initial controls
	Budget int
	Filter model.TypeFilter
	Theme  layout.ThemeName

	// Layout; nil uses the default grid
	Grid *layout.GridOptions

	// Refresh settings
	RefreshRate  time.Duration
	FetchTimeout time.Duration
}

// Validate checks if the configuration is valid
func (c *BrowseConfig) Validate() error {
	c.Budget = model.ClampBudget(c.Budget)
	if c.Filter == "" {
		c.Filter = model.FilterAll
	}
	if _, err := model.ParseTypeFilter(string(c.Filter)); err != nil {
		return err
	}
	if c.Theme == "" {
		c.Theme = layout.ThemeLight
	}
	if _, err := layout.ParseThemeName(string(c.Theme)); err != nil {
		return err
	}
	c.Grid = gridDefaults(c.Grid)
	if c.RefreshRate <= 0 {
		c.RefreshRate = 500 * time.Millisecond
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	return nil
}

// gridDefaults fills negative fields from the default grid. Zero is a valid
// gap or minimum width and is kept.
func gridDefaults(opts *layout.GridOptions) *layout.GridOptions {
	defaults := layout.DefaultGridOptions()
	if opts == nil {
		return &defaults
	}
	grid := *opts
	if grid.Gap < 0 {
		grid.Gap = defaults.Gap
	}
	if grid.ColumnGap < 0 {
		grid.ColumnGap = defaults.ColumnGap
	}
	if grid.MinColumnWidth < 0 {
		grid.MinColumnWidth = defaults.MinColumnWidth
	}
	return &grid
}
