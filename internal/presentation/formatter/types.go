package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
)

// Output formats accepted by the root command
const (
	OutputGrid    = "grid"
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

// Outputs lists every supported output format
func Outputs() []string {
	return []string{OutputGrid, OutputTable, OutputJSON, OutputCSV, OutputSummary}
}

// Formatter writes a composed comparison
type Formatter interface {
	Format(result compare.Result) error
}

// Composer is implemented by formatters that draw cards themselves and
// therefore need a comparison balanced for their own card heights
type Composer interface {
	Compose(plans []model.Plan, budget int, filter model.TypeFilter) compare.Result
}

// Options configure the formatter created by New
type Options struct {
	Output string
	Writer io.Writer
	// Grid and Width are used by the grid output only
	Grid  *layout.GridRenderer
	Width int
}

// New creates the formatter for an output name
func New(opts Options) (Formatter, error) {
	switch opts.Output {
	case OutputGrid, "":
		return NewGridFormatter(opts.Writer, opts.Grid, opts.Width), nil
	case OutputTable:
		return NewTableFormatter(opts.Writer), nil
	case OutputJSON:
		return NewJSONFormatter(opts.Writer), nil
	case OutputCSV:
		return NewCSVFormatter(opts.Writer), nil
	case OutputSummary:
		return NewSummaryFormatter(opts.Writer), nil
	default:
		return nil, fmt.Errorf("invalid output format '%s': must be one of %s", opts.Output, strings.Join(Outputs(), ", "))
	}
}

// Row is one plan flattened for tabular outputs
type Row struct {
	Tool     model.Tool
	ID       string
	Name     string
	Price    int
	Type     model.PlanType
	Models   []string
	Limits   string
	Features []string
}

// Rows flattens a result in column order
func Rows(result compare.Result) []Row {
	rows := make([]Row, 0, result.Count())
	for _, col := range result.Columns {
		for _, e := range col.Entries {
			p := e.Plan
			rows = append(rows, Row{
				Tool:     col.Tool,
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				Type:     p.Type,
				Models:   p.Models,
				Limits:   p.Limits,
				Features: p.Features,
			})
		}
	}
	return rows
}
