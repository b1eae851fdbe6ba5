// Package compare is the entry point the presentation layer uses: it turns
// the raw catalog plus the current budget and type filter into four balanced
// tool columns.
package compare

import (
	"github.com/penwyp/go-plan-compare/internal/core/balance"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/core/pipeline"
)

// Measurer reports the natural, unpadded height of a rendered plan card.
// ok is false when the card cannot be measured yet.
type Measurer interface {
	Measure(plan model.Plan) (height int, ok bool)
}

// MeasurerFunc adapts a function to Measurer
type MeasurerFunc func(plan model.Plan) (int, bool)

func (f MeasurerFunc) Measure(plan model.Plan) (int, bool) {
	return f(plan)
}

// Entry is one card of a column
type Entry struct {
	Plan         model.Plan `json:"plan"`
	ExtraPadding int        `json:"extraPadding"`
}

// Column is one tool's cards in display order
type Column struct {
	Tool    model.Tool `json:"tool"`
	Entries []Entry    `json:"entries"`
}

// Result is the grouped and balanced comparison. Columns always has one
// entry per tool, in model.Tools() order.
type Result struct {
	Budget  int              `json:"budget"`
	Filter  model.TypeFilter `json:"filter"`
	Columns []Column         `json:"columns"`
}

// Count returns the number of plans across all columns
func (r Result) Count() int {
	n := 0
	for _, col := range r.Columns {
		n += len(col.Entries)
	}
	return n
}

// Column returns the column of one tool
func (r Result) Column(tool model.Tool) Column {
	for _, col := range r.Columns {
		if col.Tool == tool {
			return col
		}
	}
	return Column{Tool: tool, Entries: []Entry{}}
}

// Options tune how a comparison is built
type Options struct {
	// Measurer supplies card heights; nil disables balancing
	Measurer Measurer
	// Balancer is reused across calls when set, so unchanged input is not rebalanced
	Balancer *balance.Balancer
	// Gap is the spacing between cards; ignored when Balancer is set
	Gap int
}

// Compose filters, sorts, groups and balances plans
func Compose(plans []model.Plan, budget int, filter model.TypeFilter, opts Options) Result {
	grouped := pipeline.GroupByTool(pipeline.Apply(plans, budget, filter))

	result := Result{
		Budget:  budget,
		Filter:  filter,
		Columns: make([]Column, 0, model.NumTools),
	}
	for _, tool := range model.Tools() {
		plansOfTool := grouped.Get(tool)
		entries := make([]Entry, len(plansOfTool))
		for i, p := range plansOfTool {
			entries[i] = Entry{Plan: p}
		}
		result.Columns = append(result.Columns, Column{Tool: tool, Entries: entries})
	}

	if opts.Measurer == nil {
		return result
	}

	keys, columns := Measure(result, opts.Measurer)
	var paddings [][]int
	if opts.Balancer != nil {
		paddings = opts.Balancer.Apply(keys, columns)
	} else {
		paddings = balance.Balance(columns, opts.Gap)
	}
	for i := range result.Columns {
		for j := range result.Columns[i].Entries {
			result.Columns[i].Entries[j].ExtraPadding = paddings[i][j]
		}
	}
	return result
}

// Measure collects the natural heights of every card of a result
func Measure(result Result, m Measurer) ([][]string, []balance.Column) {
	keys := make([][]string, len(result.Columns))
	columns := make([]balance.Column, len(result.Columns))
	for i, col := range result.Columns {
		keys[i] = make([]string, len(col.Entries))
		columns[i] = make(balance.Column, len(col.Entries))
		for j, e := range col.Entries {
			keys[i][j] = e.Plan.ID
			h, ok := m.Measure(e.Plan)
			columns[i][j] = balance.Card{Height: h, Measured: ok}
		}
	}
	return keys, columns
}
