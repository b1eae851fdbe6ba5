package pipeline

import "github.com/penwyp/go-plan-compare/internal/core/model"

// Columns holds one ordered plan list per tool, indexed by model.Tool.
// Every tool has a slot, so a tool with no matching plans is an empty list
// rather than a missing key.
type Columns [model.NumTools][]model.Plan

// Get returns the plans of one tool
func (c Columns) Get(tool model.Tool) []model.Plan {
	if !tool.Valid() {
		return nil
	}
	return c[tool]
}

// Len returns the number of plans across all columns
func (c Columns) Len() int {
	n := 0
	for _, col := range c {
		n += len(col)
	}
	return n
}

// GroupByTool partitions plans into tool columns, keeping input order within each column
func GroupByTool(plans []model.Plan) Columns {
	var grouped Columns
	for _, tool := range model.Tools() {
		grouped[tool] = make([]model.Plan, 0)
	}
	for _, p := range plans {
		if !p.Tool.Valid() {
			continue
		}
		grouped[p.Tool] = append(grouped[p.Tool], p)
	}
	return grouped
}
