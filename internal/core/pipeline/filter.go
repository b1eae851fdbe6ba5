// Package pipeline reduces a plan catalog to the budget- and type-constrained,
// price-sorted subset shown to the user, and splits it into tool columns.
//
// Every function here is total: nil or empty input yields an empty result and
// no input slice is ever modified.
package pipeline

import (
	"sort"

	"github.com/penwyp/go-plan-compare/internal/core/model"
)

// FilterByBudget returns the plans whose price is at most maxBudget, in input order
func FilterByBudget(plans []model.Plan, maxBudget int) []model.Plan {
	result := make([]model.Plan, 0, len(plans))
	for _, p := range plans {
		if p.Price <= maxBudget {
			result = append(result, p)
		}
	}
	return result
}

// FilterByType returns the plans matching filter, in input order.
// FilterAll returns a copy of every plan.
func FilterByType(plans []model.Plan, filter model.TypeFilter) []model.Plan {
	if filter == model.FilterAll {
		return append(make([]model.Plan, 0, len(plans)), plans...)
	}
	result := make([]model.Plan, 0, len(plans))
	for _, p := range plans {
		if filter.Matches(p.Type) {
			result = append(result, p)
		}
	}
	return result
}

// SortByPrice returns a new slice ordered by price, most expensive first.
// Plans with equal prices keep their relative order.
func SortByPrice(plans []model.Plan) []model.Plan {
	sorted := make([]model.Plan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})
	return sorted
}

// Apply runs the fixed composition: budget filter, type filter, price sort
func Apply(plans []model.Plan, budget int, filter model.TypeFilter) []model.Plan {
	result := FilterByBudget(plans, budget)
	result = FilterByType(result, filter)
	return SortByPrice(result)
}
