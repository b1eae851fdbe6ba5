package model

import "fmt"

// TypeFilter selects which plan types are shown
type TypeFilter string

const (
	FilterAll        TypeFilter = "all"
	FilterIndividual TypeFilter = "individual"
	FilterEnterprise TypeFilter = "enterprise"
)

// TypeFilters returns the filter options in the order they are offered to the user
func TypeFilters() []TypeFilter {
	return []TypeFilter{FilterAll, FilterIndividual, FilterEnterprise}
}

// ParseTypeFilter parses "all", "individual" or "enterprise"
func ParseTypeFilter(s string) (TypeFilter, error) {
	for _, f := range TypeFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid plan type filter '%s': must be one of all, individual, enterprise", s)
}

// Label returns the segment label of the filter
func (f TypeFilter) Label() string {
	switch f {
	case FilterIndividual:
		return "Individual"
	case FilterEnterprise:
		return "Enterprise"
	default:
		return "All"
	}
}

// Matches reports whether a plan type passes the filter
func (f TypeFilter) Matches(t PlanType) bool {
	if f == FilterAll {
		return true
	}
	return PlanType(f) == t
}

// Budget slider bounds, in whole currency units per month
const (
	MinBudget  = 0
	MaxBudget  = 200
	BudgetStep = 10
)

// ClampBudget snaps a budget into [MinBudget, MaxBudget] on the step grid
func ClampBudget(b int) int {
	if b < MinBudget {
		return MinBudget
	}
	if b > MaxBudget {
		return MaxBudget
	}
	return b - (b-MinBudget)%BudgetStep
}

// StepBudget moves the budget by delta slider steps
func StepBudget(b, delta int) int {
	return ClampBudget(ClampBudget(b) + delta*BudgetStep)
}
