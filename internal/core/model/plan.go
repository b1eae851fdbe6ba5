package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPlanType is returned for plan types other than individual and enterprise
	ErrUnknownPlanType = errors.New("unknown plan type")
	// ErrInvalidPlan is returned when a plan record fails validation
	ErrInvalidPlan = errors.New("invalid plan")
)

// PlanType is the audience a plan is sold to
type PlanType string

const (
	PlanIndividual PlanType = "individual"
	PlanEnterprise PlanType = "enterprise"
)

// Valid reports whether the plan type is one of the known values
func (p PlanType) Valid() bool {
	return p == PlanIndividual || p == PlanEnterprise
}

// Label returns the badge text of the plan type
func (p PlanType) Label() string {
	switch p {
	case PlanIndividual:
		return "Individual"
	case PlanEnterprise:
		return "Enterprise"
	default:
		return string(p)
	}
}

func (p *PlanType) UnmarshalText(text []byte) error {
	v := PlanType(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, string(text))
	}
	*p = v
	return nil
}

// Plan is one subscription tier offered by one tool.
// Plans are values; nothing in this module mutates a plan after it is loaded.
type Plan struct {
	ID       string   `json:"id" yaml:"id"`
	Tool     Tool     `json:"tool" yaml:"tool"`
	Name     string   `json:"name" yaml:"name"`
	Price    int      `json:"price" yaml:"price"`
	Type     PlanType `json:"type" yaml:"type"`
	Models   []string `json:"models" yaml:"models"`
	Limits   string   `json:"limits" yaml:"limits"`
	Features []string `json:"features" yaml:"features"`
}

// MaxVisibleItems is how many models or features a card lists before collapsing the rest
const MaxVisibleItems = 3

// Validate checks the invariants of a single plan record
func (p Plan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidPlan)
	}
	if !p.Tool.Valid() {
		return fmt.Errorf("%w: plan %s: %v", ErrInvalidPlan, p.ID, ErrUnknownTool)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: plan %s: %v %q", ErrInvalidPlan, p.ID, ErrUnknownPlanType, p.Type)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: plan %s: negative price %d", ErrInvalidPlan, p.ID, p.Price)
	}
	return nil
}

// IsFree reports whether the plan costs nothing
func (p Plan) IsFree() bool {
	return p.Price == 0
}

// VisibleModels returns the models shown on a card and how many were left out
func (p Plan) VisibleModels() ([]string, int) {
	return visible(p.Models)
}

// VisibleFeatures returns the features shown on a card and how many were left out
func (p Plan) VisibleFeatures() ([]string, int) {
	return visible(p.Features)
}

func visible(items []string) ([]string, int) {
	if len(items) == 0 {
		return nil, 0
	}
	n := min(len(items), MaxVisibleItems)
	shown := make([]string, n)
	copy(shown, items)
	return shown, len(items) - n
}

// ValidateCatalog validates every plan and rejects duplicate IDs
func ValidateCatalog(plans []Plan) error {
	seen := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidPlan, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
