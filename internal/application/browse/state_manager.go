package browse

import (
	"sync"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
)

// State is the whole browse screen state
type State struct {
	// Catalog data
	Plans   []model.Plan
	Loading bool
	Error   string

	// Controls
	Budget int
	Filter model.TypeFilter
	Theme  layout.ThemeName

	// Viewport
	Scroll    int
	MaxScroll int
}

// StateManager manages application state in a thread-safe manner
type StateManager struct {
	mu    sync.RWMutex
	state State
}

// NewStateManager creates a new StateManager instance
func NewStateManager(budget int, filter model.TypeFilter, theme layout.ThemeName) *StateManager {
	return &StateManager{
		state: State{
			Budget: model.ClampBudget(budget),
			Filter: filter,
			Theme:  theme,
		},
	}
}

// Snapshot returns a copy of the current state
func (sm *StateManager) Snapshot() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s := sm.state
	s.Plans = append([]model.Plan(nil), sm.state.Plans...)
	return s
}

// Replace swaps in a new state, typically one produced by HandleKey
func (sm *StateManager) Replace(s State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.state = s
}

// Update mutates the state under the lock
func (sm *StateManager) Update(updateFunc func(*State)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.state)
}

// SetLoading marks a fetch as in flight
func (sm *StateManager) SetLoading() {
	sm.Update(func(s *State) {
		s.Loading = true
		s.Error = ""
	})
}

// SetPlans stores a fetched catalog
func (sm *StateManager) SetPlans(plans []model.Plan) {
	sm.Update(func(s *State) {
		s.Plans = plans
		s.Loading = false
		s.Error = ""
	})
}

// SetError records a failed fetch. The working set is emptied so no stale
// plans are shown next to the error.
func (sm *StateManager) SetError(message string) {
	sm.Update(func(s *State) {
		s.Plans = nil
		s.Loading = false
		s.Error = message
	})
}

// SetMaxScroll records the viewport limit of the last frame and clamps the offset
func (sm *StateManager) SetMaxScroll(maxScroll int) {
	sm.Update(func(s *State) {
		s.MaxScroll = maxScroll
		if s.Scroll > maxScroll {
			s.Scroll = maxScroll
		}
	})
}
