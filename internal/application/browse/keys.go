package browse

import (
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/presentation/interaction"
)

// Action is a side effect requested by a key press
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReload
	ActionThemeChanged
)

// HandleKey applies a key press to the state. It is pure: side effects are
// returned as an Action for the caller to perform.
func HandleKey(s State, event interaction.KeyEvent) (State, Action) {
	switch event.Type {
	case interaction.KeyCtrlC, interaction.KeyEscape:
		return s, ActionQuit
	case interaction.KeyLeft:
		return setBudget(s, model.StepBudget(s.Budget, -1)), ActionNone
	case interaction.KeyRight:
		return setBudget(s, model.StepBudget(s.Budget, 1)), ActionNone
	case interaction.KeyHome:
		return setBudget(s, model.MinBudget), ActionNone
	case interaction.KeyEnd:
		return setBudget(s, model.MaxBudget), ActionNone
	case interaction.KeyUp:
		return scroll(s, -1), ActionNone
	case interaction.KeyDown:
		return scroll(s, 1), ActionNone
	case interaction.KeyChar:
		return handleChar(s, event.Key)
	}
	return s, ActionNone
}

func handleChar(s State, key rune) (State, Action) {
	switch key {
	case 'q', 'Q', 3: // 'q', 'Q', or Ctrl+C
		return s, ActionQuit
	case 'h':
		return setBudget(s, model.StepBudget(s.Budget, -1)), ActionNone
	case 'l':
		return setBudget(s, model.StepBudget(s.Budget, 1)), ActionNone
	case 'k':
		return scroll(s, -1), ActionNone
	case 'j':
		return scroll(s, 1), ActionNone
	case 'a', 'A':
		return setFilter(s, model.FilterAll), ActionNone
	case 'i', 'I':
		return setFilter(s, model.FilterIndividual), ActionNone
	case 'e', 'E':
		return setFilter(s, model.FilterEnterprise), ActionNone
	case 't', 'T':
		s.Theme = s.Theme.Toggle()
		return s, ActionThemeChanged
	case 'r', 'R':
		if s.Loading {
			return s, ActionNone
		}
		return s, ActionReload
	}
	return s, ActionNone
}

func setBudget(s State, budget int) State {
	if budget != s.Budget {
		s.Budget = budget
		s.Scroll = 0
	}
	return s
}

func setFilter(s State, filter model.TypeFilter) State {
	if filter != s.Filter {
		s.Filter = filter
		s.Scroll = 0
	}
	return s
}

func scroll(s State, delta int) State {
	s.Scroll += delta
	if s.Scroll > s.MaxScroll {
		s.Scroll = s.MaxScroll
	}
	if s.Scroll < 0 {
		s.Scroll = 0
	}
	return s
}
