package manuscripts

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState     = errors.New("invalid manuscript state")
	ErrInvalidAction    = errors.New("action not available in this state")
	ErrDuplicateReferee = errors.New("referee already assigned")
	ErrRefereeNotListed = errors.New("referee not assigned to manuscript")
	ErrRefereeRequired  = errors.New("action requires a referee email")
)

// transition is one legal (state, action) move. Exactly one of next or
// apply is set: next for constant transitions, apply for the two
// referee-mutating ones.
type transition struct {
	next  State
	apply func(m *Manuscript, referee string) (State, error)
}

// transitions holds every legal move except the common withdraw, which
// HandleAction checks first for every non-terminal state. Terminal states
// (REJ, PUB, WIT) have no entry: a lookup miss on them means "no legal
// action", not a modeling error.
var transitions = map[State]map[Action]transition{
	StateSubmitted: {
		ActionAssignRef: {apply: assignReferee},
		ActionReject:    {next: StateRejected},
	},
	StateRefereeReview: {
		ActionAccept:        {next: StateCopyEdit},
		ActionAcceptWithRev: {next: StateAuthorRevision},
		ActionReject:        {next: StateRejected},
		ActionAssignRef:     {apply: assignReferee},
		ActionDeleteRef:     {apply: deleteReferee},
		ActionSubmitReview:  {next: StateRefereeReview},
	},
	StateAuthorRevision: {
		ActionDone: {next: StateEditorReview},
	},
	StateEditorReview: {
		ActionAccept: {next: StateCopyEdit},
	},
	StateCopyEdit: {
		ActionDone: {next: StateAuthorReview},
	},
	StateAuthorReview: {
		ActionDone: {next: StateFormatting},
	},
	StateFormatting: {
		ActionDone: {next: StatePublished},
	},
}

func assignReferee(m *Manuscript, referee string) (State, error) {
	if referee == "" {
		return "", ErrRefereeRequired
	}
	if m.HasReferee(referee) {
		return "", fmt.Errorf("%w: %s", ErrDuplicateReferee, referee)
	}
	m.Referees = append(m.Referees, referee)
	return StateRefereeReview, nil
}

func deleteReferee(m *Manuscript, referee string) (State, error) {
	if referee == "" {
		return "", ErrRefereeRequired
	}
	idx := -1
	for i, ref := range m.Referees {
		if ref == referee {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrRefereeNotListed, referee)
	}
	m.Referees = append(m.Referees[:idx], m.Referees[idx+1:]...)
	if len(m.Referees) == 0 {
		// no referees left, back to needing assignment
		return StateSubmitted, nil
	}
	return StateRefereeReview, nil
}

// HandleAction applies action to a manuscript in state and returns the
// resulting state. The manuscript's referee list is mutated only by
// ASSIGN_REF and DELETE_REF, and only when the call succeeds.
func HandleAction(state State, action Action, m *Manuscript, referee string) (State, error) {
	if !IsValidState(state) {
		return "", fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	stateTable, live := transitions[state]
	// Withdraw is available from every non-terminal state.
	if live && action == ActionWithdraw {
		return StateWithdrawn, nil
	}
	tr, ok := stateTable[action]
	if !ok {
		return "", fmt.Errorf("%w: %s in %s", ErrInvalidAction, action, state)
	}
	if tr.apply != nil {
		return tr.apply(m, referee)
	}
	return tr.next, nil
}

// legalActions returns every action with a transition out of state, in a
// fixed display order, withdraw last.
func legalActions(state State) []Action {
	stateTable, live := transitions[state]
	if !live {
		return nil
	}
	out := make([]Action, 0, len(stateTable)+1)
	for _, action := range GetActions() {
		if action == ActionWithdraw {
			continue
		}
		if _, ok := stateTable[action]; ok {
			out = append(out, action)
		}
	}
	return append(out, ActionWithdraw)
}

// isActionLegal reports whether action has a transition out of state,
// the common withdraw included.
func isActionLegal(state State, action Action) bool {
	stateTable, live := transitions[state]
	if !live {
		return false
	}
	if action == ActionWithdraw {
		return true
	}
	_, ok := stateTable[action]
	return ok
}

// GetStates returns every manuscript state.
func GetStates() []State {
	return []State{
		StateSubmitted,
		StateRefereeReview,
		StateCopyEdit,
		StateRejected,
		StateAuthorRevision,
		StateEditorReview,
		StateAuthorReview,
		StateFormatting,
		StatePublished,
		StateWithdrawn,
	}
}

// GetActions returns every manuscript action.
func GetActions() []Action {
	return []Action{
		ActionAccept,
		ActionAcceptWithRev,
		ActionAssignRef,
		ActionDeleteRef,
		ActionDone,
		ActionReject,
		ActionSubmitReview,
		ActionWithdraw,
	}
}

func IsValidState(state State) bool {
	_, ok := stateNames[state]
	return ok
}

func IsValidAction(action Action) bool {
	_, ok := actionNames[action]
	return ok
}

// StateName returns the display name for a state code.
func StateName(state State) string {
	return stateNames[state]
}

// ActionName returns the display name for an action code.
func ActionName(action Action) string {
	return actionNames[action]
}

// IsTerminal reports whether state has no outgoing transitions.
func IsTerminal(state State) bool {
	_, live := transitions[state]
	return IsValidState(state) && !live
}
