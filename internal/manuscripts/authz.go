package manuscripts

import (
	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"
)

// The three permission tables below grew independently and overlap; the
// precedence in ValidActions (editorial roles skipped for the author,
// referee actions gated on assignment, author withdraw appended last) is
// the contract, not the tables themselves.

// authorStateActions lists the author's self-service states.
var authorStateActions = map[State][]Action{
	StateAuthorReview:   {ActionDone},
	StateAuthorRevision: {ActionDone},
}

// editorStateActions lists the states in which masthead roles may act,
// and what they may do there. All three masthead roles share one table.
var editorStateActions = map[State][]Action{
	StateSubmitted:     {ActionAssignRef, ActionReject},
	StateRefereeReview: {ActionAssignRef, ActionDeleteRef, ActionAccept, ActionAcceptWithRev, ActionReject},
	StateEditorReview:  {ActionAccept},
	StateCopyEdit:      {ActionDone},
	StateFormatting:    {ActionDone},
}

// refereeStateActions lists what an assigned referee may do.
var refereeStateActions = map[State][]Action{
	StateRefereeReview: {ActionSubmitReview},
}

func hasRole(userRoles []string, code string) bool {
	for _, r := range userRoles {
		if r == code {
			return true
		}
	}
	return false
}

func hasMastheadRole(userRoles []string) bool {
	for _, r := range userRoles {
		if roles.IsMasthead(r) {
			return true
		}
	}
	return false
}

// CanChooseAction reports whether the user may take any action on the
// manuscript right now. Denies by default.
func CanChooseAction(m *Manuscript, userEmail string, userRoles []string) bool {
	if m == nil || !IsValidState(m.State) {
		return false
	}
	if userEmail == m.AuthorEmail {
		if isActionLegal(m.State, ActionWithdraw) {
			return true
		}
		if _, ok := authorStateActions[m.State]; ok {
			return true
		}
	}
	if hasRole(userRoles, roles.CodeReferee) && m.HasReferee(userEmail) && m.State == StateRefereeReview {
		return true
	}
	if userEmail != m.AuthorEmail && hasMastheadRole(userRoles) {
		if _, ok := editorStateActions[m.State]; ok {
			return true
		}
	}
	return false
}

// ValidActions returns the actions this user may invoke on the
// manuscript, deduplicated in order of first discovery.
func ValidActions(m *Manuscript, userEmail string, userRoles []string) []Action {
	valid := []Action{}
	if !CanChooseAction(m, userEmail, userRoles) {
		return valid
	}
	isAuthor := userEmail == m.AuthorEmail
	for _, role := range userRoles {
		switch {
		case roles.IsMasthead(role):
			if isAuthor {
				// editors never review their own manuscripts
				continue
			}
			valid = appendLegal(valid, m.State, editorStateActions[m.State])
		case role == roles.CodeReferee:
			if m.State != StateRefereeReview || !m.HasReferee(userEmail) {
				continue
			}
			valid = appendLegal(valid, m.State, refereeStateActions[m.State])
		case role == roles.CodeAuthor:
			if !isAuthor {
				continue
			}
			valid = appendLegal(valid, m.State, authorStateActions[m.State])
		}
	}
	// The author may always withdraw while the manuscript is live.
	if isAuthor && isActionLegal(m.State, ActionWithdraw) && !containsAction(valid, ActionWithdraw) {
		valid = append(valid, ActionWithdraw)
	}
	return valid
}

// appendLegal appends the candidate actions that the transition table
// actually allows from state, skipping ones already collected.
func appendLegal(valid []Action, state State, candidates []Action) []Action {
	for _, action := range candidates {
		if !isActionLegal(state, action) {
			continue
		}
		if containsAction(valid, action) {
			continue
		}
		valid = append(valid, action)
	}
	return valid
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// CanMoveAction reports whether the user may force-move the manuscript
// to an arbitrary state, bypassing the transition table. Editors only,
// and never on their own manuscripts.
func CanMoveAction(m *Manuscript, userEmail string, userRoles []string) bool {
	if m == nil {
		return false
	}
	return userEmail != m.AuthorEmail && hasMastheadRole(userRoles)
}

// ValidStates returns the states an editor may force-move the manuscript
// to: everything except the current state and WITHDRAWN, which is
// reachable only through the withdraw action.
func ValidStates(m *Manuscript, userEmail string, userRoles []string) []State {
	valid := []State{}
	if !CanMoveAction(m, userEmail, userRoles) {
		return valid
	}
	for _, state := range GetStates() {
		if state == m.State || state == StateWithdrawn {
			continue
		}
		valid = append(valid, state)
	}
	return valid
}
