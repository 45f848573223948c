package manuscripts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"
)

const (
	authorEmail  = "ejc369@nyu.edu"
	editorEmail  = "editor@nyu.edu"
	refereeEmail = "ref@nyu.edu"
	randomEmail  = "nobody@nyu.edu"
)

func TestCanChooseActionAuthor(t *testing.T) {
	m := newManuscript(StateSubmitted)

	// withdraw is always open to the author while the manuscript is live
	assert.True(t, CanChooseAction(m, authorEmail, []string{roles.CodeAuthor}))

	// even with no roles at all: the check is by email
	assert.True(t, CanChooseAction(m, authorEmail, nil))

	m.State = StateAuthorReview
	assert.True(t, CanChooseAction(m, authorEmail, []string{roles.CodeAuthor}))

	m.State = StateWithdrawn
	assert.False(t, CanChooseAction(m, authorEmail, []string{roles.CodeAuthor}))
}

func TestCanChooseActionReferee(t *testing.T) {
	m := newManuscript(StateRefereeReview)
	m.Referees = []string{refereeEmail}

	assert.True(t, CanChooseAction(m, refereeEmail, []string{roles.CodeReferee}))

	// not assigned to this manuscript
	assert.False(t, CanChooseAction(m, randomEmail, []string{roles.CodeReferee}))

	// assigned but wrong state
	m.State = StateCopyEdit
	assert.False(t, CanChooseAction(m, refereeEmail, []string{roles.CodeReferee}))
}

func TestCanChooseActionEditor(t *testing.T) {
	m := newManuscript(StateSubmitted)

	assert.True(t, CanChooseAction(m, editorEmail, []string{roles.CodeEditor}))
	assert.True(t, CanChooseAction(m, editorEmail, []string{roles.CodeManagingEditor}))

	// no editor action states once published
	m.State = StatePublished
	assert.False(t, CanChooseAction(m, editorEmail, []string{roles.CodeEditor}))
}

func TestCanChooseActionDefaultDeny(t *testing.T) {
	m := newManuscript(StateSubmitted)

	assert.False(t, CanChooseAction(m, randomEmail, nil))
	assert.False(t, CanChooseAction(m, randomEmail, []string{roles.CodeAuthor}))
	assert.False(t, CanChooseAction(nil, editorEmail, []string{roles.CodeEditor}))
}

func TestValidActionsEditor(t *testing.T) {
	m := newManuscript(StateSubmitted)

	actions := ValidActions(m, editorEmail, []string{roles.CodeEditor})
	assert.Equal(t, []Action{ActionAssignRef, ActionReject}, actions)

	m.State = StateRefereeReview
	m.Referees = []string{refereeEmail}
	actions = ValidActions(m, editorEmail, []string{roles.CodeEditor})
	assert.Equal(t, []Action{ActionAssignRef, ActionDeleteRef, ActionAccept, ActionAcceptWithRev, ActionReject}, actions)
}

func TestValidActionsEditorOwnManuscript(t *testing.T) {
	// an editor never reviews their own submission
	m := newManuscript(StateSubmitted)
	m.AuthorEmail = editorEmail

	actions := ValidActions(m, editorEmail, []string{roles.CodeEditor, roles.CodeAuthor})
	assert.Equal(t, []Action{ActionWithdraw}, actions)
}

func TestValidActionsAuthor(t *testing.T) {
	m := newManuscript(StateAuthorReview)

	actions := ValidActions(m, authorEmail, []string{roles.CodeAuthor})
	assert.Equal(t, []Action{ActionDone, ActionWithdraw}, actions)

	m.State = StateAuthorRevision
	actions = ValidActions(m, authorEmail, []string{roles.CodeAuthor})
	assert.Equal(t, []Action{ActionDone, ActionWithdraw}, actions)

	// in an editor-owned state the author can still withdraw
	m.State = StateEditorReview
	actions = ValidActions(m, authorEmail, []string{roles.CodeAuthor})
	assert.Equal(t, []Action{ActionWithdraw}, actions)
}

func TestValidActionsReferee(t *testing.T) {
	m := newManuscript(StateRefereeReview)
	m.Referees = []string{refereeEmail}

	actions := ValidActions(m, refereeEmail, []string{roles.CodeReferee})
	assert.Equal(t, []Action{ActionSubmitReview}, actions)

	// unassigned referee gets nothing
	actions = ValidActions(m, randomEmail, []string{roles.CodeReferee})
	assert.Empty(t, actions)
}

func TestValidActionsMultipleRolesDeduplicated(t *testing.T) {
	m := newManuscript(StateSubmitted)

	actions := ValidActions(m, editorEmail, []string{roles.CodeEditor, roles.CodeManagingEditor})
	assert.Equal(t, []Action{ActionAssignRef, ActionReject}, actions)
}

func TestValidActionsDefaultDeny(t *testing.T) {
	m := newManuscript(StateSubmitted)
	assert.Empty(t, ValidActions(m, randomEmail, []string{roles.CodeReferee}))
}

func TestCanMoveAction(t *testing.T) {
	m := newManuscript(StateSubmitted)

	assert.True(t, CanMoveAction(m, editorEmail, []string{roles.CodeEditor}))
	assert.True(t, CanMoveAction(m, editorEmail, []string{roles.CodeConsultingEditor}))

	// authors never force-move, even editors on their own manuscripts
	assert.False(t, CanMoveAction(m, authorEmail, []string{roles.CodeEditor}))
	assert.False(t, CanMoveAction(m, refereeEmail, []string{roles.CodeReferee}))
	assert.False(t, CanMoveAction(nil, editorEmail, []string{roles.CodeEditor}))
}

func TestValidStates(t *testing.T) {
	m := newManuscript(StateSubmitted)

	states := ValidStates(m, editorEmail, []string{roles.CodeEditor})
	assert.Len(t, states, 8, "all states minus current minus withdrawn")
	assert.NotContains(t, states, StateSubmitted)
	assert.NotContains(t, states, StateWithdrawn)
	assert.Contains(t, states, StatePublished)

	assert.Empty(t, ValidStates(m, authorEmail, []string{roles.CodeAuthor}))
}
