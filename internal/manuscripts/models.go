package manuscripts

import (
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateSubmitted      State = "SUB"
	StateRefereeReview  State = "REV"
	StateCopyEdit       State = "CED"
	StateRejected       State = "REJ"
	StateAuthorRevision State = "AUR"
	StateEditorReview   State = "ERV"
	StateAuthorReview   State = "ARV"
	StateFormatting     State = "FMT"
	StatePublished      State = "PUB"
	StateWithdrawn      State = "WIT"
)

type Action string

const (
	ActionAccept        Action = "ACC"
	ActionAcceptWithRev Action = "AWR"
	ActionAssignRef     Action = "ARF"
	ActionDeleteRef     Action = "DRF"
	ActionDone          Action = "DON"
	ActionReject        Action = "REJ"
	ActionSubmitReview  Action = "SRV"
	ActionWithdraw      Action = "WIT"
)

var stateNames = map[State]string{
	StateSubmitted:      "Submitted",
	StateRefereeReview:  "Referee Review",
	StateCopyEdit:       "Copy Edit",
	StateRejected:       "Rejected",
	StateAuthorRevision: "Author Revision",
	StateEditorReview:   "Editor Review",
	StateAuthorReview:   "Author Review",
	StateFormatting:     "Formatting",
	StatePublished:      "Published",
	StateWithdrawn:      "Withdrawn",
}

var actionNames = map[Action]string{
	ActionAccept:        "Accept",
	ActionAcceptWithRev: "Accept with Revisions",
	ActionAssignRef:     "Assign Referee",
	ActionDeleteRef:     "Remove Referee",
	ActionDone:          "Done",
	ActionReject:        "Reject",
	ActionSubmitReview:  "Submit Review",
	ActionWithdraw:      "Withdraw",
}

type Manuscript struct {
	ID          uuid.UUID `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	AuthorName  string    `json:"author_name" bson:"author_name"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	Referees    []string  `json:"referees" bson:"referees"`
	State       State     `json:"state" bson:"state"`
	Text        string    `json:"text" bson:"text"`
	Abstract    string    `json:"abstract" bson:"abstract"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// HasReferee reports whether email is already on the referee list.
func (m *Manuscript) HasReferee(email string) bool {
	for _, ref := range m.Referees {
		if ref == email {
			return true
		}
	}
	return false
}
