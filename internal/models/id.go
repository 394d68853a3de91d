package models

import "github.com/oklog/ulid/v2"

// Identifier newtypes. Every entity carries its own id type so a TeamID can
// never be passed where an OkrID is expected.
type (
	UserID       string
	TeamID       string
	InvitationID string
	OkrID        string
	KeyResultID  string
	ReviewID     string
)

func newID() string {
	return ulid.Make().String()
}

func NewUserID() UserID             { return UserID(newID()) }
func NewTeamID() TeamID             { return TeamID(newID()) }
func NewInvitationID() InvitationID { return InvitationID(newID()) }
func NewOkrID() OkrID               { return OkrID(newID()) }
func NewKeyResultID() KeyResultID   { return KeyResultID(newID()) }
func NewReviewID() ReviewID         { return ReviewID(newID()) }
