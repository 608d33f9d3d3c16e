package types

import (
	"github.com/google/uuid"
)

type TeamID string

func (x TeamID) String() string {
	return string(x)
}

func NewTeamID() TeamID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return TeamID(id.String())
}

// Validate checks the ID is usable as a Firestore document ID. Team IDs created
// before the UUID scheme are arbitrary strings, so only the document ID rules apply.
func (x TeamID) Validate() error {
	return validateDocumentID(string(x), "team ID")
}

const (
	EmptyTeamID TeamID = ""
)

type UserID string

func (x UserID) String() string {
	return string(x)
}

func (x UserID) Validate() error {
	return validateDocumentID(string(x), "user ID")
}
