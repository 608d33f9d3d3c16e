package errs

import (
	"errors"
)

var (
	ErrNoSessionCookie  = errors.New("session cookie is not set")
	ErrNoTeamAccess     = errors.New("User does not have access to team")
	ErrMethodNotAllowed = errors.New("Method not allowed")
)

// IsPublic reports whether err is a sentinel whose message may be shown to clients as is.
func IsPublic(err error) bool {
	for _, public := range []error{ErrNoSessionCookie, ErrNoTeamAccess, ErrMethodNotAllowed} {
		if err == public {
			return true
		}
	}
	return false
}
