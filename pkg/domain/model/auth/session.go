package auth

import "time"

const (
	// SessionCookieName is the cookie holding the session token.
	SessionCookieName = "docsbot-auth"

	// SessionDuration is both the session token lifetime and the cookie Max-Age.
	SessionDuration = 14 * 24 * time.Hour
)

// SessionToken is the opaque, signed credential stored in the session cookie.
type SessionToken string

func (x SessionToken) String() string {
	return string(x)
}

// IDToken is a short-lived credential from the client sign-in flow that is
// exchanged for a SessionToken.
type IDToken string

func (x IDToken) String() string {
	return string(x)
}
