package http

import (
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
)

// newSessionCookie builds the session cookie. maxAge follows http.Cookie: a
// negative value is sent as "Max-Age=0" and removes the cookie.
func newSessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func setCookie(w http.ResponseWriter, cookie *http.Cookie) error {
	if err := cookie.Valid(); err != nil {
		return goerr.Wrap(err, "invalid cookie", goerr.T(errs.TagInternal), goerr.V("name", cookie.Name))
	}
	http.SetCookie(w, cookie)
	return nil
}

type loginRequest struct {
	IDToken string `json:"idToken" masq:"secret"`
}

// loginHandler exchanges an ID token for a session cookie.
func loginHandler(uc interfaces.SessionUsecases, secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		token, err := uc.CreateSession(r.Context(), auth.IDToken(req.IDToken))
		if err != nil {
			handleError(w, r, err)
			return
		}

		cookie := newSessionCookie(token.String(), int(auth.SessionDuration.Seconds()), secure)
		if err := setCookie(w, cookie); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// logoutHandler expires the session cookie. It does not look at the current
// cookie, so it succeeds for valid, invalid and missing sessions alike.
func logoutHandler(secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := setCookie(w, newSessionCookie("", -1, secure)); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type accountResponse struct {
	UID        string `json:"uid"`
	Email      string `json:"email,omitempty"`
	SuperAdmin bool   `json:"superAdmin"`
}

func accountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.IdentityFromContext(r.Context())
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "identity is not resolved", goerr.T(errs.TagInternal)))
			return
		}

		writeJSON(w, r, http.StatusOK, accountResponse{
			UID:        id.UID.String(),
			Email:      id.Email,
			SuperAdmin: id.SuperAdmin,
		})
	}
}
