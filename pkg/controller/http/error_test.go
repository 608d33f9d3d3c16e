package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	server "github.com/docsbotai/dashboard/pkg/controller/http"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandleError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "unauthenticated",
			err:     goerr.Wrap(errs.ErrNoSessionCookie, "no cookie", goerr.T(errs.TagUnauthenticated)),
			status:  http.StatusUnauthorized,
			message: "session cookie is not set",
		},
		{
			name:    "token rejection reason is not exposed",
			err:     goerr.Wrap(goerr.New("unexpected token use"), "session cookie rejected", goerr.T(errs.TagUnauthenticated)),
			status:  http.StatusUnauthorized,
			message: "Unauthenticated",
		},
		{
			name:    "empty token is not exposed",
			err:     goerr.New("empty token", goerr.T(errs.TagUnauthenticated)),
			status:  http.StatusUnauthorized,
			message: "Unauthenticated",
		},
		{
			name:    "forbidden keeps the access message",
			err:     goerr.Wrap(errs.ErrNoTeamAccess, "not a member", goerr.T(errs.TagForbidden)),
			status:  http.StatusForbidden,
			message: "User does not have access to team",
		},
		{
			name:    "not found",
			err:     goerr.Wrap(goerr.New("bot not found", goerr.T(errs.TagNotFound)), "failed"),
			status:  http.StatusNotFound,
			message: "bot not found",
		},
		{
			name:    "validation",
			err:     goerr.New("team name is required", goerr.T(errs.TagValidation)),
			status:  http.StatusBadRequest,
			message: "team name is required",
		},
		{
			name:    "library error is not exposed",
			err:     goerr.Wrap(errors.New("unexpected EOF"), "invalid body", goerr.T(errs.TagInvalidRequest)),
			status:  http.StatusBadRequest,
			message: "Invalid request",
		},
		{
			name:    "service error",
			err:     goerr.New("certificate fetch failed", goerr.T(errs.TagService)),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
		{
			name:    "untagged error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			server.HandleError(w, r, tc.err)

			gt.Equal(t, w.Code, tc.status)
			gt.Equal(t, w.Header().Get("Content-Type"), "application/json")

			var resp map[string]string
			gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
			gt.Equal(t, resp["message"], tc.message)
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	h := server.PanicRecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	gt.Equal(t, w.Code, http.StatusInternalServerError)
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	h := server.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.True(t, w.Header().Get("X-Request-Id") != "")
}

func TestSessionCookie(t *testing.T) {
	c := server.NewSessionCookie("token", 1209600, true)
	gt.NoError(t, c.Valid())
	gt.S(t, c.String()).Contains("Max-Age=1209600")
	gt.S(t, c.String()).Contains("SameSite=Lax")
	gt.S(t, c.String()).Contains("Secure")

	t.Run("invalid value cannot be set", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := server.SetCookie(w, server.NewSessionCookie("bad\x00value", 0, true))
		gt.Error(t, err)
		gt.Equal(t, w.Header().Get("Set-Cookie"), "")
	})
}
