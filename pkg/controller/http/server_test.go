package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docsbotai/dashboard/pkg/adapter/identity"
	"github.com/docsbotai/dashboard/pkg/adapter/storage"
	server "github.com/docsbotai/dashboard/pkg/controller/http"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/docsbotai/dashboard/pkg/repository"
	"github.com/docsbotai/dashboard/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type testServer struct {
	srv   *server.Server
	repo  *repository.Memory
	local *identity.Local
}

func newTestServer(t *testing.T, opts ...server.Options) *testServer {
	t.Helper()

	local, err := identity.NewLocal([]byte("0123456789abcdef0123456789abcdef"))
	gt.NoError(t, err).Required()
	repo := repository.NewMemory()

	uc := usecase.New(
		usecase.WithRepository(repo),
		usecase.WithSessionVerifier(local),
		usecase.WithUserDirectory(local),
		usecase.WithStorageClient(storage.NewMemoryClient()),
	)

	return &testServer{
		srv:   server.New(uc, opts...),
		repo:  repo,
		local: local,
	}
}

func (x *testServer) session(t *testing.T, uid types.UserID, superAdmin bool) *http.Cookie {
	t.Helper()
	token, err := x.local.IssueSessionToken(context.Background(), &auth.Identity{
		UID:        uid,
		Email:      uid.String() + "@example.com",
		SuperAdmin: superAdmin,
	}, time.Hour)
	gt.NoError(t, err).Required()
	return &http.Cookie{Name: auth.SessionCookieName, Value: token.String()}
}

func (x *testServer) putTeam(t *testing.T, owner types.UserID, members ...types.UserID) *team.Team {
	t.Helper()
	ctx := context.Background()
	tm := team.New(ctx, "Acme", owner)
	for _, m := range members {
		var err error
		tm, err = tm.AddMember(ctx, m)
		gt.NoError(t, err).Required()
	}
	gt.NoError(t, x.repo.PutTeam(ctx, tm)).Required()
	return tm
}

func (x *testServer) do(t *testing.T, method, path string, cookie *http.Cookie, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	x.srv.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")
	var resp struct {
		Message string `json:"message"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
	return resp.Message
}

func TestTeamAccessGate(t *testing.T) {
	ts := newTestServer(t)
	tm := ts.putTeam(t, "owner", "member")
	path := "/api/teams/" + tm.ID.String()

	t.Run("no cookie is 401", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, path, nil, nil)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
		gt.Equal(t, decodeMessage(t, w), "session cookie is not set")
	})

	t.Run("invalid cookie is 401", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, path, &http.Cookie{Name: auth.SessionCookieName, Value: "garbage"}, nil)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
		gt.Equal(t, decodeMessage(t, w), "Unauthenticated")
	})

	t.Run("non-member is 403 with message", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, path, ts.session(t, "stranger", false), nil)
		gt.Equal(t, w.Code, http.StatusForbidden)
		gt.Equal(t, decodeMessage(t, w), "User does not have access to team")
	})

	t.Run("unknown team is 403", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/teams/"+types.NewTeamID().String(), ts.session(t, "owner", false), nil)
		gt.Equal(t, w.Code, http.StatusForbidden)
		gt.Equal(t, decodeMessage(t, w), "User does not have access to team")
	})

	t.Run("member reads the team", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, path, ts.session(t, "member", false), nil)
		gt.Equal(t, w.Code, http.StatusOK)

		var got team.Team
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &got)).Required()
		gt.Equal(t, got.ID, tm.ID)
		gt.Equal(t, got.Roles["owner"], team.RoleOwner)
	})

	t.Run("super admin reads any team", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, path, ts.session(t, "admin", true), nil)
		gt.Equal(t, w.Code, http.StatusOK)
	})
}

func TestSessionRoutes(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("login sets the session cookie", func(t *testing.T) {
		idToken, err := ts.local.IssueIDToken(ctx, &auth.Identity{UID: "user-1", Email: "user-1@example.com"})
		gt.NoError(t, err).Required()

		w := ts.do(t, http.MethodPost, "/api/login", nil, map[string]string{"idToken": idToken.String()})
		gt.Equal(t, w.Code, http.StatusNoContent)

		cookies := w.Result().Cookies()
		gt.A(t, cookies).Length(1).Required()
		c := cookies[0]
		gt.Equal(t, c.Name, "docsbot-auth")
		gt.Equal(t, c.MaxAge, 1209600)
		gt.True(t, c.HttpOnly)
		gt.True(t, c.Secure)
		gt.Equal(t, c.SameSite, http.SameSiteLaxMode)
		gt.Equal(t, c.Path, "/")

		w = ts.do(t, http.MethodGet, "/api/account", &http.Cookie{Name: c.Name, Value: c.Value}, nil)
		gt.Equal(t, w.Code, http.StatusOK)
		var account map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &account)).Required()
		gt.Equal(t, account["uid"], any("user-1"))
		gt.Equal(t, account["superAdmin"], any(false))
	})

	t.Run("login with invalid ID token is 401", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/login", nil, map[string]string{"idToken": "bogus"})
		gt.Equal(t, w.Code, http.StatusUnauthorized)
		gt.Equal(t, decodeMessage(t, w), "Unauthenticated")
		gt.A(t, w.Result().Cookies()).Length(0)
	})

	t.Run("login with malformed body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{"))
		w := httptest.NewRecorder()
		ts.srv.ServeHTTP(w, req)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, decodeMessage(t, w), "Invalid request")
	})

	t.Run("login without ID token is 400", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/login", nil, map[string]string{})
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("logout expires the cookie regardless of session", func(t *testing.T) {
		for _, cookie := range []*http.Cookie{
			nil,
			{Name: auth.SessionCookieName, Value: "garbage"},
			ts.session(t, "user-1", false),
		} {
			w := ts.do(t, http.MethodPost, "/api/logout", cookie, nil)
			gt.Equal(t, w.Code, http.StatusNoContent)

			header := w.Header().Get("Set-Cookie")
			gt.S(t, header).Contains("docsbot-auth=")
			gt.S(t, header).Contains("Max-Age=0")
			gt.S(t, header).Contains("HttpOnly")
		}
	})

	t.Run("disallowed method is 400", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/logout", nil, nil)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, decodeMessage(t, w), "Method not allowed")
	})

	t.Run("account requires a session", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/account", nil, nil)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})
}

func TestDevModeCookie(t *testing.T) {
	ts := newTestServer(t, server.WithDevMode(true))
	w := ts.do(t, http.MethodPost, "/api/logout", nil, nil)
	gt.Equal(t, w.Code, http.StatusNoContent)
	gt.False(t, strings.Contains(w.Header().Get("Set-Cookie"), "Secure"))
}

func TestPages(t *testing.T) {
	ts := newTestServer(t)

	t.Run("anonymous visitor gets the page", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/login?redirect=/app/team", nil, nil)
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Header().Get("Content-Type")).Contains("text/html")
		gt.S(t, w.Body.String()).Contains("Sign in")
	})

	t.Run("signed in visitor is redirected to an allowed target", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/login?redirect=/app/team", ts.session(t, "user-1", false), nil)
		gt.Equal(t, w.Code, http.StatusFound)
		gt.Equal(t, w.Header().Get("Location"), "/app/team")
	})

	t.Run("external target falls back to the landing path", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/register?redirect=https://evil.example", ts.session(t, "user-1", false), nil)
		gt.Equal(t, w.Code, http.StatusFound)
		gt.Equal(t, w.Header().Get("Location"), "/app")
	})

	t.Run("invalid session renders the page", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/register", &http.Cookie{Name: auth.SessionCookieName, Value: "garbage"}, nil)
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains("Create account")
	})
}

func TestTeamRoutes(t *testing.T) {
	ts := newTestServer(t)
	tm := ts.putTeam(t, "owner", "member")
	ts.local.AddUser(&auth.User{UID: "invitee", Email: "invitee@example.com"})
	base := "/api/teams/" + tm.ID.String()

	t.Run("create team", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/teams", ts.session(t, "founder", false), map[string]string{"name": "New Team"})
		gt.Equal(t, w.Code, http.StatusCreated)

		var created team.Team
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &created)).Required()
		gt.Equal(t, created.Name, "New Team")
		gt.Equal(t, created.Roles["founder"], team.RoleOwner)
	})

	t.Run("create team with empty name is 400", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/teams", ts.session(t, "founder", false), map[string]string{"name": ""})
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, decodeMessage(t, w), "team name is required")
	})

	t.Run("member cannot rename", func(t *testing.T) {
		w := ts.do(t, http.MethodPatch, base, ts.session(t, "member", false), map[string]string{"name": "Mine"})
		gt.Equal(t, w.Code, http.StatusForbidden)
	})

	t.Run("owner renames", func(t *testing.T) {
		w := ts.do(t, http.MethodPatch, base, ts.session(t, "owner", false), map[string]string{"name": "Acme Corp"})
		gt.Equal(t, w.Code, http.StatusOK)
	})

	t.Run("owner invites a registered user", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, base+"/members", ts.session(t, "owner", false), map[string]string{"email": "invitee@example.com"})
		gt.Equal(t, w.Code, http.StatusOK)

		w = ts.do(t, http.MethodGet, base, ts.session(t, "invitee", false), nil)
		gt.Equal(t, w.Code, http.StatusOK)
	})

	t.Run("inviting an unknown email is 404", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, base+"/members", ts.session(t, "owner", false), map[string]string{"email": "nobody@example.com"})
		gt.Equal(t, w.Code, http.StatusNotFound)
	})

	t.Run("removing the owner is 400", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, base+"/members/owner", ts.session(t, "owner", false), nil)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("owner removes a member", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, base+"/members/member", ts.session(t, "owner", false), nil)
		gt.Equal(t, w.Code, http.StatusOK)

		w = ts.do(t, http.MethodGet, base, ts.session(t, "member", false), nil)
		gt.Equal(t, w.Code, http.StatusForbidden)
	})
}

func TestBotRoutes(t *testing.T) {
	ts := newTestServer(t)
	tm := ts.putTeam(t, "owner", "member")
	base := "/api/teams/" + tm.ID.String() + "/bots"
	member := ts.session(t, "member", false)

	w := ts.do(t, http.MethodPost, base, member, map[string]string{"name": "Support", "description": "FAQ"})
	gt.Equal(t, w.Code, http.StatusCreated)
	var created bot.Bot
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &created)).Required()
	gt.Equal(t, created.TeamID, tm.ID)

	t.Run("list", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, base, member, nil)
		gt.Equal(t, w.Code, http.StatusOK)

		var resp struct {
			Bots []bot.Bot `json:"bots"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.A(t, resp.Bots).Length(1)
	})

	t.Run("get", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, base+"/"+created.ID.String(), member, nil)
		gt.Equal(t, w.Code, http.StatusOK)
	})

	t.Run("get unknown bot is 404", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, base+"/"+types.NewBotID().String(), member, nil)
		gt.Equal(t, w.Code, http.StatusNotFound)
		gt.Equal(t, decodeMessage(t, w), "bot not found")
	})

	t.Run("non-member cannot list", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, base, ts.session(t, "stranger", false), nil)
		gt.Equal(t, w.Code, http.StatusForbidden)
	})

	t.Run("upload URL", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, base+"/"+created.ID.String()+"/sources/upload-url", member,
			map[string]string{"fileName": "guide.pdf", "contentType": "application/pdf"})
		gt.Equal(t, w.Code, http.StatusOK)

		var resp struct {
			URL       string    `json:"url"`
			Object    string    `json:"object"`
			ExpiresAt time.Time `json:"expiresAt"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.S(t, resp.Object).Contains("/sources/")
		gt.True(t, resp.URL != "")
		gt.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("delete", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, base+"/"+created.ID.String(), member, nil)
		gt.Equal(t, w.Code, http.StatusNoContent)

		w = ts.do(t, http.MethodDelete, base+"/"+created.ID.String(), member, nil)
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/api/nothing", nil, nil)
	gt.Equal(t, w.Code, http.StatusNotFound)
	gt.Equal(t, decodeMessage(t, w), "Not found")
}
