package http

import (
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	router  *chi.Mux
	devMode bool // development mode sends the session cookie without Secure
}

type Options func(*Server)

// WithDevMode allows the session cookie over plain HTTP for local development.
func WithDevMode(enabled bool) Options {
	return func(s *Server) {
		s.devMode = enabled
	}
}

type UseCase interface {
	interfaces.SessionUsecases
	interfaces.TeamUsecases
	interfaces.BotUsecases
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}
	secure := !s.devMode

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	// Must be set before Route so that sub-routers inherit them.
	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/login", pageHandler(uc, "login.html"))
	r.Get("/register", pageHandler(uc, "register.html"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", loginHandler(uc, secure))
		r.Post("/logout", logoutHandler(secure))

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth(uc))

			r.Get("/account", accountHandler())
			r.Post("/teams", createTeamHandler(uc))

			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Use(teamAccess(uc))

				r.Get("/", getTeamHandler())
				r.Patch("/", renameTeamHandler(uc))

				r.Post("/members", inviteMemberHandler(uc))
				r.Delete("/members/{userID}", removeMemberHandler(uc))

				r.Get("/bots", listBotsHandler(uc))
				r.Post("/bots", createBotHandler(uc))
				r.Get("/bots/{botID}", getBotHandler(uc))
				r.Delete("/bots/{botID}", deleteBotHandler(uc))
				r.Post("/bots/{botID}/sources/upload-url", sourceUploadURLHandler(uc))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
