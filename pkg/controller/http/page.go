package http

import (
	"embed"
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/docsbotai/dashboard/pkg/utils/safe"
)

//go:embed static/*.html
var pages embed.FS

// pageHandler serves an unauthenticated page, or redirects visitors who are
// already signed in to the page named by the "redirect" query parameter.
func pageHandler(uc interfaces.SessionUsecases, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if target, ok := uc.RedirectIfAuthenticated(r.Context(), cookieHeader(r), r.URL.Query().Get("redirect")); ok {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		body, err := pages.ReadFile("static/" + name)
		if err != nil {
			logging.From(r.Context()).Error("page not found", "name", name, logging.ErrAttr(err))
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, body)
	}
}
