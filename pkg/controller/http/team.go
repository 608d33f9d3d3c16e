package http

import (
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/auth"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type teamNameRequest struct {
	Name string `json:"name"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

func createTeamHandler(uc interfaces.TeamUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.IdentityFromContext(r.Context())
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "identity is not resolved", goerr.T(errs.TagInternal)))
			return
		}

		var req teamNameRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		t, err := uc.CreateTeam(r.Context(), id, req.Name)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, t)
	}
}

func getTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, access.Team)
	}
}

func renameTeamHandler(uc interfaces.TeamUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		var req teamNameRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		t, err := uc.RenameTeam(r.Context(), access, req.Name)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, t)
	}
}

func inviteMemberHandler(uc interfaces.TeamUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		var req inviteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		t, err := uc.InviteMember(r.Context(), access, req.Email)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, t)
	}
}

func removeMemberHandler(uc interfaces.TeamUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		uid := types.UserID(chi.URLParam(r, "userID"))
		t, err := uc.RemoveMember(r.Context(), access, uid)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, t)
	}
}
