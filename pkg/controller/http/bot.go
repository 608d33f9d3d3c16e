package http

import (
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/go-chi/chi/v5"
)

type createBotRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type uploadURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type botListResponse struct {
	Bots any `json:"bots"`
}

func botIDParam(r *http.Request) types.BotID {
	return types.BotID(chi.URLParam(r, "botID"))
}

func listBotsHandler(uc interfaces.BotUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		bots, err := uc.ListBots(r.Context(), access)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, botListResponse{Bots: bots})
	}
}

func createBotHandler(uc interfaces.BotUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		var req createBotRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		b, err := uc.CreateBot(r.Context(), access, req.Name, req.Description)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, b)
	}
}

func getBotHandler(uc interfaces.BotUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		b, err := uc.GetBot(r.Context(), access, botIDParam(r))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, b)
	}
}

func deleteBotHandler(uc interfaces.BotUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		if err := uc.DeleteBot(r.Context(), access, botIDParam(r)); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func sourceUploadURLHandler(uc interfaces.BotUsecases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		access, err := accessFrom(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		var req uploadURLRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		signed, err := uc.IssueSourceUploadURL(r.Context(), access, botIDParam(r), req.FileName, req.ContentType)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, signed)
	}
}
