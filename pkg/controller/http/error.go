package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type errorResponse struct {
	Message string `json:"message"`
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagUnauthenticated):
		logger.Warn("Unauthenticated", "error", err)
		writeError(w, r, http.StatusUnauthorized, sentinelMessage(err, "Unauthenticated"))

	case goerr.HasTag(err, errs.TagForbidden):
		logger.Warn("Forbidden", "error", err)
		writeError(w, r, http.StatusForbidden, publicMessage(err, "Forbidden"))

	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		writeError(w, r, http.StatusNotFound, publicMessage(err, "Not found"))

	case goerr.HasTag(err, errs.TagValidation), goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", "error", err)
		writeError(w, r, http.StatusBadRequest, publicMessage(err, "Invalid request"))

	default:
		errs.Handle(r.Context(), err)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

func rootCause(err error) error {
	var root error
	for e := err; e != nil; e = errors.Unwrap(e) {
		root = e
	}
	return root
}

// publicMessage returns the message of the root cause when it was raised by
// this service, and fallback otherwise. Messages from libraries and remote
// services are not exposed.
func publicMessage(err error, fallback string) string {
	root := rootCause(err)
	if _, ok := root.(*goerr.Error); ok || errs.IsPublic(root) {
		return root.Error()
	}
	return fallback
}

// sentinelMessage only exposes the public sentinels. Token verification
// failures describe why a credential was rejected and stay in the logs.
func sentinelMessage(err error, fallback string) string {
	if root := rootCause(err); errs.IsPublic(root) {
		return root.Error()
	}
	return fallback
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, errorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(r.Context()).Error("failed to write response", logging.ErrAttr(err))
	}
}

const maxRequestBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(errs.TagInvalidRequest))
	}
	return nil
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	handleError(w, r, goerr.Wrap(errs.ErrMethodNotAllowed, "method not allowed",
		goerr.T(errs.TagInvalidRequest),
		goerr.V("method", r.Method),
		goerr.V("path", r.URL.Path)))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "Not found")
}
