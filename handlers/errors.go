// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"councilvote/middleware"
	"councilvote/models"
)

// writeCoreError maps the core failure taxonomy onto HTTP statuses. Typed
// failures surface their message (kind plus offending key); anything else
// is an internal error that gets logged but not leaked.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidCandidate):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("internal error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
