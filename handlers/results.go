// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"councilvote/cliparse"
	"councilvote/middleware"
	"councilvote/models"
	"councilvote/publication"
	"councilvote/tally"
)

type ResultsHandler struct {
	engine *tally.Engine
	gate   *publication.Gate
	cfg    cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{engine: tally.New(db), gate: publication.New(db), cfg: cfg}
}

// GetResults handles GET /api/results?group=&position=
// Voter-facing: gated by the seat's publication flag. An unpublished seat
// answers 403 "results not published" so callers can tell withheld results
// apart from an empty tally. Administrators pass the gate.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt)
	if !ok {
		return
	}

	group, position, ok := seatParams(w, r)
	if !ok {
		return
	}

	published, err := h.gate.IsPublished(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	if !published && !id.IsAdmin() {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results not published yet")
		return
	}

	entries, err := h.engine.Tally(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Group:     group,
		Position:  position,
		Published: published,
		Results:   entries,
	})
}

// GetAdminResults handles GET /api/admin/results?group=&position=
// Always live, never gated: the tally's freshness does not depend on the
// publication flag.
func (h *ResultsHandler) GetAdminResults(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.RequireAdmin(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	group, position, ok := seatParams(w, r)
	if !ok {
		return
	}

	entries, err := h.engine.Tally(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	turnout, err := h.engine.Turnout(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	published, err := h.gate.IsPublished(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminResultsResponse{
		Group:     group,
		Position:  position,
		Published: published,
		Turnout:   turnout,
		Results:   entries,
	})
}

// Publish handles POST /api/admin/results/publish
func (h *ResultsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublication(w, r, true)
}

// Unpublish handles POST /api/admin/results/unpublish
func (h *ResultsHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublication(w, r, false)
}

func (h *ResultsHandler) setPublication(w http.ResponseWriter, r *http.Request, publish bool) {
	if _, ok := middleware.RequireAdmin(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	var req models.PublicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var err error
	if publish {
		err = h.gate.Publish(req.Group, req.Position)
	} else {
		err = h.gate.Unpublish(req.Group, req.Position)
	}
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PublicationResponse{
		Group:     req.Group,
		Position:  req.Position,
		Published: publish,
	})
}

func seatParams(w http.ResponseWriter, r *http.Request) (group, position string, ok bool) {
	group = r.URL.Query().Get("group")
	position = r.URL.Query().Get("position")
	if group == "" || position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group and position are required")
		return "", "", false
	}
	if !models.ValidGroup(group) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown group")
		return "", "", false
	}
	return group, position, true
}
