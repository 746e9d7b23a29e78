// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"councilvote/ballots"
	"councilvote/cliparse"
	"councilvote/middleware"
	"councilvote/models"
)

type VotingHandler struct {
	store *ballots.Store
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: ballots.New(db), cfg: cfg}
}

// CastBallot handles POST /api/votes
// Voters cast within their own identity group; the request names only the
// position and the chosen candidacy.
func (h *VotingHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt)
	if !ok {
		return
	}
	if id.IsAdmin() {
		middleware.ErrorResponse(w, http.StatusForbidden, "Administrators do not vote")
		return
	}

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	b, err := h.store.Cast(id.VoterID, id.Group, req.Position, req.CandidacyID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		Ballot:  b,
		Message: "Ballot cast",
	})
}

// MyBallot handles GET /api/votes/mine?position=
// Lookup for UI disablement; absence is a 200 with found=false, never an
// error.
func (h *VotingHandler) MyBallot(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt)
	if !ok {
		return
	}

	position := r.URL.Query().Get("position")
	if position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position is required")
		return
	}

	b, found, err := h.store.MyBallot(id.VoterID, id.Group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	if !found {
		middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
			"found": false,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"found":  true,
		"ballot": b,
	})
}
