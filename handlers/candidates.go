// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/dustin/go-humanize"

	"councilvote/cliparse"
	"councilvote/middleware"
	"councilvote/models"
	"councilvote/registry"
)

type CandidateHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewCandidateHandler(db *sql.DB, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{reg: registry.New(db), cfg: cfg}
}

// Apply handles POST /api/candidates/apply
func (h *CandidateHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt)
	if !ok {
		return
	}

	var req models.ApplyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.reg.Submit(id.VoterID, req.Group, req.Position, registry.SubmitFields{
		DisplayName: req.DisplayName,
		Department:  req.Department,
		Manifesto:   req.Manifesto,
		PhotoRef:    req.PhotoRef,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.ApplyResponse{
		Candidacy: c,
		Message:   "Application submitted",
	})
}

// List handles GET /api/candidates?group=&position=
// Voter-facing approved list: non-disqualified first, alphabetical within
// each bucket.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	group := r.URL.Query().Get("group")
	position := r.URL.Query().Get("position")
	if group == "" || position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group and position are required")
		return
	}
	if !models.ValidGroup(group) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown group")
		return
	}

	candidates, err := h.reg.ListApproved(group, position)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: candidates,
		Count:      len(candidates),
	})
}

// Mine handles GET /api/candidates/mine
func (h *CandidateHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.RequireIdentity(w, r, h.cfg.IdentityTokenSalt)
	if !ok {
		return
	}

	candidates, err := h.reg.FindByApplicant(id.VoterID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: candidates,
		Count:      len(candidates),
	})
}

// ListAll handles GET /api/candidates/all?group=&position= (admin view)
func (h *CandidateHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.RequireAdmin(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	group := r.URL.Query().Get("group")
	if group != "" && !models.ValidGroup(group) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown group")
		return
	}

	candidates, err := h.reg.ListAll(group, r.URL.Query().Get("position"))
	if err != nil {
		writeCoreError(w, err)
		return
	}

	list := make([]models.AdminCandidate, len(candidates))
	for i, c := range candidates {
		list[i] = models.AdminCandidate{
			Candidacy:  c,
			AppliedAgo: humanize.Time(c.CreatedAt),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminCandidateListResponse{
		Candidates: list,
		Count:      len(list),
	})
}

// Approve handles POST /api/admin/candidates/{id}/approve
func (h *CandidateHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, models.StatusApproved)
}

// Reject handles POST /api/admin/candidates/{id}/reject
func (h *CandidateHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, models.StatusRejected)
}

func (h *CandidateHandler) moderate(w http.ResponseWriter, r *http.Request, status string) {
	if _, ok := middleware.RequireAdmin(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	c, err := h.reg.SetModerationStatus(id, status)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ApplyResponse{
		Candidacy: c,
		Message:   "Moderation status set",
	})
}

// ToggleDisqualify handles POST /api/admin/candidates/{id}/disqualify
func (h *CandidateHandler) ToggleDisqualify(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.RequireAdmin(w, r, h.cfg.IdentityTokenSalt); !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	c, err := h.reg.ToggleDisqualified(id)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ApplyResponse{
		Candidacy: c,
		Message:   "Disqualification toggled",
	})
}
