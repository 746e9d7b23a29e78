// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the council
election API. Handlers are thin glue: they parse requests, resolve the
caller's identity, delegate to the core packages (registry, ballots, tally,
publication) and map typed core failures onto HTTP statuses.

# Handler Types

  - CandidateHandler: applications, voter/admin listings, moderation
  - VotingHandler: ballot casting and own-ballot lookup
  - ResultsHandler: gated voter results, live admin results, publish flags

Handlers are created via constructor functions that accept *sql.DB and
Config:

	candidateHandler := handlers.NewCandidateHandler(db, cfg)

# Candidate Flow

	POST /api/candidates/apply                 → Apply (voter)
	GET  /api/candidates?group=&position=      → List (approved, ordered)
	GET  /api/candidates/mine                  → Mine
	GET  /api/candidates/all                   → ListAll (admin)
	POST /api/admin/candidates/{id}/approve    → Approve (admin)
	POST /api/admin/candidates/{id}/reject     → Reject (admin)
	POST /api/admin/candidates/{id}/disqualify → ToggleDisqualify (admin)

# Voting and Results

	POST /api/votes                  → CastBallot (voter; seat from identity group)
	GET  /api/votes/mine?position=   → MyBallot
	GET  /api/results                → GetResults (gated for voters)
	GET  /api/admin/results          → GetAdminResults (always live)
	POST /api/admin/results/publish  → Publish
	POST /api/admin/results/unpublish → Unpublish

# Error Mapping

	models.ErrValidation       → 400
	models.ErrNotFound         → 404
	models.ErrConflict         → 409
	models.ErrInvalidCandidate → 422
	missing/invalid identity   → 401, wrong role → 403
*/
package handlers
