// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"councilvote/cliparse"
	"councilvote/handlers"
	"councilvote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidacy registry
	mux.HandleFunc("POST /api/candidates/apply", middleware.WithLogging(candidateHandler.Apply))
	mux.HandleFunc("GET /api/candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("GET /api/candidates/mine", middleware.WithLogging(candidateHandler.Mine))
	mux.HandleFunc("GET /api/candidates/all", middleware.WithLogging(candidateHandler.ListAll))

	// Moderation (admin)
	mux.HandleFunc("POST /api/admin/candidates/{id}/approve", middleware.WithLogging(candidateHandler.Approve))
	mux.HandleFunc("POST /api/admin/candidates/{id}/reject", middleware.WithLogging(candidateHandler.Reject))
	mux.HandleFunc("POST /api/admin/candidates/{id}/disqualify", middleware.WithLogging(candidateHandler.ToggleDisqualify))

	// Ballots
	mux.HandleFunc("POST /api/votes", middleware.WithLogging(votingHandler.CastBallot))
	mux.HandleFunc("GET /api/votes/mine", middleware.WithLogging(votingHandler.MyBallot))

	// Results (voter-facing gated, admin live)
	mux.HandleFunc("GET /api/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/admin/results", middleware.WithLogging(resultsHandler.GetAdminResults))
	mux.HandleFunc("POST /api/admin/results/publish", middleware.WithLogging(resultsHandler.Publish))
	mux.HandleFunc("POST /api/admin/results/unpublish", middleware.WithLogging(resultsHandler.Unpublish))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("councilvote API v1"))
	})

	return mux
}
