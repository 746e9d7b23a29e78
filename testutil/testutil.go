// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"councilvote/auth"
	"councilvote/cliparse"
	"councilvote/db"
	"councilvote/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database; it disappears when the last
// connection closes at test cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              5000,
		DatabaseURL:       "file:test?mode=memory",
		DatabaseType:      "sqlite",
		IdentityTokenSalt: "test-identity-salt",
	}
}

// VoterToken issues an identity token for a voter in the given group
func VoterToken(t *testing.T, cfg cliparse.Config, voterID, group string) string {
	t.Helper()
	token, err := auth.IssueIdentityToken(auth.Identity{
		VoterID: voterID,
		Role:    models.RoleVoter,
		Group:   group,
	}, cfg.IdentityTokenSalt)
	if err != nil {
		t.Fatalf("Failed to issue voter token: %v", err)
	}
	return token
}

// AdminToken issues an identity token for an administrator
func AdminToken(t *testing.T, cfg cliparse.Config, adminID string) string {
	t.Helper()
	token, err := auth.IssueIdentityToken(auth.Identity{
		VoterID: adminID,
		Role:    models.RoleAdmin,
		Group:   models.GroupStudent,
	}, cfg.IdentityTokenSalt)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// SeedCandidacy inserts a candidacy directly and returns its ID.
// status is "pending", "approved" or "rejected".
func SeedCandidacy(t *testing.T, conn *sql.DB, applicantID, group, position, name, status string, disqualified bool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO candidacy (id, applicant_id, group_name, position, display_name,
		                       department, manifesto, photo_ref, status, disqualified, created_at)
		VALUES ($1, $2, $3, $4, $5, '', '', '', $6, $7, $8)
	`, id, applicantID, group, position, name, status, disqualified, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed candidacy: %v", err)
	}

	return id
}

// SeedBallot inserts a ballot directly and returns its ID
func SeedBallot(t *testing.T, conn *sql.DB, voterID, group, position, candidacyID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballot (id, voter_id, group_name, position, candidacy_id, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, voterID, group, position, candidacyID, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed ballot: %v", err)
	}

	return id
}

// SeedBallots casts n ballots for a candidacy from distinct voters
func SeedBallots(t *testing.T, conn *sql.DB, group, position, candidacyID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		SeedBallot(t, conn, uuid.NewString(), group, position, candidacyID)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
