// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"councilvote/auth"
	"councilvote/models"
)

const testSalt = "test-identity-salt"

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.IssueIdentityToken(auth.Identity{
		VoterID: "voter-1",
		Role:    role,
		Group:   models.GroupStudent,
	}, testSalt)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

func TestRequireIdentityMissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/candidates", nil)
	w := httptest.NewRecorder()

	_, ok := RequireIdentity(w, req, testSalt)
	if ok {
		t.Error("Expected failure without identity header")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireIdentityInvalidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/candidates", nil)
	req.Header.Set(IdentityHeader, "v1.bogus.token")
	w := httptest.NewRecorder()

	_, ok := RequireIdentity(w, req, testSalt)
	if ok {
		t.Error("Expected failure for invalid token")
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireIdentityValidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/candidates", nil)
	req.Header.Set(IdentityHeader, issueToken(t, models.RoleVoter))
	w := httptest.NewRecorder()

	id, ok := RequireIdentity(w, req, testSalt)
	if !ok {
		t.Fatalf("Expected success, got %d: %s", w.Code, w.Body.String())
	}
	if id.VoterID != "voter-1" || id.Group != models.GroupStudent {
		t.Errorf("Unexpected identity: %+v", id)
	}
}

func TestRequireAdminRejectsVoter(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/admin/results", nil)
	req.Header.Set(IdentityHeader, issueToken(t, models.RoleVoter))
	w := httptest.NewRecorder()

	_, ok := RequireAdmin(w, req, testSalt)
	if ok {
		t.Error("Expected failure for voter on admin route")
	}
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
}

func TestRequireAdminAcceptsAdmin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/admin/results", nil)
	req.Header.Set(IdentityHeader, issueToken(t, models.RoleAdmin))
	w := httptest.NewRecorder()

	id, ok := RequireAdmin(w, req, testSalt)
	if !ok {
		t.Fatalf("Expected success, got %d: %s", w.Code, w.Body.String())
	}
	if !id.IsAdmin() {
		t.Errorf("Expected admin identity, got %+v", id)
	}
}

func TestErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "already voted")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if body.Error != http.StatusText(http.StatusConflict) || body.Message != "already voted" {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/votes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Unexpected allow-origin: %s", got)
	}
}
