// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"councilvote/router"
	"councilvote/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := router.NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := router.NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := router.NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	req := httptest.NewRequest("DELETE", "/api/votes", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	mux := router.NewRouter(testutil.SetupTestDB(t), testutil.GetTestConfig())

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/candidates?group=student&position=president"},
		{"GET", "/api/candidates/mine"},
		{"GET", "/api/candidates/all"},
		{"GET", "/api/votes/mine?position=president"},
		{"GET", "/api/results?group=student&position=president"},
		{"GET", "/api/admin/results?group=student&position=president"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}
