// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"councilvote/auth"
)

// IdentityHeader carries the externally-issued identity assertion.
const IdentityHeader = "X-Identity-Token"

// RequireIdentity verifies the request's identity token. On failure it
// writes a 401 response and returns ok=false; the handler should simply
// return.
func RequireIdentity(w http.ResponseWriter, r *http.Request, salt string) (auth.Identity, bool) {
	token := r.Header.Get(IdentityHeader)
	if token == "" {
		ErrorResponse(w, http.StatusUnauthorized, IdentityHeader+" header required")
		return auth.Identity{}, false
	}

	id, err := auth.VerifyIdentity(token, salt)
	if err != nil {
		ErrorResponse(w, http.StatusUnauthorized, "Invalid identity token")
		return auth.Identity{}, false
	}

	return id, true
}

// RequireAdmin verifies the identity and additionally demands the admin
// role, writing 401/403 as appropriate.
func RequireAdmin(w http.ResponseWriter, r *http.Request, salt string) (auth.Identity, bool) {
	id, ok := RequireIdentity(w, r, salt)
	if !ok {
		return auth.Identity{}, false
	}
	if !id.IsAdmin() {
		ErrorResponse(w, http.StatusForbidden, "Administrator role required")
		return auth.Identity{}, false
	}
	return id, true
}
