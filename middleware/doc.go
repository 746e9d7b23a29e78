// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Helpers

  - WithLogging: request start/completion logging with duration
  - JSONResponse / ErrorResponse: consistent JSON output
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support with preflight handling

# Identity

RequireIdentity and RequireAdmin extract and verify the X-Identity-Token
header, writing 401 (missing/invalid token) or 403 (non-admin on an admin
route) themselves:

	id, ok := middleware.RequireIdentity(w, r, cfg.IdentityTokenSalt)
	if !ok {
		return
	}

The returned auth.Identity carries the trusted {voter id, role, group}.
*/
package middleware
