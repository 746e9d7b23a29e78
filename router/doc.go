// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method-prefixed
ServeMux patterns.

	mux := router.NewRouter(db, cfg)

All API routes are wrapped with request logging. Authorization lives in the
handlers themselves (identity token verification per route), not the
router.
*/
package router
