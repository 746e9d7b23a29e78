// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the council election API server.

Councilvote runs a multi-constituency council election: candidate
applications with admin moderation, one ballot per voter per seat, live
tallying, and per-seat publication gating of voter-visible results.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL="file:election.db" IDENTITY_TOKEN_SALT=... go run .

Or with flags:

	go run . -p 5000 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres URL or sqlite file)
  - IDENTITY_TOKEN_SALT (-identity-salt): shared secret for identity tokens

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - registry: candidacy registry (applications, moderation, disqualification)
  - ballots: ballot store (one ballot per voter per seat)
  - tally: result aggregation (counts, ordering, winner rules)
  - publication: per-seat voter-visibility gate
  - handlers: thin HTTP glue over the four core packages
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, identity extraction
  - models: domain types and error taxonomy
  - auth: identity assertion verification
  - db: drivers and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
