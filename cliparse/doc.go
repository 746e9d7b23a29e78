// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Priority

CLI flags take precedence over environment variables:

	councilvote -p 5000 -d "postgres://..." -t postgres

Environment fallbacks:

  - PORT (default 5000)
  - DATABASE_URL (required)
  - DATABASE_TYPE (sqlite or postgres, default sqlite)
  - IDENTITY_TOKEN_SALT (required; shared secret with the identity issuer)

# Secrets

IDENTITY_TOKEN_SALT should come from the environment in production. The
-identity-salt flag exists for local development only.
*/
package cliparse
