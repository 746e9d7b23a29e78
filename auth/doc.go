// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth carries the identity assertion boundary.

The election core never authenticates anyone itself. Each request arrives
with an externally-issued, HMAC-signed token asserting {voter id, role,
group}; the core trusts a verified assertion verbatim.

# Token Format

	v1.<base64url(voterID|role|group)>.<base64url(HMAC-SHA256 signature)>

Tokens are carried in the X-Identity-Token header and verified with a shared
salt (IDENTITY_TOKEN_SALT):

	id, err := auth.VerifyIdentity(token, salt)

VerifyIdentity rejects malformed, tampered and mis-salted tokens with
ErrInvalidToken, as well as tokens naming an unknown role or group.

# Issuance

IssueIdentityToken exists for tests and operator tooling. Production
credential flows (registration, login, password handling) belong to the
external identity collaborator, not this service.
*/
package auth
