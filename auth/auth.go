// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"councilvote/models"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
)

const tokenVersion = "v1"

// Identity is the externally-asserted caller identity the core trusts
// verbatim: a stable voter id, a role (voter or admin) and an election group.
type Identity struct {
	VoterID string `json:"voter_id"`
	Role    string `json:"role"`
	Group   string `json:"group"`
}

// IsAdmin reports whether the identity carries the administrator role.
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// IssueIdentityToken signs an identity assertion with the shared salt.
// Token format: v1.<base64url(voterID|role|group)>.<base64url(hmac)>
// Issuance belongs to the external identity collaborator; this helper exists
// for tests and operator tooling.
func IssueIdentityToken(id Identity, salt string) (string, error) {
	if id.VoterID == "" || strings.ContainsRune(id.VoterID, '|') {
		return "", ErrInvalidToken
	}
	if id.Role != models.RoleVoter && id.Role != models.RoleAdmin {
		return "", ErrInvalidToken
	}
	if !models.ValidGroup(id.Group) {
		return "", ErrInvalidToken
	}

	payload := id.VoterID + "|" + id.Role + "|" + id.Group
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return tokenVersion + "." + encoded + "." + sign(encoded, salt), nil
}

// VerifyIdentity validates a token's signature and returns the asserted
// identity. Any malformed, tampered or mis-salted token fails with
// ErrInvalidToken; the caller gets no further detail.
func VerifyIdentity(token, salt string) (Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] != tokenVersion {
		return Identity{}, ErrInvalidToken
	}

	encoded, sig := parts[1], parts[2]
	if !hmac.Equal([]byte(sig), []byte(sign(encoded, salt))) {
		return Identity{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	fields := strings.Split(string(payload), "|")
	if len(fields) != 3 {
		return Identity{}, ErrInvalidToken
	}

	id := Identity{VoterID: fields[0], Role: fields[1], Group: fields[2]}
	if id.VoterID == "" {
		return Identity{}, ErrInvalidToken
	}
	if id.Role != models.RoleVoter && id.Role != models.RoleAdmin {
		return Identity{}, ErrInvalidToken
	}
	if !models.ValidGroup(id.Group) {
		return Identity{}, ErrInvalidToken
	}

	return id, nil
}

func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
