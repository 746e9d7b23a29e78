// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"councilvote/models"
)

const testSalt = "test-identity-salt"

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	id := Identity{VoterID: "voter-1", Role: models.RoleVoter, Group: models.GroupStudent}

	token, err := IssueIdentityToken(id, testSalt)
	if err != nil {
		t.Fatalf("IssueIdentityToken failed: %v", err)
	}
	if !strings.HasPrefix(token, "v1.") {
		t.Errorf("Expected v1 token, got %s", token)
	}

	got, err := VerifyIdentity(token, testSalt)
	if err != nil {
		t.Fatalf("VerifyIdentity failed: %v", err)
	}
	if got != id {
		t.Errorf("Round trip mismatch: %+v != %+v", got, id)
	}
}

func TestVerifyRejectsWrongSalt(t *testing.T) {
	id := Identity{VoterID: "voter-1", Role: models.RoleVoter, Group: models.GroupStudent}
	token, err := IssueIdentityToken(id, testSalt)
	if err != nil {
		t.Fatalf("IssueIdentityToken failed: %v", err)
	}

	if _, err := VerifyIdentity(token, "other-salt"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	id := Identity{VoterID: "voter-1", Role: models.RoleVoter, Group: models.GroupStudent}
	token, err := IssueIdentityToken(id, testSalt)
	if err != nil {
		t.Fatalf("IssueIdentityToken failed: %v", err)
	}

	// Swap the payload for an admin assertion, keep the old signature
	admin := Identity{VoterID: "voter-1", Role: models.RoleAdmin, Group: models.GroupStudent}
	forged, err := IssueIdentityToken(admin, testSalt)
	if err != nil {
		t.Fatalf("IssueIdentityToken failed: %v", err)
	}
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	if _, err := VerifyIdentity(tampered, testSalt); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for tampered payload, got %v", err)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	cases := []string{
		"",
		"v1",
		"v1.onlytwo",
		"v0.abc.def",
		"v1.!!!.sig",
		"v1.abc.def.extra",
	}
	for _, token := range cases {
		if _, err := VerifyIdentity(token, testSalt); err != ErrInvalidToken {
			t.Errorf("Expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestIssueRejectsInvalidIdentities(t *testing.T) {
	cases := []Identity{
		{VoterID: "", Role: models.RoleVoter, Group: models.GroupStudent},
		{VoterID: "a|b", Role: models.RoleVoter, Group: models.GroupStudent},
		{VoterID: "voter-1", Role: "superadmin", Group: models.GroupStudent},
		{VoterID: "voter-1", Role: models.RoleVoter, Group: "faculty"},
	}
	for _, id := range cases {
		if _, err := IssueIdentityToken(id, testSalt); err != ErrInvalidToken {
			t.Errorf("Expected ErrInvalidToken for %+v, got %v", id, err)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if (Identity{Role: models.RoleVoter}).IsAdmin() {
		t.Error("Voter is not an admin")
	}
	if !(Identity{Role: models.RoleAdmin}).IsAdmin() {
		t.Error("Admin role not recognized")
	}
}
