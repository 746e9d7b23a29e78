// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry implements the candidacy registry: candidate applications
and their moderation state, per seat.

# Submission

Submit is find-or-create keyed on (applicant, group, position):

	c, err := reg.Submit(applicantID, group, position, registry.SubmitFields{...})

  - no existing application → created as pending
  - existing pending/rejected → fields updated, status reset to pending
  - existing approved → models.ErrConflict
  - display name already taken for the seat → models.ErrConflict

The uniqueness guarantees are enforced by database unique indexes, so two
concurrent submissions resolve deterministically: one wins, one conflicts.

# Moderation

	reg.SetModerationStatus(id, models.StatusApproved)
	reg.ToggleDisqualified(id)

Both are idempotent single-row writes; last writer wins. Disqualification is
orthogonal to moderation status and never deletes anything - candidacies are
never hard-deleted.

# Listings

ListApproved orders non-disqualified first, then alphabetically; that order
is part of the voter-facing contract. ListAll orders (group, position, name)
for the admin view. Positions match case-insensitively everywhere.
*/
package registry
