// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballots implements the ballot store: one counted ballot per voter
per seat.

# Casting

	b, err := store.Cast(voterID, group, position, candidacyID)

Cast re-validates candidate eligibility at cast time (same seat, approved,
not disqualified → models.ErrInvalidCandidate otherwise) and then inserts.
The existence check and insert are one atomic step: the unique index on
(voter_id, group_name, LOWER(position)) arbitrates concurrent casts, so two
simultaneous requests from the same voter produce exactly one ballot and
one models.ErrConflict.

# Immutability

Ballots are historical facts. They are never updated or deleted, and a
candidacy's later disqualification does not retroactively invalidate ballots
already cast for it - winner exclusion is the tally engine's job.

# Lookup

	b, found, err := store.MyBallot(voterID, group, position)

Absence is reported through found, not an error, so the UI can disable the
vote control without special-casing.
*/
package ballots
