// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL is deliberately portable between SQLite and PostgreSQL: explicit
// timestamps from the application, no NOW() defaults, and expression indexes
// on LOWER(position) so seat matching is case-insensitive at the constraint
// level, not just in queries.
const schema = `
-- Candidacies (applications to stand for a seat)
CREATE TABLE IF NOT EXISTS candidacy (
    id TEXT PRIMARY KEY,
    applicant_id TEXT NOT NULL,
    group_name TEXT NOT NULL,
    position TEXT NOT NULL,
    display_name TEXT NOT NULL,
    department TEXT NOT NULL DEFAULT '',
    manifesto TEXT NOT NULL DEFAULT '',
    photo_ref TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    disqualified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

-- One application per applicant per seat, one display name per seat.
-- These indexes are the race arbiter for concurrent submissions.
CREATE UNIQUE INDEX IF NOT EXISTS candidacy_applicant_seat_key
    ON candidacy (applicant_id, group_name, LOWER(position));
CREATE UNIQUE INDEX IF NOT EXISTS candidacy_name_seat_key
    ON candidacy (display_name, group_name, LOWER(position));

CREATE INDEX IF NOT EXISTS idx_candidacy_seat ON candidacy (group_name, position);
CREATE INDEX IF NOT EXISTS idx_candidacy_status ON candidacy (status);

-- Ballots (immutable, one per voter per seat)
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    voter_id TEXT NOT NULL,
    group_name TEXT NOT NULL,
    position TEXT NOT NULL,
    candidacy_id TEXT NOT NULL REFERENCES candidacy(id),
    cast_at TIMESTAMP NOT NULL
);

-- The double-vote guard. Concurrent casts for the same voter and seat
-- resolve to exactly one inserted row; the loser sees a constraint error.
CREATE UNIQUE INDEX IF NOT EXISTS ballot_voter_seat_key
    ON ballot (voter_id, group_name, LOWER(position));

CREATE INDEX IF NOT EXISTS idx_ballot_candidacy ON ballot (candidacy_id);
CREATE INDEX IF NOT EXISTS idx_ballot_seat ON ballot (group_name, position);

-- Per-seat publication flags (position stored lowercased, never displayed)
CREATE TABLE IF NOT EXISTS publication (
    group_name TEXT NOT NULL,
    position TEXT NOT NULL,
    published BOOLEAN NOT NULL DEFAULT FALSE,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (group_name, position)
);
`
