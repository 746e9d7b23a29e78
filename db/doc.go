// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver from the configured database type:

	conn, err := db.Open("postgres", databaseURL)
	conn, err := db.Open("sqlite", "file:election.db")

SQLite connections are capped at one open connection so concurrent writes
serialize instead of failing with busy errors.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidacy: applications to stand for a seat, with moderation state
  - ballot: one immutable ballot per voter per seat
  - publication: per-seat voter-visibility flags for results

# Uniqueness

The unique indexes are load-bearing, not advisory. They arbitrate races:

  - candidacy_applicant_seat_key (applicant_id, group_name, LOWER(position))
  - candidacy_name_seat_key (display_name, group_name, LOWER(position))
  - ballot_voter_seat_key (voter_id, group_name, LOWER(position))

Concurrent conflicting writes resolve to one winner; the loser receives a
constraint error that IsUniqueViolation classifies by index name for both
drivers.
*/
package db
