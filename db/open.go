// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType selects the driver:
// "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite).
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == "sqlite" {
		// SQLite allows one writer; a single connection turns racy writes
		// into serialized ones instead of SQLITE_BUSY errors.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

// IsUniqueViolation reports whether err is a unique-constraint rejection for
// the named index. Both drivers surface the constraint name in the error
// text; matching on it keeps the check portable.
//
//	SQLite:   "constraint failed: UNIQUE constraint failed: index 'ballot_voter_seat_key'"
//	Postgres: `pq: duplicate key value violates unique constraint "ballot_voter_seat_key"`
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, constraint) {
		return false
	}
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
