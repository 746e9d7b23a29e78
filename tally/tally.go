// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"database/sql"
	"fmt"
	"sort"

	"councilvote/models"
)

// Engine computes per-candidate vote counts for a seat. It is strictly
// read-side: no locks, no writes, safe to call arbitrarily often and
// concurrently. A ballot cast while the read is in flight may be missed;
// a ballot is never counted twice.
type Engine struct {
	db *sql.DB
}

func New(database *sql.DB) *Engine {
	return &Engine{db: database}
}

// Tally returns the seat's standings: every approved candidacy with its
// accumulated count, ordered by count descending then display name
// ascending. Disqualified candidates are listed for transparency but are
// never eligible winners.
//
// Winner rules: the single strictly-highest count among non-disqualified
// candidates wins. An empty pool, an all-disqualified pool, or a tie for
// first place yields no winner - a tie is surfaced, not adjudicated.
func (e *Engine) Tally(group, position string) ([]models.TallyEntry, error) {
	rows, err := e.db.Query(`
		SELECT c.id, c.display_name, c.department, c.disqualified, COUNT(b.id)
		FROM candidacy c
		LEFT JOIN ballot b ON b.candidacy_id = c.id
		WHERE c.group_name = $1 AND LOWER(c.position) = LOWER($2) AND c.status = 'approved'
		GROUP BY c.id, c.display_name, c.department, c.disqualified
	`, group, position)
	if err != nil {
		return nil, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	entries := []models.TallyEntry{}
	for rows.Next() {
		var entry models.TallyEntry
		if err := rows.Scan(&entry.CandidacyID, &entry.DisplayName, &entry.Department,
			&entry.Disqualified, &entry.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan tally row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tally: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.VoteCount != b.VoteCount {
			return a.VoteCount > b.VoteCount
		}
		return a.DisplayName < b.DisplayName
	})

	markWinner(entries)
	return entries, nil
}

// Turnout counts ballots cast for a seat, independent of candidate state.
func (e *Engine) Turnout(group, position string) (int, error) {
	var count int
	err := e.db.QueryRow(`
		SELECT COUNT(*) FROM ballot
		WHERE group_name = $1 AND LOWER(position) = LOWER($2)
	`, group, position).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count, nil
}

// markWinner flags the single highest-counted non-disqualified entry, if the
// lead is strict.
func markWinner(entries []models.TallyEntry) {
	best := -1
	tied := false
	for i, entry := range entries {
		if entry.Disqualified {
			continue
		}
		switch {
		case best == -1:
			best = i
		case entry.VoteCount == entries[best].VoteCount:
			tied = true
		}
	}
	if best >= 0 && !tied {
		entries[best].IsWinner = true
	}
}
