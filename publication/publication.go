// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package publication

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"councilvote/models"
)

// Gate controls whether a seat's tally is voter-visible. The flag is
// independent of the tally itself, which stays live for administrators
// regardless.
type Gate struct {
	db *sql.DB
}

func New(database *sql.DB) *Gate {
	return &Gate{db: database}
}

// Publish makes the seat's results voter-visible. Idempotent; no effect on
// underlying ballots or candidacies.
func (g *Gate) Publish(group, position string) error {
	return g.set(group, position, true)
}

// Unpublish withdraws voter visibility. Idempotent.
func (g *Gate) Unpublish(group, position string) error {
	return g.set(group, position, false)
}

// IsPublished reports the seat's flag. Seats default to unpublished.
func (g *Gate) IsPublished(group, position string) (bool, error) {
	var published bool
	err := g.db.QueryRow(`
		SELECT published FROM publication WHERE group_name = $1 AND position = $2
	`, group, seatKey(position)).Scan(&published)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query publication flag: %w", err)
	}
	return published, nil
}

func (g *Gate) set(group, position string, published bool) error {
	if !models.ValidGroup(group) {
		return fmt.Errorf("unknown group %q: %w", group, models.ErrValidation)
	}
	if strings.TrimSpace(position) == "" {
		return fmt.Errorf("position is required: %w", models.ErrValidation)
	}

	_, err := g.db.Exec(`
		INSERT INTO publication (group_name, position, published, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_name, position) DO UPDATE
		SET published = excluded.published, updated_at = excluded.updated_at
	`, group, seatKey(position), published, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set publication flag: %w", err)
	}

	slog.Info("publication flag set", "group", group, "position", seatKey(position), "published", published)
	return nil
}

// seatKey normalizes a position for the publication table's key. The stored
// value is never displayed.
func seatKey(position string) string {
	return strings.ToLower(strings.TrimSpace(position))
}
