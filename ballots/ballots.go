// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"councilvote/db"
	"councilvote/models"
)

// Store owns ballots. One ballot per voter per seat, enforced by the
// ballot_voter_seat_key unique index: the check and the insert are a single
// atomic step from the caller's perspective, with the database as the race
// arbiter.
type Store struct {
	db *sql.DB
}

func New(database *sql.DB) *Store {
	return &Store{db: database}
}

// Cast records voterID's choice for a seat.
//
// The referenced candidacy must belong to the same seat, be approved, and
// not be disqualified at cast time; otherwise models.ErrInvalidCandidate.
// A voter's second cast for the same seat fails with models.ErrConflict -
// loudly, never a silent overwrite. Ballots are immutable once inserted:
// later moderation or disqualification changes do not touch them.
func (s *Store) Cast(voterID, group, position, candidacyID string) (models.Ballot, error) {
	position = strings.TrimSpace(position)

	if !models.ValidGroup(group) {
		return models.Ballot{}, fmt.Errorf("unknown group %q: %w", group, models.ErrValidation)
	}
	if position == "" {
		return models.Ballot{}, fmt.Errorf("position is required: %w", models.ErrValidation)
	}
	if candidacyID == "" {
		return models.Ballot{}, fmt.Errorf("candidacy id is required: %w", models.ErrValidation)
	}

	// Eligibility check at cast time. A candidacy disqualified after this
	// point keeps the ballot; the tally engine handles winner exclusion.
	var cGroup, cPosition, status string
	var disqualified bool
	err := s.db.QueryRow(`
		SELECT group_name, position, status, disqualified
		FROM candidacy
		WHERE id = $1
	`, candidacyID).Scan(&cGroup, &cPosition, &status, &disqualified)

	if err == sql.ErrNoRows {
		return models.Ballot{}, fmt.Errorf("candidacy %s unknown: %w", candidacyID, models.ErrInvalidCandidate)
	}
	if err != nil {
		return models.Ballot{}, fmt.Errorf("failed to query candidacy: %w", err)
	}

	if cGroup != group || !strings.EqualFold(cPosition, position) {
		return models.Ballot{}, fmt.Errorf("candidacy %s is for a different seat: %w", candidacyID, models.ErrInvalidCandidate)
	}
	if status != models.StatusApproved {
		return models.Ballot{}, fmt.Errorf("candidacy %s is %s: %w", candidacyID, status, models.ErrInvalidCandidate)
	}
	if disqualified {
		return models.Ballot{}, fmt.Errorf("candidacy %s is disqualified: %w", candidacyID, models.ErrInvalidCandidate)
	}

	b := models.Ballot{
		ID:          uuid.NewString(),
		VoterID:     voterID,
		Group:       group,
		Position:    position,
		CandidacyID: candidacyID,
		CastAt:      time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO ballot (id, voter_id, group_name, position, candidacy_id, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.ID, b.VoterID, b.Group, b.Position, b.CandidacyID, b.CastAt)

	if db.IsUniqueViolation(err, "ballot_voter_seat_key") {
		return models.Ballot{}, fmt.Errorf("already voted for this seat: %w", models.ErrConflict)
	}
	if err != nil {
		return models.Ballot{}, fmt.Errorf("failed to insert ballot: %w", err)
	}

	slog.Info("ballot cast", "ballot_id", b.ID, "group", group, "position", position, "candidacy_id", candidacyID)
	return b, nil
}

// MyBallot looks up the voter's existing ballot for a seat. Absence is not
// an error; found reports whether a ballot exists.
func (s *Store) MyBallot(voterID, group, position string) (models.Ballot, bool, error) {
	var b models.Ballot
	err := s.db.QueryRow(`
		SELECT id, voter_id, group_name, position, candidacy_id, cast_at
		FROM ballot
		WHERE voter_id = $1 AND group_name = $2 AND LOWER(position) = LOWER($3)
	`, voterID, group, position).Scan(&b.ID, &b.VoterID, &b.Group, &b.Position, &b.CandidacyID, &b.CastAt)

	if err == sql.ErrNoRows {
		return models.Ballot{}, false, nil
	}
	if err != nil {
		return models.Ballot{}, false, fmt.Errorf("failed to query ballot: %w", err)
	}
	return b, true, nil
}
