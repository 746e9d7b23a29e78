// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

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

// Registry owns candidacies and their moderation state. All writes go
// through here; the tally engine reads the same table read-only.
type Registry struct {
	db *sql.DB
}

func New(database *sql.DB) *Registry {
	return &Registry{db: database}
}

// SubmitFields are the applicant-mutable attributes of a candidacy.
type SubmitFields struct {
	DisplayName string
	Department  string
	Manifesto   string
	PhotoRef    string
}

// Submit creates or updates the applicant's candidacy for a seat.
//
// A first submission creates a pending candidacy. Re-submitting while
// pending or rejected updates the mutable fields in place and resets the
// status to pending, so an edited rejection re-enters the review queue.
// Re-submitting an approved candidacy is a conflict. Two applicants cannot
// register the same display name for one seat; the unique index arbitrates
// concurrent submissions.
func (r *Registry) Submit(applicantID, group, position string, fields SubmitFields) (models.Candidacy, error) {
	position = strings.TrimSpace(position)
	displayName := strings.TrimSpace(fields.DisplayName)

	if !models.ValidGroup(group) {
		return models.Candidacy{}, fmt.Errorf("unknown group %q: %w", group, models.ErrValidation)
	}
	if position == "" {
		return models.Candidacy{}, fmt.Errorf("position is required: %w", models.ErrValidation)
	}
	if displayName == "" {
		return models.Candidacy{}, fmt.Errorf("display name is required: %w", models.ErrValidation)
	}

	existing, found, err := r.findBySeat(applicantID, group, position)
	if err != nil {
		return models.Candidacy{}, err
	}

	if !found {
		c := models.Candidacy{
			ID:          uuid.NewString(),
			ApplicantID: applicantID,
			Group:       group,
			Position:    position,
			DisplayName: displayName,
			Department:  fields.Department,
			Manifesto:   fields.Manifesto,
			PhotoRef:    fields.PhotoRef,
			Status:      models.StatusPending,
			CreatedAt:   time.Now(),
		}

		_, err = r.db.Exec(`
			INSERT INTO candidacy (id, applicant_id, group_name, position, display_name,
			                       department, manifesto, photo_ref, status, disqualified, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, c.ID, c.ApplicantID, c.Group, c.Position, c.DisplayName,
			c.Department, c.Manifesto, c.PhotoRef, c.Status, false, c.CreatedAt)

		switch {
		case db.IsUniqueViolation(err, "candidacy_name_seat_key"):
			return models.Candidacy{}, fmt.Errorf("duplicate name %q for seat: %w", displayName, models.ErrConflict)
		case db.IsUniqueViolation(err, "candidacy_applicant_seat_key"):
			// Lost a race against our own concurrent submission.
			return models.Candidacy{}, fmt.Errorf("application for this seat already exists: %w", models.ErrConflict)
		case err != nil:
			return models.Candidacy{}, fmt.Errorf("failed to insert candidacy: %w", err)
		}

		slog.Info("candidacy submitted", "candidacy_id", c.ID, "group", group, "position", position)
		return c, nil
	}

	if existing.Status == models.StatusApproved {
		return models.Candidacy{}, fmt.Errorf("already approved for this seat: %w", models.ErrConflict)
	}

	// Update pending/rejected application in place; back into the queue.
	_, err = r.db.Exec(`
		UPDATE candidacy
		SET display_name = $1, department = $2, manifesto = $3, photo_ref = $4, status = $5
		WHERE id = $6
	`, displayName, fields.Department, fields.Manifesto, fields.PhotoRef, models.StatusPending, existing.ID)

	if db.IsUniqueViolation(err, "candidacy_name_seat_key") {
		return models.Candidacy{}, fmt.Errorf("duplicate name %q for seat: %w", displayName, models.ErrConflict)
	}
	if err != nil {
		return models.Candidacy{}, fmt.Errorf("failed to update candidacy: %w", err)
	}

	existing.DisplayName = displayName
	existing.Department = fields.Department
	existing.Manifesto = fields.Manifesto
	existing.PhotoRef = fields.PhotoRef
	existing.Status = models.StatusPending

	slog.Info("candidacy resubmitted", "candidacy_id", existing.ID, "group", group, "position", position)
	return existing, nil
}

// ListApproved returns the voter-facing candidate list for a seat: approved
// only, non-disqualified first, alphabetical within each bucket. The
// ordering is a contract, not cosmetics.
func (r *Registry) ListApproved(group, position string) ([]models.Candidacy, error) {
	rows, err := r.db.Query(`
		SELECT id, applicant_id, group_name, position, display_name,
		       department, manifesto, photo_ref, status, disqualified, created_at
		FROM candidacy
		WHERE group_name = $1 AND LOWER(position) = LOWER($2) AND status = 'approved'
		ORDER BY disqualified ASC, display_name ASC
	`, group, position)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved candidacies: %w", err)
	}
	defer rows.Close()

	return collectCandidacies(rows)
}

// ListAll returns the administrative view. Empty filter fields match
// everything.
func (r *Registry) ListAll(group, position string) ([]models.Candidacy, error) {
	rows, err := r.db.Query(`
		SELECT id, applicant_id, group_name, position, display_name,
		       department, manifesto, photo_ref, status, disqualified, created_at
		FROM candidacy
		WHERE ($1 = '' OR group_name = $2)
		  AND ($3 = '' OR LOWER(position) = LOWER($4))
		ORDER BY group_name ASC, position ASC, display_name ASC
	`, group, group, position, position)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidacies: %w", err)
	}
	defer rows.Close()

	return collectCandidacies(rows)
}

// FindByApplicant returns the applicant's own applications across all
// seats, newest first.
func (r *Registry) FindByApplicant(applicantID string) ([]models.Candidacy, error) {
	rows, err := r.db.Query(`
		SELECT id, applicant_id, group_name, position, display_name,
		       department, manifesto, photo_ref, status, disqualified, created_at
		FROM candidacy
		WHERE applicant_id = $1
		ORDER BY created_at DESC
	`, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	return collectCandidacies(rows)
}

// Get returns a candidacy by id.
func (r *Registry) Get(id string) (models.Candidacy, error) {
	row := r.db.QueryRow(`
		SELECT id, applicant_id, group_name, position, display_name,
		       department, manifesto, photo_ref, status, disqualified, created_at
		FROM candidacy
		WHERE id = $1
	`, id)

	c, err := scanCandidacy(row)
	if err == sql.ErrNoRows {
		return models.Candidacy{}, fmt.Errorf("candidacy %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Candidacy{}, fmt.Errorf("failed to query candidacy: %w", err)
	}
	return c, nil
}

// SetModerationStatus records an admin decision. Idempotent: repeating a
// decision is a no-op, and flipping between approved and rejected is
// allowed (last writer wins).
func (r *Registry) SetModerationStatus(id, status string) (models.Candidacy, error) {
	if !models.ValidModerationStatus(status) {
		return models.Candidacy{}, fmt.Errorf("status must be approved or rejected: %w", models.ErrValidation)
	}

	res, err := r.db.Exec(`UPDATE candidacy SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return models.Candidacy{}, fmt.Errorf("failed to set moderation status: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.Candidacy{}, fmt.Errorf("candidacy %s: %w", id, models.ErrNotFound)
	}

	slog.Info("moderation status set", "candidacy_id", id, "status", status)
	return r.Get(id)
}

// ToggleDisqualified flips the disqualification flag. Callers must not
// assume a direction; the returned candidacy carries the new value.
// Disqualification is orthogonal to moderation status: the candidacy stays
// visible, but receives no new ballots and can never win.
func (r *Registry) ToggleDisqualified(id string) (models.Candidacy, error) {
	res, err := r.db.Exec(`UPDATE candidacy SET disqualified = NOT disqualified WHERE id = $1`, id)
	if err != nil {
		return models.Candidacy{}, fmt.Errorf("failed to toggle disqualification: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.Candidacy{}, fmt.Errorf("candidacy %s: %w", id, models.ErrNotFound)
	}

	c, err := r.Get(id)
	if err != nil {
		return models.Candidacy{}, err
	}

	slog.Info("disqualification toggled", "candidacy_id", id, "disqualified", c.Disqualified)
	return c, nil
}

func (r *Registry) findBySeat(applicantID, group, position string) (models.Candidacy, bool, error) {
	row := r.db.QueryRow(`
		SELECT id, applicant_id, group_name, position, display_name,
		       department, manifesto, photo_ref, status, disqualified, created_at
		FROM candidacy
		WHERE applicant_id = $1 AND group_name = $2 AND LOWER(position) = LOWER($3)
	`, applicantID, group, position)

	c, err := scanCandidacy(row)
	if err == sql.ErrNoRows {
		return models.Candidacy{}, false, nil
	}
	if err != nil {
		return models.Candidacy{}, false, fmt.Errorf("failed to query candidacy: %w", err)
	}
	return c, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidacy(row rowScanner) (models.Candidacy, error) {
	var c models.Candidacy
	err := row.Scan(&c.ID, &c.ApplicantID, &c.Group, &c.Position, &c.DisplayName,
		&c.Department, &c.Manifesto, &c.PhotoRef, &c.Status, &c.Disqualified, &c.CreatedAt)
	return c, err
}

func collectCandidacies(rows *sql.Rows) ([]models.Candidacy, error) {
	candidacies := []models.Candidacy{}
	for rows.Next() {
		c, err := scanCandidacy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidacy: %w", err)
		}
		candidacies = append(candidacies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidacies: %w", err)
	}
	return candidacies, nil
}
