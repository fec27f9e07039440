package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/passeio/internal/pkg/models"
)

// ProposalAttemptsSchema creates the proposal log table
const ProposalAttemptsSchema = `
	CREATE TABLE IF NOT EXISTS proposal_attempts (
		id             UUID PRIMARY KEY,
		tutor_id       TEXT NOT NULL,
		walker_id      TEXT NOT NULL,
		pet_id         TEXT NOT NULL,
		scheduled_at   TIMESTAMPTZ NOT NULL,
		outcome        TEXT NOT NULL,
		appointment_id TEXT,
		error          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_proposal_attempts_tutor
		ON proposal_attempts (tutor_id, created_at DESC);
`

// EnsureSchema creates the tables used by the repository
func (r *TutorRepo) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, ProposalAttemptsSchema); err != nil {
		return fmt.Errorf("failed to create proposal_attempts: %w", err)
	}
	return nil
}

// RecordAttempt appends a submission attempt to the proposal log
func (r *TutorRepo) RecordAttempt(ctx context.Context, attempt *models.ProposalAttempt) error {
	if r.db == nil {
		return nil
	}
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}

	query := `
		INSERT INTO proposal_attempts (
			id, tutor_id, walker_id, pet_id, scheduled_at,
			outcome, appointment_id, error, created_at
		) VALUES (
			:id, :tutor_id, :walker_id, :pet_id, :scheduled_at,
			:outcome, :appointment_id, :error, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, attempt); err != nil {
		return fmt.Errorf("failed to record proposal attempt: %w", err)
	}

	return nil
}

// ListAttempts returns the tutor's latest attempts, newest first
func (r *TutorRepo) ListAttempts(ctx context.Context, tutorID string, limit int) ([]models.ProposalAttempt, error) {
	if r.db == nil {
		return []models.ProposalAttempt{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, tutor_id, walker_id, pet_id, scheduled_at,
			outcome, appointment_id, error, created_at
		FROM proposal_attempts
		WHERE tutor_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	attempts := []models.ProposalAttempt{}
	if err := r.db.SelectContext(ctx, &attempts, query, tutorID, limit); err != nil {
		return nil, fmt.Errorf("failed to list proposal attempts: %w", err)
	}

	return attempts, nil
}
