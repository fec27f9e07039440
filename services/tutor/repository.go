package tutor

import (
	"context"
	"time"

	"github.com/piresc/passeio/internal/pkg/models"
)

// TutorRepo defines the tutor repository interface
type TutorRepo interface {
	// Sessions
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Proposal drafts. GetDraft returns an empty draft when none is stored.
	// UpdateDraft writes only the named fields so concurrent selections merge.
	GetDraft(ctx context.Context, tutorID string) (*models.ProposalDraft, error)
	UpdateDraft(ctx context.Context, tutorID string, fields map[string]string, updatedAt time.Time) (*models.ProposalDraft, error)
	UnselectDraftPet(ctx context.Context, tutorID, petID string, updatedAt time.Time) error
	DeleteDraft(ctx context.Context, tutorID string) error

	// Proposal log
	RecordAttempt(ctx context.Context, attempt *models.ProposalAttempt) error
	ListAttempts(ctx context.Context, tutorID string, limit int) ([]models.ProposalAttempt, error)
}
