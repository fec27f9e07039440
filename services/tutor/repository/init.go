package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/passeio/internal/pkg/database"
	"github.com/piresc/passeio/internal/pkg/models"
)

const defaultDraftTTL = 24 * time.Hour

// TutorRepo implements the tutor repository interface
type TutorRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	draftTTL    time.Duration
}

// NewTutorRepository creates a new tutor repository. db may be nil, in which
// case proposal attempts are not persisted.
func NewTutorRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *TutorRepo {
	ttl := cfg.Proposal.DraftTTL
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &TutorRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		draftTTL:    ttl,
	}
}
