package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/models"
)

// CreateSession stores the session hash and expires it with the BFF token
func (r *TutorRepo) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyTutorSession, session.ID)
	fields := map[string]interface{}{
		constants.FieldToken:     session.Token,
		constants.FieldUserID:    session.UserID,
		constants.FieldUserName:  session.UserName,
		constants.FieldUserEmail: session.UserEmail,
		constants.FieldCreatedAt: session.CreatedAt.UTC().Format(time.RFC3339),
	}

	pipe := r.redisClient.Client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// GetSession loads a session. It returns nil without error when the session
// does not exist or has expired.
func (r *TutorRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constants.KeyTutorSession, sessionID)

	values, err := r.redisClient.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(values) == 0 || values[constants.FieldToken] == "" {
		return nil, nil
	}

	session := &models.Session{
		ID:        sessionID,
		Token:     values[constants.FieldToken],
		UserID:    values[constants.FieldUserID],
		UserName:  values[constants.FieldUserName],
		UserEmail: values[constants.FieldUserEmail],
	}
	if createdAt, err := time.Parse(time.RFC3339, values[constants.FieldCreatedAt]); err == nil {
		session.CreatedAt = createdAt
	}

	return session, nil
}

// DeleteSession removes a session
func (r *TutorRepo) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constants.KeyTutorSession, sessionID)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
