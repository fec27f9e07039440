package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/models"
)

// maxDraftTxAttempts bounds optimistic retries when the draft changes under a WATCH
const maxDraftTxAttempts = 3

// GetDraft returns the tutor's proposal draft, or an empty one
func (r *TutorRepo) GetDraft(ctx context.Context, tutorID string) (*models.ProposalDraft, error) {
	key := fmt.Sprintf(constants.KeyProposalDraft, tutorID)

	values, err := r.redisClient.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal draft: %w", err)
	}

	return draftFromHash(tutorID, values), nil
}

// UpdateDraft writes only the given hash fields of the draft and restarts its
// TTL. Selections made concurrently on other fields are kept. It returns the
// draft as stored after the write.
func (r *TutorRepo) UpdateDraft(ctx context.Context, tutorID string, fields map[string]string, updatedAt time.Time) (*models.ProposalDraft, error) {
	key := fmt.Sprintf(constants.KeyProposalDraft, tutorID)

	values := make(map[string]interface{}, len(fields)+1)
	for field, value := range fields {
		values[field] = value
	}
	values[constants.FieldUpdatedAt] = updatedAt.UTC().Format(time.RFC3339Nano)

	pipe := r.redisClient.Client.TxPipeline()
	pipe.HSet(ctx, key, values)
	pipe.Expire(ctx, key, r.draftTTL)
	stored := pipe.HGetAll(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save proposal draft: %w", err)
	}

	return draftFromHash(tutorID, stored.Val()), nil
}

// UnselectDraftPet clears the draft's pet only while it is still petID
func (r *TutorRepo) UnselectDraftPet(ctx context.Context, tutorID, petID string, updatedAt time.Time) error {
	key := fmt.Sprintf(constants.KeyProposalDraft, tutorID)

	unselect := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, constants.FieldPetID).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if current != petID {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, key, constants.FieldPetID, constants.FieldPetName)
			pipe.HSet(ctx, key, constants.FieldUpdatedAt, updatedAt.UTC().Format(time.RFC3339Nano))
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxDraftTxAttempts; attempt++ {
		err = r.redisClient.Client.Watch(ctx, unselect, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to unselect draft pet: %w", err)
	}
	return nil
}

// DeleteDraft clears the tutor's selections
func (r *TutorRepo) DeleteDraft(ctx context.Context, tutorID string) error {
	key := fmt.Sprintf(constants.KeyProposalDraft, tutorID)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete proposal draft: %w", err)
	}
	return nil
}

func draftFromHash(tutorID string, values map[string]string) *models.ProposalDraft {
	draft := &models.ProposalDraft{
		TutorID:    tutorID,
		WalkerID:   values[constants.FieldWalkerID],
		WalkerName: values[constants.FieldWalkerName],
		PetID:      values[constants.FieldPetID],
		PetName:    values[constants.FieldPetName],
		Date:       values[constants.FieldDate],
		Time:       values[constants.FieldTime],
	}
	if updatedAt, err := time.Parse(time.RFC3339Nano, values[constants.FieldUpdatedAt]); err == nil {
		draft.UpdatedAt = updatedAt
	}
	return draft
}
