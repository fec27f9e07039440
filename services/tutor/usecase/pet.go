package usecase

import (
	"context"
	"errors"

	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/validator"
)

const msgSelectPhoto = "Selecione uma foto."

// ListPets returns the tutor's pets
func (uc *TutorUC) ListPets(ctx context.Context, session models.Session) ([]models.Pet, error) {
	return uc.gw.ListPets(ctx, session.Token, session.UserID)
}

// RegisterPet validates the pet form and uploads it with its photo
func (uc *TutorUC) RegisterPet(ctx context.Context, session models.Session, reg models.PetRegistration) (*models.Pet, error) {
	verr := &errs.ValidationError{}
	if err := validator.ValidateStruct(reg); err != nil && !errors.As(err, &verr) {
		return nil, err
	}
	if len(reg.Photo.Content) == 0 {
		verr.Add("foto", msgSelectPhoto)
	}
	if !verr.Empty() {
		return nil, verr
	}

	pet, err := uc.gw.CreatePet(ctx, session.Token, session.UserID, reg)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Pet registered",
		logger.TutorID(session.UserID),
		logger.String("pet_id", pet.ID.String()))
	return pet, nil
}

// DeletePet removes a pet and unselects it from the draft
func (uc *TutorUC) DeletePet(ctx context.Context, session models.Session, petID string) error {
	if err := uc.gw.DeletePet(ctx, session.Token, petID); err != nil {
		return err
	}

	if err := uc.repo.UnselectDraftPet(ctx, session.UserID, petID, uc.now().UTC()); err != nil {
		logger.WarnCtx(ctx, "Failed to unselect deleted pet", logger.Err(err))
	}
	return nil
}
