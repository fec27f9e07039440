package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petForm() models.PetRegistration {
	return models.PetRegistration{
		Name:   "Rex",
		Breed:  "Vira-lata",
		Age:    "3",
		Weight: "12,5",
		Photo:  models.PetPhoto{Filename: "rex.jpg", ContentType: "image/jpeg", Content: []byte("jpeg")},
	}
}

func TestTutorUC_RegisterPet(t *testing.T) {
	uc, _, mockGW := newTestUC(t)
	form := petForm()

	mockGW.EXPECT().CreatePet(gomock.Any(), testSession.Token, "7", form).Return(&models.Pet{ID: "3", Name: "Rex"}, nil)

	pet, err := uc.RegisterPet(context.Background(), testSession, form)

	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), pet.ID)
}

func TestTutorUC_RegisterPet_Validation(t *testing.T) {
	uc, _, mockGW := newTestUC(t)
	mockGW.EXPECT().CreatePet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	form := petForm()
	form.Age = "-1"
	form.Photo = models.PetPhoto{}

	_, err := uc.RegisterPet(context.Background(), testSession, form)

	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "idade")
	assert.Equal(t, "Selecione uma foto.", verr.Fields["foto"])
}

func TestTutorUC_DeletePet_UnselectsFromDraft(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockGW.EXPECT().DeletePet(gomock.Any(), testSession.Token, "3").Return(nil)
	mockRepo.EXPECT().UnselectDraftPet(gomock.Any(), "7", "3", fixedNow).Return(nil)

	assert.NoError(t, uc.DeletePet(context.Background(), testSession, "3"))
}

func TestTutorUC_DeletePet_DraftFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockGW.EXPECT().DeletePet(gomock.Any(), gomock.Any(), "4").Return(nil)
	mockRepo.EXPECT().UnselectDraftPet(gomock.Any(), "7", "4", gomock.Any()).Return(errors.New("redis down"))

	assert.NoError(t, uc.DeletePet(context.Background(), testSession, "4"))
}

func TestTutorUC_DeletePet_BackendError(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockGW.EXPECT().DeletePet(gomock.Any(), gomock.Any(), "3").Return(&errs.APIError{StatusCode: 404})
	mockRepo.EXPECT().UnselectDraftPet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := uc.DeletePet(context.Background(), testSession, "3")

	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
