package usecase

import (
	"context"

	"github.com/piresc/passeio/internal/pkg/models"
	"golang.org/x/sync/errgroup"
)

// GetProfile loads the tutor record and its counters concurrently
func (uc *TutorUC) GetProfile(ctx context.Context, session models.Session) (*models.Profile, error) {
	var (
		tutorRecord  *models.Tutor
		pets         []models.Pet
		appointments []models.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tutorRecord, err = uc.gw.GetTutor(gctx, session.Token, session.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		pets, err = uc.gw.ListPets(gctx, session.Token, session.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = uc.gw.ListAppointments(gctx, session.Token, session.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.Profile{
		Tutor:            tutorRecord,
		PetCount:         len(pets),
		AppointmentCount: len(appointments),
	}, nil
}
