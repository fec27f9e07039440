package usecase

import (
	"context"

	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
)

// ListAppointments returns the tutor's walks ordered by date and time
func (uc *TutorUC) ListAppointments(ctx context.Context, session models.Session) ([]models.Appointment, error) {
	appointments, err := uc.gw.ListAppointments(ctx, session.Token, session.UserID)
	if err != nil {
		return nil, err
	}
	models.SortAppointments(appointments, uc.loc)
	return appointments, nil
}

// NextAppointment returns the earliest walk, or nil when there is none
func (uc *TutorUC) NextAppointment(ctx context.Context, session models.Session) (*models.Appointment, error) {
	appointments, err := uc.ListAppointments(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, nil
	}
	return &appointments[0], nil
}

// CancelAppointment cancels one of the tutor's walks
func (uc *TutorUC) CancelAppointment(ctx context.Context, session models.Session, appointmentID string) error {
	if err := uc.gw.CancelAppointment(ctx, session.Token, appointmentID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Walk cancelled",
		logger.TutorID(session.UserID),
		logger.String("appointment_id", appointmentID))
	return nil
}
