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

func TestTutorUC_ListAppointments_Sorted(t *testing.T) {
	uc, _, mockGW := newTestUC(t)

	mockGW.EXPECT().ListAppointments(gomock.Any(), testSession.Token, "7").Return([]models.Appointment{
		{ID: "1", Date: "2025-06-02", Time: "08:00"},
		{ID: "2", Date: "invalid"},
		{ID: "3", Date: "2025-06-01", Time: "18:00"},
		{ID: "4", Date: "2025-06-01T00:00:00Z", Time: "09:15"},
	}, nil)

	appointments, err := uc.ListAppointments(context.Background(), testSession)

	require.NoError(t, err)
	ids := []models.ID{appointments[0].ID, appointments[1].ID, appointments[2].ID, appointments[3].ID}
	assert.Equal(t, []models.ID{"4", "3", "1", "2"}, ids)
}

func TestTutorUC_NextAppointment(t *testing.T) {
	uc, _, mockGW := newTestUC(t)

	gomock.InOrder(
		mockGW.EXPECT().ListAppointments(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Appointment{
			{ID: "1", Date: "2025-06-02", Time: "08:00"},
			{ID: "3", Date: "2025-06-01", Time: "18:00"},
		}, nil),
		mockGW.EXPECT().ListAppointments(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Appointment{}, nil),
	)

	next, err := uc.NextAppointment(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), next.ID)

	next, err = uc.NextAppointment(context.Background(), testSession)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestTutorUC_CancelAppointment(t *testing.T) {
	uc, _, mockGW := newTestUC(t)

	mockGW.EXPECT().CancelAppointment(gomock.Any(), testSession.Token, "5").Return(nil)
	mockGW.EXPECT().CancelAppointment(gomock.Any(), testSession.Token, "6").Return(errs.ErrTransport)

	assert.NoError(t, uc.CancelAppointment(context.Background(), testSession, "5"))
	assert.True(t, errors.Is(uc.CancelAppointment(context.Background(), testSession, "6"), errs.ErrTransport))
}
