package tutor

import (
	"context"

	"github.com/piresc/passeio/internal/pkg/models"
)

// TutorGW defines the tutor gateways interface: the marketplace API plus
// the event bus. token is the marketplace token of the caller's session.
type TutorGW interface {
	RegisterTutor(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	GetTutor(ctx context.Context, token, tutorID string) (*models.Tutor, error)

	ListWalkers(ctx context.Context, token string) ([]models.WalkerSummary, error)
	GetWalker(ctx context.Context, token, walkerID string) (*models.WalkerDetail, error)

	ListPets(ctx context.Context, token, tutorID string) ([]models.Pet, error)
	CreatePet(ctx context.Context, token, tutorID string, reg models.PetRegistration) (*models.Pet, error)
	DeletePet(ctx context.Context, token, petID string) error

	CreateAppointment(ctx context.Context, token string, req models.AppointmentRequest) (*models.Appointment, error)
	ListAppointments(ctx context.Context, token, tutorID string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, token, appointmentID string) error

	PublishAppointmentProposed(ctx context.Context, event models.AppointmentProposedEvent) error
}
