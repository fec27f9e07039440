package tutor

import (
	"context"

	"github.com/piresc/passeio/internal/pkg/models"
)

// TutorUC defines the interface for the tutor app business logic.
// Every authenticated operation receives the caller's session explicitly.
type TutorUC interface {
	// Account
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, session models.Session) error
	GetProfile(ctx context.Context, session models.Session) (*models.Profile, error)

	// Walkers
	ListNearbyWalkers(ctx context.Context, session models.Session, origin models.Coordinate) ([]models.Walker, error)
	GetWalker(ctx context.Context, session models.Session, walkerID string, origin *models.Coordinate) (*models.Walker, error)

	// Pets
	ListPets(ctx context.Context, session models.Session) ([]models.Pet, error)
	RegisterPet(ctx context.Context, session models.Session, reg models.PetRegistration) (*models.Pet, error)
	DeletePet(ctx context.Context, session models.Session, petID string) error

	// Walk proposal
	GetDraft(ctx context.Context, session models.Session) (*models.ProposalDraft, error)
	SelectWalker(ctx context.Context, session models.Session, walkerID string) (*models.ProposalDraft, error)
	SelectPet(ctx context.Context, session models.Session, petID string) (*models.ProposalDraft, error)
	SetSchedule(ctx context.Context, session models.Session, req models.ScheduleRequest) (*models.ProposalDraft, error)
	ClearDraft(ctx context.Context, session models.Session) error
	SubmitProposal(ctx context.Context, session models.Session, origin models.Coordinate) (*models.ProposalResult, error)
	ProposalHistory(ctx context.Context, session models.Session) ([]models.ProposalAttempt, error)

	// Appointments
	ListAppointments(ctx context.Context, session models.Session) ([]models.Appointment, error)
	NextAppointment(ctx context.Context, session models.Session) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, session models.Session, appointmentID string) error
}
