package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/observability"
	"github.com/piresc/passeio/internal/pkg/validator"
)

const proposalHistoryLimit = 20

// GetDraft returns the tutor's current selections
func (uc *TutorUC) GetDraft(ctx context.Context, session models.Session) (*models.ProposalDraft, error) {
	return uc.repo.GetDraft(ctx, session.UserID)
}

// SelectWalker sets the walker of the draft after checking it exists
func (uc *TutorUC) SelectWalker(ctx context.Context, session models.Session, walkerID string) (*models.ProposalDraft, error) {
	if err := validator.ValidateStruct(models.SelectWalkerRequest{WalkerID: walkerID}); err != nil {
		return nil, err
	}

	detail, err := uc.gw.GetWalker(ctx, session.Token, walkerID)
	if err != nil {
		return nil, fmt.Errorf("select walker: %w", err)
	}

	return uc.repo.UpdateDraft(ctx, session.UserID, map[string]string{
		constants.FieldWalkerID:   walkerID,
		constants.FieldWalkerName: detail.Name,
	}, uc.now().UTC())
}

// SelectPet sets the pet of the draft. The pet must belong to the tutor.
func (uc *TutorUC) SelectPet(ctx context.Context, session models.Session, petID string) (*models.ProposalDraft, error) {
	if err := validator.ValidateStruct(models.SelectPetRequest{PetID: petID}); err != nil {
		return nil, err
	}

	pets, err := uc.gw.ListPets(ctx, session.Token, session.UserID)
	if err != nil {
		return nil, err
	}

	var selected *models.Pet
	for i := range pets {
		if pets[i].ID.String() == petID {
			selected = &pets[i]
			break
		}
	}
	if selected == nil {
		return nil, errs.Wrap("select pet", errs.ErrNotFound)
	}

	return uc.repo.UpdateDraft(ctx, session.UserID, map[string]string{
		constants.FieldPetID:   petID,
		constants.FieldPetName: selected.Name,
	}, uc.now().UTC())
}

// SetSchedule stores the date and time pickers of the draft
func (uc *TutorUC) SetSchedule(ctx context.Context, session models.Session, req models.ScheduleRequest) (*models.ProposalDraft, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	return uc.repo.UpdateDraft(ctx, session.UserID, map[string]string{
		constants.FieldDate: req.Date,
		constants.FieldTime: req.Time,
	}, uc.now().UTC())
}

// ClearDraft drops every selection
func (uc *TutorUC) ClearDraft(ctx context.Context, session models.Session) error {
	return uc.repo.DeleteDraft(ctx, session.UserID)
}

// SubmitProposal composes the draft into an appointment and sends it once.
// On success the draft is cleared and the app is sent home. On failure the
// draft is kept so the tutor can try again.
func (uc *TutorUC) SubmitProposal(ctx context.Context, session models.Session, origin models.Coordinate) (*models.ProposalResult, error) {
	draft, err := uc.repo.GetDraft(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	req, err := ComposeAppointment(*draft, origin, session.UserID, uc.now(), uc.loc)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.gw.CreateAppointment(ctx, session.Token, req)
	uc.recordAttempt(ctx, req, appointment, err)

	if err != nil {
		observability.ObserveProposal(string(models.ProposalFailed))
		if ctxErr := errs.FromContext(ctx, "submit proposal"); ctxErr != nil {
			return nil, ctxErr
		}
		logger.WarnCtx(ctx, "Walk proposal rejected",
			logger.TutorID(session.UserID),
			logger.WalkerID(req.WalkerID),
			logger.Err(err))
		return nil, &errs.SubmissionError{Err: err}
	}

	if appointment == nil || appointment.ID == "" {
		appointment = appointmentFromRequest(req, appointment)
	}

	if err := uc.repo.DeleteDraft(ctx, session.UserID); err != nil {
		logger.WarnCtx(ctx, "Failed to clear proposal draft",
			logger.TutorID(session.UserID),
			logger.Err(err))
	}

	event := models.AppointmentProposedEvent{
		AppointmentID: appointment.ID.String(),
		TutorID:       session.UserID,
		WalkerID:      req.WalkerID,
		PetID:         req.PetID,
		ScheduledAt:   req.ScheduledAt,
		Location:      req.Location,
		ProposedAt:    uc.now().UTC(),
	}
	if err := uc.gw.PublishAppointmentProposed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish appointment proposed event",
			logger.TutorID(session.UserID),
			logger.Err(err))
	}

	observability.ObserveProposal(string(models.ProposalSucceeded))
	logger.InfoCtx(ctx, "Walk proposed",
		logger.TutorID(session.UserID),
		logger.WalkerID(req.WalkerID),
		logger.String("appointment_id", appointment.ID.String()))

	return &models.ProposalResult{
		Appointment: appointment,
		Next:        constants.RouteHome,
	}, nil
}

// ProposalHistory lists the tutor's latest submission attempts
func (uc *TutorUC) ProposalHistory(ctx context.Context, session models.Session) ([]models.ProposalAttempt, error) {
	return uc.repo.ListAttempts(ctx, session.UserID, proposalHistoryLimit)
}

// recordAttempt writes the audit row. Failures are logged only.
func (uc *TutorUC) recordAttempt(ctx context.Context, req models.AppointmentRequest, appointment *models.Appointment, submitErr error) {
	attempt := &models.ProposalAttempt{
		TutorID:     req.TutorID,
		WalkerID:    req.WalkerID,
		PetID:       req.PetID,
		ScheduledAt: req.ScheduledAt,
		Outcome:     models.ProposalSucceeded,
		CreatedAt:   uc.now().UTC(),
	}
	if submitErr != nil {
		attempt.Outcome = models.ProposalFailed
		msg := submitErr.Error()
		attempt.Error = &msg
	} else if appointment != nil && appointment.ID != "" {
		id := appointment.ID.String()
		attempt.AppointmentID = &id
	}

	if err := uc.repo.RecordAttempt(context.WithoutCancel(ctx), attempt); err != nil {
		logger.WarnCtx(ctx, "Failed to record proposal attempt",
			logger.TutorID(req.TutorID),
			logger.Err(err))
	}
}

func appointmentFromRequest(req models.AppointmentRequest, base *models.Appointment) *models.Appointment {
	a := &models.Appointment{}
	if base != nil {
		*a = *base
	}
	a.WalkerID = models.ID(req.WalkerID)
	a.PetID = models.ID(req.PetID)
	a.TutorID = models.ID(req.TutorID)
	a.Date = req.ScheduledAt.Format(models.DateLayout)
	a.Time = req.Time
	a.ServiceType = req.ServiceType
	return a
}
