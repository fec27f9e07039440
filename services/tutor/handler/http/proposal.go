package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/utils"
)

// GetDraft returns the tutor's current selections
func (h *TutorHandler) GetDraft(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	draft, err := h.tutorUC.GetDraft(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SelectWalker sets the walker of the draft
func (h *TutorHandler) SelectWalker(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	var req models.SelectWalkerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	draft, err := h.tutorUC.SelectWalker(c.Request().Context(), session, req.WalkerID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SelectPet sets the pet of the draft
func (h *TutorHandler) SelectPet(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	var req models.SelectPetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	draft, err := h.tutorUC.SelectPet(c.Request().Context(), session, req.PetID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SetSchedule sets the date and time of the draft
func (h *TutorHandler) SetSchedule(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	draft, err := h.tutorUC.SetSchedule(c.Request().Context(), session, req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// ClearDraft drops every selection
func (h *TutorHandler) ClearDraft(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	if err := h.tutorUC.ClearDraft(c.Request().Context(), session); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// SubmitProposal sends the walk proposal to the marketplace
func (h *TutorHandler) SubmitProposal(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	var req models.SubmitProposalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Latitude == nil || req.Longitude == nil || locationDenied(c) {
		return utils.ErrorFromDomain(c, errs.ErrLocationPermissionDenied)
	}
	origin := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	result, err := h.tutorUC.SubmitProposal(c.Request().Context(), session, origin)
	if err != nil {
		if !errs.IsValidation(err) {
			logger.WarnCtx(c.Request().Context(), "Walk proposal failed",
				logger.TutorID(session.UserID),
				logger.Err(err))
		}
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Passeio agendado com sucesso!", result)
}

// ProposalHistory lists the tutor's latest submission attempts
func (h *TutorHandler) ProposalHistory(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	attempts, err := h.tutorUC.ProposalHistory(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", attempts)
}
