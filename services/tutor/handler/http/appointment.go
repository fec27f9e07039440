package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/utils"
)

// ListAppointments returns the tutor's walks in chronological order
func (h *TutorHandler) ListAppointments(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	appointments, err := h.tutorUC.ListAppointments(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", appointments)
}

// NextAppointment returns the earliest walk. data is null when none is booked.
func (h *TutorHandler) NextAppointment(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	next, err := h.tutorUC.NextAppointment(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	if next == nil {
		return utils.SuccessResponse(c, http.StatusOK, "Nenhum passeio agendado", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", next)
}

// CancelAppointment cancels one of the tutor's walks
func (h *TutorHandler) CancelAppointment(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	appointmentID := c.Param("id")
	if appointmentID == "" {
		return utils.BadRequestResponse(c, "Invalid appointment ID")
	}

	if err := h.tutorUC.CancelAppointment(c.Request().Context(), session, appointmentID); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passeio cancelado", nil)
}
