package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/utils"
)

// GetProfile returns the tutor record with pet and walk counters
func (h *TutorHandler) GetProfile(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	profile, err := h.tutorUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}
