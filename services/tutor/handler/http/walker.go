package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/utils"
)

// ListWalkers returns walkers ordered by distance from the device
func (h *TutorHandler) ListWalkers(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	origin, err := locationFromQuery(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	walkers, err := h.tutorUC.ListNearbyWalkers(c.Request().Context(), session, origin)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to list walkers",
			logger.TutorID(session.UserID),
			logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", walkers)
}

// GetWalker returns one walker card
func (h *TutorHandler) GetWalker(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	walkerID := c.Param("id")
	if walkerID == "" {
		return utils.BadRequestResponse(c, "Invalid walker ID")
	}

	origin, err := optionalLocationFromQuery(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	walker, err := h.tutorUC.GetWalker(c.Request().Context(), session, walkerID, origin)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", walker)
}
