package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/utils"
	"github.com/piresc/passeio/services/tutor"
)

// AuthHandler handles account requests
type AuthHandler struct {
	tutorUC tutor.TutorUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tutorUC tutor.TutorUC) *AuthHandler {
	return &AuthHandler{tutorUC: tutorUC}
}

// Register handles tutor sign-up
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid register payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.tutorUC.Register(c.Request().Context(), req); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Cadastro realizado com sucesso!", map[string]string{
		"next": constants.RouteLogin,
	})
}

// Login handles tutor sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid login payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tutorUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login realizado com sucesso", resp)
}

// Logout ends the caller's session
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	if err := h.tutorUC.Logout(c.Request().Context(), session); err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to logout",
			logger.TutorID(session.UserID),
			logger.Err(err))
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logout realizado", map[string]string{
		"next": constants.RouteLogin,
	})
}
