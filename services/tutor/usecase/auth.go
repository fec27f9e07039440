package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/jwt"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/validator"
	"github.com/piresc/passeio/internal/utils"
)

const (
	msgInvalidCredentials = "E-mail ou senha inválidos."
	msgEmailTaken         = "E-mail já cadastrado."
)

// Register creates a tutor account on the marketplace
func (uc *TutorUC) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}

	if err := uc.gw.RegisterTutor(ctx, req); err != nil {
		if apiStatus(err) == http.StatusConflict {
			return errs.NewValidationError("email", msgEmailTaken)
		}
		return err
	}

	logger.InfoCtx(ctx, "Tutor registered", logger.String("email", utils.MaskEmail(req.Email)))
	return nil
}

// Login authenticates against the marketplace and opens a session
func (uc *TutorUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	resp, err := uc.gw.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch apiStatus(err) {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return nil, errs.NewValidationError("email", msgInvalidCredentials)
		}
		return nil, err
	}
	if resp.Token == "" || resp.UserID == "" {
		return nil, fmt.Errorf("login: %w", errs.ErrUnauthenticated)
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		UserID:    resp.UserID.String(),
		UserName:  resp.UserName,
		UserEmail: resp.UserEmail,
		CreatedAt: uc.now().UTC(),
	}
	ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
	if err := uc.repo.CreateSession(ctx, session, ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, expiresAt, err := jwt.GenerateToken(session.ID, session.UserID, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.InfoCtx(ctx, "Tutor logged in",
		logger.TutorID(session.UserID),
		logger.String("email", utils.MaskEmail(session.UserEmail)))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    session.UserID,
		UserName:  session.UserName,
		UserEmail: session.UserEmail,
	}, nil
}

// Logout drops the session and any pending proposal
func (uc *TutorUC) Logout(ctx context.Context, session models.Session) error {
	if err := uc.repo.DeleteSession(ctx, session.ID); err != nil {
		return err
	}
	if err := uc.repo.DeleteDraft(ctx, session.UserID); err != nil {
		logger.WarnCtx(ctx, "Failed to clear proposal draft on logout",
			logger.TutorID(session.UserID),
			logger.Err(err))
	}
	return nil
}

func apiStatus(err error) int {
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
