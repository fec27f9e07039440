package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/passeio/internal/pkg/jwt"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/internal/pkg/requestcontext"
	"github.com/piresc/passeio/internal/utils"
)

const (
	claimsKey  = "jwt_claims"
	sessionKey = "session"
)

// SessionStore loads the server-side session a token points to
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
}

// SessionAuth validates the bearer token and loads its session. Requests
// without a live session get a 401 pointing the app back to the login screen.
func SessionAuth(cfg models.JWTConfig, store SessionStore) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, cfg.Secret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*jwtpkg.Claims)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}

			ctx := c.Request().Context()
			session, err := store.GetSession(ctx, claims.SessionID)
			if err != nil {
				logger.WarnCtx(ctx, "Session lookup failed",
					logger.String("session_id", claims.SessionID),
					logger.Err(err))
				return utils.UnauthorizedResponse(c, "")
			}
			if session == nil || session.UserID != claims.UserID {
				return utils.UnauthorizedResponse(c, "")
			}

			c.Set(sessionKey, session)
			c.Set("user_id", session.UserID)
			c.SetRequest(c.Request().WithContext(requestcontext.WithUserID(ctx, session.UserID)))

			return next(c)
		})
	}
}

// SessionFromContext returns the session loaded by SessionAuth
func SessionFromContext(c echo.Context) (*models.Session, bool) {
	session, ok := c.Get(sessionKey).(*models.Session)
	return session, ok && session != nil
}

// SetSession stores a session on the echo context. Handlers under SessionAuth
// never need it; tests do.
func SetSession(c echo.Context, session *models.Session) {
	c.Set(sessionKey, session)
	c.Set("user_id", session.UserID)
}
