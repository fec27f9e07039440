package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/middleware"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/services/tutor/handler/http"
)

// Handler wires the tutor HTTP handlers to their routes
type Handler struct {
	authHandler  *http.AuthHandler
	tutorHandler *http.TutorHandler
	sessions     middleware.SessionStore
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates the route registry. redisClient backs the rate
// limiters and may be nil to disable them.
func NewHandler(
	authHandler *http.AuthHandler,
	tutorHandler *http.TutorHandler,
	sessions middleware.SessionStore,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		tutorHandler: tutorHandler,
		sessions:     sessions,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the public and session-protected routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")

	// Public routes
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login,
		middleware.IPRateLimiter(h.cfg.RateLimit.LoginPerMinute, time.Minute, h.redisClient))

	// Protected routes
	protected := v1.Group("", middleware.SessionAuth(h.cfg.JWT, h.sessions))
	protected.POST("/auth/logout", h.authHandler.Logout)
	protected.GET("/profile", h.tutorHandler.GetProfile)

	walkers := protected.Group("/walkers")
	walkers.GET("", h.tutorHandler.ListWalkers)
	walkers.GET("/:id", h.tutorHandler.GetWalker)

	pets := protected.Group("/pets")
	pets.GET("", h.tutorHandler.ListPets)
	pets.POST("", h.tutorHandler.RegisterPet)
	pets.DELETE("/:id", h.tutorHandler.DeletePet)

	proposal := protected.Group("/proposal")
	proposal.GET("", h.tutorHandler.GetDraft)
	proposal.DELETE("", h.tutorHandler.ClearDraft)
	proposal.PUT("/walker", h.tutorHandler.SelectWalker)
	proposal.PUT("/pet", h.tutorHandler.SelectPet)
	proposal.PUT("/schedule", h.tutorHandler.SetSchedule)
	proposal.POST("/submit", h.tutorHandler.SubmitProposal,
		middleware.UserRateLimiter(h.cfg.RateLimit.SubmitPerMinute, time.Minute, h.redisClient))
	proposal.GET("/history", h.tutorHandler.ProposalHistory)

	appointments := protected.Group("/appointments")
	appointments.GET("", h.tutorHandler.ListAppointments)
	appointments.GET("/next", h.tutorHandler.NextAppointment)
	appointments.DELETE("/:id", h.tutorHandler.CancelAppointment)
}
