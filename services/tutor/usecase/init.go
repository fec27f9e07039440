package usecase

import (
	"time"

	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/services/tutor"
)

// TutorUC implements the tutor use case interface
type TutorUC struct {
	cfg  *models.Config
	repo tutor.TutorRepo
	gw   tutor.TutorGW
	loc  *time.Location
	now  func() time.Time
}

// NewTutorUC creates a new tutor use case
func NewTutorUC(
	cfg *models.Config,
	repo tutor.TutorRepo,
	gw tutor.TutorGW,
) *TutorUC {
	return &TutorUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		loc:  models.LoadLocation(cfg.App.Timezone),
		now:  time.Now,
	}
}
