package usecase

import (
	"strings"
	"time"

	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/models"
)

const (
	msgSelectWalker    = "Selecione um passeador."
	msgSelectPet       = "Selecione um pet."
	msgSelectDate      = "Selecione uma data."
	msgSelectTime      = "Selecione um horário."
	msgDateInPast      = "A data deve ser hoje ou no futuro."
	msgInvalidLocation = "Localização inválida."
)

// ComposeAppointment turns the tutor's draft into the marketplace request.
// The date and time selections are merged in loc; now decides which dates
// count as past. It has no side effects.
func ComposeAppointment(draft models.ProposalDraft, origin models.Coordinate, tutorID string, now time.Time, loc *time.Location) (models.AppointmentRequest, error) {
	if loc == nil {
		loc = time.UTC
	}
	verr := &errs.ValidationError{}

	if strings.TrimSpace(draft.WalkerID) == "" {
		verr.Add("walker", msgSelectWalker)
	}
	if strings.TrimSpace(draft.PetID) == "" {
		verr.Add("pet", msgSelectPet)
	}

	day, dayErr := time.ParseInLocation(models.DateLayout, strings.TrimSpace(draft.Date), loc)
	if dayErr != nil {
		verr.Add("date", msgSelectDate)
	} else {
		today := now.In(loc)
		if day.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)) {
			verr.Add("date", msgDateInPast)
		}
	}

	clock, clockErr := time.Parse(models.ClockLayout, strings.TrimSpace(draft.Time))
	if clockErr != nil {
		verr.Add("time", msgSelectTime)
	}

	if !origin.Valid() {
		verr.Add("location", msgInvalidLocation)
	}

	if !verr.Empty() {
		return models.AppointmentRequest{}, verr
	}

	scheduledAt := MergeDateTime(day, clock, loc)
	return models.AppointmentRequest{
		WalkerID:    draft.WalkerID,
		PetID:       draft.PetID,
		TutorID:     tutorID,
		ScheduledAt: scheduledAt,
		Time:        scheduledAt.Format(models.ClockLayout),
		Location:    models.NewGeoJSONPoint(origin),
		ServiceType: models.ServiceTypeWalk,
	}, nil
}

// MergeDateTime copies the hour and minute of clock onto day, zeroing seconds
func MergeDateTime(day, clock time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
}
