package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() models.ProposalDraft {
	return models.ProposalDraft{
		TutorID:  "7",
		WalkerID: "12",
		PetID:    "3",
		Date:     "2025-06-01",
		Time:     "14:30",
	}
}

func TestComposeAppointment_MergesDateAndTime(t *testing.T) {
	origin := models.Coordinate{Latitude: -23.55, Longitude: -46.63}

	req, err := ComposeAppointment(completeDraft(), origin, "7", fixedNow, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), req.ScheduledAt)
	assert.Equal(t, "14:30", req.Time)
	assert.Equal(t, "12", req.WalkerID)
	assert.Equal(t, "3", req.PetID)
	assert.Equal(t, "7", req.TutorID)
	assert.Equal(t, models.ServiceTypeWalk, req.ServiceType)
	assert.Equal(t, "Point", req.Location.Type)
	assert.Equal(t, [2]float64{-46.63, -23.55}, req.Location.Coordinates)
}

func TestComposeAppointment_UsesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	req, err := ComposeAppointment(completeDraft(), models.Coordinate{}, "7", fixedNow, loc)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T14:30:00-03:00", req.ScheduledAt.Format(time.RFC3339))
}

func TestComposeAppointment_MissingSelections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.ProposalDraft)
		fields []string
	}{
		{"no pet", func(d *models.ProposalDraft) { d.PetID = "" }, []string{"pet"}},
		{"no walker", func(d *models.ProposalDraft) { d.WalkerID = " " }, []string{"walker"}},
		{"nothing selected", func(d *models.ProposalDraft) { *d = models.ProposalDraft{} }, []string{"walker", "pet", "date", "time"}},
		{"bad time", func(d *models.ProposalDraft) { d.Time = "25:99" }, []string{"time"}},
		{"past date", func(d *models.ProposalDraft) { d.Date = "2025-05-19" }, []string{"date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			tt.mutate(&draft)

			_, err := ComposeAppointment(draft, models.Coordinate{}, "7", fixedNow, time.UTC)

			var verr *errs.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestComposeAppointment_TodayIsAllowed(t *testing.T) {
	draft := completeDraft()
	draft.Date = fixedNow.Format(models.DateLayout)
	draft.Time = "08:00"

	_, err := ComposeAppointment(draft, models.Coordinate{}, "7", fixedNow, time.UTC)

	assert.NoError(t, err)
}

func TestComposeAppointment_InvalidLocation(t *testing.T) {
	_, err := ComposeAppointment(completeDraft(), models.Coordinate{Latitude: 91}, "7", fixedNow, time.UTC)

	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Localização inválida.", verr.Fields["location"])
}

func TestMergeDateTime_ZeroesSeconds(t *testing.T) {
	day := time.Date(2025, 6, 1, 23, 59, 59, 999, time.UTC)
	clock := time.Date(0, 1, 1, 7, 5, 42, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 1, 7, 5, 0, 0, time.UTC), MergeDateTime(day, clock, time.UTC))
}
