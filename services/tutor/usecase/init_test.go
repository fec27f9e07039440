package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/piresc/passeio/services/tutor/mocks"
)

var fixedNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

var testSession = models.Session{
	ID:        "sess-1",
	Token:     "marketplace-token",
	UserID:    "7",
	UserName:  "Ana",
	UserEmail: "ana@example.com",
}

func newTestUC(t *testing.T) (*TutorUC, *mocks.MockTutorRepo, *mocks.MockTutorGW) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockTutorRepo(ctrl)
	mockGW := mocks.NewMockTutorGW(ctrl)
	cfg := &models.Config{
		App: models.AppConfig{Timezone: "UTC"},
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "passeio-test"},
	}

	uc := NewTutorUC(cfg, mockRepo, mockGW)
	uc.now = func() time.Time { return fixedNow }
	return uc, mockRepo, mockGW
}

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}
