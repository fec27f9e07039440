package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "passeio-tutor", cfg.App.Name)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2, cfg.Backend.MaxRetries)
	assert.Equal(t, 0, cfg.Backend.DetailConcurrency)
	assert.Equal(t, 24*time.Hour, cfg.Proposal.DraftTTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.LoginPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.SubmitPerMinute)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api.example.com")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("BACKEND_MAX_RETRIES", "0")
	t.Setenv("WALKER_DETAIL_CONCURRENCY", "4")
	t.Setenv("PROPOSAL_DRAFT_TTL", "3600")
	t.Setenv("JWT_EXPIRATION", "30")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "http://api.example.com", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 0, cfg.Backend.MaxRetries)
	assert.Equal(t, 4, cfg.Backend.DetailConcurrency)
	assert.Equal(t, time.Hour, cfg.Proposal.DraftTTL)
	assert.Equal(t, 30, cfg.JWT.Expiration)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TEST_DURATION", time.Minute))
}
