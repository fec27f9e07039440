package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

type fakeConn struct{ connected bool }

func (f fakeConn) IsConnected() bool { return f.connected }

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDefaultBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	t.Setenv("GIT_COMMIT", "abc123")
	t.Setenv("BUILD_TIME", "")

	e := echo.New()
	e.GET("/ping", NewPingHandler("passeio-tutor"))

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "passeio-tutor", info.ServiceName)
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints_NoService(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "passeio-tutor", nil)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		rec := serve(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
	assert.Equal(t, http.StatusOK, serve(e, "/ping").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, "/nope").Code)
}

func TestReady_AllHealthy(t *testing.T) {
	svc := NewHealthService(nil, nil)
	svc.AddChecker("redis", NewPingChecker(fakePinger{}))
	svc.AddChecker("nats", NewConnectionChecker(fakeConn{connected: true}))

	e := echo.New()
	RegisterHealthEndpoints(e, "passeio-tutor", svc)

	rec := serve(e, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "passeio-tutor", resp.Service)
	assert.Equal(t, StatusHealthy, resp.Dependencies["redis"].Status)
	assert.Equal(t, StatusHealthy, resp.Dependencies["nats"].Status)
}

func TestReady_DependencyDown(t *testing.T) {
	svc := NewHealthService(nil, nil)
	svc.AddChecker("postgres", NewPingChecker(fakePinger{err: errors.New("connection refused")}))
	svc.AddChecker("nats", NewConnectionChecker(fakeConn{connected: false}))

	e := echo.New()
	RegisterHealthEndpoints(e, "passeio-tutor", svc)

	rec := serve(e, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["postgres"].Error)
	assert.Equal(t, ErrNotConnected.Error(), resp.Dependencies["nats"].Error)

	// liveness is unaffected
	assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
}

func TestDetailed_IncludesCircuitBreakers(t *testing.T) {
	breakers := circuitbreaker.NewManager(nil)
	breakers.GetOrCreate("marketplace.passeador")

	svc := NewHealthService(nil, breakers)
	svc.AddChecker("redis", NewPingChecker(fakePinger{}))

	e := echo.New()
	RegisterHealthEndpoints(e, "passeio-tutor", svc)

	rec := serve(e, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.CircuitBreakers, "marketplace.passeador")
	assert.Equal(t, "CLOSED", resp.CircuitBreakers["marketplace.passeador"].State)
	assert.Equal(t, DefaultBuildInfo.Version, resp.Version)
}
