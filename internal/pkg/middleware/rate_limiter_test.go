package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedServer(t *testing.T, limit int) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	e := echo.New()
	e.POST("/v1/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IPRateLimiter(limit, time.Minute, client))
	return e, mr
}

func postLogin(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	e, mr := newLimitedServer(t, 2)

	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
	rec := postLogin(e, "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = postLogin(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// other clients have their own window
	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.2").Code)

	key := "tutor:rate:ip:/v1/auth/login:10.0.0.1"
	require.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	e, mr := newLimitedServer(t, 1)

	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(e, "10.0.0.1").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	e, mr := newLimitedServer(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	e, mr := newLimitedServer(t, 0)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, postLogin(e, "10.0.0.1").Code)
	}
	assert.Empty(t, mr.Keys())
}

func TestUserRateLimiter_KeysByUser(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	e := echo.New()
	setUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", c.Request().Header.Get("X-Test-User"))
			return next(c)
		}
	}
	e.POST("/v1/proposal/submit", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, setUser, UserRateLimiter(1, time.Minute, client))

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/proposal/submit", nil)
		req.Header.Set("X-Test-User", user)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("7"))
	assert.Equal(t, http.StatusTooManyRequests, send("7"))
	assert.Equal(t, http.StatusCreated, send("8"))
	assert.True(t, mr.Exists("tutor:rate:user:/v1/proposal/submit:7"))
}
