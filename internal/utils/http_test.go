package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       map[string]interface{}{"id": "123", "name": "test"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestUnauthorizedResponse_CarriesLoginRedirect(t *testing.T) {
	c, rec := newContext()

	err := UnauthorizedResponse(c, "")
	require.NoError(t, err)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, response.Success)
	assert.Equal(t, MsgUnauthenticated, response.Error)
	assert.Equal(t, constants.RouteLogin, response.Redirect)
}

func TestValidationErrorResponse(t *testing.T) {
	c, rec := newContext()

	err := ValidationErrorResponse(c, map[string]string{"pet": "Selecione um pet."})
	require.NoError(t, err)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Selecione um pet.", response.Fields["pet"])
}

func TestErrorFromDomain(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "validation",
			err:          fmt.Errorf("compose: %w", errs.NewValidationError("pet", "Selecione um pet.")),
			expectedCode: http.StatusUnprocessableEntity,
			expectedMsg:  MsgValidation,
		},
		{
			name:         "unauthenticated",
			err:          errs.ErrUnauthenticated,
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  MsgUnauthenticated,
		},
		{
			name:         "location denied",
			err:          errs.ErrLocationPermissionDenied,
			expectedCode: http.StatusForbidden,
			expectedMsg:  MsgLocationDenied,
		},
		{
			name:         "canceled",
			err:          errs.FromContext(canceledContext(), "fetch walkers"),
			expectedCode: 499,
			expectedMsg:  MsgRequestCanceled,
		},
		{
			name:         "context canceled after retries",
			err:          fmt.Errorf("%w (last error: %v)", context.Canceled, errs.ErrTransport),
			expectedCode: 499,
			expectedMsg:  MsgRequestCanceled,
		},
		{
			name:         "submission failure",
			err:          &errs.SubmissionError{Err: &errs.APIError{StatusCode: http.StatusInternalServerError}},
			expectedCode: http.StatusBadGateway,
			expectedMsg:  MsgSubmissionFailed,
		},
		{
			name:         "backend not found",
			err:          errs.Wrap("get walker", &errs.APIError{StatusCode: http.StatusNotFound}),
			expectedCode: http.StatusNotFound,
			expectedMsg:  MsgNotFound,
		},
		{
			name:         "backend unauthorized",
			err:          &errs.APIError{StatusCode: http.StatusUnauthorized},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  MsgUnauthenticated,
		},
		{
			name:         "backend error",
			err:          &errs.APIError{StatusCode: http.StatusInternalServerError},
			expectedCode: http.StatusBadGateway,
			expectedMsg:  MsgBackendUnavailable,
		},
		{
			name:         "circuit open",
			err:          fmt.Errorf("failed to list walkers: %w", circuitbreaker.ErrCircuitBreakerOpen),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  MsgBackendUnavailable,
		},
		{
			name:         "circuit half-open",
			err:          errs.Wrap("list walkers", circuitbreaker.ErrTooManyRequests),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  MsgBackendUnavailable,
		},
		{
			name:         "transport",
			err:          errs.Wrap("list walkers", errs.ErrTransport),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  MsgBackendUnavailable,
		},
		{
			name:         "unknown",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := ErrorFromDomain(c, tt.err)
			require.NoError(t, err)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedMsg, response.Error)
			assert.False(t, response.Success)
		})
	}
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
