package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/errs"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error"`
	Code     int               `json:"code,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// User facing messages
const (
	MsgUnauthenticated    = "Usuário não autenticado."
	MsgLocationDenied     = "Permissão para acessar a localização foi negada"
	MsgValidation         = "Dados inválidos."
	MsgNotFound           = "Recurso não encontrado."
	MsgBackendUnavailable = "Não foi possível conectar ao servidor. Verifique sua conexão e tente novamente."
	MsgSubmissionFailed   = "Não foi possível agendar o passeio. Tente novamente."
	MsgRequestCanceled    = "Requisição cancelada."
)

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 response telling the app to go back to login
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = MsgUnauthenticated
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success:  false,
		Error:    errorMessage,
		Code:     http.StatusUnauthorized,
		Redirect: constants.RouteLogin,
	})
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = MsgNotFound
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ValidationErrorResponse sends a 422 response listing the failing fields
func ValidationErrorResponse(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   MsgValidation,
		Code:    http.StatusUnprocessableEntity,
		Fields:  fields,
	})
}

// BadGatewayResponse sends a 502 response for marketplace failures
func BadGatewayResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = MsgBackendUnavailable
	}
	return ErrorResponseHandler(c, http.StatusBadGateway, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// ErrorFromDomain writes the response matching a usecase error
func ErrorFromDomain(c echo.Context, err error) error {
	var verr *errs.ValidationError
	var subErr *errs.SubmissionError
	var apiErr *errs.APIError

	switch {
	case errors.As(err, &verr):
		return ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, errs.ErrUnauthenticated):
		return UnauthorizedResponse(c, "")
	case errors.Is(err, errs.ErrLocationPermissionDenied):
		return ForbiddenResponse(c, MsgLocationDenied)
	case errors.Is(err, errs.ErrCanceled), errors.Is(err, context.Canceled):
		// client closed request
		return ErrorResponseHandler(c, 499, MsgRequestCanceled)
	case errors.As(err, &subErr):
		return BadGatewayResponse(c, MsgSubmissionFailed)
	case errors.Is(err, errs.ErrNotFound):
		return NotFoundResponse(c, "")
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized:
		return UnauthorizedResponse(c, "")
	case errors.As(err, &apiErr), errors.Is(err, errs.ErrTransport),
		errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		return BadGatewayResponse(c, "")
	default:
		return InternalServerErrorResponse(c, "")
	}
}
