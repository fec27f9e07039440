package errs

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_IsNotFound(t *testing.T) {
	err := Wrap("get walker", &APIError{StatusCode: http.StatusNotFound})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(&APIError{StatusCode: http.StatusBadGateway}, ErrNotFound))
}

func TestValidationError(t *testing.T) {
	v := &ValidationError{}
	assert.True(t, v.Empty())

	v.Add("pet", "selecione um pet")
	v.Add("pet", "ignored")
	v.Add("passeador", "selecione um passeador")

	assert.False(t, v.Empty())
	assert.Equal(t, "selecione um pet", v.Fields["pet"])
	assert.Equal(t, "validation failed: passeador: selecione um passeador, pet: selecione um pet", v.Error())
	assert.True(t, IsValidation(Wrap("compose", v)))
}

func TestSubmissionError_Unwrap(t *testing.T) {
	err := &SubmissionError{Err: ErrTransport}

	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "backend unreachable")
}

func TestFromContext(t *testing.T) {
	assert.NoError(t, FromContext(context.Background(), "op"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := FromContext(ctx, "fetch walkers")

	assert.True(t, errors.Is(err, ErrCanceled))
	assert.True(t, errors.Is(err, context.Canceled))
}
