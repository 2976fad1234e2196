package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppErrorUnwrapsChains(t *testing.T) {
	orig := NewNotFound("ad", 42)
	wrapped := fmt.Errorf("get ad: %w", orig)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestNotFoundShape(t *testing.T) {
	err := NewNotFound("category", 7)

	assert.Equal(t, "Not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "category", err.Details["entity"])
}

func TestFieldErrors(t *testing.T) {
	err := NewFieldErrors(map[string][]string{"name": {"name is required"}}).
		WithField("age", "age must not be negative")

	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
	assert.Len(t, err.Fields, 2)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("row not found")
	err := NewInternal(nil).WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "row not found")
}
