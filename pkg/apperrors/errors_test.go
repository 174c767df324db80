package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails(map[string]string{"field": "bad"})

	assert.NotNil(t, err.Details)
	assert.Nil(t, ErrValidationFailed.Details, "sentinel must stay untouched")
	assert.Equal(t, ErrValidationFailed.Code, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.Contains(t, body, "Internal server error")
	assert.NotContains(t, body, "connection refused", "wrapped cause must not leak to clients")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := InternalError(cause)

	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	assert.True(t, As(appErr, &target))
	assert.Equal(t, CodeInternalError, target.Code)
}

func TestErrorString(t *testing.T) {
	assert.Contains(t, ErrJobNotFound.Error(), "Job not found")

	wrapped := Wrap(errors.New("sql: no rows"), CodeJobNotFound, "Job not found", http.StatusNotFound)
	assert.Contains(t, wrapped.Error(), "sql: no rows")
}

func TestHelperConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Widget").HTTPCode)
	assert.Equal(t, "Widget not found", NotFound("Widget").Message)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("nope").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("nope").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("nope").HTTPCode)
}
