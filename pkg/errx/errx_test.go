package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsStatusByType(t *testing.T) {
	tests := []struct {
		errType Type
		status  int
	}{
		{TypeValidation, http.StatusBadRequest},
		{TypeNotFound, http.StatusNotFound},
		{TypeAuthorization, http.StatusForbidden},
		{TypeConflict, http.StatusConflict},
		{TypeExternal, http.StatusBadGateway},
		{TypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			err := New("boom", tt.errType)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("db gone")
	err := Wrap(cause, "query failed", TypeInternal)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
}

func TestWithDetail(t *testing.T) {
	err := New("boom", TypeExternal).
		WithDetail("status", 502).
		WithDetail("method", "sendMessage")

	assert.Equal(t, 502, err.Details["status"])
	assert.Equal(t, "sendMessage", err.Details["method"])
}

func TestRegistryPrefixesCodes(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "missing")

	assert.Equal(t, Code("TEST_NOT_FOUND"), code)

	err := reg.New(code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "missing", err.Message)
}
