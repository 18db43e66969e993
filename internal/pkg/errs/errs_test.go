package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_KnownCode(t *testing.T) {
	customErr := NewError(ErrSessionBusy)
	require.NotNil(t, customErr)

	assert.Equal(t, ErrSessionBusy, customErr.Code)
	assert.Equal(t, http.StatusConflict, customErr.Status)
	assert.NotEmpty(t, customErr.Message)
}

func TestNewError_BusinessErrorsDefaultToHTTP200(t *testing.T) {
	customErr := NewError(ErrEmptyMessage)
	require.NotNil(t, customErr)
	assert.Equal(t, http.StatusOK, customErr.Status)
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	customErr := NewError(99999)
	require.NotNil(t, customErr)
	assert.Equal(t, ErrUnknown, customErr.Code)
	assert.Equal(t, http.StatusInternalServerError, customErr.Status)
}

func TestNewError_ReturnsCopy(t *testing.T) {
	first := NewError(ErrInvalidParams)
	second := NewError(ErrInvalidParams)

	first.Message = "mutated"
	assert.NotEqual(t, first.Message, second.Message)
}

func TestCustomError_ErrorString(t *testing.T) {
	customErr := NewError(ErrModelTimeout)
	assert.Contains(t, customErr.Error(), "4002")
}
