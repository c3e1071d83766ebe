package errors

import (
	goerrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turtacn/opspulse/pkg/constants"
)

func TestAppError_WithCauseKeepsSentinelClean(t *testing.T) {
	cause := goerrors.New("boom")
	err := ErrNotFound.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, ErrNotFound.Unwrap(), "sentinel must stay untouched")
}

func TestAppError_WithDetail(t *testing.T) {
	err := ErrInvalidRequest.WithDetail("field", "email")

	assert.Equal(t, "email", err.Details["field"])
	assert.Empty(t, ErrInvalidRequest.Details, "sentinel must stay untouched")
}

func TestNewf(t *testing.T) {
	err := Newf(constants.ErrCodeConflict, http.StatusConflict, "user %q exists", "alice")
	assert.Equal(t, `user "alice" exists`, err.Message)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus)
}
