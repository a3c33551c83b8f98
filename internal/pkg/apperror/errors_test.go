package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, New(ErrCodeNotFound, "x").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, New(ErrCodeInvalidID, "x").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, Validation("x").HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, Unavailable(errors.New("down"), "x").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, New(ErrCodeInternal, "x").HTTPStatus)
}

func TestSentinelsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("sponsor lookup: %w", ErrSponsorNotFound)

	assert.True(t, errors.Is(wrapped, ErrSponsorNotFound))
	assert.False(t, errors.Is(wrapped, ErrProposalNotFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsInvalidID(wrapped))
}

func TestCodeOf(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Unavailable(cause, "store down")

	assert.Equal(t, ErrCodeStoreUnavailable, CodeOf(err))
	assert.True(t, IsStoreUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCodeInternal, CodeOf(cause))
}
