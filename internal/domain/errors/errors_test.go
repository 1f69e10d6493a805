package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := ErrUpdateRejected.WithHTTPCode(http.StatusNotFound).WithDetails("PUT /api/invoices/INV9")
	wrapped := errors.Wrap(err, "commit invoice")

	assert.ErrorIs(t, wrapped, ErrUpdateRejected)
	assert.NotErrorIs(t, wrapped, ErrHTTPStatus)
	assert.True(t, IsHTTP(wrapped))
	assert.False(t, IsNetwork(wrapped))
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "update rejected by server: PUT /api/invoices/INV9", err.Error())
}

func TestBaseError_CauseIsReachable(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	err := ErrNetwork.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, IsNetwork(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBaseError_WithDetailsDoesNotMutatePredefined(t *testing.T) {
	t.Parallel()

	_ = ErrPayload.WithDetails("bad json")

	assert.Empty(t, ErrPayload.Details())
}

func TestClassOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ClassPayload, ClassOf(ErrUploadFailed))
	assert.Equal(t, ClassClient, ClassOf(ErrNoFileSelected))
	assert.True(t, IsPayload(ErrPayload))
	assert.Equal(t, Class(""), ClassOf(stderrors.New("plain")))
}
