package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(ErrGateway))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrSlugTaken))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrStaleCart))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrStore))
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("creating payment session: %w", ErrGateway)
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(wrapped))
}

func TestHTTPStatusUnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("surprise")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(nil))
}
