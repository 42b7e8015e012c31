package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrStore          = errors.New("store operation failed")
	ErrGateway        = errors.New("payment gateway unavailable")
	ErrSlugTaken      = errors.New("a product with this slug already exists")
	ErrStaleCart      = errors.New("cart was modified by a newer request")
	ErrEmptyCart      = errors.New("cart is empty")
)

var errorMap = map[error]int{
	ErrInternalServer: http.StatusInternalServerError,
	ErrValidation:     http.StatusBadRequest,
	ErrNotFound:       http.StatusNotFound,
	ErrStore:          http.StatusInternalServerError,
	ErrGateway:        http.StatusBadGateway,
	ErrSlugTaken:      http.StatusConflict,
	ErrStaleCart:      http.StatusConflict,
	ErrEmptyCart:      http.StatusBadRequest,
}

// HTTPStatus maps a sentinel (possibly wrapped) to its response status.
// Unknown errors are treated as internal.
func HTTPStatus(err error) int {
	for sentinel, status := range errorMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}
