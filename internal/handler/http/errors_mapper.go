package http

import (
	"errors"
	"net/http"

	"github.com/jvreeken/boodschapp/internal/service"
	"github.com/jvreeken/boodschapp/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrListNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
