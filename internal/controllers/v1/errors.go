package v1

import (
	"errors"
	"net/http"

	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the allocation ratios must sum to 100%"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
