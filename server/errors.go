package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/prize"
)

// apiError is the standard error response for the kiosk API.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(c *gin.Context, err error) {
	var verr *prize.ValidationError
	var serr *prize.StorageError
	switch {
	case errors.Is(err, prize.ErrPrizeNotFound):
		c.JSON(http.StatusNotFound, apiError{Error: err.Error(), Code: "not_found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apiError{Error: verr.Error(), Code: "validation"})
	case errors.As(err, &serr):
		// The mutation survives in memory; only the write was lost.
		c.JSON(http.StatusInternalServerError, apiError{Error: "failed to persist prizes", Code: "storage"})
	default:
		c.JSON(http.StatusInternalServerError, apiError{Error: err.Error()})
	}
}
