package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"formhub/internal/dto"
	"formhub/internal/service"
)

// AbortWithError maps service sentinels to HTTP statuses. Services never
// shape user-facing messages, so the translation lives here.
func AbortWithError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
