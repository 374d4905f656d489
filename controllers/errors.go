package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error kind to a status code. Unrecognized
// errors are logged and hidden behind a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidState):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("unhandled service error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
