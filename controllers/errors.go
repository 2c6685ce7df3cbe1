// controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/services"
	"salonbook-backend/storage"
	"salonbook-backend/utils"
)

// respondSchedulerError maps the engine's error taxonomy onto HTTP
// status codes. Everything here is a normal outcome the client can
// retry with different parameters, except a store failure.
func respondSchedulerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownStylist),
		errors.Is(err, services.ErrUnknownService),
		errors.Is(err, services.ErrUnknownAppointment):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOutOfRange):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrSlotUnavailable):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		utils.RespondWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
