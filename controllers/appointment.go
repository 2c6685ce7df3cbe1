// controllers/appointment.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type AppointmentController struct {
	Scheduler *services.SchedulerService
}

// GetAppointments lists appointments, optionally filtered by stylist
// and status query parameters
func (ctl *AppointmentController) GetAppointments(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	switch status {
	case "", models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	appointments := ctl.Scheduler.Appointments(c.Query("stylistId"), status)
	c.JSON(http.StatusOK, appointments)
}

// CancelAppointment sets the appointment to Cancelled and frees its slot
func (ctl *AppointmentController) CancelAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := ctl.Scheduler.Cancel(c.Request.Context(), id)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// SweepAppointments runs the status sweep on demand and returns the
// updated appointment set
func (ctl *AppointmentController) SweepAppointments(c *gin.Context) {
	appointments, err := ctl.Scheduler.Sweep(c.Request.Context(), time.Now())
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}
