// controllers/booking.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type BookingController struct {
	Scheduler *services.SchedulerService
}

// CreateBookingInput defines the expected JSON structure for booking a slot
type CreateBookingInput struct {
	StylistID string `json:"stylistId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Client    string `json:"client" binding:"required"`
	ServiceID int    `json:"serviceId" binding:"required"`
}

// CreateBooking books a slot and returns the created appointment
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	appointment, err := ctl.Scheduler.Book(c.Request.Context(), services.BookingInput{
		StylistID: input.StylistID,
		Date:      input.Date,
		Time:      input.Time,
		Client:    input.Client,
		ServiceID: input.ServiceID,
	})
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}
