// controllers/availability.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type AvailabilityController struct {
	Scheduler *services.SchedulerService
}

type AvailabilityResponse struct {
	StylistID      string   `json:"stylistId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

// GetAvailability lists the available time labels for a stylist on a
// date, in grid order. An unknown stylist or out-of-horizon date is an
// empty list, not an error.
func (ctl *AvailabilityController) GetAvailability(c *gin.Context) {
	stylistID := c.Param("id")
	date := c.Query("date")
	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	slots := ctl.Scheduler.ListAvailableSlots(stylistID, date)
	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.Time)
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		StylistID:      stylistID,
		Date:           date,
		AvailableSlots: labels,
	})
}
