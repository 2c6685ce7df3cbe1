// controllers/stylist.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type StylistController struct {
	Scheduler *services.SchedulerService
}

// CreateStylistInput defines the expected JSON structure for creating a stylist
type CreateStylistInput struct {
	Name              string               `json:"name" binding:"required"`
	Specialty         string               `json:"specialty"`
	DailyBookingLimit int                  `json:"dailyBookingLimit" binding:"required,min=1"`
	WorkingHours      *models.WorkingHours `json:"workingHours"`
}

// UpdateStylistInput defines the expected JSON structure for updating a stylist
type UpdateStylistInput struct {
	Name              *string              `json:"name"`
	Specialty         *string              `json:"specialty"`
	DailyBookingLimit *int                 `json:"dailyBookingLimit"`
	WorkingHours      *models.WorkingHours `json:"workingHours"`
}

// GetStylists retrieves all stylists with their schedules
func (ctl *StylistController) GetStylists(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Scheduler.Stylists())
}

// GetStylist retrieves a specific stylist by ID
func (ctl *StylistController) GetStylist(c *gin.Context) {
	stylist, err := ctl.Scheduler.Stylist(c.Param("id"))
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stylist)
}

// CreateStylist registers a stylist and generates their schedule
func (ctl *StylistController) CreateStylist(c *gin.Context) {
	var input CreateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in := services.CreateStylistInput{
		Name:              input.Name,
		Specialty:         input.Specialty,
		DailyBookingLimit: input.DailyBookingLimit,
	}
	if input.WorkingHours != nil {
		in.WorkingHours = *input.WorkingHours
	}

	stylist, err := ctl.Scheduler.CreateStylist(c.Request.Context(), in)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

// UpdateStylist updates mutable stylist attributes
func (ctl *StylistController) UpdateStylist(c *gin.Context) {
	var input UpdateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.DailyBookingLimit != nil && *input.DailyBookingLimit < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "dailyBookingLimit must be at least 1")
		return
	}

	stylist, err := ctl.Scheduler.UpdateStylist(c.Request.Context(), c.Param("id"), services.UpdateStylistInput{
		Name:              input.Name,
		Specialty:         input.Specialty,
		DailyBookingLimit: input.DailyBookingLimit,
		WorkingHours:      input.WorkingHours,
	})
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, stylist)
}
