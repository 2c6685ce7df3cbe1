// controllers/service.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type ServiceController struct {
	Scheduler *services.SchedulerService
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,min=0"`
	Duration int     `json:"duration" binding:"min=0"` // in minutes
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Duration *int     `json:"duration"`
	IsActive *bool    `json:"isActive"`
}

// CreateService adds a new entry to the service catalog
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Scheduler.CreateService(c.Request.Context(), services.CreateServiceInput{
		Name:     input.Name,
		Price:    input.Price,
		Duration: input.Duration,
	})
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the service catalog
func (ctl *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Scheduler.Services())
}

// GetService retrieves a specific catalog entry by ID
func (ctl *ServiceController) GetService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ctl.Scheduler.Service(id)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing catalog entry
func (ctl *ServiceController) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Scheduler.UpdateService(c.Request.Context(), id, services.UpdateServiceInput{
		Name:     input.Name,
		Price:    input.Price,
		Duration: input.Duration,
		IsActive: input.IsActive,
	})
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a catalog entry; booked appointments keep
// their denormalized name and price
func (ctl *ServiceController) DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := ctl.Scheduler.DeactivateService(c.Request.Context(), id); err != nil {
		respondSchedulerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated successfully"})
}
