// controllers/dashboard.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

type DashboardController struct {
	Scheduler *services.SchedulerService
}

type DashboardOverview struct {
	TodaysAppointments int                   `json:"todaysAppointments"`
	PendingCount       int                   `json:"pendingCount"`
	ConfirmedCount     int                   `json:"confirmedCount"`
	ExpectedRevenue    float64               `json:"expectedRevenue"` // today, non-cancelled
	NextAppointments   []UpcomingAppointment `json:"nextAppointments"`
}

type UpcomingAppointment struct {
	ID      int    `json:"id"`
	Client  string `json:"client"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// GetDashboardOverview sweeps statuses, then summarizes the
// appointment book. The sweep runs first so a freshly loaded dashboard
// never shows a stale Pending.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	appointments, err := ctl.Scheduler.Sweep(c.Request.Context(), now)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}

	today := utils.FormatDate(now)
	overview := DashboardOverview{NextAppointments: []UpcomingAppointment{}}

	type upcoming struct {
		at   time.Time
		appt models.Appointment
	}
	var future []upcoming

	for _, a := range appointments {
		switch a.Status {
		case models.StatusPending:
			overview.PendingCount++
		case models.StatusConfirmed:
			overview.ConfirmedCount++
		}
		if a.Status == models.StatusCancelled {
			continue
		}
		if a.Date == today {
			overview.TodaysAppointments++
			overview.ExpectedRevenue += a.Price
		}
		when, err := utils.CombineDateTime(a.Date, a.Time)
		if err == nil && !when.Before(now) {
			future = append(future, upcoming{at: when, appt: a})
		}
	}

	sort.Slice(future, func(i, j int) bool { return future[i].at.Before(future[j].at) })
	for i := 0; i < len(future) && i < 5; i++ {
		a := future[i].appt
		overview.NextAppointments = append(overview.NextAppointments, UpcomingAppointment{
			ID:      a.ID,
			Client:  a.Client,
			Service: a.Service,
			Date:    a.Date,
			Time:    a.Time,
			Status:  string(a.Status),
		})
	}

	c.JSON(http.StatusOK, overview)
}
