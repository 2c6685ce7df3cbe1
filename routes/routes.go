package routes

import (
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(scheduler *services.SchedulerService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	bookingCtl := &controllers.BookingController{Scheduler: scheduler}
	availabilityCtl := &controllers.AvailabilityController{Scheduler: scheduler}
	appointmentCtl := &controllers.AppointmentController{Scheduler: scheduler}
	stylistCtl := &controllers.StylistController{Scheduler: scheduler}
	serviceCtl := &controllers.ServiceController{Scheduler: scheduler}
	dashboardCtl := &controllers.DashboardController{Scheduler: scheduler}

	api := r.Group("/api")
	{
		// Stylist routes
		stylists := api.Group("/stylists")
		{
			stylists.GET("", stylistCtl.GetStylists)
			stylists.POST("", stylistCtl.CreateStylist)
			stylists.GET("/:id", stylistCtl.GetStylist)
			stylists.PUT("/:id", stylistCtl.UpdateStylist)
			stylists.GET("/:id/availability", availabilityCtl.GetAvailability)
		}

		// Booking routes
		api.POST("/bookings", bookingCtl.CreateBooking)

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentCtl.GetAppointments)
			appointments.POST("/sweep", appointmentCtl.SweepAppointments)
			appointments.PUT("/:id/cancel", appointmentCtl.CancelAppointment)
		}

		// Service catalog routes
		catalog := api.Group("/services")
		{
			catalog.POST("", serviceCtl.CreateService)
			catalog.GET("", serviceCtl.GetServices)
			catalog.GET("/:id", serviceCtl.GetService)
			catalog.PUT("/:id", serviceCtl.UpdateService)
			catalog.DELETE("/:id", serviceCtl.DeleteService)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardCtl.GetDashboardOverview)
	}

	return r
}
