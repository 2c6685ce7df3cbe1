package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/storage"
	"salonbook-backend/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.SchedulerService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed := &models.Dataset{
		Stylists: []models.Stylist{{
			ID:                "x",
			Name:              "Stylist X",
			DailyBookingLimit: 14,
			Schedule:          models.GenerateSchedule(time.Now(), models.HorizonDays, models.DefaultSlotGrid),
		}},
		Services: []models.Service{{ID: 1, Name: "Men's Haircut", Price: 50, IsActive: true}},
	}
	store := storage.NewMemoryStore()
	if err := store.Save(context.Background(), seed); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}
	scheduler := services.NewSchedulerService(store)
	if err := scheduler.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	bookingCtl := &BookingController{Scheduler: scheduler}
	availabilityCtl := &AvailabilityController{Scheduler: scheduler}
	appointmentCtl := &AppointmentController{Scheduler: scheduler}

	r := gin.New()
	r.POST("/api/bookings", bookingCtl.CreateBooking)
	r.GET("/api/stylists/:id/availability", availabilityCtl.GetAvailability)
	r.GET("/api/appointments", appointmentCtl.GetAppointments)
	r.PUT("/api/appointments/:id/cancel", appointmentCtl.CancelAppointment)
	return r, scheduler
}

func postBooking(r *gin.Engine, date, label string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]interface{}{
		"stylistId": "x",
		"date":      date,
		"time":      label,
		"client":    "Akosua Mansa",
		"serviceId": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 1))

	w := postBooking(r, date, "10:00 AM")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var appt models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
		t.Fatalf("response is not an appointment: %v", err)
	}
	if appt.Status != models.StatusPending || appt.Service != "Men's Haircut" {
		t.Errorf("appointment = %+v", appt)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	r, _ := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 1))

	postBooking(r, date, "10:00 AM")
	w := postBooking(r, date, "10:00 AM")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestCreateBookingBadDate(t *testing.T) {
	r, _ := newTestRouter(t)
	w := postBooking(r, "01/09/2026", "10:00 AM")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateBookingUnknownStylist(t *testing.T) {
	r, _ := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 1))
	body, _ := json.Marshal(map[string]interface{}{
		"stylistId": "nobody",
		"date":      date,
		"time":      "10:00 AM",
		"client":    "Akosua Mansa",
		"serviceId": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetAvailabilityEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 1))

	postBooking(r, date, "09:00 AM")

	req := httptest.NewRequest(http.MethodGet, "/api/stylists/x/availability?date="+date, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp AvailabilityResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.AvailableSlots) != len(models.DefaultSlotGrid)-1 {
		t.Fatalf("got %d slots, want %d", len(resp.AvailableSlots), len(models.DefaultSlotGrid)-1)
	}
	for _, label := range resp.AvailableSlots {
		if label == "09:00 AM" {
			t.Fatalf("booked slot still listed as available")
		}
	}
}

func TestCancelAppointmentEndpoint(t *testing.T) {
	r, scheduler := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 1))

	w := postBooking(r, date, "10:00 AM")
	var appt models.Appointment
	json.Unmarshal(w.Body.Bytes(), &appt)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/appointments/%d/cancel", appt.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	stylist, err := scheduler.Stylist("x")
	if err != nil {
		t.Fatalf("Stylist returned error: %v", err)
	}
	if slot := stylist.Day(date).Slot("10:00 AM"); slot.IsBooked {
		t.Fatalf("slot still booked after cancel endpoint")
	}
}

func TestCancelUnknownAppointmentEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/99/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
