// services/scheduler_service.go
package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salonbook-backend/models"
	"salonbook-backend/storage"
	"salonbook-backend/utils"
)

// SchedulerService owns the scheduling dataset. All mutations go
// through its mutex, so of any set of concurrent booking attempts for
// the same stylist, date and time, at most one succeeds.
//
// The commit discipline is clone, mutate, save, swap: a mutation is
// applied to a deep copy, persisted, and only then made visible. A
// failed save leaves the previous state in place.
type SchedulerService struct {
	store storage.Store

	mu   sync.Mutex
	data *models.Dataset
}

func NewSchedulerService(store storage.Store) *SchedulerService {
	return &SchedulerService{store: store, data: &models.Dataset{}}
}

// Load replaces the in-memory dataset with the store's contents. Call
// once at boot before serving requests.
func (s *SchedulerService) Load(ctx context.Context) error {
	data, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *SchedulerService) commit(ctx context.Context, next *models.Dataset) error {
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Stylists returns a snapshot of all stylists.
func (s *SchedulerService) Stylists() []models.Stylist {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Stylist, len(s.data.Stylists))
	for i, st := range s.data.Stylists {
		out[i] = st.Clone()
	}
	return out
}

func (s *SchedulerService) Stylist(id string) (models.Stylist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.data.FindStylist(id)
	if st == nil {
		return models.Stylist{}, ErrUnknownStylist
	}
	return st.Clone(), nil
}

type CreateStylistInput struct {
	Name              string
	Specialty         string
	DailyBookingLimit int
	WorkingHours      models.WorkingHours
}

// CreateStylist registers a stylist and generates their full schedule
// horizon starting today.
func (s *SchedulerService) CreateStylist(ctx context.Context, in CreateStylistInput) (models.Stylist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	stylist := models.Stylist{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Specialty:         in.Specialty,
		DailyBookingLimit: in.DailyBookingLimit,
		WorkingHours:      in.WorkingHours,
		Schedule:          models.GenerateSchedule(time.Now(), models.HorizonDays, models.DefaultSlotGrid),
	}
	next.Stylists = append(next.Stylists, stylist)

	if err := s.commit(ctx, next); err != nil {
		return models.Stylist{}, err
	}
	return stylist.Clone(), nil
}

type UpdateStylistInput struct {
	Name              *string
	Specialty         *string
	DailyBookingLimit *int
	WorkingHours      *models.WorkingHours
}

// UpdateStylist changes mutable attributes only. Identity and the
// generated schedule are never touched here.
func (s *SchedulerService) UpdateStylist(ctx context.Context, id string, in UpdateStylistInput) (models.Stylist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	stylist := next.FindStylist(id)
	if stylist == nil {
		return models.Stylist{}, ErrUnknownStylist
	}

	if in.Name != nil {
		stylist.Name = *in.Name
	}
	if in.Specialty != nil {
		stylist.Specialty = *in.Specialty
	}
	if in.DailyBookingLimit != nil {
		stylist.DailyBookingLimit = *in.DailyBookingLimit
	}
	if in.WorkingHours != nil {
		stylist.WorkingHours = *in.WorkingHours
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Stylist{}, err
	}
	return stylist.Clone(), nil
}

// IsAvailable reports whether the stylist can take a booking at the
// given date and slot. An unknown stylist or an out-of-horizon date is
// simply "no availability", not an error.
func (s *SchedulerService) IsAvailable(stylistID, date, label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available(stylistID, date, label)
}

func (s *SchedulerService) available(stylistID, date, label string) bool {
	stylist := s.data.FindStylist(stylistID)
	if stylist == nil {
		return false
	}
	day := stylist.Day(date)
	if day == nil || date < utils.FormatDate(time.Now()) {
		return false
	}
	if day.BookedCount() >= stylist.DailyBookingLimit {
		return false
	}
	slot := day.Slot(label)
	return slot != nil && !slot.IsBooked
}

// ListAvailableSlots returns the day's unbooked slots in grid order.
// Capacity is a hard gate: once the day's booked count reaches the
// stylist's daily limit the whole list is empty, even if individually
// unbooked slots remain.
func (s *SchedulerService) ListAvailableSlots(stylistID, date string) []models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	stylist := s.data.FindStylist(stylistID)
	if stylist == nil {
		return []models.TimeSlot{}
	}
	day := stylist.Day(date)
	if day == nil || date < utils.FormatDate(time.Now()) {
		return []models.TimeSlot{}
	}
	if day.BookedCount() >= stylist.DailyBookingLimit {
		return []models.TimeSlot{}
	}

	available := make([]models.TimeSlot, 0, len(day.Slots))
	for _, slot := range day.Slots {
		if !slot.IsBooked {
			available = append(available, slot)
		}
	}
	return available
}

type BookingInput struct {
	StylistID string
	Date      string
	Time      string
	Client    string
	ServiceID int
}

// Book creates a Pending appointment and flips the matching slot as
// one transaction. Availability is re-checked here, under the lock,
// regardless of what the caller saw earlier.
func (s *SchedulerService) Book(ctx context.Context, in BookingInput) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()

	stylist := next.FindStylist(in.StylistID)
	if stylist == nil {
		return models.Appointment{}, ErrUnknownStylist
	}
	service := next.FindService(in.ServiceID)
	if service == nil || !service.IsActive {
		return models.Appointment{}, ErrUnknownService
	}

	day := stylist.Day(in.Date)
	if day == nil || in.Date < utils.FormatDate(time.Now()) {
		return models.Appointment{}, ErrOutOfRange
	}
	if day.BookedCount() >= stylist.DailyBookingLimit {
		return models.Appointment{}, ErrSlotUnavailable
	}
	slot := day.Slot(in.Time)
	if slot == nil || slot.IsBooked {
		return models.Appointment{}, ErrSlotUnavailable
	}

	appointment := models.Appointment{
		ID:        next.NextAppointmentID(),
		Client:    in.Client,
		Service:   service.Name,
		Date:      in.Date,
		Time:      in.Time,
		Status:    models.StatusPending,
		Price:     service.Price,
		StylistID: in.StylistID,
	}

	slot.IsBooked = true
	slot.ClientName = in.Client
	slot.Service = service.Name
	next.Appointments = append(next.Appointments, appointment)

	if err := s.commit(ctx, next); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// Cancel sets the appointment to Cancelled and releases its slot.
// Cancelling an already cancelled appointment is a no-op.
func (s *SchedulerService) Cancel(ctx context.Context, id int) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	appointment := next.FindAppointment(id)
	if appointment == nil {
		return models.Appointment{}, ErrUnknownAppointment
	}
	if appointment.Status == models.StatusCancelled {
		return *appointment, nil
	}

	appointment.Status = models.StatusCancelled
	if stylist := next.FindStylist(appointment.StylistID); stylist != nil {
		if day := stylist.Day(appointment.Date); day != nil {
			if slot := day.Slot(appointment.Time); slot != nil {
				slot.IsBooked = false
				slot.ClientName = ""
				slot.Service = ""
			}
		}
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Appointment{}, err
	}
	return *appointment, nil
}

// Sweep promotes Pending appointments to Confirmed once their instant
// is 24 hours away or less. Confirmed and Cancelled are terminal for
// the sweep; running it twice with the same now changes nothing the
// second time.
func (s *SchedulerService) Sweep(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	changed := false
	for i := range next.Appointments {
		appointment := &next.Appointments[i]
		if appointment.Status != models.StatusPending {
			continue
		}
		when, err := utils.CombineDateTime(appointment.Date, appointment.Time)
		if err != nil {
			continue
		}
		if when.Sub(now) <= 24*time.Hour {
			appointment.Status = models.StatusConfirmed
			changed = true
		}
	}

	if changed {
		if err := s.commit(ctx, next); err != nil {
			return nil, err
		}
	}

	out := make([]models.Appointment, len(s.data.Appointments))
	copy(out, s.data.Appointments)
	return out, nil
}

// Appointments returns appointments sorted by id, optionally filtered
// by stylist and/or status (empty values match everything).
func (s *SchedulerService) Appointments(stylistID string, status models.AppointmentStatus) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, 0, len(s.data.Appointments))
	for _, a := range s.data.Appointments {
		if stylistID != "" && a.StylistID != stylistID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ExtendHorizon rolls every stylist's schedule forward so it covers
// the full horizon from today. Existing days are never regenerated.
func (s *SchedulerService) ExtendHorizon(ctx context.Context, today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	changed := false
	for i := range next.Stylists {
		stylist := &next.Stylists[i]
		extended := models.ExtendSchedule(stylist.Schedule, today, models.HorizonDays, models.DefaultSlotGrid)
		if len(extended) != len(stylist.Schedule) {
			stylist.Schedule = extended
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.commit(ctx, next)
}

// Services returns the catalog, active entries first in id order.
func (s *SchedulerService) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Service, len(s.data.Services))
	copy(out, s.data.Services)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *SchedulerService) Service(id int) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	service := s.data.FindService(id)
	if service == nil {
		return models.Service{}, ErrUnknownService
	}
	return *service, nil
}

type CreateServiceInput struct {
	Name     string
	Price    float64
	Duration int
}

func (s *SchedulerService) CreateService(ctx context.Context, in CreateServiceInput) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	service := models.Service{
		ID:       next.NextServiceID(),
		Name:     in.Name,
		Price:    in.Price,
		Duration: in.Duration,
		IsActive: true,
	}
	next.Services = append(next.Services, service)

	if err := s.commit(ctx, next); err != nil {
		return models.Service{}, err
	}
	return service, nil
}

type UpdateServiceInput struct {
	Name     *string
	Price    *float64
	Duration *int
	IsActive *bool
}

func (s *SchedulerService) UpdateService(ctx context.Context, id int, in UpdateServiceInput) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	service := next.FindService(id)
	if service == nil {
		return models.Service{}, ErrUnknownService
	}

	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.Duration != nil {
		service.Duration = *in.Duration
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Service{}, err
	}
	return *service, nil
}

// DeactivateService soft-deletes a catalog entry. Existing
// appointments keep their denormalized name and price.
func (s *SchedulerService) DeactivateService(ctx context.Context, id int) error {
	inactive := false
	_, err := s.UpdateService(ctx, id, UpdateServiceInput{IsActive: &inactive})
	return err
}
