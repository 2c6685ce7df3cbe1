// services/seed.go
package services

import (
	"context"
	"log"
	"time"

	"salonbook-backend/models"
)

var defaultStylists = []models.Stylist{
	{ID: "sarah", Name: "Kofi Mensah", Specialty: "Color Specialist", DailyBookingLimit: 14},
	{ID: "michael", Name: "Ama Darko", Specialty: "Cutting Expert", DailyBookingLimit: 14},
	{ID: "emma", Name: "Kwame Owusu", Specialty: "Treatment Specialist", DailyBookingLimit: 14},
	{ID: "john", Name: "Adwoa Boateng", Specialty: "Styling Expert", DailyBookingLimit: 14},
}

var defaultServices = []models.Service{
	{ID: 1, Name: "Men's Haircut", Price: 50, Duration: 30},
	{ID: 2, Name: "Ladies' Haircut", Price: 80, Duration: 45},
	{ID: 3, Name: "Kids' Haircut", Price: 40, Duration: 30},
	{ID: 4, Name: "Styling Only", Price: 60, Duration: 30},
	{ID: 5, Name: "Full Color", Price: 200, Duration: 90},
	{ID: 6, Name: "Highlights", Price: 250, Duration: 120},
	{ID: 7, Name: "Balayage", Price: 300, Duration: 150},
	{ID: 8, Name: "Root Touch-up", Price: 150, Duration: 60},
	{ID: 9, Name: "Deep Conditioning", Price: 100, Duration: 45},
	{ID: 10, Name: "Keratin Treatment", Price: 400, Duration: 120},
	{ID: 11, Name: "Protein Treatment", Price: 150, Duration: 60},
	{ID: 12, Name: "Scalp Treatment", Price: 120, Duration: 45},
}

// EnsureSeedData populates an empty dataset with the default stylists
// (each with a freshly generated schedule) and the service catalog.
// A dataset that already has stylists is left alone.
func (s *SchedulerService) EnsureSeedData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Stylists) > 0 {
		return nil
	}

	next := s.data.Clone()
	today := time.Now()
	for _, stylist := range defaultStylists {
		stylist.WorkingHours = models.WorkingHours{Start: "09:00 AM", End: "05:00 PM"}
		stylist.Schedule = models.GenerateSchedule(today, models.HorizonDays, models.DefaultSlotGrid)
		next.Stylists = append(next.Stylists, stylist)
	}
	if len(next.Services) == 0 {
		next.Services = append(next.Services, defaultServices...)
	}

	if err := s.commit(ctx, next); err != nil {
		return err
	}
	log.Printf("Seeded %d stylists and %d services", len(defaultStylists), len(defaultServices))
	return nil
}
