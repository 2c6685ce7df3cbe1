// services/sweep_service.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SweepService runs the status sweep on a timer and rolls the schedule
// horizon forward once a day.
type SweepService struct {
	scheduler *SchedulerService
}

func NewSweepService(scheduler *SchedulerService) *SweepService {
	return &SweepService{scheduler: scheduler}
}

func (s *SweepService) StartScheduler() *cron.Cron {
	c := cron.New()

	// Promote pending appointments every 15 minutes
	c.AddFunc("*/15 * * * *", func() {
		if _, err := s.scheduler.Sweep(context.Background(), time.Now()); err != nil {
			log.Printf("Appointment sweep failed: %v", err)
		}
	})

	// Extend every stylist's horizon just after midnight
	c.AddFunc("5 0 * * *", func() {
		if err := s.scheduler.ExtendHorizon(context.Background(), time.Now()); err != nil {
			log.Printf("Horizon extension failed: %v", err)
		}
	})

	c.Start()
	log.Println("Sweep scheduler started")
	return c
}
