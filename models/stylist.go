package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type Stylist struct {
	ID                string       `gorm:"primaryKey" json:"id"`
	Name              string       `gorm:"not null" json:"name"`
	Specialty         string       `json:"specialty"`
	DailyBookingLimit int          `gorm:"not null" json:"dailyBookingLimit"`
	WorkingHours      WorkingHours `gorm:"type:jsonb;default:'{}'" json:"workingHours"`
	Schedule          Schedule     `gorm:"type:jsonb;default:'[]'" json:"schedule"`
}

// WorkingHours is informational only; the generated schedule is the
// source of truth for bookable times.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StylistSchedule is one calendar day of slots for one stylist. The
// slot set is fixed at generation time; slots are marked booked or
// unbooked, never added or removed.
type StylistSchedule struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

type TimeSlot struct {
	Time       string `json:"time"`
	IsBooked   bool   `json:"isBooked"`
	ClientName string `json:"clientName,omitempty"`
	Service    string `json:"service,omitempty"`
}

// Schedule is the full horizon of day schedules, stored as a JSONB
// document alongside the stylist row.
type Schedule []StylistSchedule

func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		s = Schedule{}
	}
	return json.Marshal(s)
}

func (s *Schedule) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(str)
	}
	return json.Unmarshal(b, s)
}

func (w WorkingHours) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WorkingHours) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(str)
	}
	return json.Unmarshal(b, w)
}

// Day returns the schedule for the given date, or nil if the date is
// outside the generated horizon.
func (s *Stylist) Day(date string) *StylistSchedule {
	for i := range s.Schedule {
		if s.Schedule[i].Date == date {
			return &s.Schedule[i]
		}
	}
	return nil
}

// Slot returns the slot with the given time label, or nil.
func (d *StylistSchedule) Slot(label string) *TimeSlot {
	for i := range d.Slots {
		if d.Slots[i].Time == label {
			return &d.Slots[i]
		}
	}
	return nil
}

// BookedCount is the number of booked slots on this day, checked
// against the stylist's daily booking limit.
func (d *StylistSchedule) BookedCount() int {
	count := 0
	for i := range d.Slots {
		if d.Slots[i].IsBooked {
			count++
		}
	}
	return count
}

func (s Stylist) Clone() Stylist {
	out := s
	out.Schedule = make(Schedule, len(s.Schedule))
	for i, day := range s.Schedule {
		slots := make([]TimeSlot, len(day.Slots))
		copy(slots, day.Slots)
		out.Schedule[i] = StylistSchedule{Date: day.Date, Slots: slots}
	}
	return out
}
