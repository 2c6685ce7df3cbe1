package models

import "time"

// HorizonDays is how far ahead schedules are generated.
const HorizonDays = 30

const DateLayout = "2006-01-02"

// DefaultSlotGrid is the fixed ordered list of bookable time labels
// shared by all stylists on any given day.
var DefaultSlotGrid = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
}

// GenerateSchedule builds one StylistSchedule per day from start
// through start + horizonDays - 1, each with one unbooked slot per
// grid label. Deterministic given its inputs, so regeneration that
// only appends trailing days never disturbs booked slots.
func GenerateSchedule(start time.Time, horizonDays int, grid []string) Schedule {
	schedule := make(Schedule, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		day := start.AddDate(0, 0, i)
		slots := make([]TimeSlot, len(grid))
		for j, label := range grid {
			slots[j] = TimeSlot{Time: label}
		}
		schedule = append(schedule, StylistSchedule{
			Date:  day.Format(DateLayout),
			Slots: slots,
		})
	}
	return schedule
}

// ExtendSchedule appends the days needed so the schedule reaches
// today + horizonDays - 1. Existing days, including days already in
// the past, are left untouched.
func ExtendSchedule(schedule Schedule, today time.Time, horizonDays int, grid []string) Schedule {
	if len(schedule) == 0 {
		return GenerateSchedule(today, horizonDays, grid)
	}

	last, err := time.ParseInLocation(DateLayout, schedule[len(schedule)-1].Date, today.Location())
	if err != nil {
		return schedule
	}

	end := today.AddDate(0, 0, horizonDays-1)
	for day := last.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		slots := make([]TimeSlot, len(grid))
		for j, label := range grid {
			slots[j] = TimeSlot{Time: label}
		}
		schedule = append(schedule, StylistSchedule{
			Date:  day.Format(DateLayout),
			Slots: slots,
		})
	}
	return schedule
}
