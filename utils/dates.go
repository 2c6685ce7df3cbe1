// utils/dates.go
package utils

import "time"

const (
	DateLayout = "2006-01-02"
	SlotLayout = "03:04 PM"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// FormatDate renders a time as the ISO calendar date used throughout
// the schedule ("2026-08-30").
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CombineDateTime turns a schedule date and a slot label ("10:00 AM")
// into a single local instant, used for the 24-hour confirmation rule.
func CombineDateTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+SlotLayout, date+" "+slot, time.Local)
}
