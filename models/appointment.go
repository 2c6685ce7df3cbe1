package models

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment IDs are assigned by the scheduler (max existing + 1),
// never by the database, so they stay strictly increasing across the
// whole dataset and are never reused after cancellation.
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Client    string            `gorm:"not null" json:"client"`
	Service   string            `gorm:"not null" json:"service"`
	Date      string            `gorm:"not null" json:"date"`
	Time      string            `gorm:"not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Price     float64           `gorm:"type:decimal(10,2);not null" json:"price"`
	StylistID string            `gorm:"index;not null" json:"stylistId"`
}
