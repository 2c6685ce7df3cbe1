package models

// Service is the canonical catalog entry. Bookings reference a service
// by id; its name and price are denormalized onto the appointment and
// slot at booking time.
type Service struct {
	ID       int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration int     `json:"duration"` // in minutes
	IsActive bool    `gorm:"default:true" json:"isActive"`
}
