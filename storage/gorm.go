package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salonbook-backend/models"
)

// GormStore keeps the dataset in Postgres. Stylist schedules and
// working hours live in JSONB columns, so each stylist row carries its
// whole 30-day document.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) (*models.Dataset, error) {
	db := s.db.WithContext(ctx)
	data := &models.Dataset{}

	if err := db.Order("id").Find(&data.Stylists).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.Order("id").Find(&data.Appointments).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.Order("id").Find(&data.Services).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

// Save upserts every row inside a single transaction. Rows are never
// deleted: appointments are history and stylists only ever mutate.
func (s *GormStore) Save(ctx context.Context, data *models.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{UpdateAll: true}
		if len(data.Stylists) > 0 {
			if err := tx.Clauses(upsert).Create(&data.Stylists).Error; err != nil {
				return err
			}
		}
		if len(data.Appointments) > 0 {
			if err := tx.Clauses(upsert).Create(&data.Appointments).Error; err != nil {
				return err
			}
		}
		if len(data.Services) > 0 {
			if err := tx.Clauses(upsert).Create(&data.Services).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
