package storage

import (
	"context"
	"errors"

	"salonbook-backend/models"
)

// ErrUnavailable wraps any storage I/O failure. The scheduler treats a
// failed Save as "not committed" and keeps its previous state.
var ErrUnavailable = errors.New("store unavailable")

// Store loads and saves the whole dataset as one atomic unit.
type Store interface {
	Load(ctx context.Context) (*models.Dataset, error)
	Save(ctx context.Context, data *models.Dataset) error
}
