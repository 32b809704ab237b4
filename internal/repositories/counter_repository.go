package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

// CounterRepository persists the per-landlord notification counter document.
// All mutation logic (clamping, resets) lives in the ledger service; this
// layer only reads and writes whole documents.
type CounterRepository interface {
	// Get returns (nil, nil) when no counter document exists for the
	// landlord.
	Get(ctx context.Context, landlordID string) (*models.NotificationCounter, error)
	Put(ctx context.Context, landlordID string, c *models.NotificationCounter) error
}

type counterRepo struct {
	store store.Store
}

func NewCounterRepository(s store.Store) CounterRepository {
	return &counterRepo{store: s}
}

func (r *counterRepo) Get(ctx context.Context, landlordID string) (*models.NotificationCounter, error) {
	data, err := r.store.Get(ctx, landlordNotificationsCollection, landlordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var c models.NotificationCounter
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *counterRepo) Put(ctx context.Context, landlordID string, c *models.NotificationCounter) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, landlordNotificationsCollection, landlordID, data)
}
