package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

type TenantNotificationRepository interface {
	Create(ctx context.Context, n *models.TenantNotification) error

	// GetByID returns (nil, nil) when no such notification exists.
	GetByID(ctx context.Context, id string) (*models.TenantNotification, error)
	ListByEmail(ctx context.Context, email string) ([]*models.TenantNotification, error)

	Delete(ctx context.Context, id string) error
}

type tenantNotificationRepo struct {
	store store.Store
}

func NewTenantNotificationRepository(s store.Store) TenantNotificationRepository {
	return &tenantNotificationRepo{store: s}
}

func (r *tenantNotificationRepo) Create(ctx context.Context, n *models.TenantNotification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, tenantNotificationsCollection, n.ID, data)
}

func (r *tenantNotificationRepo) GetByID(ctx context.Context, id string) (*models.TenantNotification, error) {
	data, err := r.store.Get(ctx, tenantNotificationsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var n models.TenantNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	n.ID = id
	return &n, nil
}

func (r *tenantNotificationRepo) ListByEmail(ctx context.Context, email string) ([]*models.TenantNotification, error) {
	docs, err := r.store.Query(ctx, tenantNotificationsCollection, &store.Filter{Field: "tenantEmail", Equals: email})
	if err != nil {
		return nil, err
	}
	var out []*models.TenantNotification
	for _, doc := range docs {
		var n models.TenantNotification
		if err := json.Unmarshal(doc.Data, &n); err != nil {
			return nil, err
		}
		n.ID = doc.ID
		out = append(out, &n)
	}
	return out, nil
}

func (r *tenantNotificationRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, tenantNotificationsCollection, id)
}
