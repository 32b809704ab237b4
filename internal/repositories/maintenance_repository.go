package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, propertyID string, req *models.MaintenanceRequest) error

	// GetByID returns (nil, nil) when no such request exists.
	GetByID(ctx context.Context, propertyID, id string) (*models.MaintenanceRequest, error)
	List(ctx context.Context, propertyID string) ([]*models.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, propertyID, email string) ([]*models.MaintenanceRequest, error)

	Delete(ctx context.Context, propertyID, id string) error
}

type maintenanceRepo struct {
	store store.Store
}

func NewMaintenanceRepository(s store.Store) MaintenanceRepository {
	return &maintenanceRepo{store: s}
}

func maintenancePath(propertyID string) string {
	return store.Sub(propertiesCollection, propertyID, maintenanceRequestsSub)
}

func (r *maintenanceRepo) Create(ctx context.Context, propertyID string, req *models.MaintenanceRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, maintenancePath(propertyID), req.ID, data)
}

func (r *maintenanceRepo) GetByID(ctx context.Context, propertyID, id string) (*models.MaintenanceRequest, error) {
	data, err := r.store.Get(ctx, maintenancePath(propertyID), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var req models.MaintenanceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	req.ID = id
	return &req, nil
}

func (r *maintenanceRepo) List(ctx context.Context, propertyID string) ([]*models.MaintenanceRequest, error) {
	return r.query(ctx, propertyID, nil)
}

func (r *maintenanceRepo) ListByTenant(ctx context.Context, propertyID, email string) ([]*models.MaintenanceRequest, error) {
	return r.query(ctx, propertyID, &store.Filter{Field: "tenantEmail", Equals: email})
}

func (r *maintenanceRepo) Delete(ctx context.Context, propertyID, id string) error {
	return r.store.Delete(ctx, maintenancePath(propertyID), id)
}

func (r *maintenanceRepo) query(ctx context.Context, propertyID string, filter *store.Filter) ([]*models.MaintenanceRequest, error) {
	docs, err := r.store.Query(ctx, maintenancePath(propertyID), filter)
	if err != nil {
		return nil, err
	}
	var out []*models.MaintenanceRequest
	for _, doc := range docs {
		var req models.MaintenanceRequest
		if err := json.Unmarshal(doc.Data, &req); err != nil {
			return nil, err
		}
		req.ID = doc.ID
		out = append(out, &req)
	}
	return out, nil
}
