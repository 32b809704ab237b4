package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	// GetByID returns (nil, nil) when the property does not exist.
	GetByID(ctx context.Context, id string) (*models.Property, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	store store.Store
}

func NewPropertyRepository(s store.Store) PropertyRepository {
	return &propertyRepo{store: s}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Tenants == nil {
		p.Tenants = []models.Tenant{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, propertiesCollection, p.ID, data)
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	data, err := r.store.Get(ctx, propertiesCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeProperty(id, data)
}

func (r *propertyRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*models.Property, error) {
	docs, err := r.store.Query(ctx, propertiesCollection, &store.Filter{Field: "createdBy", Equals: landlordID})
	if err != nil {
		return nil, err
	}
	return decodeProperties(docs)
}

func (r *propertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	docs, err := r.store.Query(ctx, propertiesCollection, nil)
	if err != nil {
		return nil, err
	}
	return decodeProperties(docs)
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, propertiesCollection, p.ID, data)
}

func (r *propertyRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, propertiesCollection, id)
}

func decodeProperty(id string, data []byte) (*models.Property, error) {
	var p models.Property
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func decodeProperties(docs []store.Document) ([]*models.Property, error) {
	var out []*models.Property
	for _, doc := range docs {
		p, err := decodeProperty(doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
