package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

type JoinRequestRepository interface {
	Create(ctx context.Context, propertyID string, req *models.JoinRequest) error

	// GetByID returns (nil, nil) when no such request exists.
	GetByID(ctx context.Context, propertyID, id string) (*models.JoinRequest, error)
	List(ctx context.Context, propertyID string) ([]*models.JoinRequest, error)

	// FindByEmail returns (nil, nil) when the requester has no pending
	// request on the property.
	FindByEmail(ctx context.Context, propertyID, email string) (*models.JoinRequest, error)

	Delete(ctx context.Context, propertyID, id string) error
}

type joinRequestRepo struct {
	store store.Store
}

func NewJoinRequestRepository(s store.Store) JoinRequestRepository {
	return &joinRequestRepo{store: s}
}

func joinRequestsPath(propertyID string) string {
	return store.Sub(propertiesCollection, propertyID, joinRequestsSub)
}

func (r *joinRequestRepo) Create(ctx context.Context, propertyID string, req *models.JoinRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, joinRequestsPath(propertyID), req.ID, data)
}

func (r *joinRequestRepo) GetByID(ctx context.Context, propertyID, id string) (*models.JoinRequest, error) {
	data, err := r.store.Get(ctx, joinRequestsPath(propertyID), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var req models.JoinRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	req.ID = id
	return &req, nil
}

func (r *joinRequestRepo) List(ctx context.Context, propertyID string) ([]*models.JoinRequest, error) {
	docs, err := r.store.Query(ctx, joinRequestsPath(propertyID), nil)
	if err != nil {
		return nil, err
	}
	var out []*models.JoinRequest
	for _, doc := range docs {
		var req models.JoinRequest
		if err := json.Unmarshal(doc.Data, &req); err != nil {
			return nil, err
		}
		req.ID = doc.ID
		out = append(out, &req)
	}
	return out, nil
}

func (r *joinRequestRepo) FindByEmail(ctx context.Context, propertyID, email string) (*models.JoinRequest, error) {
	docs, err := r.store.Query(ctx, joinRequestsPath(propertyID), &store.Filter{Field: "email", Equals: email})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	var req models.JoinRequest
	if err := json.Unmarshal(docs[0].Data, &req); err != nil {
		return nil, err
	}
	req.ID = docs[0].ID
	return &req, nil
}

func (r *joinRequestRepo) Delete(ctx context.Context, propertyID, id string) error {
	return r.store.Delete(ctx, joinRequestsPath(propertyID), id)
}
