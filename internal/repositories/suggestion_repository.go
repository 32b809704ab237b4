package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

type SuggestionRepository interface {
	Create(ctx context.Context, s *models.Suggestion) error

	// GetByID returns (nil, nil) when no such suggestion exists.
	GetByID(ctx context.Context, id string) (*models.Suggestion, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*models.Suggestion, error)
	ListByTenant(ctx context.Context, email string) ([]*models.Suggestion, error)

	Delete(ctx context.Context, id string) error
}

type suggestionRepo struct {
	store store.Store
}

func NewSuggestionRepository(s store.Store) SuggestionRepository {
	return &suggestionRepo{store: s}
}

func (r *suggestionRepo) Create(ctx context.Context, sg *models.Suggestion) error {
	if sg.ID == "" {
		sg.ID = uuid.NewString()
	}
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, suggestionsCollection, sg.ID, data)
}

func (r *suggestionRepo) GetByID(ctx context.Context, id string) (*models.Suggestion, error) {
	data, err := r.store.Get(ctx, suggestionsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var sg models.Suggestion
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, err
	}
	sg.ID = id
	return &sg, nil
}

func (r *suggestionRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*models.Suggestion, error) {
	return r.query(ctx, &store.Filter{Field: "landlordUid", Equals: landlordID})
}

func (r *suggestionRepo) ListByTenant(ctx context.Context, email string) ([]*models.Suggestion, error) {
	return r.query(ctx, &store.Filter{Field: "tenantEmail", Equals: email})
}

func (r *suggestionRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, suggestionsCollection, id)
}

func (r *suggestionRepo) query(ctx context.Context, filter *store.Filter) ([]*models.Suggestion, error) {
	docs, err := r.store.Query(ctx, suggestionsCollection, filter)
	if err != nil {
		return nil, err
	}
	var out []*models.Suggestion
	for _, doc := range docs {
		var sg models.Suggestion
		if err := json.Unmarshal(doc.Data, &sg); err != nil {
			return nil, err
		}
		sg.ID = doc.ID
		out = append(out, &sg)
	}
	return out, nil
}
