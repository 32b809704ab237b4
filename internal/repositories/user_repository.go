package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
)

type UserRepository interface {
	// GetByID returns (nil, nil) when the user document does not exist.
	GetByID(ctx context.Context, id string) (*models.User, error)
	Put(ctx context.Context, u *models.User) error
}

type userRepo struct {
	store store.Store
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepo{store: s}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	data, err := r.store.Get(ctx, usersCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

func (r *userRepo) Put(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, usersCollection, u.ID, data)
}
