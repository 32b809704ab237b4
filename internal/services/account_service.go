package services

import (
	"context"
	"strings"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

/*
AccountService handles the one-time role selection. Choosing the landlord
role seeds the notification counter document so later increments have a
target; the seeding is idempotent.
*/
type AccountService struct {
	users    repositories.UserRepository
	counters *CounterService
}

func NewAccountService(users repositories.UserRepository, counters *CounterService) *AccountService {
	return &AccountService{users: users, counters: counters}
}

func (s *AccountService) SetRole(ctx context.Context, userID, email, displayName, role string) (*models.User, error) {
	existing, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Role != "" {
		return nil, utils.ErrRoleAlreadySet
	}

	u := &models.User{
		ID:          userID,
		DisplayName: strings.TrimSpace(displayName),
		Email:       email,
		Role:        role,
	}
	if err := s.users.Put(ctx, u); err != nil {
		return nil, err
	}

	if role == models.RoleLandlord {
		if err := s.counters.EnsureExists(ctx, userID); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Get returns the stored profile, or (nil, nil) when the user has not set a
// role yet.
func (s *AccountService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
