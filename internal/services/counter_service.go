package services

import (
	"context"
	"time"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

// CounterField names one aggregate on the per-landlord counter document.
type CounterField string

const (
	FieldJoinRequests CounterField = "joinRequestCount"
	FieldMaintenance  CounterField = "maintenanceCount"
	FieldSuggestions  CounterField = "suggestionCount"
)

/*
CounterService is the notification-counter ledger. All counter mutation in
the service goes through Increment/Decrement/Reset here; workflow code never
writes the counter document directly.

Every operation is read-then-write. Concurrent mutations of the same field
are not linearizable and can lose updates under contention; deltas are ±1
and decrements clamp at zero, so drift is bounded, never divergent. That is
an accepted property of the design, demonstrated by tests.
*/
type CounterService struct {
	counters repositories.CounterRepository
}

func NewCounterService(counters repositories.CounterRepository) *CounterService {
	return &CounterService{counters: counters}
}

// EnsureExists seeds a zero-valued counter document for the landlord if
// none exists. Called when a user's role is first set to landlord;
// idempotent.
func (s *CounterService) EnsureExists(ctx context.Context, landlordID string) error {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return err
	}
	if c != nil {
		return nil
	}
	return s.counters.Put(ctx, landlordID, &models.NotificationCounter{UpdatedAt: time.Now().UTC()})
}

// Increment adds one to the field. Fails with not_found when the landlord
// has no counter document; callers on non-critical paths log and swallow
// that, matching the accepted-inconsistency policy.
func (s *CounterService) Increment(ctx context.Context, landlordID string, field CounterField) error {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return err
	}
	if c == nil {
		return utils.ErrNotFound
	}
	*s.fieldPtr(c, field)++
	c.UpdatedAt = time.Now().UTC()
	return s.counters.Put(ctx, landlordID, c)
}

// Decrement subtracts one from the field, clamping at zero. A decrement at
// zero still writes the document so updatedAt is refreshed.
func (s *CounterService) Decrement(ctx context.Context, landlordID string, field CounterField) error {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return err
	}
	if c == nil {
		return utils.ErrNotFound
	}
	if v := s.fieldPtr(c, field); *v > 0 {
		*v--
	}
	c.UpdatedAt = time.Now().UTC()
	return s.counters.Put(ctx, landlordID, c)
}

// Reset sets the field to zero unconditionally. Used when the landlord
// views a category.
func (s *CounterService) Reset(ctx context.Context, landlordID string, field CounterField) error {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return err
	}
	if c == nil {
		return utils.ErrNotFound
	}
	*s.fieldPtr(c, field) = 0
	c.UpdatedAt = time.Now().UTC()
	return s.counters.Put(ctx, landlordID, c)
}

// Get returns the landlord's counter snapshot, or a zero counter when none
// has been seeded yet.
func (s *CounterService) Get(ctx context.Context, landlordID string) (*models.NotificationCounter, error) {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &models.NotificationCounter{}, nil
	}
	return c, nil
}

func (s *CounterService) fieldPtr(c *models.NotificationCounter, field CounterField) *int {
	switch field {
	case FieldMaintenance:
		return &c.MaintenanceCount
	case FieldSuggestions:
		return &c.SuggestionCount
	default:
		return &c.JoinRequestCount
	}
}
