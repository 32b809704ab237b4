package services

import (
	"context"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

/*
OccupancyService owns the capacity invariant: at most Rooms tenants on a
property's roster. Every roster mutation goes through here.

There is no cross-document transaction in the store, so AddTenant re-reads
the property and re-checks capacity immediately before its write. That
bounds the race window where two acceptances interleave; it does not
eliminate it. Two callers that both pass the check against the same stale
roster will both report success and the later write wins. This is a known
limitation of the storage model, surfaced in tests, not silently fixed.
*/
type OccupancyService struct {
	props repositories.PropertyRepository
}

func NewOccupancyService(props repositories.PropertyRepository) *OccupancyService {
	return &OccupancyService{props: props}
}

// CanAccept reports whether the property has a free room.
func (s *OccupancyService) CanAccept(p *models.Property) bool {
	return len(p.Tenants) < p.Rooms
}

// AddTenant appends the tenant to the roster and persists. The property is
// re-read so the capacity and membership checks run against the freshest
// state available before the write.
func (s *OccupancyService) AddTenant(ctx context.Context, propertyID string, t models.Tenant) (*models.Property, error) {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	if p.HasTenant(t.Email) {
		return nil, utils.ErrAlreadyMember
	}
	if !s.CanAccept(p) {
		return nil, utils.ErrCapacityExceeded
	}

	p.Tenants = append(p.Tenants, t)
	if err := s.props.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveTenant filters the tenant out of the roster and persists.
func (s *OccupancyService) RemoveTenant(ctx context.Context, propertyID, email string) (*models.Property, error) {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	if !p.HasTenant(email) {
		return nil, utils.ErrNotAMember
	}

	kept := make([]models.Tenant, 0, len(p.Tenants))
	for _, t := range p.Tenants {
		if t.Email != email {
			kept = append(kept, t)
		}
	}
	p.Tenants = kept

	if err := s.props.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
