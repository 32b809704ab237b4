package services

import (
	"context"
	"sort"
	"time"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

/*
MaintenanceService runs the one-sided maintenance lifecycle: a current
occupant files a request scoped to the property, the landlord (or the
filing tenant) later deletes it. The record is scoped to the property, not
to the membership: a tenant leaving the property does not touch their
existing requests.
*/
type MaintenanceService struct {
	props    repositories.PropertyRepository
	requests repositories.MaintenanceRepository
	counters *CounterService
}

func NewMaintenanceService(
	props repositories.PropertyRepository,
	requests repositories.MaintenanceRepository,
	counters *CounterService,
) *MaintenanceService {
	return &MaintenanceService{props: props, requests: requests, counters: counters}
}

// Submit files a request. The caller must be a current occupant of the
// property.
func (s *MaintenanceService) Submit(ctx context.Context, propertyID string, tenant models.Tenant, message string) (*models.MaintenanceRequest, error) {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	if !p.HasTenant(tenant.Email) {
		return nil, utils.ErrNotAMember
	}

	req := &models.MaintenanceRequest{
		TenantName:  tenant.Name,
		TenantEmail: tenant.Email,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, propertyID, req); err != nil {
		return nil, err
	}

	if err := s.counters.Increment(ctx, p.CreatedBy, FieldMaintenance); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", p.CreatedBy).
			Warn("maintenance request recorded but counter increment failed")
	}
	return req, nil
}

// Delete removes the record, then applies the clamped counter decrement
// (which refreshes updatedAt even when the count is already zero).
func (s *MaintenanceService) Delete(ctx context.Context, propertyID, requestID string) error {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	req, err := s.requests.GetByID(ctx, propertyID, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return utils.ErrNotFound
	}

	if err := s.requests.Delete(ctx, propertyID, requestID); err != nil {
		return err
	}
	if err := s.counters.Decrement(ctx, p.CreatedBy, FieldMaintenance); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", p.CreatedBy).
			Warn("counter decrement failed after maintenance delete")
	}
	return nil
}

// ListForLandlord returns all requests across the landlord's properties.
func (s *MaintenanceService) ListForLandlord(ctx context.Context, landlordID string) ([]dtos.MaintenanceRequestDTO, error) {
	props, err := s.props.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	out := []dtos.MaintenanceRequestDTO{}
	for _, p := range props {
		reqs, err := s.requests.List(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			out = append(out, maintenanceDTO(p, req))
		}
	}
	sortMaintenanceNewestFirst(out)
	return out, nil
}

// ListForTenant returns the caller's own requests across the properties
// they currently occupy.
func (s *MaintenanceService) ListForTenant(ctx context.Context, email string) ([]dtos.MaintenanceRequestDTO, error) {
	props, err := s.props.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []dtos.MaintenanceRequestDTO{}
	for _, p := range props {
		if !p.HasTenant(email) {
			continue
		}
		reqs, err := s.requests.ListByTenant(ctx, p.ID, email)
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			out = append(out, maintenanceDTO(p, req))
		}
	}
	sortMaintenanceNewestFirst(out)
	return out, nil
}

func maintenanceDTO(p *models.Property, req *models.MaintenanceRequest) dtos.MaintenanceRequestDTO {
	return dtos.MaintenanceRequestDTO{
		ID:           req.ID,
		PropertyID:   p.ID,
		PropertyName: p.Name,
		Location:     p.Location,
		TenantName:   req.TenantName,
		TenantEmail:  req.TenantEmail,
		Message:      req.Message,
		CreatedAt:    req.CreatedAt,
	}
}

func sortMaintenanceNewestFirst(reqs []dtos.MaintenanceRequestDTO) {
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
}
