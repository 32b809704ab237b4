package services

import (
	"context"
	"strings"
	"time"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

type PropertyService struct {
	props     repositories.PropertyRepository
	requests  repositories.JoinRequestRepository
	maint     repositories.MaintenanceRepository
	occupancy *OccupancyService

	// cascadeDelete controls whether deleting a property also removes its
	// join-request and maintenance sub-records. Off by default; orphaned
	// sub-records match the system's historical behavior.
	cascadeDelete bool
}

func NewPropertyService(
	props repositories.PropertyRepository,
	requests repositories.JoinRequestRepository,
	maint repositories.MaintenanceRepository,
	occupancy *OccupancyService,
	cascadeDelete bool,
) *PropertyService {
	return &PropertyService{
		props:         props,
		requests:      requests,
		maint:         maint,
		occupancy:     occupancy,
		cascadeDelete: cascadeDelete,
	}
}

// Create registers a property for the landlord. Inputs arrive validated and
// are trimmed here before storage.
func (s *PropertyService) Create(ctx context.Context, landlordID, ownerName string, in dtos.CreatePropertyRequest) (*models.Property, error) {
	p := &models.Property{
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Rooms:       in.Rooms,
		CreatedBy:   landlordID,
		OwnerName:   ownerName,
		CreatedAt:   time.Now().UTC(),
		Tenants:     []models.Tenant{},
	}
	if err := s.props.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the landlord's property. Sub-record cleanup is flag-gated;
// failures there are logged, the property deletion itself stands.
func (s *PropertyService) Delete(ctx context.Context, landlordID, propertyID string) error {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	if p.CreatedBy != landlordID {
		return utils.ErrNotOwner
	}

	if err := s.props.Delete(ctx, propertyID); err != nil {
		return err
	}
	if s.cascadeDelete {
		s.cleanupSubRecords(ctx, propertyID)
	}
	return nil
}

func (s *PropertyService) cleanupSubRecords(ctx context.Context, propertyID string) {
	reqs, err := s.requests.List(ctx, propertyID)
	if err != nil {
		utils.Logger.WithError(err).WithField("property_id", propertyID).
			Warn("cascade cleanup could not list join requests")
	}
	for _, req := range reqs {
		if err := s.requests.Delete(ctx, propertyID, req.ID); err != nil {
			utils.Logger.WithError(err).WithField("request_id", req.ID).
				Warn("cascade cleanup failed to delete join request")
		}
	}

	maint, err := s.maint.List(ctx, propertyID)
	if err != nil {
		utils.Logger.WithError(err).WithField("property_id", propertyID).
			Warn("cascade cleanup could not list maintenance requests")
	}
	for _, req := range maint {
		if err := s.maint.Delete(ctx, propertyID, req.ID); err != nil {
			utils.Logger.WithError(err).WithField("request_id", req.ID).
				Warn("cascade cleanup failed to delete maintenance request")
		}
	}
}

// ListByLandlord returns the landlord's properties with full rosters.
func (s *PropertyService) ListByLandlord(ctx context.Context, landlordID string) ([]dtos.PropertyDTO, error) {
	props, err := s.props.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	out := []dtos.PropertyDTO{}
	for _, p := range props {
		dto := propertyDTO(p)
		for _, t := range p.Tenants {
			dto.Tenants = append(dto.Tenants, dtos.TenantDTO{
				Name:     t.Name,
				Email:    t.Email,
				PhotoURL: t.PhotoURL,
			})
		}
		out = append(out, dto)
	}
	return out, nil
}

// ListAvailable returns properties the caller has not joined and that still
// have a free room, marking the ones they already requested.
func (s *PropertyService) ListAvailable(ctx context.Context, email string) ([]dtos.PropertyDTO, error) {
	props, err := s.props.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []dtos.PropertyDTO{}
	for _, p := range props {
		if p.HasTenant(email) || !s.occupancy.CanAccept(p) {
			continue
		}
		existing, err := s.requests.FindByEmail(ctx, p.ID, email)
		if err != nil {
			return nil, err
		}
		dto := propertyDTO(p)
		dto.Requested = existing != nil
		out = append(out, dto)
	}
	return out, nil
}

// ListJoined returns the properties the caller currently occupies.
func (s *PropertyService) ListJoined(ctx context.Context, email string) ([]dtos.PropertyDTO, error) {
	props, err := s.props.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []dtos.PropertyDTO{}
	for _, p := range props {
		if p.HasTenant(email) {
			out = append(out, propertyDTO(p))
		}
	}
	return out, nil
}

// Leave removes the caller from the roster.
func (s *PropertyService) Leave(ctx context.Context, propertyID, email string) error {
	_, err := s.occupancy.RemoveTenant(ctx, propertyID, email)
	return err
}

// RemoveTenant lets the landlord remove a tenant from their own property.
func (s *PropertyService) RemoveTenant(ctx context.Context, landlordID, propertyID, email string) error {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	if p.CreatedBy != landlordID {
		return utils.ErrNotOwner
	}
	_, err = s.occupancy.RemoveTenant(ctx, propertyID, email)
	return err
}

func propertyDTO(p *models.Property) dtos.PropertyDTO {
	return dtos.PropertyDTO{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		Rooms:       p.Rooms,
		OwnerName:   p.OwnerName,
		TenantCount: len(p.Tenants),
		Available:   len(p.Tenants) < p.Rooms,
		CreatedAt:   p.CreatedAt,
	}
}
