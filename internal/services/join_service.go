package services

import (
	"context"
	"time"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

/*
JoinService runs the join-request state machine per (property, requester
email): None -> Requested -> Accepted | Rejected.

Accept and Reject are multi-step sequences over a store with no
cross-document transaction. The steps run in a fixed order -- roster
mutation, request deletion, outcome notification, counter decrement -- so a
failure partway leaves the tenant correctly recorded even if the trailing
steps are lost. Counter drift is tolerated; occupancy correctness is not.
*/
type JoinService struct {
	props     repositories.PropertyRepository
	requests  repositories.JoinRequestRepository
	outcomes  repositories.TenantNotificationRepository
	occupancy *OccupancyService
	counters  *CounterService
	email     *EmailService
}

func NewJoinService(
	props repositories.PropertyRepository,
	requests repositories.JoinRequestRepository,
	outcomes repositories.TenantNotificationRepository,
	occupancy *OccupancyService,
	counters *CounterService,
	email *EmailService,
) *JoinService {
	return &JoinService{
		props:     props,
		requests:  requests,
		outcomes:  outcomes,
		occupancy: occupancy,
		counters:  counters,
		email:     email,
	}
}

// Submit creates a pending join request for the property.
func (s *JoinService) Submit(ctx context.Context, propertyID string, requester models.Tenant) (*models.JoinRequest, error) {
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	if p.HasTenant(requester.Email) {
		return nil, utils.ErrAlreadyMember
	}

	existing, err := s.requests.FindByEmail(ctx, propertyID, requester.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrAlreadyRequested
	}

	if !s.occupancy.CanAccept(p) {
		return nil, utils.ErrPropertyFull
	}

	req := &models.JoinRequest{
		Name:        requester.Name,
		Email:       requester.Email,
		PhotoURL:    requester.PhotoURL,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, propertyID, req); err != nil {
		return nil, err
	}

	// The request is already committed; a lost increment only undercounts
	// the landlord's badge.
	if err := s.counters.Increment(ctx, p.CreatedBy, FieldJoinRequests); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", p.CreatedBy).
			Warn("join request recorded but counter increment failed")
	}
	return req, nil
}

// Accept resolves a pending request by adding the requester to the roster.
// Capacity is re-validated through the occupancy tracker; if the property
// filled between request and decision this fails with capacity_exceeded and
// leaves the request pending. A second accept of the same request fails
// with not_found.
func (s *JoinService) Accept(ctx context.Context, propertyID, requestID string) (*models.Property, error) {
	req, err := s.requests.GetByID(ctx, propertyID, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, utils.ErrNotFound
	}

	updated, err := s.occupancy.AddTenant(ctx, propertyID, models.Tenant{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	// Roster write committed; the remaining steps are best-effort.
	if err := s.requests.Delete(ctx, propertyID, requestID); err != nil {
		utils.Logger.WithError(err).
			WithField("request_id", requestID).
			Warn("tenant added but join request deletion failed")
	}
	s.notifyOutcome(ctx, req.Email, updated, models.OutcomeAccepted)
	if err := s.counters.Decrement(ctx, updated.CreatedBy, FieldJoinRequests); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", updated.CreatedBy).
			Warn("counter decrement failed after accept")
	}
	return updated, nil
}

// Reject resolves a pending request without touching the roster.
func (s *JoinService) Reject(ctx context.Context, propertyID, requestID string) error {
	req, err := s.requests.GetByID(ctx, propertyID, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return utils.ErrNotFound
	}
	p, err := s.props.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}

	if err := s.requests.Delete(ctx, propertyID, requestID); err != nil {
		return err
	}
	s.notifyOutcome(ctx, req.Email, p, models.OutcomeRejected)
	if err := s.counters.Decrement(ctx, p.CreatedBy, FieldJoinRequests); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", p.CreatedBy).
			Warn("counter decrement failed after reject")
	}
	return nil
}

// ListForLandlord aggregates pending requests across the landlord's
// properties.
func (s *JoinService) ListForLandlord(ctx context.Context, landlordID string) ([]dtos.JoinRequestDTO, error) {
	props, err := s.props.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	out := []dtos.JoinRequestDTO{}
	for _, p := range props {
		reqs, err := s.requests.List(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			out = append(out, dtos.JoinRequestDTO{
				ID:             req.ID,
				PropertyID:     p.ID,
				PropertyName:   p.Name,
				Name:           req.Name,
				Email:          req.Email,
				PhotoURL:       req.PhotoURL,
				AvailableRooms: p.Rooms - len(p.Tenants),
				RequestedAt:    req.RequestedAt,
			})
		}
	}
	return out, nil
}

// notifyOutcome records the tenant-facing resolution and optionally mails a
// copy. Both are non-critical: failures are logged, never propagated.
func (s *JoinService) notifyOutcome(ctx context.Context, tenantEmail string, p *models.Property, status string) {
	n := &models.TenantNotification{
		TenantEmail:  tenantEmail,
		PropertyID:   p.ID,
		PropertyName: p.Name,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.outcomes.Create(ctx, n); err != nil {
		utils.Logger.WithError(err).
			WithField("tenant_email", tenantEmail).
			Warn("outcome notification creation failed")
		return
	}

	if s.email != nil && s.email.Enabled() {
		if err := s.email.SendJoinOutcome(tenantEmail, p.Name, status); err != nil {
			utils.Logger.WithError(err).
				WithField("tenant_email", tenantEmail).
				Warn("outcome email failed")
		}
	}
}
