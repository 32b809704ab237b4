package services

import (
	"context"
	"sort"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/utils"
)

// Notification categories a landlord can view.
const (
	CategoryJoinRequests = "joinRequests"
	CategoryMaintenance  = "maintenance"
	CategorySuggestions  = "suggestions"
)

/*
NotificationService is the read side of the ledger plus the tenant-facing
outcome notifications.
*/
type NotificationService struct {
	counters *CounterService
	outcomes repositories.TenantNotificationRepository
}

func NewNotificationService(counters *CounterService, outcomes repositories.TenantNotificationRepository) *NotificationService {
	return &NotificationService{counters: counters, outcomes: outcomes}
}

// Counts returns the landlord's counter snapshot (zeros before seeding).
func (s *NotificationService) Counts(ctx context.Context, landlordID string) (dtos.NotificationCountsDTO, error) {
	c, err := s.counters.Get(ctx, landlordID)
	if err != nil {
		return dtos.NotificationCountsDTO{}, err
	}
	return dtos.NotificationCountsDTO{
		JoinRequestCount: c.JoinRequestCount,
		MaintenanceCount: c.MaintenanceCount,
		SuggestionCount:  c.SuggestionCount,
		UpdatedAt:        c.UpdatedAt,
	}, nil
}

// ViewCategory marks a category as seen. Maintenance and suggestion counts
// reset to zero; the join-request count is left alone because it drains one
// by one as requests are accepted or rejected.
func (s *NotificationService) ViewCategory(ctx context.Context, landlordID, category string) error {
	switch category {
	case CategoryMaintenance:
		return s.counters.Reset(ctx, landlordID, FieldMaintenance)
	case CategorySuggestions:
		return s.counters.Reset(ctx, landlordID, FieldSuggestions)
	case CategoryJoinRequests:
		return nil
	default:
		return utils.ErrNotFound
	}
}

// Outcomes lists the caller's unread join-request resolutions, newest
// first.
func (s *NotificationService) Outcomes(ctx context.Context, email string) ([]dtos.OutcomeNotificationDTO, error) {
	ns, err := s.outcomes.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := []dtos.OutcomeNotificationDTO{}
	for _, n := range ns {
		out = append(out, dtos.OutcomeNotificationDTO{
			ID:           n.ID,
			PropertyID:   n.PropertyID,
			PropertyName: n.PropertyName,
			Status:       n.Status,
			CreatedAt:    n.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// AckOutcome deletes a read notification. Only the addressee can ack it.
func (s *NotificationService) AckOutcome(ctx context.Context, email, notificationID string) error {
	n, err := s.outcomes.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return utils.ErrNotFound
	}
	if n.TenantEmail != email {
		return utils.ErrNotOwner
	}
	return s.outcomes.Delete(ctx, notificationID)
}
