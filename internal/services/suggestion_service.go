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
SuggestionService mirrors the maintenance lifecycle but addresses the
record directly to a landlord id: the landlord of the first property the
tenant currently occupies. A tenant with no joined property cannot file
suggestions.
*/
type SuggestionService struct {
	props       repositories.PropertyRepository
	suggestions repositories.SuggestionRepository
	counters    *CounterService
}

func NewSuggestionService(
	props repositories.PropertyRepository,
	suggestions repositories.SuggestionRepository,
	counters *CounterService,
) *SuggestionService {
	return &SuggestionService{props: props, suggestions: suggestions, counters: counters}
}

func (s *SuggestionService) Submit(ctx context.Context, tenant models.Tenant, message string) (*models.Suggestion, error) {
	landlordID, err := s.landlordFor(ctx, tenant.Email)
	if err != nil {
		return nil, err
	}

	sg := &models.Suggestion{
		LandlordUID: landlordID,
		TenantName:  tenant.Name,
		TenantEmail: tenant.Email,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.suggestions.Create(ctx, sg); err != nil {
		return nil, err
	}

	if err := s.counters.Increment(ctx, landlordID, FieldSuggestions); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", landlordID).
			Warn("suggestion recorded but counter increment failed")
	}
	return sg, nil
}

// Delete removes the suggestion and applies the clamped decrement against
// the landlord it was addressed to. Reachable by either party.
func (s *SuggestionService) Delete(ctx context.Context, suggestionID string) error {
	sg, err := s.suggestions.GetByID(ctx, suggestionID)
	if err != nil {
		return err
	}
	if sg == nil {
		return utils.ErrNotFound
	}

	if err := s.suggestions.Delete(ctx, suggestionID); err != nil {
		return err
	}
	if err := s.counters.Decrement(ctx, sg.LandlordUID, FieldSuggestions); err != nil {
		utils.Logger.WithError(err).
			WithField("landlord_id", sg.LandlordUID).
			Warn("counter decrement failed after suggestion delete")
	}
	return nil
}

func (s *SuggestionService) ListForLandlord(ctx context.Context, landlordID string) ([]dtos.SuggestionDTO, error) {
	sgs, err := s.suggestions.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	return suggestionDTOs(sgs), nil
}

func (s *SuggestionService) ListForTenant(ctx context.Context, email string) ([]dtos.SuggestionDTO, error) {
	sgs, err := s.suggestions.ListByTenant(ctx, email)
	if err != nil {
		return nil, err
	}
	return suggestionDTOs(sgs), nil
}

// landlordFor resolves the suggestion's addressee: the owner of the first
// property the tenant occupies.
func (s *SuggestionService) landlordFor(ctx context.Context, email string) (string, error) {
	props, err := s.props.ListAll(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range props {
		if p.HasTenant(email) {
			return p.CreatedBy, nil
		}
	}
	return "", utils.ErrNotAMember
}

func suggestionDTOs(sgs []*models.Suggestion) []dtos.SuggestionDTO {
	out := []dtos.SuggestionDTO{}
	for _, sg := range sgs {
		out = append(out, dtos.SuggestionDTO{
			ID:          sg.ID,
			TenantName:  sg.TenantName,
			TenantEmail: sg.TenantEmail,
			Message:     sg.Message,
			CreatedAt:   sg.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
