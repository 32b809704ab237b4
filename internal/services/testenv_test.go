package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/store"
)

// testEnv wires the full service graph over an in-memory store. Tests reach
// into repositories directly when they need to inspect raw state.
type testEnv struct {
	store *store.MemoryStore

	users       repositories.UserRepository
	props       repositories.PropertyRepository
	requests    repositories.JoinRequestRepository
	maintenance repositories.MaintenanceRepository
	suggestions repositories.SuggestionRepository
	outcomes    repositories.TenantNotificationRepository

	counters  *CounterService
	occupancy *OccupancyService

	accounts   *AccountService
	properties *PropertyService
	joins      *JoinService
	maint      *MaintenanceService
	suggestSvc *SuggestionService
	notifySvc  *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemoryStore()
	return newTestEnvWithStore(t, st, st)
}

// newTestEnvWithStore lets a test swap in a wrapped backend (e.g. one that
// gates reads to force interleavings) while keeping direct access to the
// underlying memory store for assertions.
func newTestEnvWithStore(t *testing.T, backend store.Store, mem *store.MemoryStore) *testEnv {
	t.Helper()

	env := &testEnv{
		store:       mem,
		users:       repositories.NewUserRepository(backend),
		props:       repositories.NewPropertyRepository(backend),
		requests:    repositories.NewJoinRequestRepository(backend),
		maintenance: repositories.NewMaintenanceRepository(backend),
		suggestions: repositories.NewSuggestionRepository(backend),
		outcomes:    repositories.NewTenantNotificationRepository(backend),
	}
	env.counters = NewCounterService(repositories.NewCounterRepository(backend))
	env.occupancy = NewOccupancyService(env.props)

	env.accounts = NewAccountService(env.users, env.counters)
	env.properties = NewPropertyService(env.props, env.requests, env.maintenance, env.occupancy, false)
	env.joins = NewJoinService(env.props, env.requests, env.outcomes, env.occupancy, env.counters, nil)
	env.maint = NewMaintenanceService(env.props, env.maintenance, env.counters)
	env.suggestSvc = NewSuggestionService(env.props, env.suggestions, env.counters)
	env.notifySvc = NewNotificationService(env.counters, env.outcomes)
	return env
}

// seedLandlord registers a landlord (seeding their counter) and returns the
// id.
func (e *testEnv) seedLandlord(t *testing.T, id string) string {
	t.Helper()
	_, err := e.accounts.SetRole(context.Background(), id, id+"@example.com", "Landlord "+id, models.RoleLandlord)
	require.NoError(t, err)
	return id
}

// seedProperty creates a property owned by landlordID with the given room
// count.
func (e *testEnv) seedProperty(t *testing.T, landlordID, name string, rooms int) *models.Property {
	t.Helper()
	p, err := e.properties.Create(context.Background(), landlordID, "Landlord "+landlordID, dtos.CreatePropertyRequest{
		Name:     name,
		Location: "12 Test Lane",
		Rooms:    rooms,
	})
	require.NoError(t, err)
	return p
}

func tenant(name, email string) models.Tenant {
	return models.Tenant{Name: name, Email: email}
}
