package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/store"
	"github.com/poofware/tenancy-service/internal/utils"
)

func TestJoinSubmitRejectsUnknownProperty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.joins.Submit(ctx, "missing", tenant("Ana", "ana@x.com"))
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestJoinSubmitPreconditions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 1)

	_, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)

	// Duplicate request from the same address.
	_, err = env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.ErrorIs(t, err, utils.ErrAlreadyRequested)

	// A current occupant cannot request again.
	_, err = env.occupancy.AddTenant(ctx, p.ID, tenant("Ben", "ben@x.com"))
	require.NoError(t, err)
	_, err = env.joins.Submit(ctx, p.ID, tenant("Ben", "ben@x.com"))
	require.ErrorIs(t, err, utils.ErrAlreadyMember)

	// The property is now full for everyone else.
	_, err = env.joins.Submit(ctx, p.ID, tenant("Cara", "cara@x.com"))
	require.ErrorIs(t, err, utils.ErrPropertyFull)

	// Only the first submit made it through; nothing else left a record.
	reqs, err := env.requests.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.Equal(t, "ana@x.com", reqs[0].Email)
}

func TestJoinSubmitIncrementsLandlordCounter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 3)

	_, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)
	_, err = env.joins.Submit(ctx, p.ID, tenant("Ben", "ben@x.com"))
	require.NoError(t, err)

	c, err := env.counters.Get(ctx, landlord)
	require.NoError(t, err)
	require.Equal(t, 2, c.JoinRequestCount)
}

func TestJoinAcceptFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 2)

	req, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)

	updated, err := env.joins.Accept(ctx, p.ID, req.ID)
	require.NoError(t, err)
	require.True(t, updated.HasTenant("ana@x.com"))

	// The pending request is gone.
	reqs, err := env.requests.List(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, reqs)

	// The tenant got an outcome record.
	outcomes, err := env.outcomes.ListByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, models.OutcomeAccepted, outcomes[0].Status)
	require.Equal(t, p.ID, outcomes[0].PropertyID)
	require.Equal(t, "Elm House", outcomes[0].PropertyName)

	// The landlord badge drained back down.
	c, err := env.counters.Get(ctx, landlord)
	require.NoError(t, err)
	require.Equal(t, 0, c.JoinRequestCount)
}

func TestJoinAcceptTwiceFailsSecondTime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 2)

	req, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)

	_, err = env.joins.Accept(ctx, p.ID, req.ID)
	require.NoError(t, err)

	_, err = env.joins.Accept(ctx, p.ID, req.ID)
	require.ErrorIs(t, err, utils.ErrNotFound)

	updated, err := env.props.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, updated.Tenants, 1)
}

func TestJoinAcceptRechecksCapacity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 1)

	req, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)

	// The room fills before the landlord decides.
	_, err = env.occupancy.AddTenant(ctx, p.ID, tenant("Ben", "ben@x.com"))
	require.NoError(t, err)

	_, err = env.joins.Accept(ctx, p.ID, req.ID)
	require.ErrorIs(t, err, utils.ErrCapacityExceeded)

	// The request stays pending and no outcome was recorded.
	got, err := env.requests.GetByID(ctx, p.ID, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	outcomes, err := env.outcomes.ListByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestJoinRejectFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 2)

	req, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)

	require.NoError(t, env.joins.Reject(ctx, p.ID, req.ID))

	// Roster untouched, request gone, outcome recorded, counter drained.
	updated, err := env.props.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, updated.Tenants)

	got, err := env.requests.GetByID(ctx, p.ID, req.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	outcomes, err := env.outcomes.ListByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, models.OutcomeRejected, outcomes[0].Status)

	c, err := env.counters.Get(ctx, landlord)
	require.NoError(t, err)
	require.Equal(t, 0, c.JoinRequestCount)

	// Rejecting again is a not-found.
	require.ErrorIs(t, env.joins.Reject(ctx, p.ID, req.ID), utils.ErrNotFound)
}

func TestJoinRejectedTenantCanRequestAgain(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 1)

	req, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)
	require.NoError(t, env.joins.Reject(ctx, p.ID, req.ID))

	_, err = env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)
}

func TestJoinListForLandlordAggregatesAcrossProperties(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	landlord := env.seedLandlord(t, "l1")
	other := env.seedLandlord(t, "l2")

	p1 := env.seedProperty(t, landlord, "Elm House", 2)
	p2 := env.seedProperty(t, landlord, "Oak Flat", 3)
	p3 := env.seedProperty(t, other, "Birch Lodge", 1)

	_, err := env.joins.Submit(ctx, p1.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)
	_, err = env.joins.Submit(ctx, p2.ID, tenant("Ben", "ben@x.com"))
	require.NoError(t, err)
	_, err = env.joins.Submit(ctx, p3.ID, tenant("Cara", "cara@x.com"))
	require.NoError(t, err)

	list, err := env.joins.ListForLandlord(ctx, landlord)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, dto := range list {
		require.NotEqual(t, p3.ID, dto.PropertyID)
		require.NotEmpty(t, dto.PropertyName)
	}

	// One room of two is still free on p1 after an accept there.
	reqs, err := env.requests.List(ctx, p1.ID)
	require.NoError(t, err)
	_, err = env.joins.Accept(ctx, p1.ID, reqs[0].ID)
	require.NoError(t, err)

	_, err = env.joins.Submit(ctx, p1.ID, tenant("Dan", "dan@x.com"))
	require.NoError(t, err)
	list, err = env.joins.ListForLandlord(ctx, landlord)
	require.NoError(t, err)
	for _, dto := range list {
		if dto.PropertyID == p1.ID {
			require.Equal(t, 1, dto.AvailableRooms)
		}
	}
}

// gatedStore delays reads of one collection until a quorum of readers has
// arrived, forcing the interleaving where concurrent accepts both observe
// the same stale roster.
type gatedStore struct {
	store.Store

	mu       sync.Mutex
	gateColl string
	waiting  int
	arrived  int
	release  chan struct{}
}

func (g *gatedStore) arm(collection string, readers int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gateColl = collection
	g.waiting = readers
	g.arrived = 0
	g.release = make(chan struct{})
}

func (g *gatedStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	data, err := g.Store.Get(ctx, collection, id)
	g.mu.Lock()
	if g.waiting > 0 && collection == g.gateColl {
		g.arrived++
		ch := g.release
		if g.arrived == g.waiting {
			g.waiting = 0
			close(ch)
		}
		g.mu.Unlock()
		<-ch
	} else {
		g.mu.Unlock()
	}
	return data, err
}

// Two accepts racing for the last room can both pass the capacity check
// against the same stale roster. Both report success, the later roster
// write wins, and the occupancy bound still holds on the stored document.
// This documents the accepted lost-update window of the storage model.
func TestJoinConcurrentAcceptsBoundedOvercommit(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	gated := &gatedStore{Store: mem}
	env := newTestEnvWithStore(t, gated, mem)

	landlord := env.seedLandlord(t, "l1")
	p := env.seedProperty(t, landlord, "Elm House", 1)

	reqA, err := env.joins.Submit(ctx, p.ID, tenant("Ana", "ana@x.com"))
	require.NoError(t, err)
	reqB, err := env.joins.Submit(ctx, p.ID, tenant("Ben", "ben@x.com"))
	require.NoError(t, err)

	// Each accept reads the property exactly once, inside the roster
	// mutation. Hold both reads until both have arrived.
	gated.arm("properties", 2)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = env.joins.Accept(ctx, p.ID, reqA.ID)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = env.joins.Accept(ctx, p.ID, reqB.ID)
	}()
	wg.Wait()

	// Both pass the stale capacity check.
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// The stored roster still respects the room bound; one of the two
	// roster writes was lost.
	final, err := env.props.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.LessOrEqual(t, len(final.Tenants), final.Rooms)
	t.Logf("final roster %d/%d after racing accepts", len(final.Tenants), final.Rooms)

	// Counter decrements clamp; the badge never goes negative.
	c, err := env.counters.Get(ctx, landlord)
	require.NoError(t, err)
	require.GreaterOrEqual(t, c.JoinRequestCount, 0)
}
