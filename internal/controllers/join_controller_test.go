package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/middleware"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/routes"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/store"
)

const testSecret = "test-secret"

// newTestRouter wires the join and property endpoints over an in-memory
// store, exactly as main does, and returns the seeded landlord property.
func newTestRouter(t *testing.T) (*mux.Router, *models.Property) {
	t.Helper()

	st := store.NewMemoryStore()
	props := repositories.NewPropertyRepository(st)
	requests := repositories.NewJoinRequestRepository(st)
	outcomes := repositories.NewTenantNotificationRepository(st)
	counters := services.NewCounterService(repositories.NewCounterRepository(st))
	occupancy := services.NewOccupancyService(props)
	joinSvc := services.NewJoinService(props, requests, outcomes, occupancy, counters, nil)
	propertySvc := services.NewPropertyService(props, requests, repositories.NewMaintenanceRepository(st), occupancy, false)

	require.NoError(t, counters.EnsureExists(context.Background(), "landlord-1"))
	p, err := propertySvc.Create(context.Background(), "landlord-1", "Lena", dtos.CreatePropertyRequest{
		Name:     "Elm House",
		Location: "12 Test Lane",
		Rooms:    1,
	})
	require.NoError(t, err)

	joinCtrl := NewJoinController(joinSvc)

	router := mux.NewRouter()
	api := router.PathPrefix(routes.APIPrefix).Subrouter()
	api.Use(middleware.Auth(testSecret))
	api.HandleFunc(routes.PropertyJoinRequests, joinCtrl.SubmitHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.JoinRequests, joinCtrl.ListHandler).Methods(http.MethodGet)
	api.HandleFunc(routes.JoinRequestAccept, joinCtrl.AcceptHandler).Methods(http.MethodPost)
	api.HandleFunc(routes.JoinRequestReject, joinCtrl.RejectHandler).Methods(http.MethodPost)
	return router, p
}

func bearerFor(t *testing.T, id middleware.Identity) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, id, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func landlordIdentity() middleware.Identity {
	return middleware.Identity{UserID: "landlord-1", Email: "lena@x.com", DisplayName: "Lena", Role: models.RoleLandlord}
}

func tenantIdentity(email string) middleware.Identity {
	return middleware.Identity{UserID: "tenant-" + email, Email: email, DisplayName: "Ana", Role: models.RoleTenant}
}

func TestJoinEndpointsRequireToken(t *testing.T) {
	router, p := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, routes.APIPrefix+"/properties/"+p.ID+"/join-requests", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, routes.APIPrefix+"/properties/"+p.ID+"/join-requests", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJoinListRequiresLandlordRole(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, routes.APIPrefix+"/join-requests", nil)
	req.Header.Set("Authorization", bearerFor(t, tenantIdentity("ana@x.com")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJoinSubmitAcceptOverHTTP(t *testing.T) {
	router, p := newTestRouter(t)
	base := routes.APIPrefix + "/properties/" + p.ID + "/join-requests"

	// Tenant submits.
	req := httptest.NewRequest(http.MethodPost, base, nil)
	req.Header.Set("Authorization", bearerFor(t, tenantIdentity("ana@x.com")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created["id"])

	// Submitting again conflicts.
	req = httptest.NewRequest(http.MethodPost, base, nil)
	req.Header.Set("Authorization", bearerFor(t, tenantIdentity("ana@x.com")))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "already requested"))

	// Landlord sees it.
	req = httptest.NewRequest(http.MethodGet, routes.APIPrefix+"/join-requests", nil)
	req.Header.Set("Authorization", bearerFor(t, landlordIdentity()))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pending []dtos.JoinRequestDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	require.Equal(t, "ana@x.com", pending[0].Email)

	// Landlord accepts.
	req = httptest.NewRequest(http.MethodPost, base+"/"+created["id"]+"/accept", nil)
	req.Header.Set("Authorization", bearerFor(t, landlordIdentity()))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A second accept of the same request is a 404.
	req = httptest.NewRequest(http.MethodPost, base+"/"+created["id"]+"/accept", nil)
	req.Header.Set("Authorization", bearerFor(t, landlordIdentity()))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinSubmitUnknownPropertyIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, routes.APIPrefix+"/properties/missing/join-requests", nil)
	req.Header.Set("Authorization", bearerFor(t, tenantIdentity("ana@x.com")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
