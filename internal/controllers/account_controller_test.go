package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/poofware/tenancy-service/internal/middleware"
	"github.com/poofware/tenancy-service/internal/repositories"
	"github.com/poofware/tenancy-service/internal/routes"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/store"
)

func newAccountRouter(t *testing.T) *mux.Router {
	t.Helper()

	st := store.NewMemoryStore()
	counters := services.NewCounterService(repositories.NewCounterRepository(st))
	accountSvc := services.NewAccountService(repositories.NewUserRepository(st), counters)
	ctrl := NewAccountController(accountSvc)

	router := mux.NewRouter()
	api := router.PathPrefix(routes.APIPrefix).Subrouter()
	api.Use(middleware.Auth(testSecret))
	api.HandleFunc(routes.AccountRole, ctrl.SetRoleHandler).Methods(http.MethodPost)
	return router
}

func postRole(t *testing.T, router *mux.Router, ident middleware.Identity, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, routes.APIPrefix+routes.AccountRole, strings.NewReader(body))
	req.Header.Set("Authorization", bearerFor(t, ident))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSetRoleValidation(t *testing.T) {
	router := newAccountRouter(t)
	ident := tenantIdentity("ana@x.com")

	rec := postRole(t, router, ident, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid_payload")

	rec = postRole(t, router, ident, `{"display_name":"Ana"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "validation_error")

	rec = postRole(t, router, ident, `{"display_name":"Ana","role":"admin"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "validation_error")
}

func TestSetRoleHappyPathAndConflict(t *testing.T) {
	router := newAccountRouter(t)
	ident := tenantIdentity("ana@x.com")

	rec := postRole(t, router, ident, `{"display_name":"Ana","role":"tenant"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"role":"tenant"`)

	rec = postRole(t, router, ident, `{"display_name":"Ana","role":"landlord"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}
