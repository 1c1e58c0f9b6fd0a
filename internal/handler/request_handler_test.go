package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory_portal/internal/middleware"
	"inventory_portal/internal/model"
	"inventory_portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestService scripts the service layer for handler tests.
type fakeRequestService struct {
	resolveErr error
	deleteErr  error
	created    *model.Request
}

func (f *fakeRequestService) CreateRequest(_ context.Context, username, itemName string) (*model.Request, error) {
	f.created = &model.Request{ID: 1, Username: username, ItemName: itemName, Status: model.StatusPending}
	return f.created, nil
}

func (f *fakeRequestService) GetAllRequests(_ context.Context) ([]model.Request, error) {
	return []model.Request{}, nil
}

func (f *fakeRequestService) GetUserRequests(_ context.Context, username string) ([]model.Request, error) {
	return []model.Request{{ID: 1, Username: username, ItemName: "Laptop", Status: model.StatusPending}}, nil
}

func (f *fakeRequestService) ResolveRequest(_ context.Context, id int64, status string) (*model.Request, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return &model.Request{ID: id, Username: "alice", ItemName: "Laptop", Status: status}, nil
}

func (f *fakeRequestService) DeleteRequest(_ context.Context, _ int64, _ string, _ string) error {
	return f.deleteErr
}

func router(svc service.RequestService, username, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authMW := func(c *gin.Context) {
		c.Set(middleware.AuthUsernameKey, username)
		c.Set(middleware.AuthRoleKey, role)
		c.Next()
	}
	adminMW := middleware.AdminMiddleware()
	NewRequestHandler(svc).RegisterRequestRoutes(r.Group("/api/v1"), authMW, adminMW)
	return r
}

func TestRequestHandler_CreateUsesCallerUsername(t *testing.T) {
	svc := &fakeRequestService{}
	r := router(svc, "alice", model.RoleEmployee)

	body := strings.NewReader(`{"itemName":"Laptop","username":"mallory","status":"APPROVED"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "alice", svc.created.Username, "payload username must be ignored")
	assert.Equal(t, model.StatusPending, svc.created.Status)
}

func TestRequestHandler_UpdateResolvedConflicts(t *testing.T) {
	svc := &fakeRequestService{resolveErr: service.ErrRequestResolved}
	r := router(svc, "boss", model.RoleAdmin)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/requests/1", strings.NewReader(`{"status":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRequestHandler_UpdateRequiresAdmin(t *testing.T) {
	svc := &fakeRequestService{}
	r := router(svc, "alice", model.RoleEmployee)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/requests/1", strings.NewReader(`{"status":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestHandler_UpdateRejectsPendingTarget(t *testing.T) {
	svc := &fakeRequestService{}
	r := router(svc, "boss", model.RoleAdmin)

	// oneof binding stops PENDING before the service sees it
	req := httptest.NewRequest(http.MethodPut, "/api/v1/requests/1", strings.NewReader(`{"status":"PENDING"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestHandler_DeleteResolvedConflicts(t *testing.T) {
	svc := &fakeRequestService{deleteErr: service.ErrRequestResolved}
	r := router(svc, "alice", model.RoleEmployee)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/requests/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRequestHandler_ListUserRequests_SelfOnly(t *testing.T) {
	svc := &fakeRequestService{}
	r := router(svc, "alice", model.RoleEmployee)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/user/bob", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/requests/user/alice", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var requests []model.Request
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "alice", requests[0].Username)
}

func TestRequestHandler_AdminMayListAnyUser(t *testing.T) {
	svc := &fakeRequestService{}
	r := router(svc, "boss", model.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/user/alice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
