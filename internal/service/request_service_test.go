package service

import (
	"context"
	"testing"

	"inventory_portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestRepo is an in-memory RequestRepository.
type fakeRequestRepo struct {
	requests map[int64]*model.Request
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int64]*model.Request{}, nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, req *model.Request) error {
	req.ID = r.nextID
	r.nextID++
	stored := *req
	r.requests[req.ID] = &stored
	return nil
}

func (r *fakeRequestRepo) FindAll(_ context.Context) ([]model.Request, error) {
	out := []model.Request{}
	for id := int64(1); id < r.nextID; id++ {
		if req, ok := r.requests[id]; ok {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) FindByUsername(_ context.Context, username string) ([]model.Request, error) {
	out := []model.Request{}
	for id := int64(1); id < r.nextID; id++ {
		if req, ok := r.requests[id]; ok && req.Username == username {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*model.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	found := *req
	return &found, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, req *model.Request) error {
	stored, ok := r.requests[req.ID]
	if !ok {
		return nil
	}
	stored.Status = req.Status
	stored.UpdatedAt = req.UpdatedAt
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.requests[id]; !ok {
		return false, nil
	}
	delete(r.requests, id)
	return true, nil
}

func TestRequestService_CreateRequest_ForcesPendingAndCaller(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	created, err := svc.CreateRequest(context.Background(), "alice", "Laptop")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "alice", created.Username)
	assert.NotZero(t, created.ID)
}

func TestRequestService_ResolveRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)
	created, err := svc.CreateRequest(context.Background(), "alice", "Laptop")
	require.NoError(t, err)

	resolved, err := svc.ResolveRequest(context.Background(), created.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, resolved.Status)

	// Terminal statuses are immutable, in either direction
	_, err = svc.ResolveRequest(context.Background(), created.ID, model.StatusRejected)
	assert.ErrorIs(t, err, ErrRequestResolved)
	_, err = svc.ResolveRequest(context.Background(), created.ID, model.StatusApproved)
	assert.ErrorIs(t, err, ErrRequestResolved)
}

func TestRequestService_ResolveRequest_InvalidTarget(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)
	created, err := svc.CreateRequest(context.Background(), "alice", "Laptop")
	require.NoError(t, err)

	// PENDING is not a legal target: nothing moves a request back
	_, err = svc.ResolveRequest(context.Background(), created.ID, model.StatusPending)
	assert.Error(t, err)
}

func TestRequestService_ResolveRequest_NotFound(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	_, err := svc.ResolveRequest(context.Background(), 42, model.StatusApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestService_DeleteRequest_EmployeeRules(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)
	created, err := svc.CreateRequest(context.Background(), "alice", "Laptop")
	require.NoError(t, err)

	// Someone else's request is off limits
	err = svc.DeleteRequest(context.Background(), created.ID, "bob", model.RoleEmployee)
	assert.ErrorIs(t, err, ErrForbidden)

	// Still pending, owner may cancel
	err = svc.DeleteRequest(context.Background(), created.ID, "alice", model.RoleEmployee)
	assert.NoError(t, err)
}

func TestRequestService_DeleteRequest_ResolvedIsRefusedForOwner(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)
	created, err := svc.CreateRequest(context.Background(), "alice", "Laptop")
	require.NoError(t, err)
	_, err = svc.ResolveRequest(context.Background(), created.ID, model.StatusApproved)
	require.NoError(t, err)

	err = svc.DeleteRequest(context.Background(), created.ID, "alice", model.RoleEmployee)
	assert.ErrorIs(t, err, ErrRequestResolved)

	// Admins may still clean up resolved requests
	err = svc.DeleteRequest(context.Background(), created.ID, "boss", model.RoleAdmin)
	assert.NoError(t, err)
}
