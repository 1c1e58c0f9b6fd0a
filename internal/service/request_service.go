package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory_portal/internal/model"
	"inventory_portal/internal/repository"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestResolved = errors.New("request already resolved")
	ErrForbidden       = errors.New("forbidden: user does not have permission for this action")
)

// RequestService defines operations for item requests. The service is
// the authority on the lifecycle: a request starts PENDING and moves
// exactly once to APPROVED or REJECTED.
type RequestService interface {
	CreateRequest(ctx context.Context, username, itemName string) (*model.Request, error)
	GetAllRequests(ctx context.Context) ([]model.Request, error)
	GetUserRequests(ctx context.Context, username string) ([]model.Request, error)
	ResolveRequest(ctx context.Context, requestID int64, status string) (*model.Request, error)
	DeleteRequest(ctx context.Context, requestID int64, actor string, actorRole string) error
}

type requestService struct {
	repo repository.RequestRepository
}

// NewRequestService creates a new RequestService
func NewRequestService(repo repository.RequestRepository) RequestService {
	return &requestService{repo: repo}
}

// CreateRequest records a new request. Status is always PENDING and the
// username is the authenticated caller's, whatever the payload said.
func (s *requestService) CreateRequest(ctx context.Context, username, itemName string) (*model.Request, error) {
	req := &model.Request{
		Username:  username,
		ItemName:  itemName,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create request in repo: %w", err)
	}
	return req, nil
}

func (s *requestService) GetAllRequests(ctx context.Context) ([]model.Request, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests from repo: %w", err)
	}
	return requests, nil
}

func (s *requestService) GetUserRequests(ctx context.Context, username string) ([]model.Request, error) {
	requests, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user requests from repo: %w", err)
	}
	return requests, nil
}

// ResolveRequest moves a PENDING request to APPROVED or REJECTED.
// Terminal statuses are immutable.
func (s *requestService) ResolveRequest(ctx context.Context, requestID int64, status string) (*model.Request, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, fmt.Errorf("invalid target status %q", status)
	}

	existing, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request for update: %w", err)
	}
	if existing == nil {
		return nil, ErrRequestNotFound
	}
	if existing.Status != model.StatusPending {
		return nil, ErrRequestResolved
	}

	existing.Status = status
	existing.UpdatedAt = time.Now()
	if err := s.repo.UpdateStatus(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update request in repo: %w", err)
	}
	return existing, nil
}

// DeleteRequest removes a request. Admins may delete any request;
// employees only their own, and only while it is still PENDING.
func (s *requestService) DeleteRequest(ctx context.Context, requestID int64, actor string, actorRole string) error {
	existing, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to find request for delete: %w", err)
	}
	if existing == nil {
		return ErrRequestNotFound
	}

	if actorRole != model.RoleAdmin {
		if existing.Username != actor {
			return ErrForbidden
		}
		if existing.Status != model.StatusPending {
			return ErrRequestResolved
		}
	}

	deleted, err := s.repo.Delete(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete request in repo: %w", err)
	}
	if !deleted {
		return ErrRequestNotFound
	}
	return nil
}
