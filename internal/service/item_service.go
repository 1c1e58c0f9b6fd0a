package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_portal/internal/model"
	"inventory_portal/internal/repository"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("item name must be non-empty and quantity non-negative")
)

// ItemService defines operations for stock items
type ItemService interface {
	CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.Item, error)
	GetAllItems(ctx context.Context) ([]model.Item, error)
	UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	if strings.TrimSpace(req.Name) == "" || req.Quantity < 0 {
		return nil, ErrInvalidItem
	}

	item := &model.Item{
		Name:      req.Name,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item in repo: %w", err)
	}
	return item, nil
}

func (s *itemService) GetAllItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items from repo: %w", err)
	}
	return items, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (*model.Item, error) {
	if strings.TrimSpace(req.Name) == "" || req.Quantity < 0 {
		return nil, ErrInvalidItem
	}

	existing, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item for update: %w", err)
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}

	existing.Name = req.Name
	existing.Quantity = req.Quantity
	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update item in repo: %w", err)
	}
	return existing, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID int64) error {
	deleted, err := s.repo.Delete(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item in repo: %w", err)
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
