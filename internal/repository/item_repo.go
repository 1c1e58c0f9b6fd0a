package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory_portal/internal/model"

	"github.com/jackc/pgx/v5"
)

// ItemRepository defines operations for item data
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindAll(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type itemRepository struct {
	db DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts a new item and populates its generated fields
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	sql := `INSERT INTO items (name, quantity, created_at, updated_at)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, item.Name, item.Quantity, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// FindAll retrieves every item, oldest first
func (r *itemRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	sql := `SELECT id, name, quantity, created_at, updated_at FROM items ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

// FindByID retrieves an item by ID, nil when absent
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	item := &model.Item{}
	sql := `SELECT id, name, quantity, created_at, updated_at FROM items WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&item.ID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return item, nil
}

// Update persists name and quantity changes
func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	sql := `UPDATE items SET name = $1, quantity = $2, updated_at = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, sql, item.Name, item.Quantity, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an item; false when no row matched
func (r *itemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
