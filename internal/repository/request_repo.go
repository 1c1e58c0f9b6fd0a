package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory_portal/internal/model"

	"github.com/jackc/pgx/v5"
)

// RequestRepository defines operations for item-request data
type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	FindAll(ctx context.Context) ([]model.Request, error)
	FindByUsername(ctx context.Context, username string) ([]model.Request, error)
	FindByID(ctx context.Context, id int64) (*model.Request, error)
	UpdateStatus(ctx context.Context, req *model.Request) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type requestRepository struct {
	db DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts a new request and populates its generated ID
func (r *requestRepository) Create(ctx context.Context, req *model.Request) error {
	sql := `INSERT INTO requests (username, item_name, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, req.Username, req.ItemName, req.Status, req.CreatedAt, req.UpdatedAt).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// FindAll retrieves every request, oldest first
func (r *requestRepository) FindAll(ctx context.Context) ([]model.Request, error) {
	sql := `SELECT id, username, item_name, status, created_at, updated_at FROM requests ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// FindByUsername retrieves the requests made by one user, oldest first
func (r *requestRepository) FindByUsername(ctx context.Context, username string) ([]model.Request, error) {
	sql := `SELECT id, username, item_name, status, created_at, updated_at FROM requests WHERE username = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests for user: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]model.Request, error) {
	requests := []model.Request{}
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(&req.ID, &req.Username, &req.ItemName, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}
	return requests, nil
}

// FindByID retrieves a request by ID, nil when absent
func (r *requestRepository) FindByID(ctx context.Context, id int64) (*model.Request, error) {
	req := &model.Request{}
	sql := `SELECT id, username, item_name, status, created_at, updated_at FROM requests WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&req.ID, &req.Username, &req.ItemName, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return req, nil
}

// UpdateStatus persists a status change
func (r *requestRepository) UpdateStatus(ctx context.Context, req *model.Request) error {
	sql := `UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, sql, req.Status, req.UpdatedAt, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a request; false when no row matched
func (r *requestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete request: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
