package repository

import (
	"context"
	"testing"
	"time"

	"inventory_portal/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	req := &model.Request{Username: "alice", ItemName: "Laptop", Status: model.StatusPending, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO requests").
		WithArgs("alice", "Laptop", model.StatusPending, now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := NewRequestRepository(mock)
	err = repo.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), req.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, item_name, status, created_at, updated_at FROM requests WHERE username").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "item_name", "status", "created_at", "updated_at"}).
			AddRow(int64(1), "alice", "Laptop", model.StatusPending, now, now))

	repo := NewRequestRepository(mock)
	requests, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Laptop", requests[0].ItemName)
	assert.Equal(t, model.StatusPending, requests[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	req := &model.Request{ID: 1, Status: model.StatusApproved, UpdatedAt: now}

	mock.ExpectExec("UPDATE requests SET status").
		WithArgs(model.StatusApproved, now, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewRequestRepository(mock)
	assert.NoError(t, repo.UpdateStatus(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_UpdateStatus_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	req := &model.Request{ID: 42, Status: model.StatusRejected, UpdatedAt: now}

	mock.ExpectExec("UPDATE requests SET status").
		WithArgs(model.StatusRejected, now, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewRequestRepository(mock)
	assert.Error(t, repo.UpdateStatus(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}
