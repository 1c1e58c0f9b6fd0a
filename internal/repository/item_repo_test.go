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

func TestItemRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	item := &model.Item{Name: "Laptop", Quantity: 5, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO items").
		WithArgs("Laptop", 5, now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewItemRepository(mock)
	err = repo.Create(context.Background(), item)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, quantity, created_at, updated_at FROM items").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "quantity", "created_at", "updated_at"}).
			AddRow(int64(1), "Laptop", 5, now, now).
			AddRow(int64(2), "Mouse", 12, now, now))

	repo := NewItemRepository(mock)
	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, 12, items[1].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, quantity, created_at, updated_at FROM items WHERE").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "quantity", "created_at", "updated_at"}))

	repo := NewItemRepository(mock)
	item, err := repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewItemRepository(mock)

	deleted, err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
