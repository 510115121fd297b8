package pickuprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var pickupColumns = []string{"id", "user_id", "pickup_code", "status", "points", "uploaded_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRepository_FindByPickupCode(t *testing.T) {
	repo, mock, _ := NewMock(t)
	uploaded := time.Now()
	query := regexp.QuoteMeta("SELECT id, user_id, pickup_code, status, points, uploaded_at FROM pickups WHERE pickup_code = $1")

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		result    *domain.Pickup
	}{
		{
			name: "Pickup exists",
			code: "2377225624",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("2377225624").
					WillReturnRows(pgxmock.NewRows(pickupColumns).AddRow(1, 7, "2377225624", "NEW", int64(0), uploaded))
			},
			result: &domain.Pickup{ID: 1, UserID: 7, PickupCode: "2377225624", Status: "NEW", UploadedAt: uploaded},
		},
		{
			name: "Pickup does not exist",
			code: "2404815702",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("2404815702").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			code: "2377225624",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("2377225624").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByPickupCode(context.Background(), tt.code)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindPickupsByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	uploaded := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, pickup_code, status, points, uploaded_at FROM pickups WHERE user_id = $1 ORDER BY uploaded_at DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Pickup
	}{
		{
			name: "Pickups found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnRows(pgxmock.NewRows(pickupColumns).
					AddRow(2, 7, "2404815702", "COMPLETED", int64(220), uploaded).
					AddRow(1, 7, "2377225624", "NEW", int64(0), uploaded))
			},
			result: []domain.Pickup{
				{ID: 2, UserID: 7, PickupCode: "2404815702", Status: "COMPLETED", Points: 220, UploadedAt: uploaded},
				{ID: 1, UserID: 7, PickupCode: "2377225624", Status: "NEW", UploadedAt: uploaded},
			},
		},
		{
			name: "No pickups",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnRows(pgxmock.NewRows(pickupColumns))
			},
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPickupsByUserID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	uploaded := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO pickups (user_id, pickup_code, status, points, uploaded_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saved",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectQuery(query).WithArgs(7, "2377225624", "NEW", int64(0), uploaded).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
		},
		{
			name: "Insert fails",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectQuery(query).WithArgs(7, "2377225624", "NEW", int64(0), uploaded).
					WillReturnError(errors.New("duplicate key"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			pickup := &domain.Pickup{UserID: 7, PickupCode: "2377225624", Status: "NEW", UploadedAt: uploaded}
			err := repo.Save(context.Background(), pickup)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, pickup.ID)
			}
		})
	}
}

func TestRepository_SaveDuplicateCode(t *testing.T) {
	repo, mock, tx := NewMock(t)
	passThrough(tx)
	mock.ExpectQuery("INSERT INTO pickups").
		WithArgs(7, "2377225624", "NEW", int64(0), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "pickups_pickup_code_key"})

	err := repo.Save(context.Background(), &domain.Pickup{UserID: 7, PickupCode: "2377225624", Status: "NEW"})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE pickups SET status = $1, points = $2 WHERE id = $3`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Updated",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs("COMPLETED", int64(220), 3).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Update fails",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(query).WithArgs("COMPLETED", int64(220), 3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), &domain.Pickup{ID: 3, Status: "COMPLETED", Points: 220})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindForProcessing(t *testing.T) {
	repo, mock, _ := NewMock(t)
	uploaded := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, pickup_code, status, points, uploaded_at FROM pickups WHERE status IN ('NEW', 'SCHEDULED', 'COLLECTED') ORDER BY uploaded_at ASC LIMIT $1`)

	mock.ExpectQuery(query).WithArgs(100).WillReturnRows(pgxmock.NewRows(pickupColumns).
		AddRow(1, 7, "2377225624", "SCHEDULED", int64(0), uploaded))

	result, err := repo.FindForProcessing(context.Background(), 100)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Pickup{{ID: 1, UserID: 7, PickupCode: "2377225624", Status: "SCHEDULED", UploadedAt: uploaded}}, result)

	mock.ExpectQuery(query).WithArgs(100).WillReturnError(errors.New("database error"))
	result, err = repo.FindForProcessing(context.Background(), 100)
	assert.Error(t, err)
	assert.Nil(t, result)
}
