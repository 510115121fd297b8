package pickuprepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPickups(rows pgx.Rows) ([]domain.Pickup, error) {
	defer rows.Close()

	var pickups []domain.Pickup
	for rows.Next() {
		var p domain.Pickup
		if err := rows.Scan(&p.ID, &p.UserID, &p.PickupCode, &p.Status, &p.Points, &p.UploadedAt); err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}
	return pickups, rows.Err()
}

func (r *Repository) FindByPickupCode(ctx context.Context, code string) (*domain.Pickup, error) {
	query := `
        SELECT id, user_id, pickup_code, status, points, uploaded_at
        FROM pickups
        WHERE pickup_code = $1
    `
	var p domain.Pickup
	err := r.db.QueryRow(ctx, query, code).Scan(&p.ID, &p.UserID, &p.PickupCode, &p.Status, &p.Points, &p.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pickup", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindPickupsByUserID(ctx context.Context, userID int) ([]domain.Pickup, error) {
	query := `
        SELECT id, user_id, pickup_code, status, points, uploaded_at
        FROM pickups
        WHERE user_id = $1
        ORDER BY uploaded_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pickups", zap.Error(err))
		return nil, err
	}
	pickups, err := scanPickups(rows)
	if err != nil {
		zap.L().Error("can't scan pickup row", zap.Error(err))
		return nil, err
	}
	return pickups, nil
}

func (r *Repository) Save(ctx context.Context, pickup *domain.Pickup) error {
	query := `
        INSERT INTO pickups (user_id, pickup_code, status, points, uploaded_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, pickup.UserID, pickup.PickupCode, pickup.Status, pickup.Points, pickup.UploadedAt).Scan(&pickup.ID)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return fmt.Errorf("pickup %s: %w", pickup.PickupCode, domain.ErrAlreadyExists)
			}
			zap.L().Error("can't save pickup", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, pickup *domain.Pickup) error {
	query := `
        UPDATE pickups
        SET status = $1, points = $2
        WHERE id = $3
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, pickup.Status, pickup.Points, pickup.ID)
		if err != nil {
			zap.L().Error("failed to update pickup", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.Pickup, error) {
	query := `
        SELECT id, user_id, pickup_code, status, points, uploaded_at
        FROM pickups
        WHERE status IN ('NEW', 'SCHEDULED', 'COLLECTED')
        ORDER BY uploaded_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pickups for processing", zap.Error(err))
		return nil, err
	}
	pickups, err := scanPickups(rows)
	if err != nil {
		zap.L().Error("can't scan pickup row for processing", zap.Error(err))
		return nil, err
	}
	return pickups, nil
}
