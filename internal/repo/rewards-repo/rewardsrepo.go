package rewardsrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository keeps the per-user rewards aggregate, the cached fold of the ledger.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) scanAggregate(row pgx.Row) (*domain.RewardsAggregate, error) {
	var agg domain.RewardsAggregate
	err := row.Scan(&agg.UserID, &agg.AvailablePoints, &agg.LifetimePoints, &agg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *Repository) CreateAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	query := `
        INSERT INTO rewards (user_id, available_points, lifetime_points)
        VALUES ($1, 0, 0)
        RETURNING user_id, available_points, lifetime_points, updated_at
    `
	agg, err := r.scanAggregate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create rewards aggregate", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return agg, nil
}

func (r *Repository) GetAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	query := `
        SELECT user_id, available_points, lifetime_points, updated_at
        FROM rewards
        WHERE user_id = $1
    `
	agg, err := r.scanAggregate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to get rewards aggregate", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return agg, nil
}

// LockAggregate reads the aggregate holding its row lock until the surrounding
// transaction ends. Every balance-affecting write goes through it first.
func (r *Repository) LockAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	query := `
        SELECT user_id, available_points, lifetime_points, updated_at
        FROM rewards
        WHERE user_id = $1
        FOR UPDATE
    `
	agg, err := r.scanAggregate(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to lock rewards aggregate", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return agg, nil
}

func (r *Repository) ApplyDelta(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error) {
	query := `
        UPDATE rewards
        SET available_points = available_points + $1,
            lifetime_points = lifetime_points + $2,
            updated_at = now()
        WHERE user_id = $3
        RETURNING user_id, available_points, lifetime_points, updated_at
    `
	agg, err := r.scanAggregate(r.db.QueryRow(ctx, query, available, lifetime, userID))
	if err != nil {
		zap.L().Error("failed to update rewards aggregate", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return agg, nil
}

func (r *Repository) SetAggregate(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error) {
	query := `
        UPDATE rewards
        SET available_points = $1,
            lifetime_points = $2,
            updated_at = now()
        WHERE user_id = $3
        RETURNING user_id, available_points, lifetime_points, updated_at
    `
	agg, err := r.scanAggregate(r.db.QueryRow(ctx, query, available, lifetime, userID))
	if err != nil {
		zap.L().Error("failed to overwrite rewards aggregate", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return agg, nil
}

// TopByLifetimePoints returns up to n users ordered by lifetime points. Ties go
// to the earlier registered user, then the lower id. Rank and Level are left to
// the caller.
func (r *Repository) TopByLifetimePoints(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	query := `
        SELECT r.user_id, u.login, r.lifetime_points
        FROM rewards r
        JOIN users u ON u.id = r.user_id
        ORDER BY r.lifetime_points DESC, u.created_at ASC, u.id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		zap.L().Error("failed to query leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.LifetimePoints); err != nil {
			zap.L().Error("failed to scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("leaderboard iteration failed", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
