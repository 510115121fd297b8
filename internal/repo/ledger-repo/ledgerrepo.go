package ledgerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository stores ledger entries. Entries are only ever inserted; the table
// rejects updates and deletes.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (user_id, type, points, description, idempotency_key)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''))
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, entry.UserID, string(entry.Type), entry.Points, entry.Description, entry.IdempotencyKey).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Int("userID", entry.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, type, points, description, COALESCE(idempotency_key, ''), created_at
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't list ledger entries", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var entryType string
		if err := rows.Scan(&e.ID, &e.UserID, &entryType, &e.Points, &e.Description, &e.IdempotencyKey, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan ledger entry", zap.Error(err))
			return nil, err
		}
		e.Type = domain.EntryType(entryType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("ledger entries iteration failed", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, userID int, key string) (*domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, type, points, description, idempotency_key, created_at
        FROM ledger_entries
        WHERE user_id = $1 AND idempotency_key = $2
    `
	var e domain.LedgerEntry
	var entryType string
	err := r.db.QueryRow(ctx, query, userID, key).
		Scan(&e.ID, &e.UserID, &entryType, &e.Points, &e.Description, &e.IdempotencyKey, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find ledger entry by idempotency key", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	e.Type = domain.EntryType(entryType)
	return &e, nil
}

// SumByUserID folds the ledger: available is the signed sum, lifetime the sum of
// positive entries.
func (r *Repository) SumByUserID(ctx context.Context, userID int) (available, lifetime int64, err error) {
	query := `
        SELECT COALESCE(SUM(points), 0),
               COALESCE(SUM(points) FILTER (WHERE points > 0), 0)
        FROM ledger_entries
        WHERE user_id = $1
    `
	if err = r.db.QueryRow(ctx, query, userID).Scan(&available, &lifetime); err != nil {
		zap.L().Error("can't sum ledger entries", zap.Int("userID", userID), zap.Error(err))
		return 0, 0, err
	}
	return available, lifetime, nil
}
