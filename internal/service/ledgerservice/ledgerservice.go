package ledgerservice

import (
	"context"
	"fmt"
	"math"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/levels"
	"github.com/GlebRadaev/rebox/internal/notify"
	"github.com/GlebRadaev/rebox/internal/pg"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	idempotencyCacheSize = 4096
)

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByUserID(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error)
	FindByIdempotencyKey(ctx context.Context, userID int, key string) (*domain.LedgerEntry, error)
	SumByUserID(ctx context.Context, userID int) (available, lifetime int64, err error)
}

type RewardsRepo interface {
	LockAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
	ApplyDelta(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error)
	SetAggregate(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error)
}

type Notifier interface {
	Emit(ctx context.Context, event notify.Event)
}

// Service is the append-only points ledger. Every append locks the user's
// aggregate row, inserts the entry and applies the delta to the aggregate in
// one transaction.
type Service struct {
	ledgerRepo  LedgerRepo
	rewardsRepo RewardsRepo
	txManager   pg.TXManager
	levels      *levels.Calculator
	notifier    Notifier
	keys        *lru.Cache
}

func New(ledgerRepo LedgerRepo, rewardsRepo RewardsRepo, txManager pg.TXManager, calc *levels.Calculator, notifier Notifier) *Service {
	keys, _ := lru.New(idempotencyCacheSize)
	return &Service{
		ledgerRepo:  ledgerRepo,
		rewardsRepo: rewardsRepo,
		txManager:   txManager,
		levels:      calc,
		notifier:    notifier,
		keys:        keys,
	}
}

func normalize(req domain.AppendRequest) (domain.AppendRequest, error) {
	if !req.Type.Valid() {
		return req, domain.ErrInvalidEntryType
	}
	if req.Points == 0 || req.Points > domain.MaxEntryPoints || req.Points < -domain.MaxEntryPoints {
		return req, domain.ErrInvalidAmount
	}
	switch req.Type {
	case domain.EntrySpend:
		if req.Points > 0 {
			req.Points = -req.Points
		}
	case domain.EntryEarn:
		if req.Points < 0 {
			return req, domain.ErrInvalidAmount
		}
	}
	return req, nil
}

// Append validates and stores one entry. Balance is not checked here; callers
// that spend do so under Lock first.
func (s *Service) Append(ctx context.Context, req domain.AppendRequest) (*domain.LedgerEntry, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	var events []notify.Event
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		agg, err := s.Lock(ctx, req.UserID)
		if err != nil {
			return err
		}
		entry, events, err = s.AppendLocked(ctx, agg, req)
		return err
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}

	s.Emit(ctx, events)
	return entry, nil
}

// Earn credits base points scaled by the multiplier of the level the user
// holds when the row lock is taken. Retrying with the same key returns the
// first entry, whatever the multiplier is by then.
func (s *Service) Earn(ctx context.Context, userID int, base int64, description, key string) (*domain.LedgerEntry, error) {
	if base <= 0 || base > domain.MaxEntryPoints {
		return nil, domain.ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	var events []notify.Event
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agg, err := s.Lock(ctx, userID)
		if err != nil {
			return err
		}

		existing, err := s.replay(ctx, userID, key, func(e *domain.LedgerEntry) bool {
			return e.Type == domain.EntryEarn && e.Description == description
		})
		if err != nil || existing != nil {
			entry = existing
			return err
		}

		req := domain.AppendRequest{
			UserID:         userID,
			Type:           domain.EntryEarn,
			Points:         s.levels.ApplyMultiplier(agg.LifetimePoints, base),
			Description:    description,
			IdempotencyKey: key,
		}
		entry, events, err = s.insertLocked(ctx, agg, req)
		return err
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}

	s.Emit(ctx, events)
	return entry, nil
}

// Adjust appends a signed ADJUSTMENT. Debits may not take available points
// below zero.
func (s *Service) Adjust(ctx context.Context, userID int, points int64, description string) (*domain.LedgerEntry, error) {
	if points == 0 || points > domain.MaxEntryPoints || points < -domain.MaxEntryPoints {
		return nil, domain.ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	var events []notify.Event
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agg, err := s.Lock(ctx, userID)
		if err != nil {
			return err
		}
		if agg.AvailablePoints+points < 0 {
			return domain.ErrInsufficientPoints
		}
		entry, events, err = s.AppendLocked(ctx, agg, domain.AppendRequest{
			UserID:      userID,
			Type:        domain.EntryAdjustment,
			Points:      points,
			Description: description,
		})
		return err
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}

	zap.L().Info("points adjusted", zap.Int("userID", userID), zap.Int64("points", points))
	s.Emit(ctx, events)
	return entry, nil
}

// Lock returns the user's aggregate and holds its row lock until the
// surrounding transaction ends.
func (s *Service) Lock(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	agg, err := s.rewardsRepo.LockAggregate(ctx, userID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if agg == nil {
		return nil, domain.ErrNotFound
	}
	return agg, nil
}

// AppendLocked appends within a transaction whose aggregate lock the caller
// took with Lock. agg is updated in place. The returned events must be passed
// to Emit once the transaction has committed.
func (s *Service) AppendLocked(ctx context.Context, agg *domain.RewardsAggregate, req domain.AppendRequest) (*domain.LedgerEntry, []notify.Event, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.replay(ctx, req.UserID, req.IdempotencyKey, func(e *domain.LedgerEntry) bool {
		return e.Matches(req)
	})
	if err != nil || existing != nil {
		return existing, nil, err
	}
	return s.insertLocked(ctx, agg, req)
}

// replay returns the entry already stored under key, or nil. An entry produced
// by a different request fails with ErrIdempotencyKeyReused.
func (s *Service) replay(ctx context.Context, userID int, key string, same func(*domain.LedgerEntry) bool) (*domain.LedgerEntry, error) {
	if key == "" {
		return nil, nil
	}
	existing, err := s.ledgerRepo.FindByIdempotencyKey(ctx, userID, key)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if existing == nil {
		return nil, nil
	}
	if !same(existing) {
		return nil, domain.ErrIdempotencyKeyReused
	}
	zap.L().Info("idempotent replay", zap.Int("userID", userID), zap.Int64("entryID", existing.ID))
	return existing, nil
}

func (s *Service) insertLocked(ctx context.Context, agg *domain.RewardsAggregate, req domain.AppendRequest) (*domain.LedgerEntry, []notify.Event, error) {
	if req.Points > 0 && agg.LifetimePoints > math.MaxInt64-req.Points {
		return nil, nil, domain.ErrInvalidAmount
	}
	entry := &domain.LedgerEntry{
		UserID:         req.UserID,
		Type:           req.Type,
		Points:         req.Points,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	}
	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		return nil, nil, domain.StorageError(err)
	}

	before := *agg
	updated, err := s.rewardsRepo.ApplyDelta(ctx, req.UserID, entry.Points, max(entry.Points, 0))
	if err != nil {
		return nil, nil, domain.StorageError(err)
	}
	if updated == nil {
		return nil, nil, domain.ErrNotFound
	}
	*agg = *updated

	return entry, s.eventsFor(before, *updated, entry), nil
}

func (s *Service) eventsFor(before, after domain.RewardsAggregate, entry *domain.LedgerEntry) []notify.Event {
	if entry.Points <= 0 {
		return nil
	}
	events := []notify.Event{{
		UserID: entry.UserID,
		Type:   notify.EventEarned,
		Payload: notify.EarnedPayload{
			EntryID:         entry.ID,
			EntryType:       string(entry.Type),
			Points:          entry.Points,
			AvailablePoints: after.AvailablePoints,
			LifetimePoints:  after.LifetimePoints,
		},
	}}

	from := s.levels.LevelFor(before.LifetimePoints)
	to := s.levels.LevelFor(after.LifetimePoints)
	if from.Name != to.Name {
		events = append(events, notify.Event{
			UserID: entry.UserID,
			Type:   notify.EventLevelUp,
			Payload: notify.LevelUpPayload{
				From:           from.Name,
				To:             to.Name,
				LifetimePoints: after.LifetimePoints,
			},
		})
	}
	return events
}

// Emit hands events to the notifier. Call it only after commit.
func (s *Service) Emit(ctx context.Context, events []notify.Event) {
	if s.notifier == nil {
		return
	}
	for _, event := range events {
		s.notifier.Emit(ctx, event)
	}
}

// Transactions lists entries newest first. A zero limit means DefaultLimit.
func (s *Service) Transactions(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit || offset < 0 {
		return nil, domain.ErrInvalidPagination
	}

	entries, err := s.ledgerRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return entries, nil
}

// FindByIdempotencyKey looks up a committed entry; hits are cached. Not for use
// inside a transaction that may have written the entry itself.
func (s *Service) FindByIdempotencyKey(ctx context.Context, userID int, key string) (*domain.LedgerEntry, error) {
	if key == "" {
		return nil, nil
	}
	cacheKey := fmt.Sprintf("%d:%s", userID, key)
	if v, ok := s.keys.Get(cacheKey); ok {
		entry := v.(domain.LedgerEntry)
		return &entry, nil
	}

	entry, err := s.ledgerRepo.FindByIdempotencyKey(ctx, userID, key)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if entry != nil {
		s.keys.Add(cacheKey, *entry)
	}
	return entry, nil
}

// Reconcile refolds the user's ledger and overwrites the cached aggregate.
func (s *Service) Reconcile(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	var result *domain.RewardsAggregate
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agg, err := s.Lock(ctx, userID)
		if err != nil {
			return err
		}
		available, lifetime, err := s.ledgerRepo.SumByUserID(ctx, userID)
		if err != nil {
			return domain.StorageError(err)
		}
		if available != agg.AvailablePoints || lifetime != agg.LifetimePoints {
			zap.L().Warn("rewards aggregate drifted from ledger",
				zap.Int("userID", userID),
				zap.Int64("cachedAvailable", agg.AvailablePoints),
				zap.Int64("cachedLifetime", agg.LifetimePoints),
				zap.Int64("available", available),
				zap.Int64("lifetime", lifetime),
			)
		}
		result, err = s.rewardsRepo.SetAggregate(ctx, userID, available, lifetime)
		if err != nil {
			return domain.StorageError(err)
		}
		if result == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return result, nil
}
