package rewardservice

import (
	"context"
	"strconv"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/levels"
	"github.com/GlebRadaev/rebox/internal/notify"
	"github.com/GlebRadaev/rebox/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRedeemUnit = 100

	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100

	leaderboardQueryTimeout = 10 * time.Second
)

type RewardsRepo interface {
	CreateAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
	GetAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
	TopByLifetimePoints(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
}

// Ledger is the part of the points ledger redemption needs: the aggregate row
// lock and appends made under it.
type Ledger interface {
	Lock(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
	AppendLocked(ctx context.Context, agg *domain.RewardsAggregate, req domain.AppendRequest) (*domain.LedgerEntry, []notify.Event, error)
	FindByIdempotencyKey(ctx context.Context, userID int, key string) (*domain.LedgerEntry, error)
	Emit(ctx context.Context, events []notify.Event)
}

type Service struct {
	rewardsRepo RewardsRepo
	ledger      Ledger
	txManager   pg.TXManager
	levels      *levels.Calculator
	redeemUnit  int64
	group       singleflight.Group
}

func New(rewardsRepo RewardsRepo, ledger Ledger, txManager pg.TXManager, calc *levels.Calculator, redeemUnit int64) *Service {
	if redeemUnit <= 0 {
		redeemUnit = DefaultRedeemUnit
	}
	return &Service{
		rewardsRepo: rewardsRepo,
		ledger:      ledger,
		txManager:   txManager,
		levels:      calc,
		redeemUnit:  redeemUnit,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	agg, err := s.rewardsRepo.CreateAggregate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create rewards account", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return agg, nil
}

func (s *Service) GetRewards(ctx context.Context, userID int) (*domain.RewardsSummary, error) {
	agg, err := s.rewardsRepo.GetAggregate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get rewards", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if agg == nil {
		return nil, domain.ErrNotFound
	}
	return s.summarize(*agg), nil
}

func (s *Service) summarize(agg domain.RewardsAggregate) *domain.RewardsSummary {
	return &domain.RewardsSummary{
		RewardsAggregate:  agg,
		Level:             s.levels.LevelFor(agg.LifetimePoints),
		NextLevel:         s.levels.NextLevelFor(agg.LifetimePoints),
		PointsToNextLevel: s.levels.PointsToNext(agg.LifetimePoints),
		Progress:          s.levels.ProgressToNext(agg.LifetimePoints),
	}
}

// Levels returns the configuration version and the level table, lowest first.
func (s *Service) Levels() (int, []domain.Level) {
	return s.levels.Version(), s.levels.Levels()
}

func (s *Service) RedeemUnit() int64 {
	return s.redeemUnit
}

// Redeem turns points into a reward by appending a SPEND entry. The balance
// check and the append happen under the aggregate row lock, so concurrent
// redemptions for one user cannot overdraw it.
func (s *Service) Redeem(ctx context.Context, req domain.RedeemRequest) (*domain.LedgerEntry, error) {
	if req.Points <= 0 || req.Points%s.redeemUnit != 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !req.RewardType.Valid() {
		return nil, domain.ErrInvalidRewardType
	}

	spend := domain.AppendRequest{
		UserID:         req.UserID,
		Type:           domain.EntrySpend,
		Points:         -req.Points,
		Description:    "Redemption: " + string(req.RewardType),
		IdempotencyKey: req.IdempotencyKey,
	}

	if entry, err := s.replay(ctx, spend); err != nil || entry != nil {
		return entry, err
	}

	var entry, replayed *domain.LedgerEntry
	var events []notify.Event
	var available int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agg, err := s.ledger.Lock(ctx, req.UserID)
		if err != nil {
			return err
		}
		// a request with the same key may have committed while we waited for the lock
		if replayed, err = s.replay(ctx, spend); err != nil || replayed != nil {
			return err
		}
		if req.Points > agg.AvailablePoints {
			return domain.ErrInsufficientPoints
		}
		entry, events, err = s.ledger.AppendLocked(ctx, agg, spend)
		if err != nil {
			return err
		}
		available = agg.AvailablePoints
		return nil
	})
	if err != nil {
		if !domain.IsClientError(err) {
			zap.L().Error("redemption failed", zap.Int("userID", req.UserID), zap.Error(err))
		}
		return nil, domain.StorageError(err)
	}
	if replayed != nil {
		return replayed, nil
	}

	zap.L().Info("points redeemed",
		zap.Int("userID", req.UserID),
		zap.Int64("points", req.Points),
		zap.String("rewardType", string(req.RewardType)),
	)
	events = append(events, notify.Event{
		UserID: req.UserID,
		Type:   notify.EventRedeemed,
		Payload: notify.RedeemedPayload{
			EntryID:         entry.ID,
			Points:          req.Points,
			RewardType:      string(req.RewardType),
			AvailablePoints: available,
		},
	})
	s.ledger.Emit(ctx, events)
	return entry, nil
}

func (s *Service) replay(ctx context.Context, spend domain.AppendRequest) (*domain.LedgerEntry, error) {
	if spend.IdempotencyKey == "" {
		return nil, nil
	}
	existing, err := s.ledger.FindByIdempotencyKey(ctx, spend.UserID, spend.IdempotencyKey)
	if err != nil || existing == nil {
		return nil, err
	}
	if !existing.Matches(spend) {
		return nil, domain.ErrIdempotencyKeyReused
	}
	return existing, nil
}

// Leaderboard returns the top n users by lifetime points. Identical concurrent
// calls share one query; nothing is kept between calls. The shared query is
// not bound to any single caller's cancellation.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n == 0 {
		n = DefaultLeaderboardSize
	}
	if n < 1 || n > MaxLeaderboardSize {
		return nil, domain.ErrInvalidPagination
	}

	ch := s.group.DoChan(strconv.Itoa(n), func() (any, error) {
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), leaderboardQueryTimeout)
		defer cancel()

		rows, err := s.rewardsRepo.TopByLifetimePoints(qctx, n)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].Rank = i + 1
			rows[i].Level = s.levels.LevelFor(rows[i].LifetimePoints).Name
		}
		return rows, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			zap.L().Error("failed to build leaderboard", zap.Error(res.Err))
			return nil, domain.StorageError(res.Err)
		}
		rows := res.Val.([]domain.LeaderboardEntry)
		return append([]domain.LeaderboardEntry(nil), rows...), nil
	}
}
