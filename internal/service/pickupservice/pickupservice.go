package pickupservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByPickupCode(ctx context.Context, code string) (*domain.Pickup, error)
	Save(ctx context.Context, pickup *domain.Pickup) error
	FindPickupsByUserID(ctx context.Context, userID int) ([]domain.Pickup, error)
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.Pickup, error)
	Update(ctx context.Context, pickup *domain.Pickup) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	// NewPickupStatus registered by the user, unknown to logistics yet.
	NewPickupStatus string = "NEW"
	// ScheduledPickupStatus a courier slot is booked.
	ScheduledPickupStatus string = "SCHEDULED"
	// CollectedPickupStatus the box is on its way to the sorting centre.
	CollectedPickupStatus string = "COLLECTED"
	// CompletedPickupStatus sorted and weighed; points are awarded.
	CompletedPickupStatus string = "COMPLETED"
	// CancelledPickupStatus no points will be awarded.
	CancelledPickupStatus string = "CANCELLED"
)

var (
	ErrPickupAlreadyExistsByUser = errors.New("pickup already registered by user")
	ErrPickupAlreadyExists       = errors.New("pickup already registered by another user")
)

func (s *Service) RegisterPickup(ctx context.Context, userID int, code string) (*domain.Pickup, error) {
	existing, err := s.repo.FindByPickupCode(ctx, code)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if existing != nil {
		if existing.UserID == userID {
			zap.L().Info("pickup already registered by user", zap.String("pickupCode", code))
			return nil, ErrPickupAlreadyExistsByUser
		}
		zap.L().Info("pickup already registered", zap.String("pickupCode", code))
		return nil, ErrPickupAlreadyExists
	}

	pickup := &domain.Pickup{
		UserID:     userID,
		PickupCode: code,
		Status:     NewPickupStatus,
		UploadedAt: time.Now(),
	}

	if err = s.repo.Save(ctx, pickup); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.conflict(ctx, userID, code)
		}
		zap.L().Error("can't save pickup", zap.Error(err))
		return nil, domain.StorageError(err)
	}

	return pickup, nil
}

func (s *Service) conflict(ctx context.Context, userID int, code string) error {
	existing, err := s.repo.FindByPickupCode(ctx, code)
	if err != nil {
		return domain.StorageError(err)
	}
	if existing != nil && existing.UserID == userID {
		return ErrPickupAlreadyExistsByUser
	}
	return ErrPickupAlreadyExists
}

func (s *Service) GetPickups(ctx context.Context, userID int) ([]domain.Pickup, error) {
	pickups, err := s.repo.FindPickupsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get pickups", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if len(pickups) == 0 {
		return nil, nil
	}
	return pickups, nil
}
