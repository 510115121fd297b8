package logistics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/rebox/internal/config"
	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/service/pickupservice"
	"github.com/GlebRadaev/rebox/pkg/clients"
	"github.com/GlebRadaev/rebox/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries           = 3
	defaultRetryInterval = time.Second
	defaultBatchSize     = 1000
	defaultPollInterval  = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Response is the logistics system's view of a pickup.
type Response struct {
	PickupCode string `json:"pickupCode"`
	Status     string `json:"status"`
	Points     int64  `json:"points,omitempty"`
}

// Earner credits pickup points to the ledger.
type Earner interface {
	Earn(ctx context.Context, userID int, base int64, description, key string) (*domain.LedgerEntry, error)
}

// Service polls the logistics system for pickups that are not final yet and
// awards points once a pickup is completed.
type Service struct {
	url            string
	pickupRepo     pickupservice.Repo
	ledger         Earner
	client         clients.HTTPClientI
	workerPool     workerpool.WorkerPoolI
	limit          uint32
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
}

func New(cfg *config.Config, pickupRepo pickupservice.Repo, ledger Earner, client clients.HTTPClientI, pool workerpool.WorkerPoolI) *Service {
	return &Service{
		url:            cfg.LogisticsAddress,
		pickupRepo:     pickupRepo,
		ledger:         ledger,
		client:         client,
		workerPool:     pool,
		limit:          defaultBatchSize,
		updateInterval: defaultPollInterval,
		retryInterval:  defaultRetryInterval,
	}
}

// Start polls until ctx is cancelled. done is closed when the loop exits.
func (s *Service) Start(ctx context.Context) (done <-chan struct{}) {
	zap.L().Info("logistics poller started", zap.String("url", s.url))
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		s.run(ctx)
	}()
	return ch
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("logistics poller stopped")
			return
		case <-ticker.C:
			s.processPickups(ctx)
		}
	}
}

func (s *Service) processPickups(ctx context.Context) {
	pickups, err := s.pickupRepo.FindForProcessing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("failed to fetch pickups for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, pickup := range pickups {
		if _, loaded := s.inFlight.LoadOrStore(pickup.PickupCode, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(pickup.PickupCode)
				return s.handlePickup(ctx, pickup)
			})
			if err != nil {
				s.inFlight.Delete(pickup.PickupCode)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling pickups", zap.Error(err))
	}
}

func (s *Service) handlePickup(ctx context.Context, pickup domain.Pickup) error {
	url := s.url + "/api/pickups/" + pickup.PickupCode

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
		if err != nil {
			if attempt < maxRetries {
				if err := s.sleep(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to poll pickup %s after %d retries: %w", pickup.PickupCode, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return s.processResult(ctx, pickup, respBody)
		case http.StatusNoContent:
			zap.L().Debug("pickup not known to logistics yet", zap.String("pickupCode", pickup.PickupCode))
			return nil
		case http.StatusTooManyRequests:
			return s.handleRateLimit(ctx, pickup, respHeaders, attempt)
		default:
			zap.L().Error("unexpected status code", zap.Int("status", statusCode), zap.String("pickupCode", pickup.PickupCode))
			return ErrUnexpectedStatus
		}
	}
	return nil
}

func (s *Service) processResult(ctx context.Context, pickup domain.Pickup, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.PickupCode != pickup.PickupCode {
		return fmt.Errorf("pickup code mismatch: expected %s, got %s", pickup.PickupCode, response.PickupCode)
	}

	switch response.Status {
	case pickupservice.CompletedPickupStatus:
		if response.Points > 0 {
			entry, err := s.ledger.Earn(ctx, pickup.UserID, response.Points,
				fmt.Sprintf("Pickup %s completed", pickup.PickupCode),
				"pickup:"+pickup.PickupCode,
			)
			if err != nil {
				return fmt.Errorf("failed to award points for pickup %s: %w", pickup.PickupCode, err)
			}
			pickup.Points = entry.Points
			zap.L().Info("pickup points awarded",
				zap.Int("userID", pickup.UserID),
				zap.String("pickupCode", pickup.PickupCode),
				zap.Int64("points", entry.Points),
			)
		}
	case pickupservice.ScheduledPickupStatus, pickupservice.CollectedPickupStatus, pickupservice.CancelledPickupStatus:
	default:
		zap.L().Warn("unrecognized pickup status", zap.String("pickupCode", pickup.PickupCode), zap.String("status", response.Status))
		return nil
	}

	if response.Status == pickup.Status && response.Status != pickupservice.CompletedPickupStatus {
		return nil
	}
	pickup.Status = response.Status
	if err := s.pickupRepo.Update(ctx, &pickup); err != nil {
		return fmt.Errorf("failed to update pickup: %w", err)
	}
	return nil
}

func (s *Service) handleRateLimit(ctx context.Context, pickup domain.Pickup, respHeaders http.Header, attempt int) error {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("rate limited by logistics",
		zap.String("pickupCode", pickup.PickupCode),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return s.sleep(ctx, retryAfter)
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
