package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/rebox/pkg/clients"
	"github.com/GlebRadaev/rebox/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	EventEarned   = "reward:earned"
	EventLevelUp  = "reward:level_up"
	EventRedeemed = "reward:redeemed"
)

const enqueueTimeout = time.Second

type Event struct {
	UserID    int       `json:"userId"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

type EarnedPayload struct {
	EntryID         int64  `json:"entryId"`
	EntryType       string `json:"entryType"`
	Points          int64  `json:"points"`
	AvailablePoints int64  `json:"availablePoints"`
	LifetimePoints  int64  `json:"lifetimePoints"`
}

type LevelUpPayload struct {
	From           string `json:"from"`
	To             string `json:"to"`
	LifetimePoints int64  `json:"lifetimePoints"`
}

type RedeemedPayload struct {
	EntryID         int64  `json:"entryId"`
	Points          int64  `json:"points"`
	RewardType      string `json:"rewardType"`
	AvailablePoints int64  `json:"availablePoints"`
}

// Dispatcher is fire-and-forget: events are always logged and, when a target
// address is configured, delivered in the background. Delivery failures never
// reach the caller.
type Dispatcher struct {
	url    string
	client clients.HTTPClientI
	pool   workerpool.WorkerPoolI
}

func New(address string, client clients.HTTPClientI, pool workerpool.WorkerPoolI) *Dispatcher {
	d := &Dispatcher{client: client, pool: pool}
	if address != "" {
		d.url = address + "/api/events"
	}
	return d
}

func (d *Dispatcher) Emit(ctx context.Context, event Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	zap.L().Info("reward event",
		zap.Int("userID", event.UserID),
		zap.String("type", event.Type),
		zap.Any("payload", event.Payload),
	)

	if d.url == "" || d.client == nil || d.pool == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't encode event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()
	if err := d.pool.AddTask(ctx, func() error { return d.deliver(event, body) }); err != nil {
		zap.L().Warn("event dropped", zap.Int("userID", event.UserID), zap.String("type", event.Type), zap.Error(err))
	}
}

func (d *Dispatcher) deliver(event Event, body []byte) error {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, _, err := d.client.Post(d.url, headers, body)
	if err != nil {
		return fmt.Errorf("deliver %s for user %d: %w", event.Type, event.UserID, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("deliver %s for user %d: unexpected status %d", event.Type, event.UserID, status)
	}
	return nil
}
