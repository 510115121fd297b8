package logistics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/rebox/internal/config"
	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/service/pickupservice"
	"github.com/GlebRadaev/rebox/pkg/clients"
	"github.com/GlebRadaev/rebox/pkg/workerpool"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo   *pickupservice.MockRepo
	earner *MockEarner
	client *clients.MockHTTPClientI
	pool   *workerpool.MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, mocks) {
	cfg := &config.Config{LogisticsAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:   pickupservice.NewMockRepo(ctrl),
		earner: NewMockEarner(ctrl),
		client: clients.NewMockHTTPClientI(ctrl),
		pool:   workerpool.NewMockWorkerPoolI(ctrl),
	}
	service := New(cfg, m.repo, m.earner, m.client, m.pool)
	service.retryInterval = time.Millisecond
	return service, m
}

func TestService_StartStops(t *testing.T) {
	service, _ := NewMock(t)
	service.updateInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := service.Start(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestService_processPickups(t *testing.T) {
	pickups := []domain.Pickup{
		{ID: 1, UserID: 1, PickupCode: "2377225624", Status: "NEW"},
		{ID: 2, UserID: 2, PickupCode: "2404815702", Status: "SCHEDULED"},
	}

	t.Run("schedules every pickup once", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindForProcessing(gomock.Any(), uint32(defaultBatchSize)).Return(pickups, nil)
		m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		service.processPickups(context.Background())

		// tasks were queued but never ran, so both codes are still in flight
		_, first := service.inFlight.Load("2377225624")
		_, second := service.inFlight.Load("2404815702")
		assert.True(t, first)
		assert.True(t, second)
	})

	t.Run("skips pickups already in flight", func(t *testing.T) {
		service, m := NewMock(t)
		service.inFlight.Store("2377225624", struct{}{})
		m.repo.EXPECT().FindForProcessing(gomock.Any(), gomock.Any()).Return(pickups, nil)
		m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		service.processPickups(context.Background())
	})

	t.Run("releases pickups the pool rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindForProcessing(gomock.Any(), gomock.Any()).Return(pickups[:1], nil)
		m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(workerpool.ErrPoolClosed)

		service.processPickups(context.Background())

		_, ok := service.inFlight.Load("2377225624")
		assert.False(t, ok)
	})

	t.Run("repository failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindForProcessing(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		service.processPickups(context.Background())
	})

	t.Run("runs queued task", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindForProcessing(gomock.Any(), gomock.Any()).Return(pickups[:1], nil)
		m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task workerpool.Task) error {
			return task()
		})
		m.client.EXPECT().Get("http://localhost:8081/api/pickups/2377225624", gomock.Any()).
			Return(http.StatusNoContent, nil, http.Header{}, nil)

		service.processPickups(context.Background())

		_, ok := service.inFlight.Load("2377225624")
		assert.False(t, ok)
	})
}

func TestService_handlePickup(t *testing.T) {
	pickup := domain.Pickup{ID: 7, UserID: 3, PickupCode: "2377225624", Status: "NEW"}

	tests := []struct {
		name          string
		mockSetup     func(m mocks)
		cancelContext bool
		expectedError string
	}{
		{
			name: "completed pickup earns points",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"COMPLETED","points":200}`), http.Header{}, nil)
				m.earner.EXPECT().Earn(gomock.Any(), 3, int64(200), "Pickup 2377225624 completed", "pickup:2377225624").
					Return(&domain.LedgerEntry{ID: 1, Points: 250}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Pickup) error {
					assert.Equal(t, "COMPLETED", p.Status)
					assert.Equal(t, int64(250), p.Points)
					assert.Equal(t, 7, p.ID)
					return nil
				})
			},
		},
		{
			name: "completed pickup without points",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"COMPLETED"}`), http.Header{}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Pickup) error {
					assert.Equal(t, "COMPLETED", p.Status)
					assert.Equal(t, int64(0), p.Points)
					return nil
				})
			},
		},
		{
			name: "status progresses",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"COLLECTED"}`), http.Header{}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Pickup) error {
					assert.Equal(t, "COLLECTED", p.Status)
					return nil
				})
			},
		},
		{
			name: "earn failure keeps pickup open",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"COMPLETED","points":200}`), http.Header{}, nil)
				m.earner.EXPECT().Earn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrStorageUnavailable)
			},
			expectedError: "failed to award points for pickup 2377225624: storage unavailable",
		},
		{
			name: "unknown status is ignored",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"LOST"}`), http.Header{}, nil)
			},
		},
		{
			name: "code mismatch",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"pickupCode":"2404815702","status":"COMPLETED","points":5}`), http.Header{}, nil)
			},
			expectedError: "pickup code mismatch: expected 2377225624, got 2404815702",
		},
		{
			name: "malformed body",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{invalid`), http.Header{}, nil)
			},
			expectedError: "failed to parse response body: invalid character 'i' looking for beginning of object key string",
		},
		{
			name: "not known yet",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusNoContent, nil, http.Header{}, nil)
			},
		},
		{
			name: "transport errors exhaust retries",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused")).Times(maxRetries)
			},
			expectedError: "failed to poll pickup 2377225624 after 3 retries: connection refused",
		},
		{
			name: "transport error then success",
			mockSetup: func(m mocks) {
				gomock.InOrder(
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection refused")),
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(`{"pickupCode":"2377225624","status":"SCHEDULED"}`), http.Header{}, nil),
				)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unexpected status",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusTeapot, nil, http.Header{}, nil)
			},
			expectedError: ErrUnexpectedStatus.Error(),
		},
		{
			name: "rate limited",
			mockSetup: func(m mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil)
			},
		},
		{
			name:          "context cancelled",
			mockSetup:     func(mocks) {},
			cancelContext: true,
			expectedError: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.mockSetup(m)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelContext {
				cancel()
			}

			err := service.handlePickup(ctx, pickup)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_handleRateLimit(t *testing.T) {
	service, _ := NewMock(t)
	pickup := domain.Pickup{PickupCode: "2377225624"}

	headers := http.Header{}
	headers.Set("Retry-After", "1")
	start := time.Now()
	err := service.handleRateLimit(context.Background(), pickup, headers, 1)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = service.handleRateLimit(ctx, pickup, headers, 1)
	assert.ErrorIs(t, err, context.Canceled)

	start = time.Now()
	err = service.handleRateLimit(context.Background(), pickup, http.Header{}, 2)
	assert.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
