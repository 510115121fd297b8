package rewards

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/dto"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"github.com/GlebRadaev/rebox/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	bronze = domain.Level{Name: "Bronze", MinPoints: 0, Multiplier: 1.0, Benefits: []string{"Standard rewards"}}
	silver = domain.Level{Name: "Silver", MinPoints: 1000, Multiplier: 1.1, Benefits: []string{"10% bonus points"}}
)

func NewMock(t *testing.T) (*RewardHandler, *MockService, *MockLedger) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	ledger := NewMockLedger(ctrl)
	handler := New(service, ledger)
	defer ctrl.Finish()
	return handler, service, ledger
}

func userRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 7))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestGetRewardsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("summary with next level", func(t *testing.T) {
		service.EXPECT().GetRewards(gomock.Any(), 7).Return(&domain.RewardsSummary{
			RewardsAggregate:  domain.RewardsAggregate{UserID: 7, AvailablePoints: 550, LifetimePoints: 650},
			Level:             bronze,
			NextLevel:         &silver,
			PointsToNextLevel: 350,
			Progress:          0.65,
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetRewards(rr, userRequest(http.MethodGet, "/api/rewards", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body dto.RewardsResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, int64(550), body.AvailablePoints)
		assert.Equal(t, int64(650), body.LifetimePoints)
		assert.Equal(t, "Bronze", body.Level)
		assert.Equal(t, "Silver", body.NextLevel)
		assert.Equal(t, int64(350), body.PointsToNextLevel)
		assert.InDelta(t, 0.65, body.Progress, 1e-9)
		assert.Equal(t, "Bronze", body.CurrentLevelConfig.Level)
		require.NotNil(t, body.NextLevelConfig)
		assert.Equal(t, int64(1000), body.NextLevelConfig.MinPoints)
	})

	t.Run("top level has no next level", func(t *testing.T) {
		service.EXPECT().GetRewards(gomock.Any(), 7).Return(&domain.RewardsSummary{
			RewardsAggregate: domain.RewardsAggregate{UserID: 7, AvailablePoints: 100, LifetimePoints: 1500},
			Level:            silver,
			Progress:         1,
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetRewards(rr, userRequest(http.MethodGet, "/api/rewards", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "nextLevelConfig")
		assert.NotContains(t, rr.Body.String(), `"nextLevel"`)
	})

	t.Run("unknown user", func(t *testing.T) {
		service.EXPECT().GetRewards(gomock.Any(), 7).Return(nil, domain.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.GetRewards(rr, userRequest(http.MethodGet, "/api/rewards", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Rewards account not found", decodeMessage(t, rr))
	})

	t.Run("storage failure", func(t *testing.T) {
		service.EXPECT().GetRewards(gomock.Any(), 7).Return(nil, domain.StorageError(errors.New("connection reset")))

		rr := httptest.NewRecorder()
		handler.GetRewards(rr, userRequest(http.MethodGet, "/api/rewards", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeMessage(t, rr))
	})
}

func TestGetTransactionsHandler(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{ID: 2, UserID: 7, Type: domain.EntrySpend, Points: -500, Description: "Redemption: CASH", CreatedAt: createdAt},
		{ID: 1, UserID: 7, Type: domain.EntryEarn, Points: 1000, Description: "Pickup 2377225624 completed", CreatedAt: createdAt},
	}

	tests := []struct {
		name           string
		target         string
		prepareMock    func(ledger *MockLedger)
		expectedCode   int
		expectedError  string
		expectedLimit  int
		expectedOffset int
		expectedCount  int
	}{
		{
			name:   "default page",
			target: "/api/rewards/transactions",
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().Transactions(gomock.Any(), 7, 0, 0).Return(entries, nil)
			},
			expectedCode:  http.StatusOK,
			expectedLimit: 20,
			expectedCount: 2,
		},
		{
			name:   "explicit page",
			target: "/api/rewards/transactions?limit=1&offset=1",
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().Transactions(gomock.Any(), 7, 1, 1).Return(entries[1:], nil)
			},
			expectedCode:   http.StatusOK,
			expectedLimit:  1,
			expectedOffset: 1,
			expectedCount:  1,
		},
		{
			name:   "empty history",
			target: "/api/rewards/transactions",
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().Transactions(gomock.Any(), 7, 0, 0).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedLimit: 20,
		},
		{
			name:          "non numeric limit",
			target:        "/api/rewards/transactions?limit=ten",
			prepareMock:   func(*MockLedger) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name:          "non numeric offset",
			target:        "/api/rewards/transactions?offset=x",
			prepareMock:   func(*MockLedger) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid offset",
		},
		{
			name:   "limit out of range",
			target: "/api/rewards/transactions?limit=500",
			prepareMock: func(ledger *MockLedger) {
				ledger.EXPECT().Transactions(gomock.Any(), 7, 500, 0).Return(nil, domain.ErrInvalidPagination)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrInvalidPagination.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, ledger := NewMock(t)
			tt.prepareMock(ledger)

			rr := httptest.NewRecorder()
			handler.GetTransactions(rr, userRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeMessage(t, rr))
				return
			}

			var body dto.TransactionsResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.expectedLimit, body.Limit)
			assert.Equal(t, tt.expectedOffset, body.Offset)
			assert.NotNil(t, body.Transactions)
			assert.Len(t, body.Transactions, tt.expectedCount)
		})
	}

	t.Run("entries keep order and sign", func(t *testing.T) {
		handler, _, ledger := NewMock(t)
		ledger.EXPECT().Transactions(gomock.Any(), 7, 0, 0).Return(entries, nil)

		rr := httptest.NewRecorder()
		handler.GetTransactions(rr, userRequest(http.MethodGet, "/api/rewards/transactions", nil))

		var body dto.TransactionsResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		require.Len(t, body.Transactions, 2)
		assert.Equal(t, dto.TransactionResponseDTO{
			ID: 2, Type: "SPEND", Points: -500, Description: "Redemption: CASH", CreatedAt: createdAt,
		}, body.Transactions[0])
		assert.Equal(t, int64(1), body.Transactions[1].ID)
	})
}

func TestRedeemHandler(t *testing.T) {
	const key = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	entry := &domain.LedgerEntry{
		ID:          9,
		UserID:      7,
		Type:        domain.EntrySpend,
		Points:      -500,
		Description: "Redemption: CASH",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name          string
		body          string
		key           string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "successful redemption",
			body: `{"points":500,"rewardType":"CASH"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), domain.RedeemRequest{
					UserID: 7, Points: 500, RewardType: domain.RewardCash,
				}).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "idempotency key is passed through",
			body: `{"points":500,"rewardType":"CASH"}`,
			key:  key,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), domain.RedeemRequest{
					UserID: 7, Points: 500, RewardType: domain.RewardCash, IdempotencyKey: key,
				}).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "idempotency key is normalized",
			body: `{"points":500,"rewardType":"CASH"}`,
			key:  "1B4E28BA-2FA1-11D2-883F-0016D3CCA427",
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), domain.RedeemRequest{
					UserID: 7, Points: 500, RewardType: domain.RewardCash, IdempotencyKey: key,
				}).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed idempotency key",
			body:          `{"points":500,"rewardType":"CASH"}`,
			key:           "retry-1",
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Idempotency-Key must be a UUID",
		},
		{
			name:          "invalid body",
			body:          `{"points":`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "invalid amount",
			body: `{"points":150,"rewardType":"CASH"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid amount",
		},
		{
			name: "invalid reward type",
			body: `{"points":500,"rewardType":"CRYPTO"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidRewardType)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid reward type",
		},
		{
			name: "insufficient points",
			body: `{"points":5000,"rewardType":"GIFTCARD"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInsufficientPoints)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient points",
		},
		{
			name: "reused idempotency key",
			body: `{"points":200,"rewardType":"CASH"}`,
			key:  key,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, domain.ErrIdempotencyKeyReused)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrIdempotencyKeyReused.Error(),
		},
		{
			name: "storage failure",
			body: `{"points":500,"rewardType":"DONATION"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := userRequest(http.MethodPost, "/api/rewards/redeem", []byte(tt.body))
			if tt.key != "" {
				r.Header.Set(IdempotencyKeyHeader, tt.key)
			}
			rr := httptest.NewRecorder()

			handler.Redeem(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeMessage(t, rr))
				return
			}
			var body dto.TransactionResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, int64(9), body.ID)
			assert.Equal(t, "SPEND", body.Type)
			assert.Equal(t, int64(-500), body.Points)
			assert.Equal(t, "Redemption: CASH", body.Description)
		})
	}
}

func TestGetLeaderboardHandler(t *testing.T) {
	t.Run("default size", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Leaderboard(gomock.Any(), 0).Return([]domain.LeaderboardEntry{
			{Rank: 1, UserID: 3, Name: "greenbox", Level: "Gold", LifetimePoints: 3200},
			{Rank: 2, UserID: 7, Name: "recycler", Level: "Silver", LifetimePoints: 1200},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetLeaderboard(rr, userRequest(http.MethodGet, "/api/rewards/leaderboard", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body []dto.LeaderboardEntryDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, []dto.LeaderboardEntryDTO{
			{Rank: 1, UserID: 3, Name: "greenbox", Level: "Gold", LifetimePoints: 3200},
			{Rank: 2, UserID: 7, Name: "recycler", Level: "Silver", LifetimePoints: 1200},
		}, body)
	})

	t.Run("empty board is an empty array", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Leaderboard(gomock.Any(), 5).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.GetLeaderboard(rr, userRequest(http.MethodGet, "/api/rewards/leaderboard?limit=5", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("limit out of range", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Leaderboard(gomock.Any(), 101).Return(nil, domain.ErrInvalidPagination)

		rr := httptest.NewRecorder()
		handler.GetLeaderboard(rr, userRequest(http.MethodGet, "/api/rewards/leaderboard?limit=101", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non numeric limit", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.GetLeaderboard(rr, userRequest(http.MethodGet, "/api/rewards/leaderboard?limit=all", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid limit", decodeMessage(t, rr))
	})
}

func TestGetLevelsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	service.EXPECT().Levels().Return(1, []domain.Level{bronze, silver, {Name: "Gold", MinPoints: 2500, Multiplier: 1.25}})

	rr := httptest.NewRecorder()
	handler.GetLevels(rr, httptest.NewRequest(http.MethodGet, "/api/rewards/levels", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body dto.LevelsResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, 1, body.Version)
	require.Len(t, body.Levels, 3)
	assert.Equal(t, "Bronze", body.Levels[0].Level)
	assert.Equal(t, 1.1, body.Levels[1].Multiplier)
	assert.Equal(t, []string{}, body.Levels[2].Benefits)
}
