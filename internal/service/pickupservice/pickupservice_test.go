package pickupservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRegisterPickup(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        int
		code          string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Pickup already registered by the same user",
			userID: 1,
			code:   "2377225624",
			prepareMock: func() {
				repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(&domain.Pickup{UserID: 1}, nil)
			},
			expectedError: ErrPickupAlreadyExistsByUser,
		},
		{
			name:   "Pickup already registered by another user",
			userID: 2,
			code:   "2377225624",
			prepareMock: func() {
				repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(&domain.Pickup{UserID: 1}, nil)
			},
			expectedError: ErrPickupAlreadyExists,
		},
		{
			name:   "Lookup fails",
			userID: 1,
			code:   "2377225624",
			prepareMock: func() {
				repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrStorageUnavailable,
		},
		{
			name:   "Save fails",
			userID: 1,
			code:   "2377225624",
			prepareMock: func() {
				repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: domain.ErrStorageUnavailable,
		},
		{
			name:   "Same user wins a concurrent registration",
			userID: 1,
			code:   "2377225624",
			prepareMock: func() {
				gomock.InOrder(
					repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(nil, nil),
					repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyExists),
					repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(&domain.Pickup{UserID: 1}, nil),
				)
			},
			expectedError: ErrPickupAlreadyExistsByUser,
		},
		{
			name:   "Another user wins a concurrent registration",
			userID: 2,
			code:   "2377225624",
			prepareMock: func() {
				gomock.InOrder(
					repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(nil, nil),
					repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyExists),
					repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(&domain.Pickup{UserID: 1}, nil),
				)
			},
			expectedError: ErrPickupAlreadyExists,
		},
		{
			name:   "New pickup registered",
			userID: 1,
			code:   "2377225624",
			prepareMock: func() {
				repo.EXPECT().FindByPickupCode(gomock.Any(), "2377225624").Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Pickup) error {
					p.ID = 5
					return nil
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pickup, err := service.RegisterPickup(context.Background(), tt.userID, tt.code)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pickup)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, pickup.ID)
			assert.Equal(t, tt.userID, pickup.UserID)
			assert.Equal(t, tt.code, pickup.PickupCode)
			assert.Equal(t, NewPickupStatus, pickup.Status)
			assert.False(t, pickup.UploadedAt.IsZero())
		})
	}
}

func TestGetPickups(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name            string
		prepareMock     func()
		expectedPickups []domain.Pickup
		expectedError   error
	}{
		{
			name: "Pickups found",
			prepareMock: func() {
				repo.EXPECT().FindPickupsByUserID(gomock.Any(), 1).Return([]domain.Pickup{
					{PickupCode: "2404815702", Status: CompletedPickupStatus, Points: 220},
					{PickupCode: "2377225624", Status: NewPickupStatus},
				}, nil)
			},
			expectedPickups: []domain.Pickup{
				{PickupCode: "2404815702", Status: CompletedPickupStatus, Points: 220},
				{PickupCode: "2377225624", Status: NewPickupStatus},
			},
		},
		{
			name: "No pickups",
			prepareMock: func() {
				repo.EXPECT().FindPickupsByUserID(gomock.Any(), 1).Return([]domain.Pickup{}, nil)
			},
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindPickupsByUserID(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pickups, err := service.GetPickups(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPickups, pickups)
		})
	}
}
