package gym

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetGyms(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockRepository) GetGymBySlug(ctx context.Context, slug string) (*Gym, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) GetBranchesByGym(ctx context.Context, gymID uuid.UUID) ([]Branch, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Branch), args.Error(1)
}

func (m *MockRepository) GetActiveBranches(ctx context.Context) ([]Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Branch), args.Error(1)
}

func (m *MockRepository) GetBranchID(ctx context.Context, gymSlug, branchSlug string) (uuid.UUID, error) {
	args := m.Called(ctx, gymSlug, branchSlug)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestService_GetBranches(t *testing.T) {
	tests := []struct {
		name        string
		gymSlug     string
		setupMock   func(*MockRepository)
		expectErr   error
		expectCount int
	}{
		{
			name:    "branches of one gym",
			gymSlug: "eagle-gym",
			setupMock: func(m *MockRepository) {
				m.On("GetGymBySlug", mock.Anything, "eagle-gym").Return(&Gym{ID: eagleID, Slug: "eagle-gym"}, nil)
				m.On("GetBranchesByGym", mock.Anything, eagleID).Return([]Branch{{Slug: "fostat"}, {Slug: "qoopa"}}, nil)
			},
			expectCount: 2,
		},
		{
			name:    "all active branches",
			gymSlug: "",
			setupMock: func(m *MockRepository) {
				m.On("GetActiveBranches", mock.Anything).Return([]Branch{{Slug: "boolaq"}}, nil)
			},
			expectCount: 1,
		},
		{
			name:    "unknown gym",
			gymSlug: "iron-gym",
			setupMock: func(m *MockRepository) {
				m.On("GetGymBySlug", mock.Anything, "iron-gym").Return(nil, ErrGymNotFound)
			},
			expectErr: ErrGymNotFound,
		},
		{
			name:    "store failure",
			gymSlug: "eagle-gym",
			setupMock: func(m *MockRepository) {
				m.On("GetGymBySlug", mock.Anything, "eagle-gym").Return(nil, errors.New("timeout"))
			},
			expectErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo)
			branches, err := service.GetBranches(context.Background(), tt.gymSlug)

			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, branches)
			} else {
				assert.NoError(t, err)
				assert.Len(t, branches, tt.expectCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_GetBranchID(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetBranchID", mock.Anything, "eagle-gym", "qoopa").Return(qoopaID, nil)

	id, err := NewService(mockRepo).GetBranchID(context.Background(), "eagle-gym", "qoopa")

	assert.NoError(t, err)
	assert.Equal(t, qoopaID, id)
	mockRepo.AssertExpectations(t)
}
