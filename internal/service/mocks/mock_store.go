package mocks

import (
	"context"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of service.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *database.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*database.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserStore) user(args mock.Arguments) (*database.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.User), args.Error(1)
}

// MockTripStore is a mock implementation of service.TripStore
type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) CreateTrip(ctx context.Context, trip *database.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]database.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Trip), args.Error(1)
}

func (m *MockTripStore) GetTripByID(ctx context.Context, id uuid.UUID) (*database.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Trip), args.Error(1)
}

func (m *MockTripStore) UpdateTrip(ctx context.Context, trip *database.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) UpdateSavedItems(ctx context.Context, trip *database.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripStore) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
