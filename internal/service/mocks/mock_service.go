package mocks

import (
	"context"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req service.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*database.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.User), args.Error(1)
}

// MockTripService is a mock implementation of TripService
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) trip(args mock.Arguments) (*database.Trip, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Trip), args.Error(1)
}

func (m *MockTripService) CreateTrip(ctx context.Context, userID string, req service.TripRequest) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, req))
}

func (m *MockTripService) ListTrips(ctx context.Context, userID string) ([]database.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Trip), args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, userID, tripID string) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID))
}

func (m *MockTripService) UpdateTrip(ctx context.Context, userID, tripID string, req service.TripUpdateRequest) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, req))
}

func (m *MockTripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	args := m.Called(ctx, userID, tripID)
	return args.Error(0)
}

func (m *MockTripService) AddSavedFlight(ctx context.Context, userID, tripID string, item database.SavedFlight) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, item))
}

func (m *MockTripService) RemoveSavedFlight(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, itemID))
}

func (m *MockTripService) AddSavedAccommodation(ctx context.Context, userID, tripID string, item database.SavedAccommodation) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, item))
}

func (m *MockTripService) RemoveSavedAccommodation(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, itemID))
}

func (m *MockTripService) AddSavedActivity(ctx context.Context, userID, tripID string, item database.SavedActivity) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, item))
}

func (m *MockTripService) RemoveSavedActivity(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return m.trip(m.Called(ctx, userID, tripID, itemID))
}

// MockSearchService is a mock implementation of SearchService
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.NormalizedFlight, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NormalizedFlight), args.Error(1)
}

func (m *MockSearchService) SearchAccommodations(ctx context.Context, search models.AccommodationSearch) ([]models.NormalizedAccommodation, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NormalizedAccommodation), args.Error(1)
}

func (m *MockSearchService) SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.NormalizedPlace, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NormalizedPlace), args.Error(1)
}
