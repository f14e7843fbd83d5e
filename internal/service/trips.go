package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/google/uuid"
)

// TripRequest is the body of a trip creation.
type TripRequest struct {
	TripName           string `json:"tripName"`
	DestinationCity    string `json:"destinationCity"`
	DestinationCountry string `json:"destinationCountry"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Notes              string `json:"notes"`
}

// TripUpdateRequest carries only the fields the caller wants to change.
type TripUpdateRequest struct {
	TripName           *string `json:"tripName"`
	DestinationCity    *string `json:"destinationCity"`
	DestinationCountry *string `json:"destinationCountry"`
	StartDate          *string `json:"startDate"`
	EndDate            *string `json:"endDate"`
	Notes              *string `json:"notes"`
}

// TripStore is the persistence the trip service needs.
type TripStore interface {
	CreateTrip(ctx context.Context, trip *database.Trip) error
	ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]database.Trip, error)
	GetTripByID(ctx context.Context, id uuid.UUID) (*database.Trip, error)
	UpdateTrip(ctx context.Context, trip *database.Trip) error
	UpdateSavedItems(ctx context.Context, trip *database.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

// TripService defines trip CRUD and saved-item management for one owner
type TripService interface {
	CreateTrip(ctx context.Context, userID string, req TripRequest) (*database.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]database.Trip, error)
	GetTrip(ctx context.Context, userID, tripID string) (*database.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID string, req TripUpdateRequest) (*database.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error

	AddSavedFlight(ctx context.Context, userID, tripID string, item database.SavedFlight) (*database.Trip, error)
	RemoveSavedFlight(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error)
	AddSavedAccommodation(ctx context.Context, userID, tripID string, item database.SavedAccommodation) (*database.Trip, error)
	RemoveSavedAccommodation(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error)
	AddSavedActivity(ctx context.Context, userID, tripID string, item database.SavedActivity) (*database.Trip, error)
	RemoveSavedActivity(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error)
}

type tripServiceImpl struct {
	trips TripStore
	log   *logger.Logger
}

// NewTripService creates a new TripService
func NewTripService(trips TripStore, log *logger.Logger) TripService {
	return &tripServiceImpl{
		trips: trips,
		log:   log.With("component", "trips"),
	}
}

var tripDateLayouts = []string{"2006-01-02", time.RFC3339}

func (s *tripServiceImpl) CreateTrip(ctx context.Context, userID string, req TripRequest) (*database.Trip, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrForbidden
	}

	trip := &database.Trip{UserID: owner}
	if err := applyTripFields(trip, tripFields{
		tripName:           &req.TripName,
		destinationCity:    &req.DestinationCity,
		destinationCountry: &req.DestinationCountry,
		startDate:          &req.StartDate,
		endDate:            &req.EndDate,
		notes:              &req.Notes,
	}); err != nil {
		return nil, err
	}

	if err := s.trips.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	s.log.Info("trip created", "trip_id", trip.ID, "user_id", owner)
	return trip, nil
}

func (s *tripServiceImpl) ListTrips(ctx context.Context, userID string) ([]database.Trip, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.trips.ListTripsByUser(ctx, owner)
}

func (s *tripServiceImpl) GetTrip(ctx context.Context, userID, tripID string) (*database.Trip, error) {
	return s.ownedTrip(ctx, userID, tripID)
}

func (s *tripServiceImpl) UpdateTrip(ctx context.Context, userID, tripID string, req TripUpdateRequest) (*database.Trip, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if err := applyTripFields(trip, tripFields{
		tripName:           req.TripName,
		destinationCity:    req.DestinationCity,
		destinationCountry: req.DestinationCountry,
		startDate:          req.StartDate,
		endDate:            req.EndDate,
		notes:              req.Notes,
	}); err != nil {
		return nil, err
	}

	if err := s.trips.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripServiceImpl) DeleteTrip(ctx context.Context, userID, tripID string) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.trips.DeleteTrip(ctx, trip.ID); err != nil {
		return err
	}
	s.log.Info("trip deleted", "trip_id", trip.ID)
	return nil
}

func (s *tripServiceImpl) AddSavedFlight(ctx context.Context, userID, tripID string, item database.SavedFlight) (*database.Trip, error) {
	item.FlightAPIID = strings.TrimSpace(item.FlightAPIID)
	if item.FlightAPIID == "" {
		return nil, newValidationError("Flight API ID is required")
	}
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		t.SavedFlights = upsert(t.SavedFlights, item, func(f database.SavedFlight) string { return f.FlightAPIID })
		return nil
	})
}

func (s *tripServiceImpl) RemoveSavedFlight(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		var err error
		t.SavedFlights, err = remove(t.SavedFlights, itemID, func(f database.SavedFlight) string { return f.FlightAPIID })
		return err
	})
}

func (s *tripServiceImpl) AddSavedAccommodation(ctx context.Context, userID, tripID string, item database.SavedAccommodation) (*database.Trip, error) {
	item.AccommodationAPIID = strings.TrimSpace(item.AccommodationAPIID)
	if item.AccommodationAPIID == "" {
		return nil, newValidationError("Accommodation API ID is required")
	}
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		t.SavedAccommodations = upsert(t.SavedAccommodations, item, func(a database.SavedAccommodation) string { return a.AccommodationAPIID })
		return nil
	})
}

func (s *tripServiceImpl) RemoveSavedAccommodation(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		var err error
		t.SavedAccommodations, err = remove(t.SavedAccommodations, itemID, func(a database.SavedAccommodation) string { return a.AccommodationAPIID })
		return err
	})
}

func (s *tripServiceImpl) AddSavedActivity(ctx context.Context, userID, tripID string, item database.SavedActivity) (*database.Trip, error) {
	item.ActivityAPIID = strings.TrimSpace(item.ActivityAPIID)
	if item.ActivityAPIID == "" {
		return nil, newValidationError("Activity API ID is required")
	}
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		t.SavedActivities = upsert(t.SavedActivities, item, func(a database.SavedActivity) string { return a.ActivityAPIID })
		return nil
	})
}

func (s *tripServiceImpl) RemoveSavedActivity(ctx context.Context, userID, tripID, itemID string) (*database.Trip, error) {
	return s.updateSaved(ctx, userID, tripID, func(t *database.Trip) error {
		var err error
		t.SavedActivities, err = remove(t.SavedActivities, itemID, func(a database.SavedActivity) string { return a.ActivityAPIID })
		return err
	})
}

func (s *tripServiceImpl) updateSaved(ctx context.Context, userID, tripID string, mutate func(*database.Trip) error) (*database.Trip, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if err := mutate(trip); err != nil {
		return nil, err
	}
	if err := s.trips.UpdateSavedItems(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// ownedTrip loads a trip and checks it belongs to userID.
func (s *tripServiceImpl) ownedTrip(ctx context.Context, userID, tripID string) (*database.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, ErrInvalidID
	}
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrForbidden
	}

	trip, err := s.trips.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.UserID != owner {
		s.log.Warn("trip access denied", "trip_id", id, "user_id", owner)
		return nil, ErrForbidden
	}
	return trip, nil
}

type tripFields struct {
	tripName           *string
	destinationCity    *string
	destinationCountry *string
	startDate          *string
	endDate            *string
	notes              *string
}

// applyTripFields sets every non-nil field on trip and validates the result.
func applyTripFields(trip *database.Trip, f tripFields) error {
	var v validation

	setText := func(dst *string, src *string, message string) {
		if src == nil {
			return
		}
		*dst = strings.TrimSpace(*src)
		v.check(*dst != "", message)
	}
	setDate := func(dst *time.Time, src *string, required, invalid string) {
		if src == nil {
			return
		}
		raw := strings.TrimSpace(*src)
		if raw == "" {
			v.check(false, required)
			return
		}
		parsed, err := parseTripDate(raw)
		if err != nil {
			v.check(false, invalid)
			return
		}
		*dst = parsed
	}

	setText(&trip.TripName, f.tripName, "Trip name is required")
	setText(&trip.DestinationCity, f.destinationCity, "Destination city is required")
	setText(&trip.DestinationCountry, f.destinationCountry, "Destination country is required")
	setDate(&trip.StartDate, f.startDate, "Start date is required", "Start date must be a valid date")
	setDate(&trip.EndDate, f.endDate, "End date is required", "End date must be a valid date")
	if f.notes != nil {
		trip.Notes = strings.TrimSpace(*f.notes)
	}

	if len(v) == 0 && trip.EndDate.Before(trip.StartDate) {
		v.check(false, "End date must not be before start date")
	}
	return v.err()
}

func parseTripDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range tripDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC().Truncate(24 * time.Hour), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// upsert replaces the item with the same key or appends it.
func upsert[T any](items []T, item T, key func(T) string) []T {
	k := key(item)
	for i := range items {
		if key(items[i]) == k {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func remove[T any](items []T, id string, key func(T) string) ([]T, error) {
	for i := range items {
		if key(items[i]) == id {
			return append(items[:i:i], items[i+1:]...), nil
		}
	}
	return items, ErrItemNotFound
}

// IsNotFound reports whether err means a missing trip, user or saved item.
func IsNotFound(err error) bool {
	return errors.Is(err, database.ErrNotFound) || errors.Is(err, ErrItemNotFound)
}
