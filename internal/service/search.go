package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/normalize"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/providers"
)

// FlightSearcher fetches raw flight offers.
type FlightSearcher interface {
	Search(ctx context.Context, search models.FlightSearch) ([]byte, error)
}

// AccommodationSearcher fetches raw listings.
type AccommodationSearcher interface {
	Search(ctx context.Context, search models.AccommodationSearch) ([]byte, error)
}

// PlaceSearcher fetches raw places.
type PlaceSearcher interface {
	Search(ctx context.Context, search models.PlaceSearch) ([]byte, error)
}

// SearchService defines the three provider-backed searches
type SearchService interface {
	SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.NormalizedFlight, error)
	SearchAccommodations(ctx context.Context, search models.AccommodationSearch) ([]models.NormalizedAccommodation, error)
	SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.NormalizedPlace, error)
}

type searchServiceImpl struct {
	flights        FlightSearcher
	accommodations AccommodationSearcher
	places         PlaceSearcher
	normalizer     *normalize.Normalizer
	log            *logger.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(flights FlightSearcher, accommodations AccommodationSearcher, places PlaceSearcher, normalizer *normalize.Normalizer, log *logger.Logger) SearchService {
	return &searchServiceImpl{
		flights:        flights,
		accommodations: accommodations,
		places:         places,
		normalizer:     normalizer,
		log:            log.With("component", "search"),
	}
}

func (s *searchServiceImpl) SearchFlights(ctx context.Context, search models.FlightSearch) ([]models.NormalizedFlight, error) {
	if strings.TrimSpace(search.Origin) == "" || strings.TrimSpace(search.Destination) == "" || strings.TrimSpace(search.DepartureDate) == "" {
		return nil, newValidationError("Please provide origin, destination, and departure date.")
	}
	search.Adults = max(search.Adults, 1)

	s.log.Info("searching flights",
		"origin", search.Origin,
		"destination", search.Destination,
		"departure_date", search.DepartureDate,
		"round_trip", search.IsRoundTrip(),
	)

	raw, err := s.flights.Search(ctx, search)
	if err != nil {
		return nil, s.classify(err, "flight")
	}
	return s.normalizer.Flights(raw, search), nil
}

func (s *searchServiceImpl) SearchAccommodations(ctx context.Context, search models.AccommodationSearch) ([]models.NormalizedAccommodation, error) {
	if strings.TrimSpace(search.DestinationCity) == "" || strings.TrimSpace(search.CheckInDate) == "" || strings.TrimSpace(search.CheckOutDate) == "" {
		return nil, newValidationError("Please provide destination, check-in date, and check-out date.")
	}
	search.Adults = max(search.Adults, 1)

	s.log.Info("searching accommodations",
		"destination", search.DestinationCity,
		"check_in", search.CheckInDate,
		"check_out", search.CheckOutDate,
		"adults", search.Adults,
	)

	raw, err := s.accommodations.Search(ctx, search)
	if err != nil {
		return nil, s.classify(err, "accommodation")
	}
	return s.normalizer.Accommodations(raw, search), nil
}

func (s *searchServiceImpl) SearchPlaces(ctx context.Context, search models.PlaceSearch) ([]models.NormalizedPlace, error) {
	if strings.TrimSpace(search.DestinationCity) == "" {
		return nil, newValidationError("Please provide destination city for event/place search.")
	}

	s.log.Info("searching places", "destination", search.DestinationCity, "term", search.SearchTerm)

	raw, err := s.places.Search(ctx, search)
	if err != nil {
		return nil, s.classify(err, "event/place")
	}
	return s.normalizer.Places(raw), nil
}

// classify turns request-builder failures into validation errors and logs
// upstream failures. Provider error types pass through unchanged.
func (s *searchServiceImpl) classify(err error, domain string) error {
	switch {
	case errors.Is(err, providers.ErrInvalidDateRange):
		return newValidationError("Check-out date must be after check-in date.")
	case errors.Is(err, providers.ErrInvalidDate):
		return newValidationError("Dates must be in YYYY-MM-DD format.")
	}

	var upErr *providers.UpstreamError
	if errors.As(err, &upErr) {
		s.log.Error("upstream returned an error", "domain", domain, "status", upErr.StatusCode, "message", upErr.Message)
		return err
	}
	s.log.Error("upstream request failed", "domain", domain, "error", err)
	return err
}
