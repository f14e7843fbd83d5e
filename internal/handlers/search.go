package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
)

const (
	defaultSortBy   = "PRICE"
	defaultCurrency = "USD"
)

const (
	badCountMessage = "Passenger counts must be whole numbers."
	noAdultsMessage = "At least one adult is required."
)

var errNegativeCount = errors.New("negative count")

// SearchFlights handles GET /api/search/flights
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	adults, err1 := queryInt(q, "adults", 1)
	children, err2 := queryInt(q, "children", 0)
	infants, err3 := queryInt(q, "infants", 0)
	if err := errors.Join(err1, err2, err3); err != nil {
		respondError(w, http.StatusBadRequest, badCountMessage)
		return
	}
	if adults < 1 {
		respondError(w, http.StatusBadRequest, noAdultsMessage)
		return
	}

	flights, err := h.searchService.SearchFlights(r.Context(), models.FlightSearch{
		Origin:        queryString(q, "origin", ""),
		Destination:   queryString(q, "destination", ""),
		DepartureDate: queryString(q, "departureDate", ""),
		ReturnDate:    queryString(q, "returnDate", ""),
		Adults:        adults,
		Children:      children,
		Infants:       infants,
		MaxStopovers:  queryString(q, "maxStopovers", ""),
		SortBy:        queryString(q, "sortBy", defaultSortBy),
		Currency:      queryString(q, "currency", defaultCurrency),
	})
	if err != nil {
		h.respondSearchError(w, r, err)
		return
	}
	if flights == nil {
		flights = []models.NormalizedFlight{}
	}
	respondJSON(w, http.StatusOK, flights)
}

// SearchAccommodations handles GET /api/search/accommodations
func (h *Handler) SearchAccommodations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	adults, err := queryInt(q, "adults", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, badCountMessage)
		return
	}
	if adults < 1 {
		respondError(w, http.StatusBadRequest, noAdultsMessage)
		return
	}

	stays, err := h.searchService.SearchAccommodations(r.Context(), models.AccommodationSearch{
		DestinationCity: queryString(q, "destinationCity", ""),
		CheckInDate:     queryString(q, "checkInDate", ""),
		CheckOutDate:    queryString(q, "checkOutDate", ""),
		Adults:          adults,
		Currency:        queryString(q, "currency", defaultCurrency),
	})
	if err != nil {
		h.respondSearchError(w, r, err)
		return
	}
	if stays == nil {
		stays = []models.NormalizedAccommodation{}
	}
	respondJSON(w, http.StatusOK, stays)
}

// SearchEvents handles GET /api/search/events
func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	places, err := h.searchService.SearchPlaces(r.Context(), models.PlaceSearch{
		DestinationCity: queryString(q, "destinationCity", ""),
		SearchTerm:      queryString(q, "searchTerm", ""),
	})
	if err != nil {
		h.respondSearchError(w, r, err)
		return
	}
	if places == nil {
		places = []models.NormalizedPlace{}
	}
	respondJSON(w, http.StatusOK, places)
}

func (h *Handler) respondSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusBadRequest, strings.Join(vErr.Messages, " "))
		return
	}
	if respondUpstreamError(w, err) {
		return
	}
	h.requestLog(r).Error("search failed", "error", err)
	respondError(w, http.StatusInternalServerError, "Server error during search")
}

func queryString(q url.Values, key, fallback string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return fallback
}

func queryInt(q url.Values, key string, fallback int) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: %w", key, errNegativeCount)
	}
	return n, nil
}
