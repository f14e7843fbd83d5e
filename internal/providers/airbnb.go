package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

const accommodationSearchPath = "/api/v2/searchPropertyByLocation"

// ErrInvalidDateRange is returned when check-out is not after check-in.
var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

// AccommodationProvider searches the Airbnb listing API.
type AccommodationProvider struct {
	client *Client
}

// NewAccommodationProvider creates an AccommodationProvider for host.
func NewAccommodationProvider(host, apiKey string, opts ...Option) *AccommodationProvider {
	c := NewClient("accommodation", host, apiKey, opts...)
	c.message = accommodationMessage
	return &AccommodationProvider{client: c}
}

// Search returns the raw provider response for search.
func (p *AccommodationProvider) Search(ctx context.Context, search models.AccommodationSearch) ([]byte, error) {
	params, err := BuildAccommodationQuery(search)
	if err != nil {
		return nil, err
	}
	return p.client.do(ctx, request{method: http.MethodGet, path: accommodationSearchPath, query: params})
}

// BuildAccommodationQuery checks the stay dates and encodes the query.
func BuildAccommodationQuery(search models.AccommodationSearch) (url.Values, error) {
	checkIn, err := parseDate(search.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(search.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	currency := search.Currency
	if currency == "" {
		currency = "USD"
	}

	params := url.Values{}
	params.Set("query", search.DestinationCity)
	params.Set("checkin", search.CheckInDate)
	params.Set("checkout", search.CheckOutDate)
	params.Set("adults", strconv.Itoa(max(search.Adults, 1)))
	params.Set("currency", currency)
	return params, nil
}

func accommodationMessage(fields map[string]json.RawMessage) string {
	if msg := stringField(fields, "message"); msg != "" {
		return msg
	}
	return stringField(fields, "title")
}
