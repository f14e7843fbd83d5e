package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	kiwiDateLayout = "2006-01-02T15:04:05"

	roundTripPath     = "/round-trip"
	oneWayPath        = "/one-way"
	roundTripFlexDays = 3
	oneWayFlexDays    = 2
	roundTripLimit    = 20
	oneWayLimit       = 15
)

// ErrInvalidDate is returned for a date that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("dates must be in YYYY-MM-DD format")

var (
	allowedSortBy    = map[string]bool{"PRICE": true, "DURATION": true, "QUALITY": true}
	allowedStopovers = map[string]bool{"0": true, "1": true, "2": true}
)

// FlightProvider searches the Kiwi cheap-flights API.
type FlightProvider struct {
	client *Client
}

// NewFlightProvider creates a FlightProvider for host.
func NewFlightProvider(host, apiKey string, opts ...Option) *FlightProvider {
	return &FlightProvider{client: NewClient("flight", host, apiKey, opts...)}
}

// Search returns the raw provider response for search.
func (p *FlightProvider) Search(ctx context.Context, search models.FlightSearch) ([]byte, error) {
	path, params, err := BuildFlightRequest(search)
	if err != nil {
		return nil, err
	}
	return p.client.do(ctx, request{method: http.MethodGet, path: path, query: params})
}

// BuildFlightRequest selects the endpoint and encodes the parameters Kiwi
// expects. Round trips and one-way trips use different parameter sets.
func BuildFlightRequest(search models.FlightSearch) (string, url.Values, error) {
	departure, err := parseDate(search.DepartureDate)
	if err != nil {
		return "", nil, err
	}

	sortBy := strings.ToUpper(strings.TrimSpace(search.SortBy))
	if !allowedSortBy[sortBy] {
		sortBy = "PRICE"
	}
	currency := search.Currency
	if currency == "" {
		currency = "USD"
	}

	params := url.Values{}
	params.Set("source", search.Origin)
	params.Set("destination", search.Destination)
	params.Set("currency", currency)
	params.Set("locale", "en")
	params.Set("adults", strconv.Itoa(max(search.Adults, 1)))
	params.Set("children", strconv.Itoa(max(search.Children, 0)))
	params.Set("infants", strconv.Itoa(max(search.Infants, 0)))
	params.Set("sortBy", sortBy)
	if allowedStopovers[search.MaxStopovers] {
		params.Set("maxStopsCount", search.MaxStopovers)
	}

	if !search.IsRoundTrip() {
		start, end := flexWindow(departure, oneWayFlexDays)
		params.Set("limit", strconv.Itoa(oneWayLimit))
		params.Set("outboundDepartmentDateStart", start)
		params.Set("outboundDepartmentDateEnd", end)
		if sortBy == "PRICE" || sortBy == "DURATION" {
			params.Set("sortOrder", "ASCENDING")
		}
		return oneWayPath, params, nil
	}

	ret, err := parseDate(search.ReturnDate)
	if err != nil {
		return "", nil, err
	}

	outStart, outEnd := flexWindow(departure, roundTripFlexDays)
	inStart, inEnd := flexWindow(ret, roundTripFlexDays)
	params.Set("limit", strconv.Itoa(roundTripLimit))
	params.Set("outboundDepartmentDateStart", outStart)
	params.Set("outboundDepartmentDateEnd", outEnd)
	params.Set("inboundDepartureDateStart", inStart)
	params.Set("inboundDepartureDateEnd", inEnd)
	params.Set("sortOrder", "ASCENDING")
	params.Set("handbags", "1")
	params.Set("holdbags", "0")
	params.Set("cabinClass", "ECONOMY")
	params.Set("transportTypes", "FLIGHT")
	params.Set("allowReturnFromDifferentCity", "false")
	params.Set("allowChangeInboundDestination", "false")
	params.Set("allowChangeInboundSource", "false")
	params.Set("allowDifferentStationConnection", "true")
	params.Set("enableSelfTransfer", "false")
	params.Set("allowOvernightStopover", "true")

	return roundTripPath, params, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// flexWindow returns midnight of date-days and date+days in Kiwi's format.
func flexWindow(date time.Time, days int) (string, string) {
	return date.AddDate(0, 0, -days).Format(kiwiDateLayout), date.AddDate(0, 0, days).Format(kiwiDateLayout)
}
