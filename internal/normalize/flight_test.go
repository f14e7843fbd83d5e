package normalize

import (
	"testing"
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	n := New(logger.Discard())
	n.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return n
}

const oneWayResponse = `{
  "metadata": {"currency": "EUR"},
  "itineraries": [
    {
      "id": "itin-1",
      "price": {"amount": "120.50"},
      "bookingOptions": {"edges": [{"node": {"bookingUrl": "/booking?token=xyz", "price": {"amount": "115.00"}}}]},
      "sector": {"sectorSegments": [{"segment": {
        "source": {"localTime": "2025-07-15T08:30:00", "utcTime": "2025-07-15T06:30:00Z",
                   "station": {"name": "Heathrow", "code": "LHR", "city": {"name": "London"}}},
        "destination": {"localTime": "2025-07-15T11:05:00", "utcTime": "2025-07-15T09:05:00Z",
                        "station": {"name": "Charles de Gaulle", "code": "CDG", "city": {"name": "Paris"}}},
        "duration": 5700,
        "carrier": {"name": "Air France", "code": "AF"},
        "code": "1081"
      }}]}
    }
  ]
}`

func TestNormalizer_Flights_OneWay(t *testing.T) {
	n := newTestNormalizer()
	search := models.FlightSearch{Origin: "LHR", Destination: "CDG", DepartureDate: "2025-07-15", Currency: "USD"}

	flights := n.Flights([]byte(oneWayResponse), search)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, "itin-1", f.ID)
	require.NotNil(t, f.Price)
	assert.Equal(t, 115.0, *f.Price)
	assert.Equal(t, "EUR", f.Currency)
	assert.Equal(t, "London", f.DepartureCity)
	assert.Equal(t, "LHR", f.DepartureAirportCode)
	assert.Equal(t, "Paris", f.ArrivalCity)
	assert.Equal(t, "Charles de Gaulle", f.ArrivalAirport)
	assert.Equal(t, "2025-07-15T08:30:00", f.DepartureTimeLocal)
	assert.Equal(t, "1h 35m", f.DurationFormatted)
	assert.Equal(t, "Air France", f.AirlineName)
	assert.Equal(t, "1081", f.FlightNumber)
	require.NotNil(t, f.BookingLink)
	assert.Equal(t, "https://www.kiwi.com/booking?token=xyz", *f.BookingLink)
	assert.Equal(t, KiwiProviderName, f.Provider)
	assert.False(t, f.IsRoundTrip)
	assert.Nil(t, f.ReturnInfo)
	assert.Nil(t, f.TotalTripDuration)
	assert.Equal(t, "2025-07-15", f.OriginalDepartureDate)
	assert.Equal(t, "7/15/2025", f.ActualDepartureDate)
}

func TestNormalizer_Flights_EmptyItinerary(t *testing.T) {
	n := newTestNormalizer()
	flights := n.Flights([]byte(`{"itineraries":[{}]}`), models.FlightSearch{})
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, "oneway_1700000000000_0", f.ID)
	assert.Nil(t, f.Price)
	assert.Equal(t, DefaultCurrency, f.Currency)
	assert.Equal(t, UnknownCity, f.DepartureCity)
	assert.Equal(t, UnknownAirport, f.ArrivalAirport)
	assert.Equal(t, NotAvailable, f.DepartureAirportCode)
	assert.Equal(t, NotAvailable, f.ArrivalTimeUTC)
	assert.Nil(t, f.DurationInSeconds)
	assert.Equal(t, DurationNotAvailable, f.DurationFormatted)
	assert.Equal(t, UnknownAirline, f.AirlineName)
	assert.Equal(t, NotAvailable, f.AirlineCode)
	assert.Equal(t, NotAvailable, f.FlightNumber)
	assert.Nil(t, f.BookingLink)
	assert.Equal(t, DateNotAvailable, f.ActualDepartureDate)
}

func TestNormalizer_Flights_RoundTripMissingReturnDuration(t *testing.T) {
	raw := `{
	  "itineraries": [{
	    "legacyId": "legacy-9",
	    "outbound": {"sector": {"sectorSegments": [{"segment": {
	      "source": {"localTime": "2025-08-01T07:00:00", "station": {"name": "JFK", "code": "JFK", "city": {"name": "New York"}}},
	      "destination": {"localTime": "2025-08-01T19:00:00", "station": {"name": "Lisbon", "code": "LIS", "city": {"name": "Lisbon"}}},
	      "duration": 25200,
	      "carrier": {"name": "TAP", "code": "TP"}
	    }}]}},
	    "inbound": {"sector": {"sectorSegments": [{"segment": {
	      "source": {"localTime": "2025-08-10T10:00:00", "station": {"name": "Lisbon", "code": "LIS", "city": {"name": "Lisbon"}}},
	      "destination": {"localTime": "2025-08-10T13:30:00", "station": {"name": "JFK", "code": "JFK", "city": {"name": "New York"}}},
	      "carrier": {"name": "TAP", "code": "TP"}
	    }}]}}
	  }]
	}`
	search := models.FlightSearch{DepartureDate: "2025-08-01", ReturnDate: "2025-08-10", Currency: "USD"}

	flights := newTestNormalizer().Flights([]byte(raw), search)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, "legacy-9", f.ID)
	assert.True(t, f.IsRoundTrip)
	assert.Nil(t, f.Price)
	assert.Equal(t, "USD", f.Currency)
	assert.Equal(t, "New York", f.DepartureCity)
	assert.Equal(t, "7h 0m", f.DurationFormatted)

	require.NotNil(t, f.ReturnInfo)
	assert.Equal(t, "Lisbon", f.ReturnInfo.DepartureCity)
	assert.Equal(t, "New York", f.ReturnInfo.ArrivalCity)
	assert.Equal(t, "2025-08-10T10:00:00", f.ReturnInfo.DepartureTime)
	assert.Equal(t, "8/10/2025", f.ReturnInfo.DepartureDate)
	assert.Equal(t, DurationNotAvailable, f.ReturnInfo.DurationFormatted)

	require.NotNil(t, f.TotalTripDuration)
	assert.Equal(t, DurationNotAvailable, *f.TotalTripDuration)
	require.NotNil(t, f.OriginalReturnDate)
	assert.Equal(t, "2025-08-10", *f.OriginalReturnDate)
	require.NotNil(t, f.ActualReturnDate)
	assert.Equal(t, "8/10/2025", *f.ActualReturnDate)
}

func TestNormalizer_Flights_RoundTripTotalDuration(t *testing.T) {
	raw := `{"itineraries":[{"id":"rt",
	  "outbound":{"sector":{"sectorSegments":[{"segment":{"duration":3600}}]}},
	  "inbound":{"sector":{"sectorSegments":[{"segment":{"duration":5400}}]}}}]}`

	flights := newTestNormalizer().Flights([]byte(raw), models.FlightSearch{ReturnDate: "2025-09-02"})
	require.Len(t, flights, 1)
	require.NotNil(t, flights[0].TotalTripDuration)
	assert.Equal(t, "2h 30m", *flights[0].TotalTripDuration)
}

func TestNormalizer_Flights_DropsMalformedItems(t *testing.T) {
	raw := `{"itineraries":[{"id":"a"}, "garbage", 42, {"id":"b"}, null, {"id":"c","price":{"amount":[1]}}]}`

	flights := newTestNormalizer().Flights([]byte(raw), models.FlightSearch{})
	ids := make([]string, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestNormalizer_Flights_SynthesizedIDsAreUnique(t *testing.T) {
	flights := newTestNormalizer().Flights([]byte(`{"itineraries":[{},{},{}]}`), models.FlightSearch{})
	require.Len(t, flights, 3)

	seen := map[string]bool{}
	for _, f := range flights {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestNormalizer_Flights_UnexpectedShape(t *testing.T) {
	n := newTestNormalizer()

	for _, raw := range []string{`{"data":[]}`, `[]`, `not json`, `{"itineraries":{"id":"x"}}`} {
		flights := n.Flights([]byte(raw), models.FlightSearch{})
		assert.NotNil(t, flights)
		assert.Empty(t, flights)
	}
}

func TestNormalizer_Flights_WrongTypedOptionalFieldsKeepItem(t *testing.T) {
	raw := `{"itineraries":[
	  {"id":"f1","provider":"Kiwi"},
	  {"id":"f2","sector":{"sectorSegments":[{"segment":{"code":1081,"carrier":"AF",
	    "source":{"localTime":20250715,"station":{"name":["LHR"],"city":"London"}}}}]}},
	  {"id":"f3","bookingOptions":{"edges":"none"},"price":"cheap","sector":{"sectorSegments":{}}}
	]}`

	flights := newTestNormalizer().Flights([]byte(raw), models.FlightSearch{})
	require.Len(t, flights, 3)

	assert.Equal(t, "f1", flights[0].ID)
	assert.Equal(t, KiwiProviderName, flights[0].Provider)

	f2 := flights[1]
	assert.Equal(t, "f2", f2.ID)
	assert.Equal(t, NotAvailable, f2.FlightNumber)
	assert.Equal(t, UnknownAirline, f2.AirlineName)
	assert.Equal(t, UnknownAirport, f2.DepartureAirport)
	assert.Equal(t, UnknownCity, f2.DepartureCity)
	assert.Equal(t, NotAvailable, f2.DepartureTimeLocal)

	f3 := flights[2]
	assert.Equal(t, "f3", f3.ID)
	assert.Nil(t, f3.Price)
	assert.Nil(t, f3.BookingLink)
}

func TestNormalizer_Flights_NonStringIDIsSynthesized(t *testing.T) {
	flights := newTestNormalizer().Flights([]byte(`{"itineraries":[{"id":42}]}`), models.FlightSearch{})
	require.Len(t, flights, 1)
	assert.Equal(t, "oneway_1700000000000_0", flights[0].ID)
}
