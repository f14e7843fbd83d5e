package providers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	last    *http.Request
	body    []byte
}

func (s *ClientTestSuite) SetupTest() {
	s.handler = nil
	s.last = nil
	s.body = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.last = r
		s.body, _ = io.ReadAll(r.Body)
		s.handler(w, r)
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestFlightSearch_Success() {
	s.respond(http.StatusOK, `{"itineraries":[]}`)
	p := NewFlightProvider("kiwi.example", "secret", WithBaseURL(s.server.URL))

	raw, err := p.Search(context.Background(), models.FlightSearch{
		Origin:        "LHR",
		Destination:   "CDG",
		DepartureDate: "2025-07-15",
		Adults:        1,
	})
	s.Require().NoError(err)
	s.JSONEq(`{"itineraries":[]}`, string(raw))

	s.Require().NotNil(s.last)
	s.Equal(http.MethodGet, s.last.Method)
	s.Equal("/one-way", s.last.URL.Path)
	s.Equal("LHR", s.last.URL.Query().Get("source"))
	s.Equal("secret", s.last.Header.Get("X-RapidAPI-Key"))
	s.Equal("kiwi.example", s.last.Header.Get("X-RapidAPI-Host"))
}

func (s *ClientTestSuite) TestFlightSearch_InvalidDateMakesNoRequest() {
	s.respond(http.StatusOK, `{}`)
	p := NewFlightProvider("kiwi.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.FlightSearch{DepartureDate: "next week"})
	s.ErrorIs(err, ErrInvalidDate)
	s.Nil(s.last)
}

func (s *ClientTestSuite) TestAccommodationSearch_UpstreamError() {
	s.respond(http.StatusTooManyRequests, `{"title":"Too many requests"}`)
	p := NewAccommodationProvider("airbnb.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.AccommodationSearch{
		DestinationCity: "Lisbon",
		CheckInDate:     "2025-08-01",
		CheckOutDate:    "2025-08-03",
		Adults:          1,
	})

	var upErr *UpstreamError
	s.Require().True(errors.As(err, &upErr))
	s.Equal("accommodation", upErr.Domain)
	s.Equal(http.StatusTooManyRequests, upErr.StatusCode)
	s.Equal("Too many requests", upErr.Message)
	s.JSONEq(`{"title":"Too many requests"}`, string(upErr.Details))
	s.Equal("/api/v2/searchPropertyByLocation", s.last.URL.Path)
}

func (s *ClientTestSuite) TestAccommodationSearch_DateRangeMakesNoRequest() {
	s.respond(http.StatusOK, `{}`)
	p := NewAccommodationProvider("airbnb.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.AccommodationSearch{
		DestinationCity: "Lisbon",
		CheckInDate:     "2025-08-03",
		CheckOutDate:    "2025-08-03",
	})
	s.ErrorIs(err, ErrInvalidDateRange)
	s.Nil(s.last)
}

func (s *ClientTestSuite) TestPlaceSearch_PostsTextQuery() {
	s.respond(http.StatusOK, `{"places":[]}`)
	p := NewPlaceProvider("places.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.PlaceSearch{DestinationCity: "Kyoto", SearchTerm: "ramen"})
	s.Require().NoError(err)

	s.Equal(http.MethodPost, s.last.Method)
	s.Equal("/v1/places:searchText", s.last.URL.Path)
	s.Equal("*", s.last.Header.Get("X-Goog-FieldMask"))
	s.Equal("application/json", s.last.Header.Get("Content-Type"))

	var body PlacesTextSearch
	s.Require().NoError(json.Unmarshal(s.body, &body))
	s.Equal("ramen in Kyoto", body.TextQuery)
	s.Equal(15, body.MaxResultCount)
}

func (s *ClientTestSuite) TestPlaceSearch_NestedErrorMessage() {
	s.respond(http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`)
	p := NewPlaceProvider("places.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.PlaceSearch{DestinationCity: "Kyoto"})

	var upErr *UpstreamError
	s.Require().True(errors.As(err, &upErr))
	s.Equal("event/place", upErr.Domain)
	s.Equal("API key not valid", upErr.Message)
}

func (s *ClientTestSuite) TestUpstreamError_NonJSONBody() {
	s.respond(http.StatusBadGateway, `upstream exploded`)
	p := NewFlightProvider("kiwi.example", "secret", WithBaseURL(s.server.URL))

	_, err := p.Search(context.Background(), models.FlightSearch{DepartureDate: "2025-07-15"})

	var upErr *UpstreamError
	s.Require().True(errors.As(err, &upErr))
	s.Empty(upErr.Message)
	s.JSONEq(`"upstream exploded"`, string(upErr.Details))
}

func (s *ClientTestSuite) TestGatewayError_OnTimeout() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}
	p := NewFlightProvider("kiwi.example", "secret", WithBaseURL(s.server.URL), WithTimeout(20*time.Millisecond))

	_, err := p.Search(context.Background(), models.FlightSearch{DepartureDate: "2025-07-15"})

	var gwErr *GatewayError
	s.Require().True(errors.As(err, &gwErr))
	s.Equal("flight", gwErr.Domain)
}

func (s *ClientTestSuite) TestGatewayError_ServerDown() {
	url := s.server.URL
	s.server.Close()
	p := NewPlaceProvider("places.example", "secret", WithBaseURL(url))

	_, err := p.Search(context.Background(), models.PlaceSearch{DestinationCity: "Kyoto"})

	var gwErr *GatewayError
	s.True(errors.As(err, &gwErr))
}

func (s *ClientTestSuite) TestSetupError_BadBaseURL() {
	p := NewFlightProvider("kiwi.example", "secret", WithBaseURL("http://bad host\x7f"))

	_, err := p.Search(context.Background(), models.FlightSearch{DepartureDate: "2025-07-15"})

	var setupErr *SetupError
	s.True(errors.As(err, &setupErr))
}
