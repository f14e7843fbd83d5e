package normalize

import (
	"bytes"
	"testing"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lisbonSearch = models.AccommodationSearch{
	DestinationCity: "Lisbon",
	CheckInDate:     "2025-08-01",
	CheckOutDate:    "2025-08-05",
	Adults:          2,
	Currency:        "EUR",
}

func TestNormalizer_Accommodations(t *testing.T) {
	raw := `{
	  "status": true,
	  "data": {"list": [
	    {"listing": {
	      "id": "12345",
	      "title": "Sunny loft in Alfama",
	      "legacyName": "Loft with river view",
	      "legacyCity": "Lisboa",
	      "demandStayListing": {"location": {"localizedCityName": "Lisbon", "city": "Lisboa"}},
	      "structuredDisplayPrice": {
	        "primaryLine": {"__typename": "DiscountedDisplayPriceLine", "price": "€120", "discountedPrice": "€95"},
	        "secondaryLine": {"price": "€1,180 total"}
	      },
	      "avgRatingLocalized": "4.85 (213)",
	      "contextualPictures": [{"picture": "https://img.example/1.jpg"}, {"picture": "https://img.example/2.jpg"}, {"caption": "no picture"}]
	    }}
	  ]}
	}`

	stays := newTestNormalizer().Accommodations([]byte(raw), lisbonSearch)
	require.Len(t, stays, 1)

	s := stays[0]
	assert.Equal(t, "12345", s.ID)
	assert.Equal(t, "Sunny loft in Alfama", s.Name)
	assert.Equal(t, "Lisbon", s.Location)
	assert.Equal(t, "Lisboa", s.DestinationCity)
	require.NotNil(t, s.PricePerNight)
	assert.Equal(t, 95.0, *s.PricePerNight)
	require.NotNil(t, s.TotalPrice)
	assert.Equal(t, 1180.0, *s.TotalPrice)
	assert.Equal(t, "EUR", s.Currency)
	require.NotNil(t, s.Rating)
	assert.Equal(t, 4.85, *s.Rating)
	require.NotNil(t, s.ReviewCount)
	assert.Equal(t, 213, *s.ReviewCount)
	require.NotNil(t, s.ImageURL)
	assert.Equal(t, "https://img.example/1.jpg", *s.ImageURL)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, s.Images)
	assert.Equal(t, "https://www.airbnb.com/rooms/12345", s.BookingLink)
	assert.Equal(t, AirbnbProvider, s.Provider)
	assert.Equal(t, "Loft with river view", s.Description)
	assert.Equal(t, "2025-08-01", s.CheckInDate)
	assert.Equal(t, "2025-08-05", s.CheckOutDate)
	assert.Equal(t, 2, s.NumberOfGuests)
}

func TestNormalizer_Accommodations_RatingFallback(t *testing.T) {
	raw := `{"status":true,"data":{"list":[
	  {"listing":{"id":98765432109876543,"avgRatingLocalized":"New","ratingAverage":4.6,"ratingCount":"1,020",
	    "structuredDisplayPrice":{"primaryLine":{"__typename":"BasicDisplayPriceLine","price":"$80","discountedPrice":"$60"}}}}
	]}}`

	stays := newTestNormalizer().Accommodations([]byte(raw), lisbonSearch)
	require.Len(t, stays, 1)

	s := stays[0]
	assert.Equal(t, "98765432109876543", s.ID)
	require.NotNil(t, s.Rating)
	assert.Equal(t, 4.6, *s.Rating)
	require.NotNil(t, s.ReviewCount)
	assert.Equal(t, 1020, *s.ReviewCount)
	require.NotNil(t, s.PricePerNight)
	assert.Equal(t, 80.0, *s.PricePerNight)
}

func TestNormalizer_Accommodations_Defaults(t *testing.T) {
	stays := newTestNormalizer().Accommodations([]byte(`{"status":true,"data":{"list":[{"listing":{"id":"7"}}]}}`), models.AccommodationSearch{DestinationCity: "Porto", Adults: 1})
	require.Len(t, stays, 1)

	s := stays[0]
	assert.Equal(t, NotAvailable, s.Name)
	assert.Equal(t, "Porto", s.Location)
	assert.Equal(t, "Porto", s.DestinationCity)
	assert.Nil(t, s.PricePerNight)
	assert.Nil(t, s.TotalPrice)
	assert.Equal(t, DefaultCurrency, s.Currency)
	assert.Nil(t, s.Rating)
	assert.Nil(t, s.ReviewCount)
	assert.Nil(t, s.ImageURL)
	assert.NotNil(t, s.Images)
	assert.Empty(t, s.Images)
	assert.Equal(t, "No description available.", s.Description)
}

func TestNormalizer_Accommodations_DropsItemsWithoutID(t *testing.T) {
	raw := `{"status":true,"data":{"list":[
	  {"listing":{"id":"1"}},
	  {"listing":{"title":"no id"}},
	  {"other":true},
	  "bad",
	  {"listing":{"id":""}},
	  {"listing":{"id":"2"}}
	]}}`

	stays := newTestNormalizer().Accommodations([]byte(raw), lisbonSearch)
	require.Len(t, stays, 2)
	assert.Equal(t, "1", stays[0].ID)
	assert.Equal(t, "2", stays[1].ID)
}

func TestNormalizer_Accommodations_StatusGate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "explicit failure", raw: `{"status":false,"message":"Rate limited","data":{"list":[{"listing":{"id":"1"}}]}}`},
		{name: "missing status", raw: `{"data":{"list":[{"listing":{"id":"1"}}]}}`},
		{name: "string status", raw: `{"status":"true","data":{"list":[{"listing":{"id":"1"}}]}}`},
		{name: "missing list", raw: `{"status":true,"data":{}}`},
		{name: "not an object", raw: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stays := newTestNormalizer().Accommodations([]byte(tt.raw), lisbonSearch)
			assert.NotNil(t, stays)
			assert.Empty(t, stays)
		})
	}
}

func TestNormalizer_Accommodations_WrongTypedOptionalFieldsKeepItem(t *testing.T) {
	raw := `{"status":true,"data":{"list":[
	  {"listing":{"id":"1","title":42}},
	  {"listing":{"id":"2","contextualPictures":{"picture":"x"}}},
	  {"listing":{"id":"3","demandStayListing":"Lisbon","structuredDisplayPrice":{"primaryLine":"$80"},
	    "contextualPictures":[{"picture":7},"bad",{"picture":"https://img.example/3.jpg"}]}}
	]}}`

	stays := newTestNormalizer().Accommodations([]byte(raw), lisbonSearch)
	require.Len(t, stays, 3)

	assert.Equal(t, "1", stays[0].ID)
	assert.Equal(t, NotAvailable, stays[0].Name)

	assert.Equal(t, "2", stays[1].ID)
	assert.Empty(t, stays[1].Images)
	assert.Nil(t, stays[1].ImageURL)

	assert.Equal(t, "3", stays[2].ID)
	assert.Equal(t, "Lisbon", stays[2].DestinationCity)
	assert.Nil(t, stays[2].PricePerNight)
	assert.Nil(t, stays[2].ImageURL)
	assert.Equal(t, []string{"https://img.example/3.jpg"}, stays[2].Images)
}

func TestNormalizer_Accommodations_FailureWithoutList(t *testing.T) {
	var buf bytes.Buffer
	n := New(logger.NewWithWriter(&buf, "warn", "text"))

	stays := n.Accommodations([]byte(`{"status":false,"message":"Invalid API key"}`), lisbonSearch)

	assert.NotNil(t, stays)
	assert.Empty(t, stays)
	assert.Contains(t, buf.String(), "accommodation provider reported failure")
	assert.Contains(t, buf.String(), "Invalid API key")
}
