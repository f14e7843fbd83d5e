package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

const (
	placesSearchPath = "/v1/places:searchText"
	placesMaxResults = 15
)

// PlacesTextSearch is the body of a places text search.
type PlacesTextSearch struct {
	TextQuery      string `json:"textQuery"`
	LanguageCode   string `json:"languageCode"`
	MaxResultCount int    `json:"maxResultCount"`
}

// PlaceProvider searches the Google Places text search API.
type PlaceProvider struct {
	client *Client
}

// NewPlaceProvider creates a PlaceProvider for host.
func NewPlaceProvider(host, apiKey string, opts ...Option) *PlaceProvider {
	c := NewClient("event/place", host, apiKey, opts...)
	c.message = placesMessage
	return &PlaceProvider{client: c}
}

// Search returns the raw provider response for search.
func (p *PlaceProvider) Search(ctx context.Context, search models.PlaceSearch) ([]byte, error) {
	return p.client.do(ctx, request{
		method:  http.MethodPost,
		path:    placesSearchPath,
		body:    BuildPlacesQuery(search),
		headers: map[string]string{"X-Goog-FieldMask": "*"},
	})
}

// BuildPlacesQuery turns a city and optional term into a text query.
func BuildPlacesQuery(search models.PlaceSearch) PlacesTextSearch {
	text := "things to do in " + search.DestinationCity
	if term := strings.TrimSpace(search.SearchTerm); term != "" {
		text = term + " in " + search.DestinationCity
	}
	return PlacesTextSearch{
		TextQuery:      text,
		LanguageCode:   "en",
		MaxResultCount: placesMaxResults,
	}
}

func placesMessage(fields map[string]json.RawMessage) string {
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(fields["error"], &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	return stringField(fields, "message")
}
