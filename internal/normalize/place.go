package normalize

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

var errMissingPlaceID = errors.New("place missing id")

type placesPlace struct {
	ID                     lenientString            `json:"id"`
	DisplayName            optObject[localizedText] `json:"displayName"`
	FormattedAddress       lenientString            `json:"formattedAddress"`
	Rating                 any                      `json:"rating"`
	UserRatingCount        any                      `json:"userRatingCount"`
	Types                  lenientStrings           `json:"types"`
	PrimaryTypeDisplayName optObject[localizedText] `json:"primaryTypeDisplayName"`
	IconBackgroundColor    lenientString            `json:"iconBackgroundColor"`
	IconMaskBaseURI        lenientString            `json:"iconMaskBaseUri"`
	GoogleMapsURI          lenientString            `json:"googleMapsUri"`
	WebsiteURI             lenientString            `json:"websiteUri"`
	Photos                 optList[placesPhotoID]   `json:"photos"`
}

type localizedText struct {
	Text lenientString `json:"text"`
}

type placesPhotoID struct {
	Name lenientString `json:"name"`
}

func localized(o optObject[localizedText]) string {
	if t := o.get(); t != nil {
		return string(t.Text)
	}
	return ""
}

// Places normalizes a text-search response.
func (n *Normalizer) Places(raw []byte) []models.NormalizedPlace {
	places := []models.NormalizedPlace{}
	log := n.log.With("domain", "events")

	envelope, ok := decodeObject(raw)
	if !ok {
		log.Warn("places response is not a JSON object")
		return places
	}

	items, ok := decodeArray(envelope["places"])
	if !ok {
		args := []any{"keys", topLevelKeys(envelope)}
		if apiErr := firstNonEmpty(string(envelope["error"]), string(envelope["message"])); apiErr != "" {
			args = append(args, "api_error", apiErr)
		}
		log.Warn("no places found or unexpected response structure", args...)
		return places
	}

	for i, item := range items {
		record, err := normalizePlace(item)
		if err != nil {
			log.Warn("dropping place", "index", i, "error", err)
			continue
		}
		places = append(places, record)
	}

	log.Info("transformed places", "count", len(places))
	return places
}

func normalizePlace(raw json.RawMessage) (models.NormalizedPlace, error) {
	var p placesPlace
	if err := decodeItem(raw, &p); err != nil {
		return models.NormalizedPlace{}, err
	}
	if strings.TrimSpace(string(p.ID)) == "" {
		return models.NormalizedPlace{}, errMissingPlaceID
	}

	userRatingCount := 0
	if count := ParseCount(p.UserRatingCount); count != nil {
		userRatingCount = *count
	}

	types := []string(p.Types)
	if types == nil {
		types = []string{}
	}

	primaryType := localized(p.PrimaryTypeDisplayName)
	if primaryType == "" && len(types) > 0 {
		primaryType = types[0]
	}

	var iconURL *string
	if p.IconMaskBaseURI != "" && p.IconBackgroundColor != "" {
		iconURL = optionalString(string(p.IconMaskBaseURI))
	}

	var photoRef *string
	if len(p.Photos) > 0 {
		photoRef = optionalString(string(p.Photos[0].Name))
	}

	return models.NormalizedPlace{
		ID:                  string(p.ID),
		Title:               orDefault(localized(p.DisplayName), NotAvailable),
		Address:             orDefault(string(p.FormattedAddress), NotAvailable),
		Rating:              ParsePrice(p.Rating),
		UserRatingCount:     userRatingCount,
		Types:               types,
		PrimaryType:         optionalString(primaryType),
		IconBackgroundColor: optionalString(string(p.IconBackgroundColor)),
		IconURL:             iconURL,
		GoogleMapsURI:       optionalString(string(p.GoogleMapsURI)),
		WebsiteURI:          optionalString(string(p.WebsiteURI)),
		FirstPhotoReference: photoRef,
		ImageURL:            nil,
	}, nil
}
