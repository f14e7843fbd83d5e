package normalize

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

const discountedPriceLine = "DiscountedDisplayPriceLine"

var errMissingListingID = errors.New("item missing listing or listing.id")

type airbnbItem struct {
	Listing optObject[airbnbListing] `json:"listing"`
}

type airbnbListing struct {
	ID                     any                           `json:"id"`
	Title                  lenientString                 `json:"title"`
	LegacyName             lenientString                 `json:"legacyName"`
	LegacyCity             lenientString                 `json:"legacyCity"`
	DemandStayListing      optObject[airbnbDemandStay]   `json:"demandStayListing"`
	StructuredDisplayPrice optObject[airbnbDisplayPrice] `json:"structuredDisplayPrice"`
	AvgRatingLocalized     any                           `json:"avgRatingLocalized"`
	RatingAverage          any                           `json:"ratingAverage"`
	RatingCount            any                           `json:"ratingCount"`
	ContextualPictures     optList[airbnbPictureEntry]   `json:"contextualPictures"`
}

type airbnbDemandStay struct {
	Location optObject[airbnbLocation] `json:"location"`
}

type airbnbLocation struct {
	LocalizedCityName lenientString `json:"localizedCityName"`
	City              lenientString `json:"city"`
}

type airbnbDisplayPrice struct {
	PrimaryLine   optObject[airbnbPriceLine] `json:"primaryLine"`
	SecondaryLine optObject[airbnbPriceLine] `json:"secondaryLine"`
}

type airbnbPriceLine struct {
	TypeName        lenientString `json:"__typename"`
	Price           any           `json:"price"`
	DiscountedPrice any           `json:"discountedPrice"`
}

type airbnbPictureEntry struct {
	Picture lenientString `json:"picture"`
}

func (l *airbnbListing) id() string {
	switch v := l.ID.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func (l *airbnbListing) cities() (localized, city string) {
	stay := l.DemandStayListing.get()
	if stay == nil || stay.Location.get() == nil {
		return "", ""
	}
	loc := stay.Location.get()
	return string(loc.LocalizedCityName), string(loc.City)
}

func (l *airbnbListing) priceLines() (primary, secondary *airbnbPriceLine) {
	display := l.StructuredDisplayPrice.get()
	if display == nil {
		return nil, nil
	}
	return display.PrimaryLine.get(), display.SecondaryLine.get()
}

// pricePerNight reads the primary display line, preferring the discounted
// value over the struck-through original.
func (l *airbnbListing) pricePerNight() *float64 {
	line, _ := l.priceLines()
	if line == nil {
		return nil
	}
	price := line.Price
	if line.TypeName == discountedPriceLine {
		if s, ok := line.DiscountedPrice.(string); ok && s != "" {
			price = s
		}
	}
	return priceFromDisplay(price)
}

func (l *airbnbListing) totalPrice() *float64 {
	_, line := l.priceLines()
	if line == nil {
		return nil
	}
	return priceFromDisplay(line.Price)
}

func (l *airbnbListing) rating() (*float64, *int) {
	var parsed RatingText
	if localized, ok := l.AvgRatingLocalized.(string); ok {
		parsed = ParseRatingText(localized)
	}
	if parsed.Rating == nil {
		parsed.Rating = ParsePrice(l.RatingAverage)
	}
	if parsed.ReviewCount == nil {
		parsed.ReviewCount = ParseCount(l.RatingCount)
	}
	return parsed.Rating, parsed.ReviewCount
}

func (l *airbnbListing) images() (*string, []string) {
	images := []string{}
	for _, entry := range l.ContextualPictures {
		if entry.Picture != "" {
			images = append(images, string(entry.Picture))
		}
	}

	var primary *string
	if len(l.ContextualPictures) > 0 {
		primary = optionalString(string(l.ContextualPictures[0].Picture))
	}
	return primary, images
}

func priceFromDisplay(raw any) *float64 {
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	return FirstNumber(s)
}

// Accommodations normalizes an Airbnb search response. Only an explicit
// status:true with a data.list array yields records.
func (n *Normalizer) Accommodations(raw []byte, search models.AccommodationSearch) []models.NormalizedAccommodation {
	accommodations := []models.NormalizedAccommodation{}
	log := n.log.With("domain", "accommodations")

	envelope, ok := decodeObject(raw)
	if !ok {
		log.Warn("accommodation response is not a JSON object")
		return accommodations
	}

	status, statusOK := decodeBool(envelope["status"])
	if statusOK && !status {
		log.Warn("accommodation provider reported failure", "message", decodeString(envelope["message"]))
		return accommodations
	}

	var items []json.RawMessage
	listOK := false
	if data, ok := decodeObject(envelope["data"]); ok {
		items, listOK = decodeArray(data["list"])
	}
	if !statusOK || !listOK {
		log.Warn("unexpected accommodation response structure", "keys", topLevelKeys(envelope))
		return accommodations
	}
	log.Info("processing listings", "count", len(items))

	for i, item := range items {
		record, err := normalizeListing(item, search)
		if err != nil {
			log.Warn("dropping listing", "index", i, "error", err)
			continue
		}
		accommodations = append(accommodations, record)
	}

	log.Info("transformed accommodations", "count", len(accommodations))
	return accommodations
}

func normalizeListing(raw json.RawMessage, search models.AccommodationSearch) (models.NormalizedAccommodation, error) {
	var item airbnbItem
	if err := decodeItem(raw, &item); err != nil {
		return models.NormalizedAccommodation{}, err
	}
	listing := item.Listing.get()
	if listing == nil {
		return models.NormalizedAccommodation{}, errMissingListingID
	}

	id := listing.id()
	if id == "" {
		return models.NormalizedAccommodation{}, errMissingListingID
	}

	localizedCity, city := listing.cities()
	rating, reviewCount := listing.rating()
	imageURL, images := listing.images()

	return models.NormalizedAccommodation{
		ID:              id,
		Name:            orDefault(firstNonEmpty(string(listing.Title), string(listing.LegacyName)), NotAvailable),
		Location:        firstNonEmpty(localizedCity, city, string(listing.LegacyCity), search.DestinationCity),
		DestinationCity: firstNonEmpty(city, string(listing.LegacyCity), search.DestinationCity),
		PricePerNight:   listing.pricePerNight(),
		TotalPrice:      listing.totalPrice(),
		Currency:        orDefault(search.Currency, DefaultCurrency),
		Rating:          rating,
		ReviewCount:     reviewCount,
		ImageURL:        imageURL,
		Images:          images,
		BookingLink:     AirbnbOrigin + "/rooms/" + id,
		Provider:        AirbnbProvider,
		Description:     orDefault(firstNonEmpty(string(listing.LegacyName), string(listing.Title)), "No description available."),
		CheckInDate:     search.CheckInDate,
		CheckOutDate:    search.CheckOutDate,
		NumberOfGuests:  search.Adults,
	}, nil
}
