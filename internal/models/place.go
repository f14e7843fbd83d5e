package models

// NormalizedPlace is one point of interest in the stable output shape.
// ImageURL is always nil: resolving a photo needs a separate call.
type NormalizedPlace struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Address             string   `json:"address"`
	Rating              *float64 `json:"rating"`
	UserRatingCount     int      `json:"userRatingCount"`
	Types               []string `json:"types"`
	PrimaryType         *string  `json:"primaryType"`
	IconBackgroundColor *string  `json:"iconBackgroundColor"`
	IconURL             *string  `json:"iconUrl"`
	GoogleMapsURI       *string  `json:"googleMapsUri"`
	WebsiteURI          *string  `json:"websiteUri"`
	FirstPhotoReference *string  `json:"firstPhotoReference"`
	ImageURL            *string  `json:"imageUrl"`
}

// PlaceSearch is the validated caller input for a points-of-interest search.
type PlaceSearch struct {
	DestinationCity string
	SearchTerm      string
}
