package models

// NormalizedAccommodation is one accommodation listing in the stable output shape.
type NormalizedAccommodation struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	DestinationCity string   `json:"destinationCity"`
	PricePerNight   *float64 `json:"pricePerNight"`
	TotalPrice      *float64 `json:"totalPrice"`
	Currency        string   `json:"currency"`
	Rating          *float64 `json:"rating"`
	ReviewCount     *int     `json:"reviewCount"`
	ImageURL        *string  `json:"imageUrl"`
	Images          []string `json:"images"`
	BookingLink     string   `json:"bookingLink"`
	Provider        string   `json:"provider"`
	Description     string   `json:"description"`
	CheckInDate     string   `json:"checkInDate"`
	CheckOutDate    string   `json:"checkOutDate"`
	NumberOfGuests  int      `json:"numberOfGuests"`
}

// AccommodationSearch is the validated caller input for an accommodation search.
type AccommodationSearch struct {
	DestinationCity string
	CheckInDate     string
	CheckOutDate    string
	Adults          int
	Currency        string
}
