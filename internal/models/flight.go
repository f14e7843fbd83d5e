package models

// NormalizedFlight is one priced flight offer in the stable output shape.
type NormalizedFlight struct {
	ID       string   `json:"id"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`

	DepartureCity        string `json:"departureCity"`
	DepartureAirport     string `json:"departureAirport"`
	DepartureAirportCode string `json:"departureAirportCode"`
	DepartureTimeLocal   string `json:"departureTimeLocal"`
	DepartureTimeUTC     string `json:"departureTimeUTC"`

	ArrivalCity        string `json:"arrivalCity"`
	ArrivalAirport     string `json:"arrivalAirport"`
	ArrivalAirportCode string `json:"arrivalAirportCode"`
	ArrivalTimeLocal   string `json:"arrivalTimeLocal"`
	ArrivalTimeUTC     string `json:"arrivalTimeUTC"`

	DurationInSeconds *int   `json:"durationInSeconds"`
	DurationFormatted string `json:"durationFormatted"`

	AirlineName  string  `json:"airlineName"`
	AirlineCode  string  `json:"airlineCode"`
	FlightNumber string  `json:"flightNumber"`
	BookingLink  *string `json:"bookingLink"`
	Provider     string  `json:"provider"`

	IsRoundTrip       bool       `json:"isRoundTrip"`
	ReturnInfo        *ReturnLeg `json:"returnInfo"`
	TotalTripDuration *string    `json:"totalTripDuration"`

	OriginalDepartureDate string  `json:"originalDepartureDate"`
	ActualDepartureDate   string  `json:"actualDepartureDate"`
	OriginalReturnDate    *string `json:"originalReturnDate"`
	ActualReturnDate      *string `json:"actualReturnDate"`
}

// ReturnLeg describes the inbound leg of a round trip.
type ReturnLeg struct {
	DepartureCity        string `json:"departureCity"`
	DepartureAirport     string `json:"departureAirport"`
	DepartureAirportCode string `json:"departureAirportCode"`
	DepartureTime        string `json:"departureTime"`
	DepartureTimeUTC     string `json:"departureTimeUTC"`
	DepartureDate        string `json:"departureDate"`

	ArrivalCity        string `json:"arrivalCity"`
	ArrivalAirport     string `json:"arrivalAirport"`
	ArrivalAirportCode string `json:"arrivalAirportCode"`
	ArrivalTime        string `json:"arrivalTime"`
	ArrivalTimeUTC     string `json:"arrivalTimeUTC"`
	ArrivalDate        string `json:"arrivalDate"`

	DurationInSeconds *int   `json:"durationInSeconds"`
	DurationFormatted string `json:"durationFormatted"`
	AirlineName       string `json:"airlineName"`
	AirlineCode       string `json:"airlineCode"`
	FlightNumber      string `json:"flightNumber"`
}

// FlightSearch is the validated caller input for a flight search.
type FlightSearch struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
	MaxStopovers  string
	SortBy        string
	Currency      string
}

// IsRoundTrip reports whether a return date was requested.
func (s FlightSearch) IsRoundTrip() bool {
	return s.ReturnDate != ""
}
