package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Trip represents a user-owned trip plan with its saved items
type Trip struct {
	ID                  uuid.UUID            `json:"id"`
	UserID              uuid.UUID            `json:"user"`
	TripName            string               `json:"tripName"`
	DestinationCity     string               `json:"destinationCity"`
	DestinationCountry  string               `json:"destinationCountry"`
	StartDate           time.Time            `json:"startDate"`
	EndDate             time.Time            `json:"endDate"`
	Notes               string               `json:"notes"`
	SavedFlights        []SavedFlight        `json:"savedFlights"`
	SavedAccommodations []SavedAccommodation `json:"savedAccommodations"`
	SavedActivities     []SavedActivity      `json:"savedActivities"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// SavedFlight is a flight offer pinned to a trip, keyed by the provider id
type SavedFlight struct {
	FlightAPIID   string          `json:"flightApiId"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departureDate"`
	Price         *float64        `json:"price"`
	Details       json.RawMessage `json:"details,omitempty"`
}

// SavedAccommodation is a listing pinned to a trip
type SavedAccommodation struct {
	AccommodationAPIID string          `json:"accommodationApiId"`
	Name               string          `json:"name"`
	Location           string          `json:"location"`
	CheckInDate        string          `json:"checkInDate"`
	Price              *float64        `json:"price"`
	Details            json.RawMessage `json:"details,omitempty"`
}

// SavedActivity is a place or event pinned to a trip
type SavedActivity struct {
	ActivityAPIID string          `json:"activityApiId"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Date          string          `json:"date"`
	Details       json.RawMessage `json:"details,omitempty"`
}
