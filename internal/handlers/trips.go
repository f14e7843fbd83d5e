package handlers

import (
	"errors"
	"net/http"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/middleware"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
	"github.com/gorilla/mux"
)

// tripFailure holds the messages a trip operation reports when it fails.
type tripFailure struct {
	forbidden string
	server    string
}

var (
	createFailure = tripFailure{server: "Server error while creating trip"}
	listFailure   = tripFailure{server: "Server error while fetching trips"}
	fetchFailure  = tripFailure{forbidden: "User not authorized for this trip", server: "Server error while fetching trip"}
	updateFailure = tripFailure{forbidden: "User not authorized to update this trip", server: "Server error while updating trip"}
	deleteFailure = tripFailure{forbidden: "User not authorized to delete this trip", server: "Server error while deleting trip"}
	savedFailure  = tripFailure{forbidden: "User not authorized to update this trip", server: "Server error while updating saved items"}
)

func (h *Handler) respondTripError(w http.ResponseWriter, r *http.Request, err error, f tripFailure) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondErrors(w, http.StatusBadRequest, vErr.Messages...)
	case errors.Is(err, service.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid trip ID format")
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Saved item not found")
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "Trip not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusUnauthorized, f.forbidden)
	default:
		h.requestLog(r).Error("trip operation failed", "error", err, "trip_id", mux.Vars(r)["tripId"])
		respondError(w, http.StatusInternalServerError, f.server)
	}
}

// CreateTrip handles POST /api/trips
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req service.TripRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := h.tripService.CreateTrip(r.Context(), middleware.UserID(r.Context()), req)
	if err != nil {
		h.respondTripError(w, r, err, createFailure)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// ListTrips handles GET /api/trips
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripService.ListTrips(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.respondTripError(w, r, err, listFailure)
		return
	}
	if trips == nil {
		trips = []database.Trip{}
	}
	respondJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /api/trips/{tripId}
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripService.GetTrip(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"])
	if err != nil {
		h.respondTripError(w, r, err, fetchFailure)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/{tripId}
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req service.TripUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := h.tripService.UpdateTrip(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"], req)
	if err != nil {
		h.respondTripError(w, r, err, updateFailure)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/{tripId}
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.tripService.DeleteTrip(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"]); err != nil {
		h.respondTripError(w, r, err, deleteFailure)
		return
	}
	respondJSON(w, http.StatusOK, message{Msg: "Trip removed successfully"})
}

// AddSavedFlight handles POST /api/trips/{tripId}/flights
func (h *Handler) AddSavedFlight(w http.ResponseWriter, r *http.Request) {
	var item database.SavedFlight
	if err := decodeBody(r, &item); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	trip, err := h.tripService.AddSavedFlight(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"], item)
	h.respondSaved(w, r, http.StatusCreated, trip, err)
}

// RemoveSavedFlight handles DELETE /api/trips/{tripId}/flights/{itemId}
func (h *Handler) RemoveSavedFlight(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trip, err := h.tripService.RemoveSavedFlight(r.Context(), middleware.UserID(r.Context()), vars["tripId"], vars["itemId"])
	h.respondSaved(w, r, http.StatusOK, trip, err)
}

// AddSavedAccommodation handles POST /api/trips/{tripId}/accommodations
func (h *Handler) AddSavedAccommodation(w http.ResponseWriter, r *http.Request) {
	var item database.SavedAccommodation
	if err := decodeBody(r, &item); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	trip, err := h.tripService.AddSavedAccommodation(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"], item)
	h.respondSaved(w, r, http.StatusCreated, trip, err)
}

// RemoveSavedAccommodation handles DELETE /api/trips/{tripId}/accommodations/{itemId}
func (h *Handler) RemoveSavedAccommodation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trip, err := h.tripService.RemoveSavedAccommodation(r.Context(), middleware.UserID(r.Context()), vars["tripId"], vars["itemId"])
	h.respondSaved(w, r, http.StatusOK, trip, err)
}

// AddSavedActivity handles POST /api/trips/{tripId}/activities
func (h *Handler) AddSavedActivity(w http.ResponseWriter, r *http.Request) {
	var item database.SavedActivity
	if err := decodeBody(r, &item); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	trip, err := h.tripService.AddSavedActivity(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["tripId"], item)
	h.respondSaved(w, r, http.StatusCreated, trip, err)
}

// RemoveSavedActivity handles DELETE /api/trips/{tripId}/activities/{itemId}
func (h *Handler) RemoveSavedActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trip, err := h.tripService.RemoveSavedActivity(r.Context(), middleware.UserID(r.Context()), vars["tripId"], vars["itemId"])
	h.respondSaved(w, r, http.StatusOK, trip, err)
}

func (h *Handler) respondSaved(w http.ResponseWriter, r *http.Request, status int, trip *database.Trip, err error) {
	if err != nil {
		h.respondTripError(w, r, err, savedFailure)
		return
	}
	respondJSON(w, status, trip)
}
