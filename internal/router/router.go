package router

import (
	"net/http"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/handlers"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter creates and configures the HTTP router
func NewRouter(h *handlers.Handler, tokens middleware.TokenParser, log *logger.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(corsMiddleware)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost, http.MethodOptions)

	private := api.NewRoute().Subrouter()
	private.Use(middleware.Protect(tokens))

	private.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet, http.MethodOptions)

	// Trips
	private.HandleFunc("/trips", h.CreateTrip).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/trips", h.ListTrips).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}", h.GetTrip).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}", h.UpdateTrip).Methods(http.MethodPut, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}", h.DeleteTrip).Methods(http.MethodDelete, http.MethodOptions)

	// Saved items
	private.HandleFunc("/trips/{tripId}/flights", h.AddSavedFlight).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}/flights/{itemId}", h.RemoveSavedFlight).Methods(http.MethodDelete, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}/accommodations", h.AddSavedAccommodation).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}/accommodations/{itemId}", h.RemoveSavedAccommodation).Methods(http.MethodDelete, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}/activities", h.AddSavedActivity).Methods(http.MethodPost, http.MethodOptions)
	private.HandleFunc("/trips/{tripId}/activities/{itemId}", h.RemoveSavedActivity).Methods(http.MethodDelete, http.MethodOptions)

	// Search
	private.HandleFunc("/search/flights", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/search/accommodations", h.SearchAccommodations).Methods(http.MethodGet, http.MethodOptions)
	private.HandleFunc("/search/events", h.SearchEvents).Methods(http.MethodGet, http.MethodOptions)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.TokenHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
