package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/middleware"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/providers"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	authService   service.AuthService
	tripService   service.TripService
	searchService service.SearchService
	log           *logger.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(authService service.AuthService, tripService service.TripService, searchService service.SearchService, log *logger.Logger) *Handler {
	return &Handler{
		authService:   authService,
		tripService:   tripService,
		searchService: searchService,
		log:           log,
	}
}

type message struct {
	Msg string `json:"msg"`
}

type errorList struct {
	Errors []message `json:"errors"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, message{Msg: msg})
}

func respondErrors(w http.ResponseWriter, status int, msgs ...string) {
	list := errorList{Errors: make([]message, 0, len(msgs))}
	for _, m := range msgs {
		list.Errors = append(list.Errors, message{Msg: m})
	}
	respondJSON(w, status, list)
}

func decodeBody(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// respondUpstreamError writes the response for a failed provider call.
// It reports false when err did not come from a provider.
func respondUpstreamError(w http.ResponseWriter, err error) bool {
	var upErr *providers.UpstreamError
	if errors.As(err, &upErr) {
		msg := upErr.Message
		if msg == "" {
			msg = "Failed to fetch " + upErr.Domain + " data"
		}
		body := map[string]interface{}{"msg": "Error from " + upErr.Domain + " API: " + msg}
		if len(upErr.Details) > 0 {
			body["details"] = upErr.Details
		}
		respondJSON(w, upErr.StatusCode, body)
		return true
	}

	var gwErr *providers.GatewayError
	if errors.As(err, &gwErr) {
		respondError(w, http.StatusBadGateway, "No response received from "+gwErr.Domain+" API")
		return true
	}

	var setupErr *providers.SetupError
	if errors.As(err, &setupErr) {
		respondError(w, http.StatusInternalServerError, "Error in setting up request to "+setupErr.Domain+" API")
		return true
	}
	return false
}

func (h *Handler) requestLog(r *http.Request) *logger.Logger {
	return h.log.With("request_id", middleware.RequestID(r.Context()))
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Budget-Backpack API Running!"))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
