// Package normalize maps raw provider payloads for flights, accommodations
// and places into the stable records in package models.
//
// Every transformer returns a non-nil slice. A malformed item is logged and
// dropped; an unexpected top-level shape yields an empty slice. Nothing in
// this package returns an error to the caller.
package normalize

import (
	"time"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
)

// Provider origins and display names.
const (
	KiwiOrigin       = "https://www.kiwi.com"
	KiwiProviderName = "Kiwi.com"
	AirbnbOrigin     = "https://www.airbnb.com"
	AirbnbProvider   = "Airbnb"
	DefaultCurrency  = "USD"
)

// Normalizer holds the logger used for dropped items and shape warnings.
// It keeps no per-request state and is safe for concurrent use.
type Normalizer struct {
	log *logger.Logger
	now func() time.Time
}

// New creates a Normalizer.
func New(log *logger.Logger) *Normalizer {
	return &Normalizer{
		log: log,
		now: time.Now,
	}
}
