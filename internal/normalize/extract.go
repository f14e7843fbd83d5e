package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sentinel defaults substituted for absent fields.
const (
	NotAvailable         = "N/A"
	UnknownCity          = "Unknown City"
	UnknownAirport       = "Unknown Airport"
	UnknownAirline       = "Unknown Airline"
	DurationNotAvailable = "Duration not available"
	DateNotAvailable     = "Date not available"
)

// displayDateLayout renders dates the way an en-US locale short date does.
const displayDateLayout = "1/2/2006"

var (
	numberPattern       = regexp.MustCompile(`\d+(?:\.\d+)?`)
	leadingRatingRegex  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
	reviewCountRegex    = regexp.MustCompile(`\(([\d,]+)\)`)
	errNotObject        = errors.New("item is not a JSON object")
	displayInputLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
)

// RatingText is the result of parsing a combined "rating (count)" string.
type RatingText struct {
	Rating      *float64
	ReviewCount *int
}

// ParsePrice accepts a number or a numeric-looking string and returns nil
// for anything else.
func ParsePrice(raw any) *float64 {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseCount accepts an integer-valued number or numeric string. Fractions
// are truncated. Negative values and values that do not fit in an int are
// nil.
func ParseCount(raw any) *int {
	if s, ok := raw.(string); ok {
		raw = strings.ReplaceAll(s, ",", "")
	}
	f := ParsePrice(raw)
	if f == nil {
		return nil
	}
	t := math.Trunc(*f)
	if t < 0 || t >= float64(math.MaxInt) {
		return nil
	}
	n := int(t)
	return &n
}

// ParseRatingText extracts a leading rating and a parenthesized review
// count, e.g. "4.8 (1,203)".
func ParseRatingText(text string) RatingText {
	var out RatingText

	if m := leadingRatingRegex.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			out.Rating = &f
		}
	}

	if m := reviewCountRegex.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			out.ReviewCount = &n
		}
	}

	return out
}

// FirstNumber returns the first numeric substring of s, ignoring currency
// symbols and thousands separators.
func FirstNumber(s string) *float64 {
	match := numberPattern.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return nil
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatDuration renders seconds as "{h}h {m}m", omitting a zero hour
// segment. Nil or negative input yields DurationNotAvailable.
func FormatDuration(totalSeconds *int) string {
	if totalSeconds == nil || *totalSeconds < 0 {
		return DurationNotAvailable
	}

	hours := *totalSeconds / 3600
	minutes := (*totalSeconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatDateForDisplay renders an ISO-ish date as a short date. Input that
// does not parse is returned unchanged.
func FormatDateForDisplay(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DateNotAvailable
	}

	for _, layout := range displayInputLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return s
}

// ExtractBookingLink resolves a provider-relative path against origin. Absolute
// URLs pass through; empty input yields nil.
func ExtractBookingLink(raw, origin string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "/") {
		qualified := strings.TrimRight(origin, "/") + raw
		return &qualified
	}
	return &raw
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// decodeObject returns the fields of a JSON object, or false for any other
// JSON value (including null and absent).
func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// decodeArray returns the elements of a JSON array, or false for any other
// JSON value.
func decodeArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}

// decodeString returns raw as a string, or "" when it is not a JSON string.
func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// decodeBool distinguishes a real JSON boolean from null or other values.
func decodeBool(raw json.RawMessage) (value, ok bool) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// decodeItem decodes one list element into v. Numbers held in interface
// fields stay json.Number so large ids keep their digits.
func decodeItem(raw json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotObject
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	return dec.Decode(v)
}

func topLevelKeys(fields map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return keys
}
