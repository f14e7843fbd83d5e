package normalize

import (
	"fmt"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/models"
)

type kiwiItinerary struct {
	ID             lenientString                 `json:"id"`
	LegacyID       lenientString                 `json:"legacyId"`
	Price          optObject[kiwiPrice]          `json:"price"`
	BookingOptions optObject[kiwiBookingOptions] `json:"bookingOptions"`
	Sector         optObject[kiwiSector]         `json:"sector"`
	Outbound       optObject[kiwiLeg]            `json:"outbound"`
	Inbound        optObject[kiwiLeg]            `json:"inbound"`
	Provider       optObject[kiwiNamed]          `json:"provider"`
}

type kiwiPrice struct {
	Amount   any           `json:"amount"`
	Currency lenientString `json:"currency"`
}

type kiwiBookingOptions struct {
	Edges optList[kiwiBookingEdge] `json:"edges"`
}

type kiwiBookingEdge struct {
	Node optObject[kiwiBookingOption] `json:"node"`
}

type kiwiBookingOption struct {
	BookingURL lenientString        `json:"bookingUrl"`
	Price      optObject[kiwiPrice] `json:"price"`
}

type kiwiLeg struct {
	Sector optObject[kiwiSector] `json:"sector"`
}

type kiwiSector struct {
	SectorSegments optList[kiwiSectorSegment] `json:"sectorSegments"`
}

type kiwiSectorSegment struct {
	Segment optObject[kiwiSegment] `json:"segment"`
}

type kiwiSegment struct {
	Source      optObject[kiwiEndpoint] `json:"source"`
	Destination optObject[kiwiEndpoint] `json:"destination"`
	Duration    any                     `json:"duration"`
	Carrier     optObject[kiwiCarrier]  `json:"carrier"`
	Code        lenientString           `json:"code"`
}

type kiwiEndpoint struct {
	LocalTime lenientString          `json:"localTime"`
	UTCTime   lenientString          `json:"utcTime"`
	Station   optObject[kiwiStation] `json:"station"`
}

type kiwiStation struct {
	Name lenientString        `json:"name"`
	Code lenientString        `json:"code"`
	City optObject[kiwiNamed] `json:"city"`
}

type kiwiCarrier struct {
	Name lenientString `json:"name"`
	Code lenientString `json:"code"`
}

type kiwiNamed struct {
	Name lenientString `json:"name"`
}

func (p *kiwiPrice) amount() *float64 {
	if p == nil {
		return nil
	}
	return ParsePrice(p.Amount)
}

func (p *kiwiPrice) currency() string {
	if p == nil {
		return ""
	}
	return string(p.Currency)
}

func (it *kiwiItinerary) primaryBookingOption() *kiwiBookingOption {
	options := it.BookingOptions.get()
	if options == nil || len(options.Edges) == 0 {
		return nil
	}
	return options.Edges[0].Node.get()
}

func (l *kiwiLeg) sector() *kiwiSector {
	if l == nil {
		return nil
	}
	return l.Sector.get()
}

func (s *kiwiSector) firstSegment() *kiwiSegment {
	if s == nil || len(s.SectorSegments) == 0 {
		return nil
	}
	return s.SectorSegments[0].Segment.get()
}

func (s *kiwiSegment) source() *kiwiEndpoint {
	if s == nil {
		return nil
	}
	return s.Source.get()
}

func (s *kiwiSegment) destination() *kiwiEndpoint {
	if s == nil {
		return nil
	}
	return s.Destination.get()
}

func (s *kiwiSegment) duration() *int {
	if s == nil {
		return nil
	}
	return ParseCount(s.Duration)
}

func (s *kiwiSegment) airline() (name, code string) {
	if s == nil || s.Carrier.get() == nil {
		return UnknownAirline, NotAvailable
	}
	carrier := s.Carrier.get()
	return orDefault(string(carrier.Name), UnknownAirline), orDefault(string(carrier.Code), NotAvailable)
}

func (s *kiwiSegment) flightNumber() string {
	if s == nil {
		return NotAvailable
	}
	return orDefault(string(s.Code), NotAvailable)
}

func (e *kiwiEndpoint) station() *kiwiStation {
	if e == nil {
		return nil
	}
	return e.Station.get()
}

func (e *kiwiEndpoint) city() string {
	st := e.station()
	if st == nil || st.City.get() == nil {
		return UnknownCity
	}
	return orDefault(string(st.City.get().Name), UnknownCity)
}

func (e *kiwiEndpoint) airport() string {
	st := e.station()
	if st == nil {
		return UnknownAirport
	}
	return orDefault(string(st.Name), UnknownAirport)
}

func (e *kiwiEndpoint) airportCode() string {
	st := e.station()
	if st == nil {
		return NotAvailable
	}
	return orDefault(string(st.Code), NotAvailable)
}

func (e *kiwiEndpoint) localTime() string {
	if e == nil {
		return ""
	}
	return string(e.LocalTime)
}

func (e *kiwiEndpoint) utcTime() string {
	if e == nil {
		return ""
	}
	return string(e.UTCTime)
}

// flightBatch carries values shared by every itinerary of one response.
type flightBatch struct {
	search           models.FlightSearch
	responseCurrency string
	roundTrip        bool
	idPrefix         string
	startedAt        int64
}

// Flights normalizes a Kiwi one-way or round-trip response. The shape is
// chosen by search.IsRoundTrip().
func (n *Normalizer) Flights(raw []byte, search models.FlightSearch) []models.NormalizedFlight {
	flights := []models.NormalizedFlight{}
	roundTrip := search.IsRoundTrip()
	log := n.log.With("domain", "flights", "round_trip", roundTrip)

	envelope, ok := decodeObject(raw)
	if !ok {
		log.Warn("flight response is not a JSON object")
		return flights
	}

	items, ok := decodeArray(envelope["itineraries"])
	if !ok {
		log.Warn("flight response missing itineraries array", "keys", topLevelKeys(envelope))
		return flights
	}
	log.Info("processing itineraries", "count", len(items))

	batch := flightBatch{
		search:    search,
		roundTrip: roundTrip,
		idPrefix:  "oneway",
		startedAt: n.now().UnixMilli(),
	}
	if roundTrip {
		batch.idPrefix = "roundtrip"
	}
	if metadata, ok := decodeObject(envelope["metadata"]); ok {
		batch.responseCurrency = decodeString(metadata["currency"])
	}
	batch.responseCurrency = firstNonEmpty(decodeString(envelope["currency"]), batch.responseCurrency)

	for i, item := range items {
		var it kiwiItinerary
		if err := decodeItem(item, &it); err != nil {
			log.Warn("dropping malformed itinerary", "index", i, "error", err)
			continue
		}
		flights = append(flights, batch.normalize(&it, i))
	}

	log.Info("transformed flights", "count", len(flights))
	return flights
}

func (b flightBatch) normalize(it *kiwiItinerary, index int) models.NormalizedFlight {
	price := it.Price.get().amount()
	option := it.primaryBookingOption()
	var bookingLink *string
	if option != nil {
		if p := option.Price.get().amount(); p != nil {
			price = p
		}
		bookingLink = ExtractBookingLink(string(option.BookingURL), KiwiOrigin)
	}

	outboundSector := it.Sector.get()
	if b.roundTrip {
		if s := it.Outbound.get().sector(); s != nil {
			outboundSector = s
		}
	}
	segment := outboundSector.firstSegment()
	departure, arrival := segment.source(), segment.destination()
	airlineName, airlineCode := segment.airline()
	duration := segment.duration()

	provider := KiwiProviderName
	if named := it.Provider.get(); named != nil {
		provider = orDefault(string(named.Name), KiwiProviderName)
	}

	flight := models.NormalizedFlight{
		ID:       b.identity(it, index),
		Price:    price,
		Currency: orDefault(firstNonEmpty(b.responseCurrency, it.Price.get().currency(), b.search.Currency), DefaultCurrency),

		DepartureCity:        departure.city(),
		DepartureAirport:     departure.airport(),
		DepartureAirportCode: departure.airportCode(),
		DepartureTimeLocal:   orDefault(departure.localTime(), NotAvailable),
		DepartureTimeUTC:     orDefault(departure.utcTime(), NotAvailable),

		ArrivalCity:        arrival.city(),
		ArrivalAirport:     arrival.airport(),
		ArrivalAirportCode: arrival.airportCode(),
		ArrivalTimeLocal:   orDefault(arrival.localTime(), NotAvailable),
		ArrivalTimeUTC:     orDefault(arrival.utcTime(), NotAvailable),

		DurationInSeconds: duration,
		DurationFormatted: FormatDuration(duration),
		AirlineName:       airlineName,
		AirlineCode:       airlineCode,
		FlightNumber:      segment.flightNumber(),
		BookingLink:       bookingLink,
		Provider:          provider,
		IsRoundTrip:       b.roundTrip,

		OriginalDepartureDate: b.search.DepartureDate,
		ActualDepartureDate:   FormatDateForDisplay(departure.localTime()),
	}

	if !b.roundTrip {
		return flight
	}

	returnSegment := it.Inbound.get().sector().firstSegment()
	returnDuration := returnSegment.duration()

	total := DurationNotAvailable
	if duration != nil && returnDuration != nil {
		sum := *duration + *returnDuration
		total = FormatDuration(&sum)
	}
	flight.TotalTripDuration = &total
	flight.OriginalReturnDate = optionalString(b.search.ReturnDate)

	if returnSegment != nil {
		flight.ReturnInfo = returnLeg(returnSegment)
		actual := FormatDateForDisplay(returnSegment.source().localTime())
		flight.ActualReturnDate = &actual
	}

	return flight
}

func (b flightBatch) identity(it *kiwiItinerary, index int) string {
	if id := firstNonEmpty(string(it.ID), string(it.LegacyID)); id != "" {
		return id
	}
	return fmt.Sprintf("%s_%d_%d", b.idPrefix, b.startedAt, index)
}

func returnLeg(segment *kiwiSegment) *models.ReturnLeg {
	departure, arrival := segment.source(), segment.destination()
	airlineName, airlineCode := segment.airline()
	duration := segment.duration()

	return &models.ReturnLeg{
		DepartureCity:        departure.city(),
		DepartureAirport:     departure.airport(),
		DepartureAirportCode: departure.airportCode(),
		DepartureTime:        orDefault(departure.localTime(), NotAvailable),
		DepartureTimeUTC:     orDefault(departure.utcTime(), NotAvailable),
		DepartureDate:        FormatDateForDisplay(departure.localTime()),

		ArrivalCity:        arrival.city(),
		ArrivalAirport:     arrival.airport(),
		ArrivalAirportCode: arrival.airportCode(),
		ArrivalTime:        orDefault(arrival.localTime(), NotAvailable),
		ArrivalTimeUTC:     orDefault(arrival.utcTime(), NotAvailable),
		ArrivalDate:        FormatDateForDisplay(arrival.localTime()),

		DurationInSeconds: duration,
		DurationFormatted: FormatDuration(duration),
		AirlineName:       airlineName,
		AirlineCode:       airlineCode,
		FlightNumber:      segment.flightNumber(),
	}
}
