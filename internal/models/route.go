package models

import "time"

// Route is a derived itinerary candidate: an optional intra-city transfer
// before the flight, the flight itself, and an optional transfer after it.
// Candidates are rebuilt on every search and never persisted.
type Route struct {
	BeforeFlight *Transportation `json:"beforeFlight,omitempty"`
	Flight       Transportation  `json:"flight"`
	AfterFlight  *Transportation `json:"afterFlight,omitempty"`
}

// Segments counts the legs present in the candidate.
func (r Route) Segments() int {
	n := 1
	if r.BeforeFlight != nil {
		n++
	}
	if r.AfterFlight != nil {
		n++
	}
	return n
}

// OriginType is the kind of the first leg of the itinerary.
func (r Route) OriginType() TransportationType {
	if r.BeforeFlight != nil {
		return r.BeforeFlight.TransportationType
	}
	return r.Flight.TransportationType
}

// DestinationType is the kind of the last leg of the itinerary.
func (r Route) DestinationType() TransportationType {
	if r.AfterFlight != nil {
		return r.AfterFlight.TransportationType
	}
	return r.Flight.TransportationType
}

// OriginAirport is the airport code where the flight is boarded.
func (r Route) OriginAirport() string {
	if r.BeforeFlight != nil {
		return r.BeforeFlight.DestinationLocation.LocationCode
	}
	return r.Flight.OriginLocation.LocationCode
}

// DestinationAirport is the airport code where the flight is left.
func (r Route) DestinationAirport() string {
	if r.AfterFlight != nil {
		return r.AfterFlight.OriginLocation.LocationCode
	}
	return r.Flight.DestinationLocation.LocationCode
}

type RouteRequest struct {
	OriginLocationCode      string `json:"originLocationCode"`
	DestinationLocationCode string `json:"destinationLocationCode"`
	Date                    string `json:"date"`
}

func (r *RouteRequest) Validate() error {
	if r.OriginLocationCode == "" {
		return ErrMissingOriginCode
	}
	if r.DestinationLocationCode == "" {
		return ErrMissingDestinationCode
	}
	if r.OriginLocationCode == r.DestinationLocationCode {
		return ErrSameEndpoints
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Weekday returns the ISO weekday (1=Monday .. 7=Sunday) of the requested
// date. Validate must have passed.
func (r RouteRequest) Weekday() int {
	d, _ := time.Parse("2006-01-02", r.Date)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// RouteFilters narrows an already composed candidate set. Dimensions combine
// with AND, values inside one dimension with OR; an empty dimension passes
// everything.
type RouteFilters struct {
	OriginTransportTypes      []TransportationType `json:"originTransportTypes,omitempty"`
	DestinationTransportTypes []TransportationType `json:"destinationTransportTypes,omitempty"`
	OriginAirports            []string             `json:"originAirports,omitempty"`
	DestinationAirports       []string             `json:"destinationAirports,omitempty"`
}

func (f RouteFilters) Empty() bool {
	return len(f.OriginTransportTypes) == 0 &&
		len(f.DestinationTransportTypes) == 0 &&
		len(f.OriginAirports) == 0 &&
		len(f.DestinationAirports) == 0
}

const (
	ErrMissingOriginCode      ValidationError = "originLocationCode is required"
	ErrMissingDestinationCode ValidationError = "destinationLocationCode is required"
	ErrInvalidDate            ValidationError = "date must be in YYYY-MM-DD format"
)
