package models

import "github.com/mesat/flight-routes/pkg/weekday"

type TransportationType string

const (
	TypeFlight TransportationType = "FLIGHT"
	TypeBus    TransportationType = "BUS"
	TypeSubway TransportationType = "SUBWAY"
	TypeUber   TransportationType = "UBER"
)

func (t TransportationType) Valid() bool {
	switch t {
	case TypeFlight, TypeBus, TypeSubway, TypeUber:
		return true
	}
	return false
}

type Transportation struct {
	ID                  int64              `json:"id"`
	OriginLocation      Location           `json:"originLocation"`
	DestinationLocation Location           `json:"destinationLocation"`
	TransportationType  TransportationType `json:"transportationType"`
	OperatingDays       []int              `json:"operatingDays"`
}

// OperatesOn reports whether the leg runs on the given ISO weekday
// (1=Monday .. 7=Sunday).
func (t Transportation) OperatesOn(day int) bool {
	for _, d := range t.OperatingDays {
		if d == day {
			return true
		}
	}
	return false
}

type TransportationRequest struct {
	OriginLocationID      int64              `json:"originLocationId"`
	DestinationLocationID int64              `json:"destinationLocationId"`
	TransportationType    TransportationType `json:"transportationType"`
	OperatingDays         []int              `json:"operatingDays"`
}

func (r *TransportationRequest) Validate() error {
	if r.OriginLocationID == 0 {
		return ErrMissingOrigin
	}
	if r.DestinationLocationID == 0 {
		return ErrMissingDestination
	}
	if r.OriginLocationID == r.DestinationLocationID {
		return ErrSameEndpoints
	}
	if !r.TransportationType.Valid() {
		return ErrInvalidType
	}
	if len(r.OperatingDays) == 0 {
		return ErrMissingOperatingDays
	}
	if !weekday.Valid(r.OperatingDays) {
		return ErrInvalidOperatingDay
	}
	// Days are unique and order-irrelevant; they are stored sorted.
	r.OperatingDays = weekday.Normalize(r.OperatingDays)
	return nil
}

const (
	ErrMissingOrigin        ValidationError = "origin location is required"
	ErrMissingDestination   ValidationError = "destination location is required"
	ErrSameEndpoints        ValidationError = "origin and destination cannot be the same"
	ErrInvalidType          ValidationError = "invalid transportation type"
	ErrMissingOperatingDays ValidationError = "operating days are required"
	ErrInvalidOperatingDay  ValidationError = "operating days must be between 1 and 7"
)
