package models

import "regexp"

var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	cityCodePattern    = regexp.MustCompile(`^CC[A-Z]{2,5}$`)
)

type Location struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"locationCode"`
	IsAirport    bool   `json:"isAirport"`
}

type LocationRequest struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"locationCode"`
	IsAirport    bool   `json:"isAirport"`
}

func (r *LocationRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Country == "" {
		return ErrMissingCountry
	}
	if r.City == "" {
		return ErrMissingCity
	}
	if !ValidLocationCode(r.LocationCode, r.IsAirport) {
		return ErrInvalidLocationCode
	}
	return nil
}

// LocationUpdateRequest carries the mutable location fields. The code and
// airport flag are fixed at creation; a LocationCode is accepted only so a
// client echoing the entity back can be checked against the stored value.
type LocationUpdateRequest struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"locationCode,omitempty"`
}

func (r *LocationUpdateRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Country == "" {
		return ErrMissingCountry
	}
	if r.City == "" {
		return ErrMissingCity
	}
	return nil
}

// ValidLocationCode checks the code against the format bound to the airport
// flag: 3-letter IATA code for airports, CC-prefixed 4-7 letter code for
// everything else. The flag and code are fixed at creation.
func ValidLocationCode(code string, isAirport bool) bool {
	if isAirport {
		return airportCodePattern.MatchString(code)
	}
	return cityCodePattern.MatchString(code)
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingName         ValidationError = "name is required"
	ErrMissingCountry      ValidationError = "country is required"
	ErrMissingCity         ValidationError = "city is required"
	ErrInvalidLocationCode ValidationError = "invalid location code format"

	ErrImmutableLocationCode ValidationError = "location code cannot be changed"
)
