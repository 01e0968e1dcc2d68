// Package routes assembles and narrows itinerary candidates: an optional
// intra-city transfer, a flight, and an optional transfer at the far end.
package routes

import (
	"sort"

	"github.com/mesat/flight-routes/internal/models"
)

// Compose builds every itinerary candidate between origin and destination on
// the given ISO weekday (1=Monday .. 7=Sunday) out of the known legs. The
// main leg must be a FLIGHT.
func Compose(legs []models.Transportation, locations []models.Location, origin, destination models.Location, day int) []models.Route {
	return ComposeMain(models.TypeFlight, legs, locations, origin, destination, day)
}

// ComposeMain is Compose generalized over the kind of the mandatory main
// leg. Rules:
//   - main legs run between an origin-side airport and a destination-side
//     airport and operate on day;
//   - a non-airport endpoint stands for the airports of its city;
//   - a pre-leg is any non-main-kind leg leaving the origin for an airport,
//     and must end where the main leg starts;
//   - a post-leg mirrors that at the destination.
//
// Candidates are the cross product of matching pre-legs, the main leg, and
// matching post-legs, where either transfer slot may stay empty.
func ComposeMain(mainKind models.TransportationType, legs []models.Transportation, locations []models.Location, origin, destination models.Location, day int) []models.Route {
	originAirports := airportCodes(locations, origin)
	destinationAirports := airportCodes(locations, destination)

	var mains, befores, afters []models.Transportation
	for _, leg := range legs {
		if !leg.OperatesOn(day) {
			continue
		}
		switch {
		case leg.TransportationType == mainKind:
			if originAirports[leg.OriginLocation.LocationCode] && destinationAirports[leg.DestinationLocation.LocationCode] {
				mains = append(mains, leg)
			}
		case !origin.IsAirport &&
			leg.OriginLocation.LocationCode == origin.LocationCode &&
			leg.DestinationLocation.IsAirport:
			befores = append(befores, leg)
		case !destination.IsAirport &&
			leg.DestinationLocation.LocationCode == destination.LocationCode &&
			leg.OriginLocation.IsAirport:
			afters = append(afters, leg)
		}
	}

	var candidates []models.Route
	for _, main := range mains {
		pre := matchingTransfers(befores, func(t models.Transportation) bool {
			return t.DestinationLocation.LocationCode == main.OriginLocation.LocationCode
		})
		post := matchingTransfers(afters, func(t models.Transportation) bool {
			return t.OriginLocation.LocationCode == main.DestinationLocation.LocationCode
		})

		for _, b := range pre {
			for _, a := range post {
				candidates = append(candidates, models.Route{
					BeforeFlight: b,
					Flight:       main,
					AfterFlight:  a,
				})
			}
		}
	}
	return candidates
}

// AlternativeDays lists the ISO weekdays, other than the requested one, on
// which a FLIGHT main leg runs between the two endpoints. Sorted ascending.
func AlternativeDays(legs []models.Transportation, locations []models.Location, origin, destination models.Location, requestedDay int) []int {
	return AlternativeDaysMain(models.TypeFlight, legs, locations, origin, destination, requestedDay)
}

// AlternativeDaysMain is AlternativeDays generalized over the main-leg kind,
// matching ComposeMain so the two entry points agree on what counts as a
// main leg.
func AlternativeDaysMain(mainKind models.TransportationType, legs []models.Transportation, locations []models.Location, origin, destination models.Location, requestedDay int) []int {
	originAirports := airportCodes(locations, origin)
	destinationAirports := airportCodes(locations, destination)

	seen := make(map[int]bool)
	for _, leg := range legs {
		if leg.TransportationType != mainKind {
			continue
		}
		if !originAirports[leg.OriginLocation.LocationCode] || !destinationAirports[leg.DestinationLocation.LocationCode] {
			continue
		}
		for _, d := range leg.OperatingDays {
			if d != requestedDay {
				seen[d] = true
			}
		}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// airportCodes resolves an endpoint to the airport codes it can use: the
// endpoint itself when it is an airport, otherwise every airport in its city.
func airportCodes(locations []models.Location, endpoint models.Location) map[string]bool {
	codes := make(map[string]bool)
	if endpoint.IsAirport {
		codes[endpoint.LocationCode] = true
		return codes
	}
	for _, loc := range locations {
		if loc.IsAirport && loc.City == endpoint.City {
			codes[loc.LocationCode] = true
		}
	}
	return codes
}

// matchingTransfers returns pointers to the transfers passing keep, or a
// single nil entry so the cross product still emits the transfer-less
// candidate.
func matchingTransfers(transfers []models.Transportation, keep func(models.Transportation) bool) []*models.Transportation {
	var out []*models.Transportation
	for i := range transfers {
		if keep(transfers[i]) {
			out = append(out, &transfers[i])
		}
	}
	if len(out) == 0 {
		out = append(out, nil)
	}
	return out
}
