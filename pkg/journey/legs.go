package journey

import (
	"fmt"
	"strings"
	"time"

	"abfahrt/pkg/rmv"
)

// Leg is one continuous part of a found connection, flattened from the
// provider's nested trip structure into what response rendering needs.
type Leg struct {
	Departure   time.Time
	Arrival     time.Time
	Origin      string
	Destination string
	Direction   string
	Train       string
	Category    string
	Walk        bool
	DistanceM   int
	Platform    string
}

// Result is the outcome of a successful lookup, consumed immediately by
// response rendering.
type Result struct {
	Departure   time.Time
	Line        string
	Platform    string
	Destination string
	Legs        []Leg
}

// provider timestamps are local to the network's timezone
func legTime(stop rmv.LegStop) (time.Time, error) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return time.Time{}, fmt.Errorf("could not load timezone: %w", err)
	}

	return time.ParseInLocation("2006-01-02 15:04:05", stop.Date+" "+stop.Time, loc)
}

// flattenTrip converts one provider trip into render-ready legs. Any leg with
// an unparseable timestamp poisons the whole trip, the same way a missing
// mandatory field does.
func flattenTrip(trip rmv.Trip) ([]Leg, error) {
	var legs []Leg

	for _, l := range trip.LegList.Legs {
		dep, err := legTime(l.Origin)
		if err != nil {
			return nil, fmt.Errorf("bad departure time %q: %w", l.Origin.Time, err)
		}
		arr, err := legTime(l.Destination)
		if err != nil {
			return nil, fmt.Errorf("bad arrival time %q: %w", l.Destination.Time, err)
		}

		leg := Leg{
			Departure:   dep,
			Arrival:     arr,
			Origin:      l.Origin.Name,
			Destination: l.Destination.Name,
			Direction:   l.Direction,
			// HAPI pads train names and categories with trailing blanks
			Train:     strings.TrimSpace(l.Name),
			Platform:  l.Origin.Track,
			DistanceM: l.Distance,
		}

		if l.Product != nil {
			leg.Category = strings.TrimSpace(l.Product.CatOutL)
		}
		if l.Type == "WALK" {
			leg.Walk = true
			leg.Category = "walk"
		}

		legs = append(legs, leg)
	}

	if len(legs) == 0 {
		return nil, fmt.Errorf("trip contains no legs")
	}

	return legs, nil
}

// resultFromLegs derives the headline fields from the first ride of the
// connection (a trip may open with a walk to the platform).
func resultFromLegs(legs []Leg, destinationName string) *Result {
	res := &Result{
		Departure:   legs[0].Departure,
		Destination: destinationName,
		Legs:        legs,
	}

	for _, leg := range legs {
		if !leg.Walk {
			res.Line = leg.Train
			res.Platform = leg.Platform
			break
		}
	}

	return res
}
