package journey

import "strings"

// Home is the fixed origin configuration every lookup starts from. It is an
// immutable value passed in at construction, never read from ambient state.
// A non-empty StationID is a pre-resolved origin and spares the lookup a
// provider round-trip; when unset, StationName is resolved on first use.
type Home struct {
	StationName string
	StationID   string
	CityName    string
	CityOnly    bool
}

// Normalize applies the home-city-only policy to a spoken station name: when
// CityOnly is set and the name does not already mention the home city, the
// city is appended to narrow the provider's search. Pure string transform,
// no provider calls.
func Normalize(rawName string, home Home) string {
	if !home.CityOnly {
		return rawName
	}

	if strings.Contains(strings.ToLower(rawName), strings.ToLower(home.CityName)) {
		return rawName
	}

	return rawName + " " + home.CityName
}
