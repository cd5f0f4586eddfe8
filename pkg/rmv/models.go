package rmv

// LocationResponse represents the object returned by /location.name
type LocationResponse struct {
	Locations []LocationEntry `json:"stopLocationOrCoordLocation"`
}

// LocationEntry wraps a single search hit. Coordinate-only hits carry no
// StopLocation and are skipped during parsing.
type LocationEntry struct {
	StopLocation *StopLocation `json:"StopLocation"`
}

// StopLocation is one station candidate, ordered by provider relevance
type StopLocation struct {
	ID    string `json:"id"`
	ExtID string `json:"extId"`
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
}

// TripResponse represents the object returned by /trip
type TripResponse struct {
	Trips []Trip `json:"Trip"`
}

// Trip is one start-to-finish connection, potentially with transfers
type Trip struct {
	LegList LegList `json:"LegList"`
}

type LegList struct {
	Legs []Leg `json:"Leg"`
}

// Leg is a single continuous part of a trip (one ride, or a walk)
type Leg struct {
	Origin      LegStop  `json:"Origin"`
	Destination LegStop  `json:"Destination"`
	Name        string   `json:"name"`
	Direction   string   `json:"direction"`
	Type        string   `json:"type"` // "WALK" for footpaths
	Distance    int      `json:"dist"`
	Product     *Product `json:"Product,omitempty"`
}

// LegStop holds the boarding or alighting side of a leg
type LegStop struct {
	Name  string `json:"name"`
	Time  string `json:"time"` // "18:30:00"
	Date  string `json:"date"` // "2019-08-26"
	Track string `json:"track,omitempty"`
}

// Product describes the vehicle serving a leg, e.g. catOutL "U-Bahn"
type Product struct {
	CatOutL string `json:"catOutL"`
}
