// Package speech renders journey results as spoken German sentences.
package speech

import (
	"errors"
	"fmt"
	"strings"

	"abfahrt/pkg/journey"
)

// FallbackText closes a session when the lookup failed for any reason that
// is not worth explaining to the speaker.
const FallbackText = "Verbindung konnte nicht abgefragt werden"

// Render turns the legs of a found connection into the spoken answer, e.g.
// "S-Bahn S6 Richtung Südbahnhof um 18:30 Uhr. Ankunft um 18:52 Uhr."
// With shortInfo only the first ride is announced; the final arrival always
// is.
func Render(legs []journey.Leg, shortInfo bool) string {
	if len(legs) == 0 {
		return ""
	}

	var b strings.Builder

	for i, leg := range legs {
		if leg.Walk {
			fmt.Fprintf(&b, "%d Meter laufen bis %s. ", leg.DistanceM, leg.Destination)
			continue
		}

		if i == 0 {
			fmt.Fprintf(&b, "%s Richtung %s um %s Uhr. ",
				trainTitle(leg), leg.Direction, leg.Departure.Format("15:04"))
		} else {
			fmt.Fprintf(&b, "Umsteigen an %s zu %s Richtung %s um %s Uhr. ",
				leg.Origin, trainTitle(leg), leg.Direction, leg.Departure.Format("15:04"))
		}

		if shortInfo {
			break
		}
	}

	last := legs[len(legs)-1]
	fmt.Fprintf(&b, "Ankunft um %s Uhr.", last.Arrival.Format("15:04"))

	return b.String()
}

// RenderError picks the spoken reply for a failed lookup. Unresolvable
// station names get their own sentence, everything else falls back to the
// generic apology. Never leaks internals to the speaker.
func RenderError(err error) string {
	switch {
	case errors.Is(err, journey.ErrStationNotFound):
		return "Die Station konnte nicht gefunden werden"
	case errors.Is(err, journey.ErrNoDepartureFound):
		return "Es wurde keine passende Verbindung gefunden"
	default:
		return FallbackText
	}
}

// U-Bahn and S-Bahn are announced with their category, "S6" alone sounds off
func trainTitle(leg journey.Leg) string {
	if leg.Category == "U-Bahn" || leg.Category == "S-Bahn" {
		return leg.Category + " " + leg.Train
	}
	return leg.Train
}
