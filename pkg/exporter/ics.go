package exporter

import (
	"fmt"
	"io"
	"time"

	"abfahrt/pkg/journey"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes the found connection as a single calendar event spanning
// first departure to final arrival, with the legs listed in the description.
func GenerateICS(result *journey.Result, w io.Writer) error {
	if result == nil || len(result.Legs) == 0 {
		return fmt.Errorf("no journey to export")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	first := result.Legs[0]
	last := result.Legs[len(result.Legs)-1]

	event := cal.AddEvent(fmt.Sprintf("%s-journey", first.Departure.Format("20060102T150405Z")))
	event.SetCreatedTime(time.Now())
	event.SetDtStampTime(time.Now())
	event.SetModifiedAt(time.Now())
	event.SetStartAt(first.Departure)
	event.SetEndAt(last.Arrival)
	event.SetSummary(fmt.Sprintf("🚆 Fahrt nach %s", result.Destination))
	event.SetLocation(first.Origin)

	desc := "Verbindung:\n"
	for i, leg := range result.Legs {
		name := leg.Train
		if leg.Walk {
			name = fmt.Sprintf("%d m Fußweg", leg.DistanceM)
		}
		desc += fmt.Sprintf("%d. [%s] %s -> %s\n",
			i+1, leg.Departure.Format("15:04"), name, leg.Destination)
	}
	event.SetDescription(desc)

	return cal.SerializeTo(w)
}
