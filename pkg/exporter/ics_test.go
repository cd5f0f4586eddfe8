package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"abfahrt/pkg/journey"
)

func TestGenerateICS(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("could not load timezone: %v", err)
	}

	result := &journey.Result{
		Destination: "Frankfurt (Main) Willy-Brandt-Platz",
		Legs: []journey.Leg{
			{
				Departure:   time.Date(2026, 3, 4, 18, 30, 0, 0, loc),
				Arrival:     time.Date(2026, 3, 4, 18, 52, 0, 0, loc),
				Origin:      "Bad Vilbel Bahnhof",
				Destination: "Frankfurt (Main) Willy-Brandt-Platz",
				Train:       "S6",
				Category:    "S-Bahn",
			},
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS(result, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:🚆 Fahrt nach Frankfurt (Main) Willy-Brandt-Platz") {
		t.Errorf("expected ICS to contain the journey summary, got:\n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Bad Vilbel Bahnhof") {
		t.Errorf("expected ICS to contain the origin as location")
	}

	// 04-Mar-2026 18:30 Berlin time is 17:30 UTC.
	if !strings.Contains(output, "DTSTART:20260304T173000Z") {
		t.Errorf("expected start time string in ICS (should be UTC), got:\n%s", output)
	}
	if !strings.Contains(output, "DTEND:20260304T175200Z") {
		t.Errorf("expected end time string in ICS (should be UTC), got:\n%s", output)
	}
}

func TestGenerateICS_NoJourney(t *testing.T) {
	var buf bytes.Buffer

	if err := GenerateICS(nil, &buf); err == nil {
		t.Errorf("expected error for nil journey")
	}
	if err := GenerateICS(&journey.Result{}, &buf); err == nil {
		t.Errorf("expected error for journey without legs")
	}
}
