package journey

import (
	"testing"
	"time"

	"abfahrt/pkg/rmv"
)

func TestBuildRequest(t *testing.T) {
	origin := rmv.StopLocation{ExtID: "3001234", Name: "Bad Vilbel Bahnhof"}
	dest := rmv.StopLocation{ExtID: "3000010", Name: "Frankfurt (Main) Hauptwache"}

	dep := time.Date(2026, 3, 4, 16, 33, 0, 0, time.UTC)

	req, err := BuildRequest(origin, dest, &dep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.OriginID != "3001234" || req.DestinationID != "3000010" {
		t.Errorf("unexpected ids in request: %+v", req)
	}
	if req.When == nil || !req.When.Equal(dep) {
		t.Errorf("expected requested time to pass through, got %v", req.When)
	}
}

func TestBuildRequest_AbsentTimeStaysAbsent(t *testing.T) {
	origin := rmv.StopLocation{ExtID: "3001234"}
	dest := rmv.StopLocation{ExtID: "3000010"}

	req, err := BuildRequest(origin, dest, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No default "now" timestamp may be baked in; nil signals depart-now
	if req.When != nil {
		t.Errorf("expected absent time to stay absent, got %v", req.When)
	}
}

func TestBuildRequest_SameStationAllowed(t *testing.T) {
	stop := rmv.StopLocation{ExtID: "3000010", Name: "Frankfurt (Main) Hauptwache"}

	// A journey within one station complex is for the provider to judge
	if _, err := BuildRequest(stop, stop, nil); err != nil {
		t.Errorf("expected same-station request to build, got %v", err)
	}
}

func TestBuildRequest_RejectsUnresolvedStops(t *testing.T) {
	resolved := rmv.StopLocation{ExtID: "3000010"}
	unresolved := rmv.StopLocation{Name: "Hauptwache"}

	if _, err := BuildRequest(unresolved, resolved, nil); err == nil {
		t.Errorf("expected error for unresolved origin")
	}
	if _, err := BuildRequest(resolved, unresolved, nil); err == nil {
		t.Errorf("expected error for unresolved destination")
	}
}
