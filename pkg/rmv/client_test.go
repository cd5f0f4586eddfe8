package rmv

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_SearchStops(t *testing.T) {
	// Mock JSON response representing a typical location.name payload
	mockJSON := `{
		"stopLocationOrCoordLocation": [
			{"StopLocation": {"id": "A=1@L=3000010", "extId": "3000010", "name": "Frankfurt (Main) Hauptwache"}},
			{"CoordLocation": {"name": "Hauptwache (somewhere)"}},
			{"StopLocation": {"id": "A=1@L=3000011", "extId": "3000011", "name": "Frankfurt (Main) Hauptbahnhof"}}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("accessId") != "test-key" {
			t.Errorf("expected accessId parameter 'test-key', got %q", r.URL.Query().Get("accessId"))
		}
		if r.URL.Query().Get("input") != "Hauptwache Frankfurt" {
			t.Errorf("expected input parameter 'Hauptwache Frankfurt', got %q", r.URL.Query().Get("input"))
		}
		if r.URL.Query().Get("type") != "S" {
			t.Errorf("expected type parameter 'S', got %q", r.URL.Query().Get("type"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	// Temporarily override the unexported global baseURL string
	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("test-key")

	stops, err := client.SearchStops("Hauptwache Frankfurt")
	if err != nil {
		t.Fatalf("unexpected error fetching mocked stops: %v", err)
	}

	// The coordinate-only entry must be dropped
	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}

	if stops[0].ExtID != "3000010" {
		t.Errorf("expected first stop extId 3000010, got %q", stops[0].ExtID)
	}
	if stops[1].Name != "Frankfurt (Main) Hauptbahnhof" {
		t.Errorf("unexpected second stop name: %q", stops[1].Name)
	}
}

func TestClient_SearchTrips(t *testing.T) {
	mockJSON := `{
		"Trip": [
			{
				"LegList": {
					"Leg": [
						{
							"Origin": {"name": "Bad Vilbel Bahnhof", "time": "18:30:00", "date": "2019-08-26", "track": "2"},
							"Destination": {"name": "Frankfurt (Main) Hauptwache", "time": "18:52:00", "date": "2019-08-26"},
							"name": "S6",
							"direction": "Frankfurt (Main) Südbahnhof",
							"Product": {"catOutL": "S-Bahn"}
						}
					]
				}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("originExtId") != "3001234" {
			t.Errorf("expected originExtId 3001234, got %q", r.URL.Query().Get("originExtId"))
		}
		if r.URL.Query().Get("destExtId") != "3000010" {
			t.Errorf("expected destExtId 3000010, got %q", r.URL.Query().Get("destExtId"))
		}
		if r.URL.Query().Get("time") != "18:15:00" {
			t.Errorf("expected time parameter 18:15:00, got %q", r.URL.Query().Get("time"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("test-key")

	dep := time.Date(2019, 8, 26, 18, 15, 0, 0, time.UTC)
	trips, err := client.SearchTrips("3001234", "3000010", &dep)
	if err != nil {
		t.Fatalf("unexpected error fetching mocked trips: %v", err)
	}

	if len(trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(trips))
	}

	legs := trips[0].LegList.Legs
	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(legs))
	}
	if legs[0].Origin.Track != "2" {
		t.Errorf("expected track 2, got %q", legs[0].Origin.Track)
	}
	if legs[0].Product == nil || legs[0].Product.CatOutL != "S-Bahn" {
		t.Errorf("expected S-Bahn product, got %+v", legs[0].Product)
	}
}

func TestClient_SearchTrips_NoTimeParameter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("time") {
			t.Errorf("expected no time parameter for a depart-now query, got %q", r.URL.Query().Get("time"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Trip": []}`))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("test-key")

	trips, err := client.SearchTrips("3001234", "3000010", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 0 {
		t.Errorf("expected empty trip list, got %d", len(trips))
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{name: "auth rejected", status: http.StatusForbidden, body: "", wantKind: KindUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "", wantKind: KindUnavailable},
		{name: "malformed payload", status: http.StatusOK, body: "not json {", wantKind: KindProtocol},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			originalBaseURL := baseURL
			baseURL = server.URL
			defer func() { baseURL = originalBaseURL }()

			client := NewClient("very-secret-key")

			_, err := client.SearchStops("Hauptwache")
			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T (%v)", err, err)
			}
			if apiErr.Kind != tc.wantKind {
				t.Errorf("expected error kind %d, got %d", tc.wantKind, apiErr.Kind)
			}

			// The access key must never leak into error messages
			if strings.Contains(err.Error(), "very-secret-key") {
				t.Errorf("error message leaks the access key: %s", err.Error())
			}
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	// Point the client at a closed server to force a transport error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	originalBaseURL := baseURL
	baseURL = serverURL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("test-key")

	_, err := client.SearchStops("Hauptwache")
	if err == nil {
		t.Fatalf("expected network error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != KindUnavailable {
		t.Errorf("expected KindUnavailable for a transport error, got %d", apiErr.Kind)
	}
}
