package rmv

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var baseURL = "https://www.rmv.de/hapi"

const (
	endpointLocation = "location.name"
	endpointTrip     = "trip"

	// maxCandidates caps the station search result list; the HAPI default
	// is far larger than a voice answer ever needs
	maxCandidates = 5
)

// Client interacts with the RMV HAPI (HAFAS ReST) endpoints.
// The access key is attached to every request and never logged.
type Client struct {
	httpClient *http.Client
	accessID   string
	baseURL    string
}

func NewClient(accessID string) *Client {
	return NewClientWithURL(accessID, baseURL)
}

// NewClientWithURL points the client at a different HAPI deployment.
// Mostly useful for tests talking to a local mock server.
func NewClientWithURL(accessID, base string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		accessID:   accessID,
		baseURL:    base,
	}
}

// get performs a single request against one endpoint. No retries here: the
// only retryable condition (KindUnavailable) is handled by outer callers.
func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	params.Set("accessId", c.accessID)
	params.Set("format", "json")

	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, &APIError{Kind: KindUnavailable, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", "abfahrt/1.0")

	requestCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		// url.Error repeats the full request URL, which carries the
		// access key. Keep only the underlying cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &APIError{Kind: KindUnavailable, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		return nil, &APIError{Kind: KindUnavailable, Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
		return nil, &APIError{Kind: KindUnavailable, Endpoint: endpoint, Err: err}
	}

	return body, nil
}

// SearchStops resolves a free-text station name into candidate stops,
// in the provider's own relevance order.
func (c *Client) SearchStops(input string) ([]StopLocation, error) {
	params := url.Values{}
	params.Set("type", "S")
	params.Set("maxNo", strconv.Itoa(maxCandidates))
	params.Set("input", input)

	body, err := c.get(endpointLocation, params)
	if err != nil {
		return nil, err
	}

	var locResp LocationResponse
	if err := json.Unmarshal(body, &locResp); err != nil {
		errorCount.With(prometheus.Labels{"endpoint": endpointLocation}).Inc()
		return nil, &APIError{Kind: KindProtocol, Endpoint: endpointLocation, Err: err}
	}

	// Coordinate hits carry no StopLocation, skip them
	var stops []StopLocation
	for _, entry := range locResp.Locations {
		if entry.StopLocation != nil {
			stops = append(stops, *entry.StopLocation)
		}
	}

	return stops, nil
}

// SearchTrips queries connections between two resolved stop ids. A nil
// depTime means "depart now" and sends no time parameter at all.
func (c *Client) SearchTrips(originExtID, destExtID string, depTime *time.Time) ([]Trip, error) {
	params := url.Values{}
	params.Set("originExtId", originExtID)
	params.Set("destExtId", destExtID)

	if depTime != nil {
		params.Set("time", depTime.Format("15:04:05"))
	}

	body, err := c.get(endpointTrip, params)
	if err != nil {
		return nil, err
	}

	var tripResp TripResponse
	if err := json.Unmarshal(body, &tripResp); err != nil {
		errorCount.With(prometheus.Labels{"endpoint": endpointTrip}).Inc()
		return nil, &APIError{Kind: KindProtocol, Endpoint: endpointTrip, Err: err}
	}

	return tripResp.Trips, nil
}
