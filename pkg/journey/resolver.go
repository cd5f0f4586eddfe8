package journey

import (
	"errors"
	"fmt"

	"abfahrt/pkg/rmv"
)

// Resolver turns a free-text station name into a single concrete stop.
type Resolver struct {
	client *rmv.Client
}

func NewResolver(client *rmv.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve queries the provider's station search and always picks the first
// candidate of its relevance-ordered list. The list is never re-ranked
// locally; disambiguation is the caller's job, via the spoken query or the
// home-city suffix. No retries happen here.
func (r *Resolver) Resolve(name string) (rmv.StopLocation, error) {
	stops, err := r.client.SearchStops(name)
	if err != nil {
		var apiErr *rmv.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == rmv.KindProtocol {
			return rmv.StopLocation{}, fmt.Errorf("%w: %w", ErrProviderProtocol, err)
		}
		return rmv.StopLocation{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if len(stops) == 0 {
		return rmv.StopLocation{}, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}

	// A candidate without an id cannot be queried against and counts as a
	// broken payload, not a missing station
	if stops[0].ExtID == "" {
		return rmv.StopLocation{}, fmt.Errorf("%w: candidate for %q has no station id", ErrProviderProtocol, name)
	}

	return stops[0], nil
}
