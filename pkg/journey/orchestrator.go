package journey

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"abfahrt/pkg/rmv"
)

// Orchestrator drives a full lookup: normalize the spoken destination,
// resolve both ends, build the trip request and ask the provider for the
// next connection. One instance serves the whole process lifetime.
type Orchestrator struct {
	client   *rmv.Client
	resolver *Resolver
	home     Home

	// timeOffset is added to "now" when the intent carries no departure
	// time, so the answer leaves room to actually reach the station.
	timeOffset time.Duration

	// The home station is configuration and effectively immutable, so its
	// resolution is cached for the process lifetime. Only successful
	// lookups are cached; a transient provider failure may be retried by
	// the next invocation.
	mu       sync.Mutex
	homeStop *rmv.StopLocation
}

func NewOrchestrator(client *rmv.Client, home Home, timeOffset time.Duration) *Orchestrator {
	return &Orchestrator{
		client:     client,
		resolver:   NewResolver(client),
		home:       home,
		timeOffset: timeOffset,
	}
}

// FindNextDeparture is the single entry point for the intent layer. A nil
// requested time means "depart now" (plus the configured offset, if any).
// Failures come back as *Error naming the stage that broke.
func (o *Orchestrator) FindNextDeparture(destinationText string, requested *time.Time) (*Result, error) {
	effective := Normalize(destinationText, o.home)

	destination, err := o.resolver.Resolve(effective)
	if err != nil {
		return nil, &Error{Stage: StageDestinationResolution, Err: err}
	}

	origin, err := o.homeStation()
	if err != nil {
		return nil, &Error{Stage: StageOriginResolution, Err: err}
	}

	when := requested
	if when == nil && o.timeOffset > 0 {
		t := time.Now().Add(o.timeOffset)
		when = &t
	}

	request, err := BuildRequest(origin, destination, when)
	if err != nil {
		return nil, &Error{Stage: StageRequestBuild, Err: err}
	}

	trips, err := o.client.SearchTrips(request.OriginID, request.DestinationID, request.When)
	if err != nil {
		var apiErr *rmv.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == rmv.KindProtocol {
			return nil, &Error{Stage: StageDepartureLookup, Err: fmt.Errorf("%w: %w", ErrProviderProtocol, err)}
		}
		return nil, &Error{Stage: StageDepartureLookup, Err: fmt.Errorf("%w: %w", ErrProviderUnavailable, err)}
	}

	if len(trips) == 0 {
		return nil, &Error{Stage: StageDepartureLookup, Err: ErrNoDepartureFound}
	}

	// First-match policy, same as station resolution: the provider already
	// ordered the connections, take the first one.
	legs, err := flattenTrip(trips[0])
	if err != nil {
		return nil, &Error{Stage: StageDepartureLookup, Err: fmt.Errorf("%w: %w", ErrProviderProtocol, err)}
	}

	return resultFromLegs(legs, destination.Name), nil
}

// homeStation resolves the configured home station, serving later calls from
// the cache. A pre-resolved station id from the configuration seeds the cache
// without a provider call. The home city is always appended to the lookup
// when configured, independent of the CityOnly policy for destinations.
func (o *Orchestrator) homeStation() (rmv.StopLocation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.homeStop != nil {
		return *o.homeStop, nil
	}

	if o.home.StationID != "" {
		o.homeStop = &rmv.StopLocation{ExtID: o.home.StationID, Name: o.home.StationName}
		return *o.homeStop, nil
	}

	name := o.home.StationName
	if o.home.CityName != "" {
		name = name + " " + o.home.CityName
	}

	stop, err := o.resolver.Resolve(name)
	if err != nil {
		return rmv.StopLocation{}, err
	}

	o.homeStop = &stop
	return stop, nil
}
