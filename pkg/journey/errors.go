package journey

import "errors"

var (
	// ErrStationNotFound means the provider had no candidate for the name.
	ErrStationNotFound = errors.New("no matching station found")
	// ErrProviderUnavailable covers network, auth and rate-limit failures.
	// This is the only condition worth retrying with backoff.
	ErrProviderUnavailable = errors.New("transit provider unavailable")
	// ErrProviderProtocol means the provider answered with a payload we
	// could not make sense of.
	ErrProviderProtocol = errors.New("unexpected transit provider response")
	// ErrNoDepartureFound means the trip query succeeded but came back empty.
	ErrNoDepartureFound = errors.New("no departure found")
)

// Stage names the pipeline step a lookup failed in.
type Stage string

const (
	StageOriginResolution      Stage = "origin resolution"
	StageDestinationResolution Stage = "destination resolution"
	StageRequestBuild          Stage = "request build"
	StageDepartureLookup       Stage = "departure lookup"
)

// Error wraps a lower-level failure with the stage it happened in.
// errors.Is and errors.As reach through to the inner cause.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
