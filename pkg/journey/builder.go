package journey

import (
	"fmt"
	"time"

	"abfahrt/pkg/rmv"
)

// Request is a fully resolved trip query. Both stop ids are non-empty by
// construction; a nil When means "depart now" and sends no time parameter.
type Request struct {
	OriginID      string
	DestinationID string
	When          *time.Time
}

// BuildRequest assembles a trip request from two resolved stops. Pure
// construction, no I/O. Origin and destination may share an id; journeys
// within the same station complex are the provider's call to reject.
func BuildRequest(origin, destination rmv.StopLocation, when *time.Time) (Request, error) {
	if origin.ExtID == "" || destination.ExtID == "" {
		return Request{}, fmt.Errorf("both stops must be resolved before building a trip request")
	}

	return Request{
		OriginID:      origin.ExtID,
		DestinationID: destination.ExtID,
		When:          when,
	}, nil
}
