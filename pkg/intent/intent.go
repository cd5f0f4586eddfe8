package intent

import (
	"fmt"
	"strings"
	"time"
)

// IntentTrainTo is the only intent this skill handles
const IntentTrainTo = "getTrainTo"

// Message is one recognized voice intent as published by the speech frontend.
type Message struct {
	SessionID string `json:"sessionId"`
	Intent    string `json:"intent"`
	Slots     []Slot `json:"slots,omitempty"`
}

// Slot is a single extracted value, e.g. Location or DepTime
type Slot struct {
	Name  string `json:"slotName"`
	Value string `json:"value"`
}

// SessionEnd is the reply that closes a voice session with spoken text.
type SessionEnd struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

// Slot returns the first slot with the given name.
func (m Message) Slot(name string) (string, bool) {
	for _, s := range m.Slots {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// ParseDepTime reduces a raw DepTime slot value to a concrete departure time
// on the reference day. Frontends deliver values like
// "2019-08-26 18:30:00 +00:00"; only the clock portion is trusted, since the
// speaker means today. Bare "18:30:00" and "18:30" are accepted too.
// An empty value yields nil, meaning "depart now".
func ParseDepTime(raw string, ref time.Time) (*time.Time, error) {
	raw = strings.TrimSpace(strings.SplitN(raw, "+", 2)[0])
	if raw == "" {
		return nil, nil
	}

	fields := strings.Fields(raw)
	clock := fields[len(fields)-1]

	var parsed time.Time
	var err error
	if parsed, err = time.Parse("15:04:05", clock); err != nil {
		if parsed, err = time.Parse("15:04", clock); err != nil {
			return nil, fmt.Errorf("could not parse departure time %q: %w", clock, err)
		}
	}

	t := time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, ref.Location())
	return &t, nil
}
