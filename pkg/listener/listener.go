// Package listener consumes recognized voice intents from the message bus
// and answers them by ending the voice session with a spoken reply.
package listener

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"abfahrt/pkg/intent"
	"abfahrt/pkg/journey"
	"abfahrt/pkg/speech"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// SubjectIntent carries recognized intents from the speech frontend.
	SubjectIntent = "voice.intent.trainto"
	// SubjectSessionEnd carries the spoken reply that closes a session.
	SubjectSessionEnd = "voice.session.end"
)

var (
	intentCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listener_intent_count",
		Help: "Number of voice intents received",
	})
	failureCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listener_failure_count",
		Help: "Number of intents that could not be answered with a journey",
	})
)

func init() {
	prometheus.MustRegister(intentCount, failureCount)
}

// Listener wires the orchestrator to the intent subjects on NATS.
type Listener struct {
	nc        *nats.Conn
	orch      *journey.Orchestrator
	shortInfo bool
}

func New(nc *nats.Conn, orch *journey.Orchestrator, shortInfo bool) *Listener {
	return &Listener{nc: nc, orch: orch, shortInfo: shortInfo}
}

// HandleIntent answers a single decoded intent. The second return value is
// false when the message is not ours to answer (unknown intent name).
// Sessions arriving without an id get one, so the reply stays addressable.
func (l *Listener) HandleIntent(msg intent.Message) (intent.SessionEnd, bool) {
	if msg.Intent != intent.IntentTrainTo {
		log.Printf("unknown intent %q, ignoring", msg.Intent)
		return intent.SessionEnd{}, false
	}

	intentCount.Inc()

	if msg.SessionID == "" {
		msg.SessionID = uuid.NewString()
	}

	reply := intent.SessionEnd{SessionID: msg.SessionID}

	location, ok := msg.Slot("Location")
	if !ok || location == "" {
		failureCount.Inc()
		reply.Text = speech.FallbackText
		return reply, true
	}

	// A broken DepTime slot degrades to "depart now", same as no slot at all
	depRaw, _ := msg.Slot("DepTime")
	when, err := intent.ParseDepTime(depRaw, time.Now())
	if err != nil {
		log.Printf("ignoring unparseable DepTime slot: %v", err)
		when = nil
	}

	result, err := l.orch.FindNextDeparture(location, when)
	if err != nil {
		failureCount.Inc()
		log.Printf("journey lookup failed: %v", err)
		reply.Text = speech.RenderError(err)
		return reply, true
	}

	reply.Text = speech.Render(result.Legs, l.shortInfo)
	return reply, true
}

// Run subscribes to the intent subject and serves until the context ends.
func (l *Listener) Run(ctx context.Context) error {
	sub, err := l.nc.Subscribe(SubjectIntent, func(m *nats.Msg) {
		var msg intent.Message
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			log.Printf("discarding malformed intent message: %v", err)
			return
		}

		reply, handled := l.HandleIntent(msg)
		if !handled {
			return
		}

		data, err := json.Marshal(reply)
		if err != nil {
			log.Printf("could not serialize session reply: %v", err)
			return
		}
		if err := l.nc.Publish(SubjectSessionEnd, data); err != nil {
			log.Printf("could not publish session reply: %v", err)
		}
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	log.Printf("listening for intents on %s", SubjectIntent)

	<-ctx.Done()
	return l.nc.Drain()
}
