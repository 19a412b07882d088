package audit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Event struct {
	BarbershopID uuid.UUID
	UserID       *uuid.UUID
	Action       string
	Entity       string
	EntityID     *uuid.UUID
	Metadata     any
}

// Sink persists one audit event.
type Sink interface {
	Log(ev Event) error
}

// Dispatcher decouples audit writes from request handling: events go through
// a buffered queue and a single worker, and a full queue drops events rather
// than blocking the API.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
