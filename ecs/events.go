package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Grapple episode events, with the player entity as Data.
const (
	EventGrappleBegan    = "grapple_began"
	EventGrappleFinished = "grapple_finished"
)

// EventQueue is a simple FIFO queue shared by every system in a pass.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the queued events without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
