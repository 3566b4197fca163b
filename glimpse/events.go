package glimpse

type EventKind uint8

const (
	EventClose EventKind = iota + 1
	EventKey
	EventResize
	EventScaleChanged
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "Close"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventScaleChanged:
		return "ScaleChanged"
	default:
		return "Unknown"
	}
}

type Event struct {
	Kind EventKind

	// set for EventKey
	Key     Key
	Pressed bool

	// new framebuffer size, set for EventResize and EventScaleChanged
	Width, Height uint32

	// content scale, set for EventScaleChanged
	ScaleX, ScaleY float32
}

// eventQueue collects the events emitted by window callbacks
// between two calls to drain.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// drain returns all pending events. The queue starts over with a fresh
// slice, so events pushed later never alias the returned ones.
func (q *eventQueue) drain() []Event {
	events := q.events
	q.events = nil
	return events
}
