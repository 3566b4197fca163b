package glimpse

// Handler receives the events of a Window.
type Handler interface {
	// HandleEvent processes a single event. Returning true stops the pump.
	HandleEvent(ev Event) (exit bool)

	// Redraw is called once after all pending events were handled.
	Redraw() error
}

// pumpOnce dispatches the pending events to the handler and requests a single
// redraw afterwards. It reports whether the handler asked to exit. No redraw
// happens in that case.
func pumpOnce(events []Event, handler Handler) (exit bool, err error) {
	for _, ev := range events {
		if handler.HandleEvent(ev) {
			return true, nil
		}
	}

	if err := handler.Redraw(); err != nil {
		return false, err
	}

	return false, nil
}
