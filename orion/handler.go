package orion

import (
	"log/slog"

	"github.com/oliverbestmann/triangle/glimpse"
)

// resizer is the part of the Renderer the event handler drives.
type resizer interface {
	Resize(width, height uint32) bool
	Render() error
}

// eventHandler forwards window events to the renderer.
type eventHandler struct {
	renderer resizer
}

func (h *eventHandler) HandleEvent(ev glimpse.Event) bool {
	switch ev.Kind {
	case glimpse.EventClose:
		slog.Info("Window close requested")
		return true

	case glimpse.EventKey:
		if ev.Key == glimpse.KeyEscape && ev.Pressed {
			slog.Info("Escape pressed, closing window")
			return true
		}

	case glimpse.EventResize, glimpse.EventScaleChanged:
		h.renderer.Resize(ev.Width, ev.Height)
	}

	return false
}

func (h *eventHandler) Redraw() error {
	return h.renderer.Render()
}
