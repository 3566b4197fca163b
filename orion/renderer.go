package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/pulse"
)

// The surface is only reconfigured if the new size exceeds these bounds.
const (
	MinSurfaceWidth  = 0
	MinSurfaceHeight = 0
)

// Surface is the presentable target a Renderer draws to. *pulse.View
// implements this through surfaceAdapter.
type Surface interface {
	Configure(width, height uint32)
	AcquireFrame() (Frame, error)
}

type Frame interface {
	Target() *pulse.RenderTarget
	Present()
	Release()
}

type Drawer interface {
	Draw(target *pulse.RenderTarget, clearColor pulse.Color) error
}

// Renderer draws one frame per call to Render and keeps the
// surface configured with the current window size.
type Renderer struct {
	surface    Surface
	drawer     Drawer
	clearColor pulse.Color

	width  uint32
	height uint32

	times FrameTimes
}

// NewRenderer configures the surface with the initial size.
func NewRenderer(surface Surface, drawer Drawer, clearColor pulse.Color, width, height uint32) *Renderer {
	r := &Renderer{
		surface:    surface,
		drawer:     drawer,
		clearColor: clearColor,
		width:      width,
		height:     height,
	}

	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	surface.Configure(width, height)

	return r
}

// Size returns the size the surface was last configured with.
func (r *Renderer) Size() (width, height uint32) {
	return r.width, r.height
}

// Resize reconfigures the surface if both dimensions exceed the minimum
// surface size. Smaller sizes are ignored.
func (r *Renderer) Resize(width, height uint32) bool {
	if width <= MinSurfaceWidth || height <= MinSurfaceHeight {
		return false
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	r.width = width
	r.height = height
	r.surface.Configure(width, height)

	return true
}

// Render draws and presents a single frame. Only fatal errors are returned,
// a frame that can not be acquired for any other reason is skipped.
func (r *Renderer) Render() error {
	frame, err := r.surface.AcquireFrame()

	switch {
	case errors.Is(err, pulse.ErrSurfaceLost):
		slog.Warn("Surface lost, reconfiguring")
		r.Resize(r.width, r.height)
		return nil

	case errors.Is(err, pulse.ErrSurfaceFailed):
		// out of memory or otherwise unrecoverable
		return fmt.Errorf("acquire frame: %w", err)

	case err != nil:
		slog.Error("Skipping frame", slog.String("err", err.Error()))
		return nil
	}

	defer frame.Release()

	if err := r.drawer.Draw(frame.Target(), r.clearColor); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}

	frame.Present()

	if r.times.Tick() {
		slog.Debug("Frame times",
			slog.Float64("fps", r.times.FPS()),
			slog.Duration("max", r.times.MaxDuration),
		)
	}

	return nil
}

// FrameTimes returns the timing statistics of all presented frames.
func (r *Renderer) FrameTimes() FrameTimes {
	return r.times
}

type surfaceAdapter struct {
	view *pulse.View
}

func (s surfaceAdapter) Configure(width, height uint32) {
	s.view.Configure(width, height)
}

func (s surfaceAdapter) AcquireFrame() (Frame, error) {
	frame, err := s.view.AcquireFrame()
	if err != nil {
		return nil, err
	}

	return frame, nil
}
