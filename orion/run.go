package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/glimpse"
	"github.com/oliverbestmann/triangle/pulse"
	"github.com/oliverbestmann/triangle/pulse/commands"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// background color of every frame, DefaultClearColor if nil
	ClearColor *pulse.Color

	ForceFallbackAdapter bool
}

var DefaultClearColor = pulse.ColorLinearRGBA(0.118, 0.118, 0.18, 1.0)

// Run opens the window and draws the triangle until the window is closed.
// Errors returned are fatal.
func Run(opts RunOptions) error {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Triangle"
	}

	clearColor := DefaultClearColor
	if opts.ClearColor != nil {
		clearColor = *opts.ClearColor
	}

	// create a new window
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), pulse.Options{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view, err := pulse.NewView(ctx)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	triangle, err := commands.NewTriangleCommand(ctx)
	if err != nil {
		return fmt.Errorf("create triangle: %w", err)
	}

	defer triangle.Release()

	slog.Info("Uploaded vertex buffer", slog.Int("vertexCount", int(triangle.VertexCount())))

	if err := triangle.Prepare(view.Format()); err != nil {
		return fmt.Errorf("prepare pipeline: %w", err)
	}

	width, height := win.GetSize()
	renderer := NewRenderer(surfaceAdapter{view: view}, triangle, clearColor, width, height)

	return win.Run(&eventHandler{renderer: renderer})
}
