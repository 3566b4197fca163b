package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View owns the configuration of the surface the window presents to.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(dev *Context) (*View, error) {
	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface is not supported by the adapter")
	}

	st := &View{Context: dev}

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	return st, nil
}

// Format returns the pixel format the surface is configured with.
func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Configure(width, height uint32) {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)
}

// AcquireFrame gets the next texture to present. A surface status other than
// success is reported as one of the sentinel errors of this package.
func (vs *View) AcquireFrame() (*Frame, error) {
	st, err := vs.Surface.TryGetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	texture, err := surfaceTexture(st)
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	view, err := texture.TryCreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create texture view: %w", err)
	}

	frame := &Frame{
		surface: vs.Surface,
		texture: texture,
		view:    view,
		target: RenderTarget{
			View:        view,
			Format:      vs.surfaceConfig.Format,
			Width:       texture.GetWidth(),
			Height:      texture.GetHeight(),
			SampleCount: 1,
		},
	}

	return frame, nil
}
