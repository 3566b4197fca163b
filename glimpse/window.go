package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	// GetSize returns the size of the framebuffer in physical pixels
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run pumps window events into the handler until the handler
	// asks to exit or the redraw fails
	Run(handler Handler) error
	Terminate()
}
