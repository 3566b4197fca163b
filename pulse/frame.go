package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// Frame is a single acquired surface texture. It must be released
// after use, whether or not it was presented.
type Frame struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView
	target  RenderTarget

	presented bool
}

func (f *Frame) Target() *RenderTarget {
	return &f.target
}

func (f *Frame) Present() {
	f.surface.Present()
	f.presented = true
}

func (f *Frame) Release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}

	// we do not need to release the texture if present was successful
	if f.texture != nil && !f.presented {
		f.texture.Release()
	}

	f.texture = nil
}
