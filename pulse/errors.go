package pulse

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var (
	ErrSurfaceLost     = errors.New("surface lost")
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrSurfaceTimeout  = errors.New("surface timeout")
	ErrSurfaceOccluded = errors.New("surface occluded")

	// ErrSurfaceFailed is reported for the unrecoverable acquisition status of
	// wgpu-native. It covers out of memory and an unconfigured surface.
	ErrSurfaceFailed = errors.New("surface failed")
)

// surfaceStatusError maps the status of an acquired surface texture to one of
// the sentinel errors of this package. Both success statuses map to nil.
func surfaceStatusError(status wgpu.SurfaceGetCurrentTextureStatus) error {
	switch status {
	case wgpu.SurfaceGetCurrentTextureStatusSuccessOptimal,
		wgpu.SurfaceGetCurrentTextureStatusSuccessSuboptimal:
		return nil

	case wgpu.SurfaceGetCurrentTextureStatusLost:
		return ErrSurfaceLost

	case wgpu.SurfaceGetCurrentTextureStatusOutdated:
		return ErrSurfaceOutdated

	case wgpu.SurfaceGetCurrentTextureStatusTimeout:
		return ErrSurfaceTimeout

	case wgpu.SurfaceGetCurrentTextureStatusOccluded:
		return ErrSurfaceOccluded

	case wgpu.SurfaceGetCurrentTextureStatusError:
		return ErrSurfaceFailed

	default:
		return fmt.Errorf("unknown surface status %d", uint32(status))
	}
}

// surfaceTexture returns the texture of st if its status is a success.
// The texture is not looked at otherwise.
func surfaceTexture(st wgpu.SurfaceTexture) (*wgpu.Texture, error) {
	if err := surfaceStatusError(st.Status); err != nil {
		return nil, err
	}

	if st.Texture == nil {
		return nil, fmt.Errorf("no texture for status %s: %w", st.Status, ErrSurfaceFailed)
	}

	return st.Texture, nil
}
