package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ErrNoAdapter is returned by New if no adapter or device could be acquired
// that is able to render to the given surface.
var ErrNoAdapter = errors.New("no compatible gpu adapter found")

func init() {
	// glfw and wgpu-native both need to run on the main thread
	runtime.LockOSThread()
}

// SetLogLevel configures the log level of wgpu-native. An empty or
// unknown level leaves the current level untouched.
func SetLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

type Options struct {
	// ForceFallbackAdapter requests the software adapter
	ForceFallbackAdapter bool
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

func New(sd *wgpu.SurfaceDescriptor, opts Options) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w: %w", ErrNoAdapter, err)
	}

	if st.Adapter == nil {
		return st, fmt.Errorf("request adapter: %w", ErrNoAdapter)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w: %w", ErrNoAdapter, err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("Acquired gpu device",
		slog.Bool("fallbackAdapter", opts.ForceFallbackAdapter),
	)

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
