package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.4/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

type glfwWindow struct {
	win    *glfw.Window
	events eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// the surface is managed by webgpu
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	configureEvents(window, &w.events)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler Handler) error {
	for !g.win.ShouldClose() {
		glfw.PollEvents()

		exit, err := pumpOnce(g.events.drain(), handler)
		if err != nil {
			return err
		}

		if exit {
			return nil
		}
	}

	return nil
}

func configureEvents(window *glfw.Window, events *eventQueue) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		events.push(Event{Kind: EventClose})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		events.push(Event{
			Kind:    EventKey,
			Key:     key,
			Pressed: action == glfw.Press,
		})
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		events.push(Event{
			Kind:   EventResize,
			Width:  uint32(max(width, 0)),
			Height: uint32(max(height, 0)),
		})
	})

	window.SetContentScaleCallback(func(win *glfw.Window, x, y float32) {
		width, height := win.GetFramebufferSize()

		events.push(Event{
			Kind:   EventScaleChanged,
			Width:  uint32(max(width, 0)),
			Height: uint32(max(height, 0)),
			ScaleX: x,
			ScaleY: y,
		})
	})
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unhandled key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}
