package glimpse

import "github.com/go-gl/glfw/v3.4/glfw"

type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeySpace:  KeySpace,
}
