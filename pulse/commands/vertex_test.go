package commands

import (
	"testing"
	"unsafe"

	"github.com/oliverbestmann/triangle/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestVerticesAreOneTriangle(t *testing.T) {
	if len(Vertices) != 3 {
		t.Fatalf("expected exactly 3 vertices, got %d", len(Vertices))
	}
}

func TestVertexCountCoversAllVertices(t *testing.T) {
	if got := vertexCount(); got != uint32(len(Vertices)) {
		t.Fatalf("expected draw to cover %d vertices, got %d", len(Vertices), got)
	}

	if got := vertexCount(); got%3 != 0 {
		t.Fatalf("expected a multiple of 3 vertices for a triangle list, got %d", got)
	}
}

func TestVertexLayout(t *testing.T) {
	if size := unsafe.Sizeof(Vertex{}); size != 24 {
		t.Fatalf("expected vertex size of 24 bytes, got %d", size)
	}

	if VertexBufferLayout.ArrayStride != 24 {
		t.Fatalf("expected stride 24, got %d", VertexBufferLayout.ArrayStride)
	}

	if VertexBufferLayout.StepMode != wgpu.VertexStepModeVertex {
		t.Fatalf("expected per vertex step mode")
	}

	attrs := VertexBufferLayout.Attributes
	if len(attrs) != 2 {
		t.Fatalf("expected two attributes, got %d", len(attrs))
	}

	tests := []struct {
		name     string
		offset   uint64
		location uint32
	}{
		{"position", 0, 0},
		{"color", 12, 1},
	}

	for idx, tt := range tests {
		attr := attrs[idx]

		if attr.Offset != tt.offset {
			t.Fatalf("%s: expected offset %d, got %d", tt.name, tt.offset, attr.Offset)
		}

		if attr.ShaderLocation != tt.location {
			t.Fatalf("%s: expected location %d, got %d", tt.name, tt.location, attr.ShaderLocation)
		}

		if attr.Format != wgpu.VertexFormatFloat32x3 {
			t.Fatalf("%s: expected Float32x3", tt.name)
		}
	}
}

func TestVertexBytes(t *testing.T) {
	data := wgpu.ToBytes(Vertices)
	if len(data) != len(Vertices)*24 {
		t.Fatalf("expected %d bytes of vertex data, got %d", len(Vertices)*24, len(data))
	}
}

func TestTriangleIsCounterClockwise(t *testing.T) {
	if !isCounterClockwise(Vertices) {
		t.Fatalf("triangle would be removed by back face culling")
	}

	flipped := []Vertex{Vertices[0], Vertices[2], Vertices[1]}
	if isCounterClockwise(flipped) {
		t.Fatalf("expected flipped triangle to be clockwise")
	}

	degenerate := []Vertex{
		{Position: glm.Vec3f{0, 0, 0}},
		{Position: glm.Vec3f{1, 1, 0}},
		{Position: glm.Vec3f{2, 2, 0}},
	}

	if isCounterClockwise(degenerate) {
		t.Fatalf("expected degenerate triangle to not count as front facing")
	}
}

// isCounterClockwise reports if every triangle in vertices faces the viewer
// when looking down the negative z axis.
func isCounterClockwise(vertices []Vertex) bool {
	for idx := 0; idx+3 <= len(vertices); idx += 3 {
		a := vertices[idx].Position
		b := vertices[idx+1].Position
		c := vertices[idx+2].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		if _, _, z := normal.XYZ(); z <= 0 {
			return false
		}
	}

	return true
}
