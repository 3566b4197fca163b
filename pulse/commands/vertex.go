package commands

import (
	"structs"
	"unsafe"

	"github.com/oliverbestmann/triangle/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
	Color    glm.Vec3f
}

// Vertices is the triangle drawn every frame, in counter clockwise order.
var Vertices = []Vertex{
	{Position: glm.Vec3f{0.0, 0.5, 0.0}, Color: glm.Vec3f{1.0, 0.0, 0.0}},
	{Position: glm.Vec3f{-0.5, -0.5, 0.0}, Color: glm.Vec3f{0.0, 1.0, 0.0}},
	{Position: glm.Vec3f{0.5, -0.5, 0.0}, Color: glm.Vec3f{0.0, 0.0, 1.0}},
}

// vertexCount is the number of vertices covered by a draw of Vertices.
func vertexCount() uint32 {
	return uint32(len(Vertices))
}

// VertexBufferLayout describes the memory layout of Vertex to the pipeline.
var VertexBufferLayout = wgpu.VertexBufferLayout{
	ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{
			// position
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
			ShaderLocation: 0,
		},
		{
			// color
			Format:         wgpu.VertexFormatFloat32x3,
			Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
			ShaderLocation: 1,
		},
	},
}
