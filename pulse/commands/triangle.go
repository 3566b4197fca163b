package commands

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed triangle.wgsl
var triangleShaderCode string

// TriangleCommand draws the constant Vertices after clearing the target.
type TriangleCommand struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	pipelineCache *pulse.PipelineCache[trianglePipeline]

	bufVertices *wgpu.Buffer
}

func NewTriangleCommand(ctx *pulse.Context) (*TriangleCommand, error) {
	bufVertices, err := ctx.Device.TryCreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Triangle.Vertices",
		Contents: wgpu.ToBytes(Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})

	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	c := &TriangleCommand{
		device:      ctx.Device,
		queue:       ctx.Queue,
		bufVertices: bufVertices,
	}

	c.pipelineCache = pulse.NewPipelineCache[trianglePipeline](ctx)

	return c, nil
}

// Prepare builds the pipeline for the given target format ahead of the first frame.
func (c *TriangleCommand) Prepare(format wgpu.TextureFormat) error {
	_, err := c.pipelineCache.Get(trianglePipeline{TargetFormat: format, TargetSampleCount: 1})
	return err
}

// VertexCount returns the number of vertices covered by each draw call.
func (c *TriangleCommand) VertexCount() uint32 {
	return vertexCount()
}

// Draw clears the target to the given color and draws the triangle in a single pass.
func (c *TriangleCommand) Draw(target *pulse.RenderTarget, clearColor pulse.Color) error {
	pipelineConfig := trianglePipeline{
		TargetFormat:      target.Format,
		TargetSampleCount: target.SampleCount,
	}

	pipeline, err := c.pipelineCache.Get(pipelineConfig)
	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	encoder, err := c.device.TryCreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Triangle"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassTriangle",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor.ToWGPU(),
			},
		},
	})

	passGuard := pulse.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline)
	pass.SetVertexBuffer(0, c.bufVertices, 0, wgpu.WholeSize)
	pass.Draw(vertexCount(), 1, 0, 0)

	if err := pass.TryEnd(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.TryFinish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmdBuffer.Release()

	c.queue.Submit(cmdBuffer)

	return nil
}

func (c *TriangleCommand) Release() {
	c.pipelineCache.Release()

	if c.bufVertices != nil {
		c.bufVertices.Release()
		c.bufVertices = nil
	}
}

type trianglePipeline struct {
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
}

func (conf trianglePipeline) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for triangle",
		slog.Any("format", conf.TargetFormat),
		slog.Any("sampleCount", conf.TargetSampleCount),
	)

	shader, err := dev.TryCreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Triangle.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: triangleShaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile triangle shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Triangle.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{VertexBufferLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  conf.TargetSampleCount,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.TryCreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build triangle pipeline: %w", err)
	}

	return pipeline, nil
}
