package geom

import "github.com/gogpu/gputypes"

// VertexLayout describes the memory layout of the Vertices slice for
// pipeline creation: one tightly packed float32x2 attribute at shader
// location 0.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 8,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}

// IndexFormat returns the index format matching the buffer's index width.
func IndexFormat[I IndexType]() gputypes.IndexFormat {
	if ^I(0) == 65535 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}
