package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Typed OpenGL object names. The zero value never names a live object.
type (
	Shader      uint32
	Program     uint32
	VertexArray uint32
	Buffer      uint32
)

type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// GL is the subset of the OpenGL API used to set up a rendering pipeline.
// Implementations assume the owning context is current on the calling thread.
type GL interface {
	CreateShader(kind ShaderKind) Shader
	// ShaderSource supplies src with its exact byte length.
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)
	GetUniformLocation(p Program, name string) int32
	// UniformMatrix4 uploads m in column-major order without transposition.
	UniformMatrix4(location int32, m mgl32.Mat4)

	GenVertexArray() VertexArray
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)
	GenBuffer() Buffer
	BindArrayBuffer(b Buffer)
	DeleteBuffer(b Buffer)

	// EnableAlphaBlend enables blending with SRC_ALPHA, ONE_MINUS_SRC_ALPHA.
	EnableAlphaBlend()
	// Ortho2D loads a fixed-function orthographic projection with near -1 and far 1.
	Ortho2D(left, right, bottom, top float64)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
}
