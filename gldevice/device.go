// Package gldevice implements graphics.GL on top of the go-gl bindings.
package gldevice

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goparticles/graphics"
)

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Load initializes the OpenGL function pointers for the current context.
// It must be called after a context has been made current.
func Load() (graphics.GL, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, glInitErr
	}
	return Device{}, nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Device forwards graphics.GL calls to the loaded OpenGL functions.
type Device struct{}

var _ graphics.GL = Device{}

func shaderType(kind graphics.ShaderKind) uint32 {
	switch kind {
	case graphics.VertexShader:
		return gl.VERTEX_SHADER
	case graphics.FragmentShader:
		return gl.FRAGMENT_SHADER
	default:
		panic(fmt.Sprintf("gldevice: unsupported shader kind %d", kind))
	}
}

func (Device) CreateShader(kind graphics.ShaderKind) graphics.Shader {
	return graphics.Shader(gl.CreateShader(shaderType(kind)))
}

func (Device) ShaderSource(s graphics.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	length := int32(len(src))
	gl.ShaderSource(uint32(s), 1, csources, &length)
	free()
}

func (Device) CompileShader(s graphics.Shader) {
	gl.CompileShader(uint32(s))
}

func (Device) ShaderCompiled(s graphics.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ShaderInfoLog(s graphics.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (Device) DeleteShader(s graphics.Shader) {
	gl.DeleteShader(uint32(s))
}

func (Device) CreateProgram() graphics.Program {
	return graphics.Program(gl.CreateProgram())
}

func (Device) AttachShader(p graphics.Program, s graphics.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (Device) LinkProgram(p graphics.Program) {
	gl.LinkProgram(uint32(p))
}

func (Device) ProgramLinked(p graphics.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ProgramInfoLog(p graphics.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (Device) UseProgram(p graphics.Program) {
	gl.UseProgram(uint32(p))
}

func (Device) DeleteProgram(p graphics.Program) {
	gl.DeleteProgram(uint32(p))
}

func (Device) GetUniformLocation(p graphics.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Device) GenVertexArray() graphics.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return graphics.VertexArray(vao)
}

func (Device) BindVertexArray(v graphics.VertexArray) {
	gl.BindVertexArray(uint32(v))
}

func (Device) DeleteVertexArray(v graphics.VertexArray) {
	vao := uint32(v)
	gl.DeleteVertexArrays(1, &vao)
}

func (Device) GenBuffer() graphics.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return graphics.Buffer(vbo)
}

func (Device) BindArrayBuffer(b graphics.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (Device) DeleteBuffer(b graphics.Buffer) {
	vbo := uint32(b)
	gl.DeleteBuffers(1, &vbo)
}

func (Device) EnableAlphaBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Ortho2D mirrors gluOrtho2D: it replaces the projection matrix and leaves
// the modelview matrix selected.
func (Device) Ortho2D(left, right, bottom, top float64) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(left, right, bottom, top, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
}

func (Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
