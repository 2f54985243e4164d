package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goparticles/graphics"
)

type fakeContext struct {
	current    bool
	destroyed  int
	frames     int
	closeAfter int // ShouldClose turns true after this many frames
	clock      float64
	fbW, fbH   int
	gl         *fakeGL
}

func (c *fakeContext) MakeCurrent()                   { c.current = true }
func (c *fakeContext) ShouldClose() bool              { return c.frames >= c.closeAfter }
func (c *fakeContext) GetFramebufferSize() (int, int) { return c.fbW, c.fbH }
func (c *fakeContext) Time() float64                  { return c.clock }

func (c *fakeContext) Shutdown() {
	c.destroyed++
	if c.gl != nil {
		c.gl.record("DestroyWindow")
	}
}

func (c *fakeContext) EndFrame() {
	c.frames++
	c.clock += 0.5
}

type fakePlatform struct {
	initErr   error
	createErr error
	loadErr   error

	gl      *fakeGL
	context *fakeContext

	createdWidth, createdHeight int
	createdTitle                string
}

func newFakePlatform() *fakePlatform {
	g := newFakeGL()
	return &fakePlatform{
		gl:      g,
		context: &fakeContext{closeAfter: 3, fbW: 640, fbH: 480, gl: g},
	}
}

func (p *fakePlatform) Init() error { return p.initErr }

func (p *fakePlatform) CreateWindow(width, height int, title string) (graphics.Context, error) {
	p.createdWidth, p.createdHeight, p.createdTitle = width, height, title
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.context, nil
}

func (p *fakePlatform) LoadBindings() (graphics.GL, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.gl, nil
}

// fakeGL hands out increasing object names and tracks which are alive.
type fakeGL struct {
	next uint32
	log  []string

	failCompile map[graphics.ShaderKind]string
	failLink    string

	shaders  map[graphics.Shader]graphics.ShaderKind
	sources  map[graphics.Shader]string
	programs map[graphics.Program]bool
	vaos     map[graphics.VertexArray]bool
	buffers  map[graphics.Buffer]bool

	currentProgram graphics.Program
	boundVAO       graphics.VertexArray
	boundBuffer    graphics.Buffer
	uniforms       map[int32]mgl32.Mat4
	blend          bool
	ortho          [4]float64
	orthoCalls     int
	clears         int
	viewport       [4]int32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		failCompile: map[graphics.ShaderKind]string{},
		shaders:     map[graphics.Shader]graphics.ShaderKind{},
		sources:     map[graphics.Shader]string{},
		programs:    map[graphics.Program]bool{},
		vaos:        map[graphics.VertexArray]bool{},
		buffers:     map[graphics.Buffer]bool{},
		uniforms:    map[int32]mgl32.Mat4{},
	}
}

func (g *fakeGL) name() uint32 {
	g.next++
	return g.next
}

func (g *fakeGL) record(format string, args ...any) {
	g.log = append(g.log, fmt.Sprintf(format, args...))
}

func (g *fakeGL) CreateShader(kind graphics.ShaderKind) graphics.Shader {
	s := graphics.Shader(g.name())
	g.shaders[s] = kind
	g.record("CreateShader %s", kind)
	return s
}

func (g *fakeGL) ShaderSource(s graphics.Shader, src string) { g.sources[s] = src }
func (g *fakeGL) CompileShader(s graphics.Shader)            { g.record("CompileShader %d", s) }

func (g *fakeGL) ShaderCompiled(s graphics.Shader) bool {
	_, fail := g.failCompile[g.shaders[s]]
	return !fail
}

func (g *fakeGL) ShaderInfoLog(s graphics.Shader) string { return g.failCompile[g.shaders[s]] }

func (g *fakeGL) DeleteShader(s graphics.Shader) {
	delete(g.shaders, s)
	g.record("DeleteShader %d", s)
}

func (g *fakeGL) CreateProgram() graphics.Program {
	p := graphics.Program(g.name())
	g.programs[p] = true
	g.record("CreateProgram")
	return p
}

func (g *fakeGL) AttachShader(p graphics.Program, s graphics.Shader) {}
func (g *fakeGL) LinkProgram(p graphics.Program)                     { g.record("LinkProgram") }
func (g *fakeGL) ProgramLinked(p graphics.Program) bool              { return g.failLink == "" }
func (g *fakeGL) ProgramInfoLog(p graphics.Program) string           { return g.failLink }

func (g *fakeGL) UseProgram(p graphics.Program) {
	g.currentProgram = p
	g.record("UseProgram %d", p)
}

func (g *fakeGL) DeleteProgram(p graphics.Program) {
	delete(g.programs, p)
	if g.currentProgram == p {
		g.currentProgram = 0
	}
	g.record("DeleteProgram %d", p)
}

func (g *fakeGL) GetUniformLocation(p graphics.Program, name string) int32 {
	if name == "matrix" {
		return 7
	}
	return -1
}

func (g *fakeGL) UniformMatrix4(location int32, m mgl32.Mat4) { g.uniforms[location] = m }

func (g *fakeGL) GenVertexArray() graphics.VertexArray {
	v := graphics.VertexArray(g.name())
	g.vaos[v] = true
	return v
}

func (g *fakeGL) BindVertexArray(v graphics.VertexArray) { g.boundVAO = v }

func (g *fakeGL) DeleteVertexArray(v graphics.VertexArray) {
	delete(g.vaos, v)
	g.record("DeleteVertexArray %d", v)
}

func (g *fakeGL) GenBuffer() graphics.Buffer {
	b := graphics.Buffer(g.name())
	g.buffers[b] = true
	return b
}

func (g *fakeGL) BindArrayBuffer(b graphics.Buffer) { g.boundBuffer = b }

func (g *fakeGL) DeleteBuffer(b graphics.Buffer) {
	delete(g.buffers, b)
	g.record("DeleteBuffer %d", b)
}

func (g *fakeGL) EnableAlphaBlend() { g.blend = true }

func (g *fakeGL) Ortho2D(left, right, bottom, top float64) {
	g.ortho = [4]float64{left, right, bottom, top}
	g.orthoCalls++
}

func (g *fakeGL) Viewport(x, y, width, height int32) { g.viewport = [4]int32{x, y, width, height} }
func (g *fakeGL) ClearColor(r, gr, b, a float32)     {}
func (g *fakeGL) Clear()                             { g.clears++ }
