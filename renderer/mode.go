package renderer

import (
	"fmt"
	"strings"

	"github.com/richinsley/goparticles/graphics"
)

// Mode selects the shading model and buffer layout of a window.
type Mode int

const (
	Points Mode = iota
	TexturedQuads
)

func (m Mode) String() string {
	switch m {
	case Points:
		return "POINTS"
	case TexturedQuads:
		return "TEXTURED_QUADS"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "points", "quads" or "textured_quads", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points":
		return Points, nil
	case "quads", "textured_quads", "textured-quads":
		return TexturedQuads, nil
	default:
		return 0, fmt.Errorf("unknown rendering mode %q", s)
	}
}

// pipeline is the GPU state a configured window owns. Each variant holds
// exactly the objects its mode allocates.
type pipeline interface {
	mode() Mode
	// bind restores the pipeline state before drawing a frame.
	bind(g graphics.GL)
	// release deletes every GPU object of the pipeline.
	release(g graphics.GL)
}

type pointsPipeline struct {
	vbo graphics.Buffer
}

func (p *pointsPipeline) mode() Mode { return Points }

func (p *pointsPipeline) bind(g graphics.GL) {
	g.BindArrayBuffer(p.vbo)
}

func (p *pointsPipeline) release(g graphics.GL) {
	if p.vbo != 0 {
		g.DeleteBuffer(p.vbo)
		p.vbo = 0
	}
}

type quadsPipeline struct {
	program graphics.Program
	vao     graphics.VertexArray
	vbo     graphics.Buffer
	// matrixLoc is -1 when the driver optimised the uniform away.
	matrixLoc int32
}

func (p *quadsPipeline) mode() Mode { return TexturedQuads }

func (p *quadsPipeline) bind(g graphics.GL) {
	g.UseProgram(p.program)
	g.BindVertexArray(p.vao)
	g.BindArrayBuffer(p.vbo)
}

func (p *quadsPipeline) release(g graphics.GL) {
	if p.vbo != 0 {
		g.DeleteBuffer(p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		g.DeleteVertexArray(p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		g.UseProgram(0)
		g.DeleteProgram(p.program)
		p.program = 0
	}
}
