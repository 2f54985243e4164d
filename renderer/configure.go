package renderer

import (
	"log"

	"github.com/richinsley/goparticles/graphics"
	"github.com/richinsley/goparticles/shader"
)

// Configure prepares the GPU state for mode. The mode of a window cannot be
// changed once Configure has succeeded.
func (w *Window) Configure(mode Mode) error {
	if w == nil || w.context == nil {
		return newError(Unknown, "window is not initialized", nil)
	}
	if w.pipeline != nil {
		return newError(Unknown, "window already configured for "+w.pipeline.mode().String(), nil)
	}

	var (
		p   pipeline
		err error
	)
	switch mode {
	case TexturedQuads:
		p, err = configureQuads(w.gl, w.width, w.height)
	case Points:
		p = configurePoints(w.gl, w.width, w.height)
	default:
		return newError(Unknown, "unsupported rendering mode "+mode.String(), nil)
	}
	if err != nil {
		return err
	}

	w.pipeline = p
	log.Printf("Configured %s pipeline", mode)
	return nil
}

func configureQuads(g graphics.GL, width, height uint16) (*quadsPipeline, error) {
	program, err := newProgram(g, shader.GetQuadVertexShader(), shader.GetQuadFragmentShader())
	if err != nil {
		return nil, err
	}
	g.UseProgram(program)

	p := &quadsPipeline{
		program: program,
		vao:     g.GenVertexArray(),
		vbo:     g.GenBuffer(),
	}
	g.BindVertexArray(p.vao)
	g.BindArrayBuffer(p.vbo)

	p.matrixLoc = g.GetUniformLocation(program, shader.MatrixUniform)
	if p.matrixLoc != -1 {
		g.UniformMatrix4(p.matrixLoc, QuadsTransform(width, height))
	}

	g.EnableAlphaBlend()
	return p, nil
}

func configurePoints(g graphics.GL, width, height uint16) *pointsPipeline {
	p := &pointsPipeline{vbo: g.GenBuffer()}
	g.BindArrayBuffer(p.vbo)
	g.Ortho2D(0, float64(width), 0, float64(height))
	return p
}
