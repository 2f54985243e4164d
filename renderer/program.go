package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/richinsley/goparticles/graphics"
)

const linkFailedMessage = "Failed to compile or link shaders, likely a bug"

func newProgram(g graphics.GL, vertexShaderSource, fragmentShaderSource string) (graphics.Program, error) {
	vertexShader, err := compileShader(g, vertexShaderSource, graphics.VertexShader)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(g, fragmentShaderSource, graphics.FragmentShader)
	if err != nil {
		g.DeleteShader(vertexShader)
		return 0, err
	}

	program := g.CreateProgram()
	g.AttachShader(program, vertexShader)
	g.AttachShader(program, fragmentShader)
	g.LinkProgram(program)

	// Attached shaders are only flagged; the program keeps them alive.
	g.DeleteShader(vertexShader)
	g.DeleteShader(fragmentShader)

	if !g.ProgramLinked(program) {
		infoLog := strings.TrimSpace(g.ProgramInfoLog(program))
		g.DeleteProgram(program)
		var cause error
		if infoLog != "" {
			cause = errors.New(infoLog)
		}
		return 0, newError(ShaderError, linkFailedMessage, cause)
	}

	return program, nil
}

// compileShader reports compile failures as ShaderError carrying the
// compiler log. The shader object is deleted on failure.
func compileShader(g graphics.GL, source string, kind graphics.ShaderKind) (graphics.Shader, error) {
	shader := g.CreateShader(kind)
	g.ShaderSource(shader, source)
	g.CompileShader(shader)

	if !g.ShaderCompiled(shader) {
		logText := strings.TrimSpace(g.ShaderInfoLog(shader))
		g.DeleteShader(shader)
		return 0, newError(ShaderError, fmt.Sprintf("failed to compile %s shader: %s", kind, logText), nil)
	}
	return shader, nil
}
