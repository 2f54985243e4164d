package renderer

import (
	"log"

	"github.com/richinsley/goparticles/graphics"
)

// Title is the caption of every window the bootstrapper opens.
const Title = "Particle Simulation"

// Window is one open display surface and the GPU state configured on it.
// It is owned by a single goroutine, the one locked to the main OS thread.
type Window struct {
	width   uint16
	height  uint16
	context graphics.Context
	gl      graphics.GL
	// nil until Configure succeeds
	pipeline pipeline
}

// Init opens a platform window of the given size, makes its context current
// and loads the OpenGL bindings. On failure the returned window is nil and
// every resource acquired along the way has been released.
func Init(p graphics.Platform, width, height uint16) (*Window, error) {
	if err := p.Init(); err != nil {
		return nil, newError(WindowError, "windowing system could not be initialized", err)
	}

	ctx, err := p.CreateWindow(int(width), int(height), Title)
	if err != nil || ctx == nil {
		return nil, newError(WindowError, "glfw window could not be created", err)
	}

	ctx.MakeCurrent()

	g, err := p.LoadBindings()
	if err != nil || g == nil {
		ctx.Shutdown()
		msg := "opengl bindings could not be loaded"
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		return nil, newError(LoaderError, msg, err)
	}

	log.Printf("Created %dx%d window %q", width, height, Title)
	return &Window{
		width:   width,
		height:  height,
		context: ctx,
		gl:      g,
	}, nil
}

func (w *Window) Width() uint16  { return w.width }
func (w *Window) Height() uint16 { return w.height }

// Context returns the platform context, or nil once the window is shut down.
func (w *Window) Context() graphics.Context { return w.context }

// Mode reports the configured rendering mode. ok is false before Configure succeeds.
func (w *Window) Mode() (m Mode, ok bool) {
	if w == nil || w.pipeline == nil {
		return 0, false
	}
	return w.pipeline.mode(), true
}

// Shutdown deletes the GPU objects created by Configure, then destroys the
// platform window. Calling it on a nil or already shut down window is a no-op.
func (w *Window) Shutdown() error {
	if w == nil || w.context == nil {
		return nil
	}
	if w.pipeline != nil {
		w.context.MakeCurrent()
		w.pipeline.release(w.gl)
		w.pipeline = nil
	}
	w.context.Shutdown()
	w.context = nil
	w.gl = nil
	log.Println("Window shut down")
	return nil
}
