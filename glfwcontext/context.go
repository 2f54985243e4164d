package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goparticles/gldevice"
	"github.com/richinsley/goparticles/graphics"
)

// Context wraps a GLFW window and the OpenGL context it owns.
type Context struct {
	window *glfw.Window
}

var _ graphics.Context = (*Context)(nil)

// New creates a GLFW window with default hints and no shared context.
func New(width, height int, title string) (*Context, error) {
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Context{window: win}, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	if c.window == nil {
		return
	}
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; GLFW itself stays initialized.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

// ShouldClose reports true once the window has been destroyed.
func (c *Context) ShouldClose() bool {
	if c.window == nil {
		return true
	}
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	if c.window == nil {
		return
	}
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	if c.window == nil {
		return 0, 0
	}
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Platform implements graphics.Platform with GLFW windows and go-gl bindings.
type Platform struct{}

var _ graphics.Platform = Platform{}

// Init is a no-op when InitGraphics already ran on the main thread.
func (Platform) Init() error {
	return glfw.Init()
}

func (Platform) CreateWindow(width, height int, title string) (graphics.Context, error) {
	c, err := New(width, height, title)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (Platform) LoadBindings() (graphics.GL, error) {
	device, err := gldevice.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("OpenGL version %s", gldevice.Version())
	return device, nil
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
