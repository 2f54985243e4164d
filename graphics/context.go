package graphics

// Context defines the interface for one platform window and its OpenGL context.
type Context interface {
	MakeCurrent()
	// Shutdown destroys the platform window. The context must not be used afterwards.
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}

// Platform is the windowing layer the bootstrapper talks to.
type Platform interface {
	// Init brings up the windowing system. Calling it more than once is allowed.
	Init() error
	CreateWindow(width, height int, title string) (Context, error)
	// LoadBindings resolves the graphics function pointers for the current context.
	LoadBindings() (GL, error)
}
