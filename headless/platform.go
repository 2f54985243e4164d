// Package headless renders into an offscreen EGL surface, for machines
// without a display server.
package headless

import (
	"github.com/richinsley/goparticles/gldevice"
	"github.com/richinsley/goparticles/graphics"
)

// Platform implements graphics.Platform with EGL pbuffer contexts. The
// window title is ignored.
type Platform struct{}

var _ graphics.Platform = Platform{}

func (Platform) Init() error { return nil }

func (Platform) CreateWindow(width, height int, title string) (graphics.Context, error) {
	return newContext(width, height)
}

func (Platform) LoadBindings() (graphics.GL, error) {
	return gldevice.Load()
}
