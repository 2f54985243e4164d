package options

import (
	"flag"
	"fmt"
	"math"
)

type SimOptions struct {
	Width  *int
	Height *int
	Mode   *string // "points" or "quads"
	Frames *int    // Stop after this many frames, 0 runs until the window is closed
	// Headless renders into an offscreen EGL surface instead of a GLFW window
	Headless *bool
	Help     *bool
}

// Register defines the simulation flags on fs.
func Register(fs *flag.FlagSet) *SimOptions {
	return &SimOptions{
		Width:    fs.Int("width", 800, "Width of the window in pixels"),
		Height:   fs.Int("height", 600, "Height of the window in pixels"),
		Mode:     fs.String("mode", "quads", "Rendering mode: points or quads"),
		Frames:   fs.Int("frames", 0, "Number of frames to render before exiting (0 = until closed)"),
		Headless: fs.Bool("headless", false, "Render offscreen through EGL (requires -frames)"),
		Help:     fs.Bool("help", false, "Show help message"),
	}
}

// Validate checks that the window size fits in 16 bits and that the frame
// limit is usable for the selected output.
func (o *SimOptions) Validate() error {
	if *o.Width < 1 || *o.Width > math.MaxUint16 {
		return fmt.Errorf("width %d out of range [1, %d]", *o.Width, math.MaxUint16)
	}
	if *o.Height < 1 || *o.Height > math.MaxUint16 {
		return fmt.Errorf("height %d out of range [1, %d]", *o.Height, math.MaxUint16)
	}
	if *o.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", *o.Frames)
	}
	if *o.Headless && *o.Frames == 0 {
		return fmt.Errorf("headless rendering needs a frame limit")
	}
	return nil
}
