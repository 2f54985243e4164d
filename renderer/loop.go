package renderer

import (
	"errors"
)

// ErrStopLoop may be returned by a FrameFunc to end Run without an error.
var ErrStopLoop = errors.New("stop render loop")

// Frame describes one iteration of the render loop.
type Frame struct {
	Index int64
	// Time is seconds since the loop started; Delta is seconds since the previous frame.
	Time  float64
	Delta float64
}

// FrameFunc advances simulation state once per frame, before drawing.
type FrameFunc func(f Frame) error

// Run processes events and presents frames until the window is asked to
// close or frame returns an error. frame may be nil.
func (w *Window) Run(frame FrameFunc) error {
	if w == nil || w.context == nil {
		return newError(Unknown, "window is not initialized", nil)
	}
	if w.pipeline == nil {
		return newError(Unknown, "window is not configured", nil)
	}

	startTime := w.context.Time()
	lastTime := startTime
	var index int64

	for !w.context.ShouldClose() {
		now := w.context.Time()
		f := Frame{
			Index: index,
			Time:  now - startTime,
			Delta: now - lastTime,
		}
		lastTime = now

		if frame != nil {
			if err := frame(f); err != nil {
				if errors.Is(err, ErrStopLoop) {
					return nil
				}
				return newError(Unknown, "frame update failed", err)
			}
		}

		w.renderFrame()
		w.context.EndFrame()
		index++
	}
	return nil
}

func (w *Window) renderFrame() {
	fbWidth, fbHeight := w.context.GetFramebufferSize()
	w.gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	w.gl.ClearColor(0, 0, 0, 1)
	w.gl.Clear()
	w.pipeline.bind(w.gl)
}
