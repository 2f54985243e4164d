package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed camera of the textured-quads view.
var (
	quadsEye    = mgl32.Vec3{-1.5, -1, 2}
	quadsCenter = mgl32.Vec3{-0.75, -1, -1}
	quadsUp     = mgl32.Vec3{0, 1, 0}
)

// QuadsTransform returns the projection-view matrix uploaded to the "matrix"
// uniform: an orthographic projection over [0,width]x[0,height] (depth range
// [-1,1]) composed with the fixed look-at view.
func QuadsTransform(width, height uint16) mgl32.Mat4 {
	proj := mgl32.Ortho2D(0, float32(width), 0, float32(height))
	view := mgl32.LookAtV(quadsEye, quadsCenter, quadsUp)
	return proj.Mul4(view)
}
