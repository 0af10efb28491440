package rowan

import "fmt"

// Viewport owns the fixed logical resolution and its mapping into the host
// window. The frame is scaled uniformly (preserving aspect ratio) and
// centered, leaving letterbox bars when the window's aspect ratio differs.
//
// Scale and origin are derived from the window size on every layout pass.
// Querying them before the first layout is a programmer error and panics:
// there is no meaningful default to fall back to.
type Viewport struct {
	base    Vec2
	window  Vec2
	scale   float64
	origin  Vec2
	laidOut bool
}

// NewViewport creates a viewport with the given logical base size in pixels.
func NewViewport(baseWidth, baseHeight float64) *Viewport {
	if baseWidth <= 0 || baseHeight <= 0 {
		panic(fmt.Sprintf("rowan: viewport base size must be positive, got %gx%g", baseWidth, baseHeight))
	}
	return &Viewport{base: Vec2{X: baseWidth, Y: baseHeight}}
}

// BaseSize returns the logical base size.
func (v *Viewport) BaseSize() Vec2 {
	return v.base
}

// layout recomputes scale and origin for a window of the given size.
// Called from the engine's Layout on every resize.
func (v *Viewport) layout(windowWidth, windowHeight int) {
	v.window = Vec2{X: float64(windowWidth), Y: float64(windowHeight)}
	sx := v.window.X / v.base.X
	sy := v.window.Y / v.base.Y
	if sx < sy {
		v.scale = sx
	} else {
		v.scale = sy
	}
	v.origin = Vec2{
		X: (v.window.X - v.base.X*v.scale) / 2,
		Y: (v.window.Y - v.base.Y*v.scale) / 2,
	}
	v.laidOut = true
}

func (v *Viewport) checkLaidOut(op string) {
	if !v.laidOut {
		panic(fmt.Sprintf("rowan: %s queried before the first layout", op))
	}
}

// Scale returns the current window-to-logical scale factor.
// Panics before the first layout.
func (v *Viewport) Scale() float64 {
	v.checkLaidOut("viewport scale")
	return v.scale
}

// ScreenPosition returns the window-space origin of the scaled frame.
// Panics before the first layout.
func (v *Viewport) ScreenPosition() Vec2 {
	v.checkLaidOut("viewport screen position")
	return v.origin
}

// Convert maps window-space coordinates to logical coordinates. The result is
// not clamped; points outside the frame convert to coordinates outside the
// base-size box. Panics before the first layout.
func (v *Viewport) Convert(windowX, windowY float64) (x, y float64) {
	v.checkLaidOut("viewport conversion")
	return (windowX - v.origin.X) / v.scale, (windowY - v.origin.Y) / v.scale
}
