package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// captureButtons is the set of buttons polled from the host each frame.
var captureButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Mouse exposes frame-stable logical state for every mouse button, plus the
// pointer position in logical (base-resolution) coordinates.
//
// Unlike Touch, the mouse position is not clamped to the base size: the
// pointer may hover outside the letterboxed frame and reports there honestly.
type Mouse struct {
	states   edgeStates[ebiten.MouseButton]
	position Vec2
}

// NewMouse creates an empty mouse device.
func NewMouse() *Mouse {
	return &Mouse{states: newEdgeStates[ebiten.MouseButton]()}
}

// RecordDown records a physical press edge for button.
func (m *Mouse) RecordDown(button ebiten.MouseButton) {
	m.states.recordDown(button)
}

// RecordUp records a physical release edge for button.
func (m *Mouse) RecordUp(button ebiten.MouseButton) {
	m.states.recordUp(button)
}

// RecordMove records the pointer position in logical coordinates.
func (m *Mouse) RecordMove(x, y float64) {
	m.position = Vec2{X: x, Y: y}
}

// Position returns the pointer position in logical coordinates.
func (m *Mouse) Position() Vec2 {
	return m.position
}

// IsDown reports whether button is held this frame (Down or JustDown).
func (m *Mouse) IsDown(button ebiten.MouseButton) bool {
	return m.states.state(button).isDown()
}

// IsUp reports whether button is released this frame. True for buttons never
// pressed.
func (m *Mouse) IsUp(button ebiten.MouseButton) bool {
	return !m.states.state(button).isDown()
}

// IsJustDown reports whether button transitioned to down during this frame.
func (m *Mouse) IsJustDown(button ebiten.MouseButton) bool {
	return m.states.state(button) == KeyStateJustDown
}

// IsJustUp reports whether button transitioned to up during this frame.
func (m *Mouse) IsJustUp(button ebiten.MouseButton) bool {
	return m.states.state(button) == KeyStateJustUp
}

// capture reads this frame's button edges and pointer position from the host.
func (m *Mouse) capture(vp *Viewport) {
	for _, b := range captureButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			m.RecordDown(b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			m.RecordUp(b)
		}
	}
	cx, cy := ebiten.CursorPosition()
	x, y := vp.Convert(float64(cx), float64(cy))
	m.RecordMove(x, y)
}

// reconcile folds buffered edges into button states. Called once per frame
// by the engine, before the scene updates.
func (m *Mouse) reconcile(dt float64) {
	_ = dt
	m.states.reconcile()
}
