package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultClickDelay is the longest down-duration, in seconds, that still
// classifies a touch contact as a click.
const defaultClickDelay = 0.3

// Touch normalizes a single-contact touch stream into the same up/down/click
// vocabulary as Mouse, with click-vs-drag disambiguation and viewport-scaled
// position tracking.
//
// The device is inert until the first raw touch event arrives; capability
// latches on and reconciliation becomes active from then on. Position is
// always clamped into the logical base-size box, unlike Mouse.
type Touch struct {
	enabled bool

	tempState TouchPhase // last raw event since the previous reconcile
	state     TouchPhase // reconciled state, stable for one frame
	oldState  TouchPhase // previous reconciled state

	down       bool
	clicked    bool
	clickTimer float64
	clickDelay float64

	position Vec2
	base     Vec2 // logical base size used for clamping

	// touch id tracking for host capture
	ids    []ebiten.TouchID
	active ebiten.TouchID
	hasID  bool
	lastX  int
	lastY  int
}

// NewTouch creates a touch device that clamps positions into the given
// logical base size.
func NewTouch(baseWidth, baseHeight float64) *Touch {
	return &Touch{
		clickDelay: defaultClickDelay,
		base:       Vec2{X: baseWidth, Y: baseHeight},
	}
}

// SetClickDelay overrides the click classification threshold, in seconds.
func (t *Touch) SetClickDelay(seconds float64) {
	t.clickDelay = seconds
}

// RecordStart records a contact-begin edge at logical coordinates (x, y).
// Starting a contact restarts the click timer.
func (t *Touch) RecordStart(x, y float64) {
	t.enabled = true
	t.tempState = TouchStarted
	t.down = true
	t.clickTimer = 0
	t.setPosition(x, y)
}

// RecordMove records a contact-move edge at logical coordinates (x, y).
func (t *Touch) RecordMove(x, y float64) {
	t.enabled = true
	t.tempState = TouchMoved
	t.down = true
	t.setPosition(x, y)
}

// RecordEnd records a contact-lift edge.
func (t *Touch) RecordEnd() {
	t.enabled = true
	t.tempState = TouchEnded
	t.down = false
}

// RecordCancel records a host-cancelled contact. A cancelled contact never
// classifies as a click.
func (t *Touch) RecordCancel() {
	t.enabled = true
	t.tempState = TouchCancelled
	t.down = false
}

func (t *Touch) setPosition(x, y float64) {
	t.position = Vec2{
		X: clamp(x, 0, t.base.X),
		Y: clamp(y, 0, t.base.Y),
	}
}

// Position returns the contact position, clamped into [0, base] per axis.
func (t *Touch) Position() Vec2 { return t.position }

// IsDown reports whether a contact is currently on the surface.
func (t *Touch) IsDown() bool { return t.down }

// IsUp reports whether no contact is on the surface.
func (t *Touch) IsUp() bool { return !t.down }

// IsStarted reports whether the reconciled state is Started this frame.
func (t *Touch) IsStarted() bool { return t.state == TouchStarted }

// IsMoved reports whether the reconciled state is Moved this frame.
func (t *Touch) IsMoved() bool { return t.state == TouchMoved }

// IsEnded reports whether the reconciled state is Ended this frame.
func (t *Touch) IsEnded() bool { return t.state == TouchEnded }

// IsCancelled reports whether the reconciled state is Cancelled this frame.
func (t *Touch) IsCancelled() bool { return t.state == TouchCancelled }

// IsClicked reports whether a contact shorter than the click delay was lifted
// and reconciled this frame. True for exactly one frame per tap.
func (t *Touch) IsClicked() bool { return t.clicked }

// reconcile commits the last raw edge into the frame-stable state. Called
// once per frame by the engine, before the scene updates. A no-op until the
// device has seen its first raw event.
func (t *Touch) reconcile(dt float64) {
	if !t.enabled {
		return
	}
	t.clicked = false
	if t.down {
		t.clickTimer += dt
	}

	switch {
	case t.state == t.tempState:
		// No new edge since last frame: the contact is fully consumed.
		t.state = TouchNone
		t.tempState = TouchNone
	case t.tempState == TouchEnded:
		// Lift edge: short contacts classify as a click for this one frame.
		if t.clickTimer <= t.clickDelay {
			t.clicked = true
		}
		t.state = TouchEnded
	default:
		t.state = t.tempState
	}
	t.oldState = t.state
}

// capture reads this frame's touch contacts from the host and converts them
// to raw edges. Only the first concurrent contact is tracked.
func (t *Touch) capture(vp *Viewport) {
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])

	if !t.hasID {
		if len(t.ids) == 0 {
			return
		}
		t.active = t.ids[0]
		t.hasID = true
		px, py := ebiten.TouchPosition(t.active)
		t.lastX, t.lastY = px, py
		x, y := vp.Convert(float64(px), float64(py))
		t.RecordStart(x, y)
		return
	}

	for _, id := range t.ids {
		if id != t.active {
			continue
		}
		px, py := ebiten.TouchPosition(id)
		if px != t.lastX || py != t.lastY {
			t.lastX, t.lastY = px, py
			x, y := vp.Convert(float64(px), float64(py))
			t.RecordMove(x, y)
		}
		return
	}

	// Active contact disappeared from the host list: it was lifted.
	if inpututil.IsTouchJustReleased(t.active) {
		t.RecordEnd()
	} else {
		t.RecordCancel()
	}
	t.hasID = false
}
