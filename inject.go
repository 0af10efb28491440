package rowan

import "github.com/hajimehoshi/ebiten/v2"

// synthKind identifies an injected raw event.
type synthKind uint8

const (
	synthKeyDown synthKind = iota
	synthKeyUp
	synthMouseDown
	synthMouseUp
	synthMouseMove
	synthTouchStart
	synthTouchMove
	synthTouchEnd
	synthTouchCancel
)

// syntheticEvent is a single injected raw input event. Coordinates are
// logical (base-resolution) coordinates, matching what polling reports.
type syntheticEvent struct {
	kind   synthKind
	key    ebiten.Key
	button ebiten.MouseButton
	x, y   float64
}

// InjectKeyDown queues a synthetic key press edge. One queued event is
// consumed per frame, so a queued press/release pair produces a JustDown
// frame followed by a JustUp frame, identical to real input.
func (e *Engine) InjectKeyDown(key ebiten.Key) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyDown, key: key})
}

// InjectKeyUp queues a synthetic key release edge.
func (e *Engine) InjectKeyUp(key ebiten.Key) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyUp, key: key})
}

// InjectKeyPress queues a press edge followed by a release edge.
// Consumes two frames.
func (e *Engine) InjectKeyPress(key ebiten.Key) {
	e.InjectKeyDown(key)
	e.InjectKeyUp(key)
}

// InjectMouseDown queues a synthetic button press at logical coordinates.
func (e *Engine) InjectMouseDown(button ebiten.MouseButton, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMouseDown, button: button, x: x, y: y})
}

// InjectMouseUp queues a synthetic button release at logical coordinates.
func (e *Engine) InjectMouseUp(button ebiten.MouseButton, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMouseUp, button: button, x: x, y: y})
}

// InjectMouseMove queues a synthetic pointer move to logical coordinates.
func (e *Engine) InjectMouseMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMouseMove, x: x, y: y})
}

// InjectClick queues a left-button press followed by a release at the same
// logical coordinates. Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectMouseDown(ebiten.MouseButtonLeft, x, y)
	e.InjectMouseUp(ebiten.MouseButtonLeft, x, y)
}

// InjectTouchStart queues a synthetic contact-begin at logical coordinates.
func (e *Engine) InjectTouchStart(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthTouchStart, x: x, y: y})
}

// InjectTouchMove queues a synthetic contact move to logical coordinates.
func (e *Engine) InjectTouchMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthTouchMove, x: x, y: y})
}

// InjectTouchEnd queues a synthetic contact lift.
func (e *Engine) InjectTouchEnd() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthTouchEnd})
}

// InjectTouchCancel queues a synthetic host cancellation of the contact.
func (e *Engine) InjectTouchCancel() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthTouchCancel})
}

// InjectTap queues a contact-begin followed by a lift at the same logical
// coordinates. Consumes two frames and classifies as a click when those
// frames complete within the click delay.
func (e *Engine) InjectTap(x, y float64) {
	e.InjectTouchStart(x, y)
	e.InjectTouchEnd()
}

// InjectTouchDrag queues a full drag gesture: contact at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and a lift.
// The sequence consumes `frames` frames; the minimum is 2.
func (e *Engine) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectTouchStart(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectTouchMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectTouchEnd()
}

// drainInjected pops one queued event and records it into the matching
// device's raw buffer, ahead of this frame's reconciliation.
func (e *Engine) drainInjected() {
	if len(e.injectQueue) == 0 {
		return
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case synthKeyDown:
		e.keyboard.RecordDown(evt.key)
	case synthKeyUp:
		e.keyboard.RecordUp(evt.key)
	case synthMouseDown:
		e.mouse.RecordMove(evt.x, evt.y)
		e.mouse.RecordDown(evt.button)
	case synthMouseUp:
		e.mouse.RecordMove(evt.x, evt.y)
		e.mouse.RecordUp(evt.button)
	case synthMouseMove:
		e.mouse.RecordMove(evt.x, evt.y)
	case synthTouchStart:
		e.touch.RecordStart(evt.x, evt.y)
	case synthTouchMove:
		e.touch.RecordMove(evt.x, evt.y)
	case synthTouchEnd:
		e.touch.RecordEnd()
	case synthTouchCancel:
		e.touch.RecordCancel()
	}
}
