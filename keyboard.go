package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard exposes frame-stable logical state for every physical key.
//
// Raw edges are captured from the host once per frame (or recorded directly
// by tests and input injection) and reconciled before the scene updates.
// Polling an identifier that was never pressed resolves to up, never errors.
type Keyboard struct {
	states edgeStates[ebiten.Key]

	// scratch buffers reused across capture calls
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboard creates an empty keyboard device.
func NewKeyboard() *Keyboard {
	return &Keyboard{states: newEdgeStates[ebiten.Key]()}
}

// RecordDown records a physical press edge for key. Multiple edges for the
// same key between two frames coalesce to the last arrival.
func (k *Keyboard) RecordDown(key ebiten.Key) {
	k.states.recordDown(key)
}

// RecordUp records a physical release edge for key.
func (k *Keyboard) RecordUp(key ebiten.Key) {
	k.states.recordUp(key)
}

// IsDown reports whether key is held this frame (Down or JustDown).
func (k *Keyboard) IsDown(key ebiten.Key) bool {
	return k.states.state(key).isDown()
}

// IsUp reports whether key is released this frame. True for keys never seen.
func (k *Keyboard) IsUp(key ebiten.Key) bool {
	return !k.states.state(key).isDown()
}

// IsJustDown reports whether key transitioned to down during this frame.
func (k *Keyboard) IsJustDown(key ebiten.Key) bool {
	return k.states.state(key) == KeyStateJustDown
}

// IsJustUp reports whether key transitioned to up during this frame.
func (k *Keyboard) IsJustUp(key ebiten.Key) bool {
	return k.states.state(key) == KeyStateJustUp
}

// capture reads this frame's press/release edges from the host.
func (k *Keyboard) capture() {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		k.RecordDown(key)
	}
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		k.RecordUp(key)
	}
}

// reconcile folds buffered edges into key states. Called once per frame by
// the engine, before the scene updates.
func (k *Keyboard) reconcile(dt float64) {
	_ = dt // edge logic is time-independent; dt kept for device interface symmetry
	k.states.reconcile()
}
