package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	caretBlinkInterval  = 0.5  // seconds per blink phase
	backspaceRepeatWait = 0.5  // seconds a held backspace waits before repeating
	backspaceRepeatRate = 0.05 // seconds between repeats once repeating
)

// InputFieldOptions configures an InputField. Region is required.
type InputFieldOptions struct {
	// Region is the hit region and draw area in logical coordinates.
	Region Rect

	// MaxLength caps the text length in runes; 0 means unlimited.
	MaxLength int

	// Background optionally skins the field with a nine-slice panel.
	Background *NineSlice

	// OnChange fires after every text mutation.
	OnChange func(text string)

	// OnSubmit fires when Enter is pressed while focused.
	OnSubmit func(text string)
}

// InputField is a focusable single-line text field. It drives itself through
// a scheduler update subscription taken at construction: clicking inside
// focuses it, typed characters append while focused, backspace deletes with
// key repeat, Enter submits, and clicking elsewhere blurs.
//
// The subscription and focus are resources; Close releases both and is safe
// to call any number of times, from any state.
type InputField struct {
	engine    *Engine
	opts      InputFieldOptions
	clickable *Clickable

	text    []rune
	focused bool
	blink   float64
	holdBS  float64 // backspace hold duration

	handle  TickHandle
	closed  bool
	runeBuf []rune
	pending []rune // injected text, consumed next update
	caret   *Sprite
}

// NewInputField creates a field and subscribes it to the engine's update
// phase. Panics on an empty region.
func NewInputField(e *Engine, opts InputFieldOptions) *InputField {
	if opts.Region.Width <= 0 || opts.Region.Height <= 0 {
		panic("rowan: input field region must have positive size")
	}
	f := &InputField{
		engine:    e,
		opts:      opts,
		clickable: NewClickable(opts.Region, false),
		caret:     NewSprite(WhitePixel),
	}
	f.handle = e.Scheduler().OnUpdate(f.update)
	return f
}

// Text returns the current contents.
func (f *InputField) Text() string {
	return string(f.text)
}

// SetText replaces the contents, honoring MaxLength. Does not fire OnChange.
func (f *InputField) SetText(text string) {
	f.text = f.truncate([]rune(text))
}

// Focused reports whether the field is receiving input.
func (f *InputField) Focused() bool {
	return f.focused
}

// Focus gives the field input focus.
func (f *InputField) Focus() {
	if !f.closed {
		f.focused = true
		f.blink = 0
	}
}

// Blur removes input focus.
func (f *InputField) Blur() {
	f.focused = false
}

// RecordText queues typed characters, as the host's text events would.
// Consumed on the next update while focused.
func (f *InputField) RecordText(text string) {
	f.pending = append(f.pending, []rune(text)...)
}

// Close unsubscribes the field from the scheduler and releases focus.
// Idempotent; a closed field ignores all further input.
func (f *InputField) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.focused = false
	f.pending = nil
	f.handle.Remove()
}

func (f *InputField) truncate(rs []rune) []rune {
	if f.opts.MaxLength > 0 && len(rs) > f.opts.MaxLength {
		return rs[:f.opts.MaxLength]
	}
	return rs
}

// update runs once per frame via the scheduler subscription.
func (f *InputField) update(dt float64) {
	if f.closed {
		return
	}
	mouse := f.engine.Mouse()
	touch := f.engine.Touch()

	f.clickable.Update(mouse, touch)
	switch {
	case f.clickable.IsClicked():
		f.Focus()
	case mouse.IsJustDown(ebiten.MouseButtonLeft) || touch.IsStarted():
		// A press that did not land on the field blurs it.
		if !f.clickable.IsPressed() && !f.clickable.IsClicked() {
			f.Blur()
		}
	}

	if !f.focused {
		f.pending = f.pending[:0]
		return
	}
	f.blink += dt

	changed := f.appendTyped()
	changed = f.handleBackspace(dt) || changed
	if changed && f.opts.OnChange != nil {
		f.opts.OnChange(f.Text())
	}

	kb := f.engine.Keyboard()
	if kb.IsJustDown(ebiten.KeyEnter) || kb.IsJustDown(ebiten.KeyNumpadEnter) {
		if f.opts.OnSubmit != nil {
			f.opts.OnSubmit(f.Text())
		}
	}
}

// appendTyped consumes host and injected characters. Reports whether the
// text changed.
func (f *InputField) appendTyped() bool {
	if !f.engine.headless {
		f.runeBuf = ebiten.AppendInputChars(f.runeBuf[:0])
		f.pending = append(f.pending, f.runeBuf...)
	}
	if len(f.pending) == 0 {
		return false
	}
	changed := false
	for _, r := range f.pending {
		if r < ' ' { // control characters never enter the text
			continue
		}
		if f.opts.MaxLength > 0 && len(f.text) >= f.opts.MaxLength {
			break
		}
		f.text = append(f.text, r)
		changed = true
	}
	f.pending = f.pending[:0]
	return changed
}

// handleBackspace deletes on the press edge and repeats while held.
// Reports whether the text changed.
func (f *InputField) handleBackspace(dt float64) bool {
	kb := f.engine.Keyboard()
	if !kb.IsDown(ebiten.KeyBackspace) {
		f.holdBS = 0
		return false
	}

	deleteOne := kb.IsJustDown(ebiten.KeyBackspace)
	if !deleteOne {
		f.holdBS += dt
		if f.holdBS >= backspaceRepeatWait+backspaceRepeatRate {
			f.holdBS = backspaceRepeatWait
			deleteOne = true
		}
	}
	if !deleteOne || len(f.text) == 0 {
		return false
	}
	f.text = f.text[:len(f.text)-1]
	return true
}

// Draw renders the background panel, the text, and the blinking caret.
func (f *InputField) Draw(target *ebiten.Image) {
	r := f.opts.Region
	if f.opts.Background != nil {
		f.opts.Background.Draw(target, r)
	}

	const pad = 4.0
	textX := int(r.X + pad)
	textY := int(r.Y + r.Height/2 - 8)
	ebitenutil.DebugPrintAt(target, f.Text(), textX, textY)

	if f.focused && int(f.blink/caretBlinkInterval)%2 == 0 {
		// Debug font glyphs are 6px wide.
		f.caret.X = r.X + pad + float64(len(f.text))*6
		f.caret.Y = r.Y + pad
		f.caret.ScaleX = 1
		f.caret.ScaleY = r.Height - 2*pad
		f.caret.Draw(target)
	}
}
