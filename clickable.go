package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Clickable composes mouse and touch polling into a per-widget interaction
// state machine. Widgets call Update once per frame, after input
// reconciliation, and read the resulting state.
//
// State priority is Clicked > Pressed > Hovered > Released, evaluated
// top-to-bottom with the first match winning. Disabled is sticky: while
// disabled no evaluation happens at all, and any in-progress interaction is
// discarded.
type Clickable struct {
	region   Rect
	state    ClickableState
	disabled bool
}

// NewClickable creates a clickable for the given hit region. A clickable
// constructed disabled stays frozen until enabled.
func NewClickable(region Rect, disabled bool) *Clickable {
	c := &Clickable{region: region}
	if disabled {
		c.disabled = true
		c.state = ClickableDisabled
	}
	return c
}

// SetRegion replaces the hit region.
func (c *Clickable) SetRegion(region Rect) {
	c.region = region
}

// Region returns the hit region.
func (c *Clickable) Region() Rect {
	return c.region
}

// Update recomputes the state from the current mouse and touch state.
func (c *Clickable) Update(mouse *Mouse, touch *Touch) {
	if c.disabled {
		return
	}

	mp := mouse.Position()
	tp := touch.Position()
	mouseIn := c.region.Contains(mp.X, mp.Y)
	touchIn := c.region.Contains(tp.X, tp.Y)

	clicking := (mouse.IsJustUp(ebiten.MouseButtonLeft) && mouseIn) ||
		(touch.IsClicked() && touchIn)
	pressing := (mouse.IsDown(ebiten.MouseButtonLeft) && mouseIn) ||
		(touch.IsDown() && touchIn)

	switch {
	case clicking:
		c.state = ClickableClicked
	case pressing:
		c.state = ClickablePressed
	case mouseIn:
		c.state = ClickableHovered
	default:
		c.state = ClickableReleased
	}
}

// State returns the current interaction state.
func (c *Clickable) State() ClickableState {
	return c.state
}

// IsClicked reports whether a click completed over the region this frame.
func (c *Clickable) IsClicked() bool {
	return c.state == ClickableClicked
}

// IsPressed reports whether a pointer is held within the region.
func (c *Clickable) IsPressed() bool {
	return c.state == ClickablePressed
}

// IsHovered reports whether the pointer rests within the region.
func (c *Clickable) IsHovered() bool {
	return c.state == ClickableHovered
}

// IsDisabled reports whether the clickable is frozen.
func (c *Clickable) IsDisabled() bool {
	return c.disabled
}

// Disable freezes the clickable when flag is true, discarding any
// in-progress interaction; when false it resets the state to Released.
func (c *Clickable) Disable(flag bool) {
	c.disabled = flag
	if flag {
		c.state = ClickableDisabled
	} else {
		c.state = ClickableReleased
	}
}

// Enable is the logical inverse of Disable.
func (c *Clickable) Enable(flag bool) {
	c.Disable(!flag)
}
