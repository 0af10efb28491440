package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Sheet frame positions a button skin uses, one per interaction state.
// Missing frames fall back to buttonFrameReleased.
const (
	buttonFrameReleased = iota
	buttonFrameHovered
	buttonFramePressed
	buttonFrameDisabled
)

// ButtonOptions configures a Button. Region is required. The skin is either
// a nine-slice panel or a sprite sheet of per-state frames; configuring both
// is a construction-time error. A button with no skin is invisible but still
// interactive, which suits custom-drawn widgets.
type ButtonOptions struct {
	// Region is the hit region and draw area in logical coordinates.
	Region Rect

	// NineSlice skins the button with a stretched panel.
	NineSlice *NineSlice

	// Sheet skins the button with one frame per state, in released,
	// hovered, pressed, disabled order. States beyond the sheet's frame
	// count draw the released frame.
	Sheet *SpriteSheet

	// Disabled constructs the button frozen.
	Disabled bool

	// OnClick fires once per completed click.
	OnClick func()
}

// Button is a clickable region with an optional skin. Call Update once per
// frame and Draw during the scene's draw phase.
type Button struct {
	clickable *Clickable
	opts      ButtonOptions
	op        ebiten.DrawImageOptions
}

// NewButton creates a button. Panics on an empty region or when both skins
// are configured.
func NewButton(opts ButtonOptions) *Button {
	if opts.Region.Width <= 0 || opts.Region.Height <= 0 {
		panic("rowan: button region must have positive size")
	}
	if opts.NineSlice != nil && opts.Sheet != nil {
		panic("rowan: button configured with both a nine-slice skin and a sprite sheet skin")
	}
	return &Button{
		clickable: NewClickable(opts.Region, opts.Disabled),
		opts:      opts,
	}
}

// Update advances the interaction state and fires OnClick on a completed
// click. Call after input reconciliation, i.e. from a scene update or a
// scheduler update subscriber.
func (b *Button) Update(e *Engine) {
	b.clickable.Update(e.Mouse(), e.Touch())
	if b.clickable.IsClicked() && b.opts.OnClick != nil {
		b.opts.OnClick()
	}
}

// Draw renders the skin, if any, into target.
func (b *Button) Draw(target *ebiten.Image) {
	switch {
	case b.opts.NineSlice != nil:
		b.opts.NineSlice.Draw(target, b.opts.Region)
	case b.opts.Sheet != nil:
		frame := b.opts.Sheet.Frame(b.skinFrame())
		fb := frame.Bounds()
		b.op.GeoM.Reset()
		b.op.GeoM.Scale(
			b.opts.Region.Width/float64(fb.Dx()),
			b.opts.Region.Height/float64(fb.Dy()),
		)
		b.op.GeoM.Translate(b.opts.Region.X, b.opts.Region.Y)
		target.DrawImage(frame, &b.op)
	}
}

// skinFrame maps the interaction state to a sheet frame, falling back to the
// released frame when the sheet is short.
func (b *Button) skinFrame() int {
	var frame int
	switch b.clickable.State() {
	case ClickableHovered:
		frame = buttonFrameHovered
	case ClickablePressed, ClickableClicked:
		frame = buttonFramePressed
	case ClickableDisabled:
		frame = buttonFrameDisabled
	default:
		frame = buttonFrameReleased
	}
	if frame >= b.opts.Sheet.FrameCount() {
		frame = buttonFrameReleased
	}
	return frame
}

// State returns the current interaction state.
func (b *Button) State() ClickableState {
	return b.clickable.State()
}

// IsClicked reports whether a click completed this frame.
func (b *Button) IsClicked() bool {
	return b.clickable.IsClicked()
}

// SetRegion moves the button, updating both the hit region and draw area.
func (b *Button) SetRegion(region Rect) {
	b.opts.Region = region
	b.clickable.SetRegion(region)
}

// Disable freezes or unfreezes the button; see Clickable.Disable.
func (b *Button) Disable(flag bool) {
	b.clickable.Disable(flag)
}

// Enable is the logical inverse of Disable.
func (b *Button) Enable(flag bool) {
	b.clickable.Enable(flag)
}
