package rowan

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is fully opaque black, the default frame clear color.
var ColorBlack = Color{0, 0, 0, 1}

// ToRGBA converts the color to the 8-bit form the standard image packages
// use, rounding each component.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used by default for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.ToRGBA())
}

// KeyState is the per-key/button logical state as seen by consumers during a
// single frame. Exactly one state holds per tracked identifier at any frame
// boundary; JustDown and JustUp hold for exactly one frame.
type KeyState uint8

const (
	KeyStateUp       KeyState = iota // released, steady
	KeyStateDown                     // held, steady
	KeyStateJustUp                   // released this frame
	KeyStateJustDown                 // pressed this frame
)

// isDown reports whether the state carries "down" semantics.
func (s KeyState) isDown() bool {
	return s == KeyStateDown || s == KeyStateJustDown
}

// TouchPhase is the reconciled state of the single active touch contact.
type TouchPhase uint8

const (
	TouchNone      TouchPhase = iota // no contact / contact fully consumed
	TouchStarted                     // contact began
	TouchMoved                       // contact moved
	TouchEnded                       // contact lifted
	TouchCancelled                   // contact cancelled by the host
)

// ClickableState is the per-widget interaction state, recomputed every frame
// from mouse and touch polling against the widget's hit region.
type ClickableState uint8

const (
	ClickableReleased ClickableState = iota // pointer outside the region
	ClickableHovered                        // pointer inside, no button
	ClickablePressed                        // pointer inside, button held
	ClickableClicked                        // press released inside this frame
	ClickableDisabled                       // frozen; sticky until re-enabled
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
