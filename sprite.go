package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws a single image with position, pivot, scale, rotation, and
// tint. It is a plain value holder; nothing updates it but the caller.
type Sprite struct {
	Image    *ebiten.Image
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, around the pivot
	PivotX   float64 // pivot in source pixels
	PivotY   float64
	Color    Color

	op ebiten.DrawImageOptions
}

// NewSprite creates a sprite at the origin with unit scale and white tint.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img, ScaleX: 1, ScaleY: 1, Color: ColorWhite}
}

// SetFrame swaps the drawn image, keeping the transform.
func (s *Sprite) SetFrame(img *ebiten.Image) {
	s.Image = img
}

// Bounds returns the sprite's unrotated axis-aligned extent in logical
// coordinates, suitable as a Clickable hit region.
func (s *Sprite) Bounds() Rect {
	w, h := s.size()
	return Rect{
		X:      s.X - s.PivotX*s.ScaleX,
		Y:      s.Y - s.PivotY*s.ScaleY,
		Width:  w * s.ScaleX,
		Height: h * s.ScaleY,
	}
}

func (s *Sprite) size() (w, h float64) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Draw renders the sprite into target.
func (s *Sprite) Draw(target *ebiten.Image) {
	if s.Image == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(-s.PivotX, -s.PivotY)
	s.op.GeoM.Scale(s.ScaleX, s.ScaleY)
	s.op.GeoM.Rotate(s.Rotation)
	s.op.GeoM.Translate(s.X, s.Y)

	s.op.ColorScale.Reset()
	s.op.ColorScale.Scale(
		float32(s.Color.R), float32(s.Color.G),
		float32(s.Color.B), float32(s.Color.A),
	)
	target.DrawImage(s.Image, &s.op)
}
