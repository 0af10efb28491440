package rowan

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// NineSlice scales an image to arbitrary sizes while keeping its corners
// crisp: the source is cut into a 3x3 grid by the four margins, corners draw
// unscaled, edges stretch along one axis, and the center stretches along
// both.
type NineSlice struct {
	patches [9]*ebiten.Image
	left    float64
	top     float64
	right   float64
	bottom  float64
	op      ebiten.DrawImageOptions
}

// NewNineSlice cuts img by the given margins, in source pixels. Panics if
// the margins are negative or leave no center region.
func NewNineSlice(img *ebiten.Image, left, top, right, bottom int) *NineSlice {
	if left < 0 || top < 0 || right < 0 || bottom < 0 {
		panic(fmt.Sprintf("rowan: nine-slice margins must not be negative, got %d %d %d %d", left, top, right, bottom))
	}
	b := img.Bounds()
	if left+right >= b.Dx() || top+bottom >= b.Dy() {
		panic(fmt.Sprintf("rowan: nine-slice margins %d+%d x %d+%d leave no center in %dx%d image",
			left, right, top, bottom, b.Dx(), b.Dy()))
	}

	xs := [4]int{b.Min.X, b.Min.X + left, b.Max.X - right, b.Max.X}
	ys := [4]int{b.Min.Y, b.Min.Y + top, b.Max.Y - bottom, b.Max.Y}

	n := &NineSlice{
		left:   float64(left),
		top:    float64(top),
		right:  float64(right),
		bottom: float64(bottom),
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r := image.Rect(xs[col], ys[row], xs[col+1], ys[row+1])
			n.patches[row*3+col] = img.SubImage(r).(*ebiten.Image)
		}
	}
	return n
}

// MinSize returns the smallest width and height the panel can draw at: the
// summed margins.
func (n *NineSlice) MinSize() (w, h float64) {
	return n.left + n.right, n.top + n.bottom
}

// Draw renders the panel into target covering the given rectangle. Sizes
// below the margin sum are raised to it.
func (n *NineSlice) Draw(target *ebiten.Image, area Rect) {
	minW, minH := n.MinSize()
	w := area.Width
	h := area.Height
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}

	centerW := w - n.left - n.right
	centerH := h - n.top - n.bottom

	colX := [3]float64{area.X, area.X + n.left, area.X + n.left + centerW}
	rowY := [3]float64{area.Y, area.Y + n.top, area.Y + n.top + centerH}
	colW := [3]float64{n.left, centerW, n.right}
	rowH := [3]float64{n.top, centerH, n.bottom}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if colW[col] <= 0 || rowH[row] <= 0 {
				continue
			}
			patch := n.patches[row*3+col]
			pb := patch.Bounds()
			if pb.Dx() == 0 || pb.Dy() == 0 {
				continue
			}
			n.op.GeoM.Reset()
			n.op.GeoM.Scale(colW[col]/float64(pb.Dx()), rowH[row]/float64(pb.Dy()))
			n.op.GeoM.Translate(colX[col], rowY[row])
			target.DrawImage(patch, &n.op)
		}
	}
}
