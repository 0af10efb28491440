package rowan

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	_ "image/jpeg" // registered decoders for LoadImage
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// Assets holds the engine's named image, sprite sheet, and animation
// registries.
//
// Registration under a taken name is a configuration-time programmer error
// and panics, as does looking up a name that was never registered. Asset
// decoding failures are runtime errors and are returned.
type Assets struct {
	images     map[string]*ebiten.Image
	sheets     map[string]*SpriteSheet
	animations map[string]*Animation
}

func newAssets() *Assets {
	return &Assets{
		images:     make(map[string]*ebiten.Image),
		sheets:     make(map[string]*SpriteSheet),
		animations: make(map[string]*Animation),
	}
}

// RegisterImage stores an image under name. Panics if the name is taken.
func (a *Assets) RegisterImage(name string, img *ebiten.Image) {
	if _, ok := a.images[name]; ok {
		panic(fmt.Sprintf("rowan: image %q already exists", name))
	}
	a.images[name] = img
}

// Image returns the image registered under name. Panics if absent.
func (a *Assets) Image(name string) *ebiten.Image {
	img, ok := a.images[name]
	if !ok {
		panic(fmt.Sprintf("rowan: unknown image %q", name))
	}
	return img
}

// LoadImage decodes encoded PNG or JPEG bytes and registers the result
// under name.
func (a *Assets) LoadImage(name string, data []byte) (*ebiten.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	img := ebiten.NewImageFromImage(src)
	a.RegisterImage(name, img)
	return img, nil
}

// LoadImageFile reads and decodes an image from fsys and registers it
// under name.
func (a *Assets) LoadImageFile(fsys fs.FS, name, path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}
	return a.LoadImage(name, data)
}

// RegisterSheet stores a sprite sheet under name. Panics if the name is taken.
func (a *Assets) RegisterSheet(name string, sheet *SpriteSheet) {
	if _, ok := a.sheets[name]; ok {
		panic(fmt.Sprintf("rowan: sprite sheet %q already exists", name))
	}
	a.sheets[name] = sheet
}

// Sheet returns the sprite sheet registered under name. Panics if absent.
func (a *Assets) Sheet(name string) *SpriteSheet {
	sheet, ok := a.sheets[name]
	if !ok {
		panic(fmt.Sprintf("rowan: unknown sprite sheet %q", name))
	}
	return sheet
}

// RegisterAnimation stores an animation under name. Panics if the name is
// taken.
func (a *Assets) RegisterAnimation(name string, anim *Animation) {
	if _, ok := a.animations[name]; ok {
		panic(fmt.Sprintf("rowan: animation %q already exists", name))
	}
	a.animations[name] = anim
}

// Animation returns the animation registered under name. Panics if absent.
func (a *Assets) Animation(name string) *Animation {
	anim, ok := a.animations[name]
	if !ok {
		panic(fmt.Sprintf("rowan: unknown animation %q", name))
	}
	return anim
}

// SpriteSheet slices a source image into a uniform grid of frames.
type SpriteSheet struct {
	source  *ebiten.Image
	frames  []*ebiten.Image
	frameW  int
	frameH  int
	columns int
}

// NewSpriteSheet slices img into frameWidth x frameHeight cells, row-major
// from the top-left. Panics if the frame size is not positive or larger than
// the image.
func NewSpriteSheet(img *ebiten.Image, frameWidth, frameHeight int) *SpriteSheet {
	if frameWidth <= 0 || frameHeight <= 0 {
		panic(fmt.Sprintf("rowan: sprite sheet frame size must be positive, got %dx%d", frameWidth, frameHeight))
	}
	bounds := img.Bounds()
	cols := bounds.Dx() / frameWidth
	rows := bounds.Dy() / frameHeight
	if cols == 0 || rows == 0 {
		panic(fmt.Sprintf("rowan: sprite sheet frame %dx%d larger than image %dx%d",
			frameWidth, frameHeight, bounds.Dx(), bounds.Dy()))
	}

	sheet := &SpriteSheet{
		source:  img,
		frames:  make([]*ebiten.Image, 0, cols*rows),
		frameW:  frameWidth,
		frameH:  frameHeight,
		columns: cols,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bounds.Min.X + col*frameWidth
			y := bounds.Min.Y + row*frameHeight
			sub := img.SubImage(image.Rect(x, y, x+frameWidth, y+frameHeight)).(*ebiten.Image)
			sheet.frames = append(sheet.frames, sub)
		}
	}
	return sheet
}

// FrameCount returns the number of frames in the sheet.
func (s *SpriteSheet) FrameCount() int {
	return len(s.frames)
}

// Frame returns the i-th frame (row-major). Panics if out of range.
func (s *SpriteSheet) Frame(i int) *ebiten.Image {
	if i < 0 || i >= len(s.frames) {
		panic(fmt.Sprintf("rowan: sprite sheet frame %d out of range [0, %d)", i, len(s.frames)))
	}
	return s.frames[i]
}

// FrameSize returns the pixel size of every frame.
func (s *SpriteSheet) FrameSize() (w, h int) {
	return s.frameW, s.frameH
}
