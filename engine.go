package rowan

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures an Engine. Width and Height are required; every other
// field has a usable default.
type Options struct {
	// Width and Height are the logical base resolution in pixels. All scene
	// drawing happens at this resolution; the engine letterboxes the result
	// into the window.
	Width  int
	Height int

	// Title is the window title.
	Title string

	// ClearColor fills the frame at the start of every draw phase.
	// Defaults to opaque black.
	ClearColor *Color

	// ClickDelay is the longest touch down-duration, in seconds, still
	// classified as a click. Defaults to 0.3.
	ClickDelay float64

	// WindowScale sizes the initial window at base resolution times this
	// factor. Defaults to 2.
	WindowScale float64

	// Debug enables per-frame timing logs on stderr.
	Debug bool
}

func (o *Options) applyDefaults() {
	if o.ClearColor == nil {
		c := ColorBlack
		o.ClearColor = &c
	}
	if o.ClickDelay == 0 {
		o.ClickDelay = defaultClickDelay
	}
	if o.WindowScale == 0 {
		o.WindowScale = 2
	}
}

func (o Options) validate() {
	if o.Width <= 0 || o.Height <= 0 {
		panic(fmt.Sprintf("rowan: engine base size must be positive, got %dx%d", o.Width, o.Height))
	}
	if o.ClickDelay < 0 {
		panic(fmt.Sprintf("rowan: click delay must not be negative, got %g", o.ClickDelay))
	}
	if o.WindowScale < 0 {
		panic(fmt.Sprintf("rowan: window scale must not be negative, got %g", o.WindowScale))
	}
}

// Engine is the composition root: it owns the input devices, the scheduler,
// the scene manager, the viewport, and the asset registries, and implements
// [ebiten.Game] to drive them.
//
// Frame order is fixed: input capture, input reconciliation, scheduler
// update subscribers, scene update — then, in the draw phase, frame clear,
// pre-render subscribers, scene draw, post-render subscribers.
type Engine struct {
	opts Options

	keyboard *Keyboard
	mouse    *Mouse
	touch    *Touch
	sched    *Scheduler
	scenes   *SceneManager
	viewport *Viewport
	assets   *Assets

	frame       *ebiten.Image
	drawOpts    ebiten.DrawImageOptions
	injectQueue []syntheticEvent

	headless bool // skip host polling; raw edges arrive via Record*/Inject*
	debug    bool
}

// NewEngine creates an engine with the given options. Invalid options are
// programmer errors and panic.
func NewEngine(opts Options) *Engine {
	opts.applyDefaults()
	opts.validate()

	e := &Engine{
		opts:     opts,
		keyboard: NewKeyboard(),
		mouse:    NewMouse(),
		touch:    NewTouch(float64(opts.Width), float64(opts.Height)),
		sched:    NewScheduler(),
		viewport: NewViewport(float64(opts.Width), float64(opts.Height)),
		assets:   newAssets(),
		frame:    ebiten.NewImage(opts.Width, opts.Height),
		debug:    opts.Debug,
	}
	e.touch.SetClickDelay(opts.ClickDelay)
	e.scenes = newSceneManager(e)
	return e
}

// Keyboard returns the keyboard device.
func (e *Engine) Keyboard() *Keyboard { return e.keyboard }

// Mouse returns the mouse device.
func (e *Engine) Mouse() *Mouse { return e.mouse }

// Touch returns the touch device.
func (e *Engine) Touch() *Touch { return e.touch }

// Scheduler returns the frame scheduler.
func (e *Engine) Scheduler() *Scheduler { return e.sched }

// Scenes returns the scene manager.
func (e *Engine) Scenes() *SceneManager { return e.scenes }

// Viewport returns the viewport.
func (e *Engine) Viewport() *Viewport { return e.viewport }

// Assets returns the asset registries.
func (e *Engine) Assets() *Assets { return e.assets }

// Frame returns the logical-resolution frame the scene draws into.
func (e *Engine) Frame() *ebiten.Image { return e.frame }

// SetHeadless disables host input polling. Raw edges then only arrive
// through the Record methods and the Inject helpers, which is what scripted
// demos and tests want.
func (e *Engine) SetHeadless(headless bool) {
	e.headless = headless
}

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	dt := e.sched.tick()

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	if !e.headless {
		e.keyboard.capture()
		e.mouse.capture(e.viewport)
		e.touch.capture(e.viewport)
	}
	e.drainInjected()
	if e.debug {
		stats.captureTime = time.Since(t0)
		t0 = time.Now()
	}

	e.keyboard.reconcile(dt)
	e.mouse.reconcile(dt)
	e.touch.reconcile(dt)
	if e.debug {
		stats.reconcileTime = time.Since(t0)
		t0 = time.Now()
	}

	e.sched.dispatchUpdate(dt)
	if e.debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	e.scenes.update(dt)
	if e.debug {
		stats.sceneTime = time.Since(t0)
	}

	e.debugLog(dt, stats)
	e.debugCheckSubscribers()
	return nil
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.frame.Fill(e.opts.ClearColor.ToRGBA())

	e.sched.dispatchPreRender(e.frame)
	e.scenes.draw(e.frame)
	e.sched.dispatchPostRender(e.frame)

	screen.Clear()
	scale := e.viewport.Scale()
	origin := e.viewport.ScreenPosition()
	e.drawOpts.GeoM.Reset()
	e.drawOpts.GeoM.Scale(scale, scale)
	e.drawOpts.GeoM.Translate(origin.X, origin.Y)
	screen.DrawImage(e.frame, &e.drawOpts)
}

// Layout implements ebiten.Game. The engine renders at native window
// resolution and performs its own letterbox scaling.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	e.viewport.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks on the host game loop until the window
// closes or a scene returns an error through a panic.
func (e *Engine) Run() error {
	ebiten.SetWindowSize(
		int(float64(e.opts.Width)*e.opts.WindowScale),
		int(float64(e.opts.Height)*e.opts.WindowScale),
	)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}
