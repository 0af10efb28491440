// Package rowan is a fixed-resolution 2D game engine core for [Ebitengine].
//
// Rowan provides the frame scheduler, keyboard/mouse/touch state machines,
// scene registry, viewport scaling, asset registries, sprite animation, and
// the small set of UI widgets (buttons, nine-slice panels, input fields)
// that every small 2D game needs. Games render at a fixed logical
// resolution; rowan letterboxes the frame into whatever window it is given.
//
// # Quick start
//
// Construct an [Engine], register at least one scene, and hand the engine
// to Ebitengine:
//
//	eng := rowan.NewEngine(rowan.Options{
//		Width: 320, Height: 180, Title: "My Game",
//	})
//	eng.Scenes().Register("title", &TitleScene{})
//	eng.Scenes().Goto("title")
//	if err := eng.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// A [Scene] receives Update(dt) once per frame, after input reconciliation,
// and Draw(frame) after the frame has been cleared. Input is polled, never
// pushed:
//
//	func (s *TitleScene) Update(e *rowan.Engine, dt float64) {
//		if e.Keyboard().IsJustDown(ebiten.KeySpace) {
//			e.Scenes().Goto("game")
//		}
//	}
//
// # Input model
//
// Raw key/button/touch edges arrive asynchronously (from the host, from
// [Engine] capture, or injected via the Inject helpers) and are folded into
// frame-stable four-valued states ([KeyState]) exactly once per frame,
// always before the scene updates. JustDown/JustUp hold for exactly one
// frame. See [Keyboard], [Mouse], [Touch], and [Clickable].
//
// # Per-frame callbacks
//
// Anything needing a tick outside a scene subscribes to the [Scheduler]
// and receives a [TickHandle] token for removal:
//
//	h := eng.Scheduler().OnUpdate(func(dt float64) { ... })
//	defer h.Remove()
//
// [Ebitengine]: https://ebitengine.org
package rowan
