package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultAnimationFPS is used when an Animation does not set its own rate.
const defaultAnimationFPS = 10

// Animation is a named sequence of sprite sheet frames played at a fixed
// rate. Animations are immutable descriptions; playback state lives in
// Player.
type Animation struct {
	sheet  *SpriteSheet
	frames []int
	fps    float64
	loop   bool
}

// NewAnimation creates an animation over the given sheet frames. A nil or
// empty frame list plays the whole sheet in order. An fps of 0 uses the
// default rate. Panics on out-of-range frame indices or negative fps.
func NewAnimation(sheet *SpriteSheet, frames []int, fps float64, loop bool) *Animation {
	if fps < 0 {
		panic(fmt.Sprintf("rowan: animation fps must not be negative, got %g", fps))
	}
	if fps == 0 {
		fps = defaultAnimationFPS
	}
	if len(frames) == 0 {
		frames = make([]int, sheet.FrameCount())
		for i := range frames {
			frames[i] = i
		}
	}
	for _, f := range frames {
		if f < 0 || f >= sheet.FrameCount() {
			panic(fmt.Sprintf("rowan: animation frame %d out of range [0, %d)", f, sheet.FrameCount()))
		}
	}
	return &Animation{sheet: sheet, frames: frames, fps: fps, loop: loop}
}

// FrameCount returns the number of frames in the sequence.
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// frameImage returns the sheet image for sequence position i.
func (a *Animation) frameImage(i int) *ebiten.Image {
	return a.sheet.Frame(a.frames[i])
}

// Player advances an Animation through a scheduler update subscription.
// Close releases the subscription; a closed player never advances again.
type Player struct {
	anim    *Animation
	elapsed float64
	index   int
	playing bool
	closed  bool
	handle  TickHandle

	// OnComplete fires once when a non-looping animation reaches its final
	// frame. Looping animations never fire it.
	OnComplete func()
}

// NewPlayer creates a playback head for the animation, subscribed to the
// scheduler's update phase. The player starts paused on frame 0.
func (a *Animation) NewPlayer(sched *Scheduler) *Player {
	p := &Player{anim: a}
	p.handle = sched.OnUpdate(p.advance)
	return p
}

// Play starts or resumes playback.
func (p *Player) Play() {
	if !p.closed {
		p.playing = true
	}
}

// Pause stops playback without resetting the position.
func (p *Player) Pause() {
	p.playing = false
}

// Reset rewinds to frame 0 without changing the play/pause state.
func (p *Player) Reset() {
	p.elapsed = 0
	p.index = 0
}

// Playing reports whether the player is advancing.
func (p *Player) Playing() bool {
	return p.playing
}

// FrameIndex returns the current position in the frame sequence.
func (p *Player) FrameIndex() int {
	return p.index
}

// Frame returns the image for the current frame.
func (p *Player) Frame() *ebiten.Image {
	return p.anim.frameImage(p.index)
}

// Close unsubscribes the player from the scheduler. Idempotent.
func (p *Player) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.playing = false
	p.handle.Remove()
}

// advance moves the playback head by dt seconds.
func (p *Player) advance(dt float64) {
	if !p.playing {
		return
	}
	p.elapsed += dt
	frameDur := 1 / p.anim.fps
	for p.elapsed >= frameDur {
		p.elapsed -= frameDur
		if p.index+1 < len(p.anim.frames) {
			p.index++
			continue
		}
		if p.anim.loop {
			p.index = 0
			continue
		}
		// Non-looping animation finished: hold the final frame.
		p.playing = false
		p.elapsed = 0
		if p.OnComplete != nil {
			p.OnComplete()
		}
		return
	}
}
