package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func testSheet(t *testing.T, frames int) *SpriteSheet {
	t.Helper()
	return NewSpriteSheet(ebiten.NewImage(16*frames, 16), 16, 16)
}

func TestAnimationDefaultsToAllFrames(t *testing.T) {
	anim := NewAnimation(testSheet(t, 4), nil, 0, true)
	if got := anim.FrameCount(); got != 4 {
		t.Errorf("frame count = %d, want 4", got)
	}
	if anim.fps != defaultAnimationFPS {
		t.Errorf("fps = %v, want default %v", anim.fps, defaultAnimationFPS)
	}
}

func TestAnimationInvalidFramePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-range frame index should panic")
		}
	}()
	NewAnimation(testSheet(t, 4), []int{0, 4}, 10, true)
}

func TestPlayerAdvances(t *testing.T) {
	sched := NewScheduler()
	anim := NewAnimation(testSheet(t, 4), nil, 2, false) // 0.5s per frame

	p := anim.NewPlayer(sched)
	defer p.Close()

	sched.dispatchUpdate(0.6)
	if got := p.FrameIndex(); got != 0 {
		t.Errorf("paused player advanced to frame %d", got)
	}

	p.Play()
	sched.dispatchUpdate(0.5)
	if got := p.FrameIndex(); got != 1 {
		t.Errorf("frame index = %d, want 1", got)
	}

	// A large dt steps through multiple frames.
	sched.dispatchUpdate(1.0)
	if got := p.FrameIndex(); got != 3 {
		t.Errorf("frame index = %d, want 3", got)
	}
}

func TestPlayerCompletesOnce(t *testing.T) {
	sched := NewScheduler()
	anim := NewAnimation(testSheet(t, 2), nil, 2, false)

	p := anim.NewPlayer(sched)
	defer p.Close()

	var completions int
	p.OnComplete = func() { completions++ }

	p.Play()
	sched.dispatchUpdate(2.0) // well past the end
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if p.Playing() {
		t.Error("finished non-looping player should stop")
	}
	if got := p.FrameIndex(); got != 1 {
		t.Errorf("finished player should hold the final frame, got %d", got)
	}

	// Further ticks change nothing.
	sched.dispatchUpdate(1.0)
	if completions != 1 {
		t.Errorf("completions = %d after extra ticks, want 1", completions)
	}
}

func TestPlayerLoops(t *testing.T) {
	sched := NewScheduler()
	anim := NewAnimation(testSheet(t, 3), nil, 10, true) // 0.1s per frame

	p := anim.NewPlayer(sched)
	defer p.Close()
	p.Play()

	sched.dispatchUpdate(0.35) // 3 steps: 0 -> 1 -> 2 -> 0
	if got := p.FrameIndex(); got != 0 {
		t.Errorf("looping frame index = %d, want 0", got)
	}
	if !p.Playing() {
		t.Error("looping player should keep playing")
	}
}

func TestPlayerCloseUnsubscribes(t *testing.T) {
	sched := NewScheduler()
	anim := NewAnimation(testSheet(t, 4), nil, 10, true)

	p := anim.NewPlayer(sched)
	p.Play()
	p.Close()
	p.Close() // idempotent

	sched.dispatchUpdate(1.0)
	if got := p.FrameIndex(); got != 0 {
		t.Errorf("closed player advanced to frame %d", got)
	}
	if p.Playing() {
		t.Error("closed player should not report playing")
	}
}

func TestPlayerSubsetSequence(t *testing.T) {
	sched := NewScheduler()
	anim := NewAnimation(testSheet(t, 4), []int{2, 0}, 10, false)

	p := anim.NewPlayer(sched)
	defer p.Close()
	p.Play()

	if p.Frame() != anim.sheet.Frame(2) {
		t.Error("sequence position 0 should map to sheet frame 2")
	}
	sched.dispatchUpdate(0.1)
	if p.Frame() != anim.sheet.Frame(0) {
		t.Error("sequence position 1 should map to sheet frame 0")
	}
}
