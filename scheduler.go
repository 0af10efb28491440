package rowan

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// phase identifies which subscriber list a TickHandle belongs to.
type phase uint8

const (
	phaseUpdate phase = iota
	phasePreRender
	phasePostRender
)

type tickSub struct {
	id uint32
	fn func(dt float64)
}

type drawSub struct {
	id uint32
	fn func(frame *ebiten.Image)
}

// TickHandle allows removing a registered scheduler callback.
type TickHandle struct {
	id    uint32
	sched *Scheduler
	phase phase
}

// Remove unregisters this callback so it no longer fires. Removing an
// already-removed handle is a no-op.
func (h TickHandle) Remove() {
	if h.sched == nil {
		return
	}
	switch h.phase {
	case phaseUpdate:
		h.sched.update = removeTickSub(h.sched.update, h.id)
	case phasePreRender:
		h.sched.preRender = removeDrawSub(h.sched.preRender, h.id)
	case phasePostRender:
		h.sched.postRender = removeDrawSub(h.sched.postRender, h.id)
	}
}

func removeTickSub(s []tickSub, id uint32) []tickSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tickSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDrawSub(s []drawSub, id uint32) []drawSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = drawSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Scheduler drives the per-frame update and draw phases.
//
// On every frame it computes the elapsed wall-clock time since the previous
// frame, then dispatches, in strict order: update subscribers (registration
// order), the active scene's update, the frame clear, pre-render
// subscribers, the scene's draw, and post-render subscribers. The underlying
// frame signal is Ebitengine's vsync-aligned loop; there is no private
// goroutine and no stop API beyond the host loop ending.
type Scheduler struct {
	deltaTime float64 // seconds since the previous frame
	lastTime  time.Time
	frames    uint64

	update     []tickSub
	preRender  []drawSub
	postRender []drawSub
	nextID     uint32

	now func() time.Time // swappable clock for tests
}

// NewScheduler creates a scheduler with the wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// OnUpdate registers fn to run every frame before the scene updates, with the
// frame's elapsed time in seconds. Subscribers run in registration order.
func (s *Scheduler) OnUpdate(fn func(dt float64)) TickHandle {
	s.nextID++
	s.update = append(s.update, tickSub{id: s.nextID, fn: fn})
	return TickHandle{id: s.nextID, sched: s, phase: phaseUpdate}
}

// OnPreRender registers fn to run every frame after the clear and before the
// scene draws.
func (s *Scheduler) OnPreRender(fn func(frame *ebiten.Image)) TickHandle {
	s.nextID++
	s.preRender = append(s.preRender, drawSub{id: s.nextID, fn: fn})
	return TickHandle{id: s.nextID, sched: s, phase: phasePreRender}
}

// OnPostRender registers fn to run every frame after the scene draws.
func (s *Scheduler) OnPostRender(fn func(frame *ebiten.Image)) TickHandle {
	s.nextID++
	s.postRender = append(s.postRender, drawSub{id: s.nextID, fn: fn})
	return TickHandle{id: s.nextID, sched: s, phase: phasePostRender}
}

// tick advances the frame clock and returns the elapsed time in seconds.
// The first frame has no predecessor and reports 0.
func (s *Scheduler) tick() float64 {
	now := s.now()
	if s.frames == 0 {
		s.deltaTime = 0
	} else {
		s.deltaTime = now.Sub(s.lastTime).Seconds()
	}
	s.lastTime = now
	s.frames++
	return s.deltaTime
}

// DeltaTime returns the elapsed time of the current frame in seconds.
func (s *Scheduler) DeltaTime() float64 {
	return s.deltaTime
}

// FPS returns the instantaneous frame rate, rounded to the nearest integer.
// Returns 0 until two frames have elapsed.
func (s *Scheduler) FPS() int {
	if s.frames < 2 || s.deltaTime <= 0 {
		return 0
	}
	return int(math.Round(1 / s.deltaTime))
}

// The dispatchers iterate against the live slice so callbacks may remove
// handles mid-frame (a finishing tween removes itself from inside its own
// update). After each call, the index advances only if the slot still holds
// the subscriber that was just run; a removal shifts the next one into the
// slot, and skipping it would drop a frame.

func (s *Scheduler) dispatchUpdate(dt float64) {
	for i := 0; i < len(s.update); {
		sub := s.update[i]
		sub.fn(dt)
		if i < len(s.update) && s.update[i].id == sub.id {
			i++
		}
	}
}

func (s *Scheduler) dispatchPreRender(frame *ebiten.Image) {
	for i := 0; i < len(s.preRender); {
		sub := s.preRender[i]
		sub.fn(frame)
		if i < len(s.preRender) && s.preRender[i].id == sub.id {
			i++
		}
	}
}

func (s *Scheduler) dispatchPostRender(frame *ebiten.Image) {
	for i := 0; i < len(s.postRender); {
		sub := s.postRender[i]
		sub.fn(frame)
		if i < len(s.postRender) && s.postRender[i].id == sub.id {
			i++
		}
	}
}
