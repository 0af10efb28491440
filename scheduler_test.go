package rowan

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// testClock returns a scheduler whose clock advances step per tick.
func testClock(step time.Duration) *Scheduler {
	s := NewScheduler()
	now := time.Unix(0, 0)
	s.now = func() time.Time {
		now = now.Add(step)
		return now
	}
	return s
}

func TestSchedulerFirstFrameDelta(t *testing.T) {
	s := testClock(16 * time.Millisecond)

	if got := s.tick(); got != 0 {
		t.Errorf("first frame dt = %v, want 0", got)
	}
	if got := s.FPS(); got != 0 {
		t.Errorf("FPS before two frames = %d, want 0", got)
	}

	dt := s.tick()
	if dt < 0.0159 || dt > 0.0161 {
		t.Errorf("second frame dt = %v, want ~0.016", dt)
	}
	if got := s.FPS(); got != 63 { // round(1/0.016)
		t.Errorf("FPS = %d, want 63", got)
	}
}

func TestSchedulerFPSRounding(t *testing.T) {
	s := testClock(20 * time.Millisecond)
	s.tick()
	s.tick()
	if got := s.FPS(); got != 50 {
		t.Errorf("FPS at 20ms frames = %d, want 50", got)
	}
}

func TestSchedulerUpdateOrderIsRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.OnUpdate(func(dt float64) { order = append(order, 1) })
	s.OnUpdate(func(dt float64) { order = append(order, 2) })
	s.OnUpdate(func(dt float64) { order = append(order, 3) })

	s.dispatchUpdate(0.016)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("dispatch order = %v, want [1 2 3]", order)
	}
}

func TestSchedulerHandleRemove(t *testing.T) {
	s := NewScheduler()
	var calls int

	h1 := s.OnUpdate(func(dt float64) { calls++ })
	h2 := s.OnUpdate(func(dt float64) { calls += 10 })

	h1.Remove()
	s.dispatchUpdate(0.016)
	if calls != 10 {
		t.Errorf("calls = %d, want 10 (only second subscriber)", calls)
	}

	// Removing an already-removed handle is a no-op and never panics.
	h1.Remove()
	h1.Remove()
	s.dispatchUpdate(0.016)
	if calls != 20 {
		t.Errorf("calls = %d, want 20", calls)
	}

	h2.Remove()
	s.dispatchUpdate(0.016)
	if calls != 20 {
		t.Errorf("calls = %d after removing all, want 20", calls)
	}
}

func TestSchedulerRemoveSelfDuringDispatch(t *testing.T) {
	s := NewScheduler()
	var first, second int

	var h TickHandle
	h = s.OnUpdate(func(dt float64) {
		first++
		h.Remove()
	})
	s.OnUpdate(func(dt float64) { second++ })

	s.dispatchUpdate(0.016)
	if first != 1 {
		t.Errorf("self-removing subscriber ran %d times, want 1", first)
	}
	if second != 1 {
		t.Errorf("subscriber after a self-removal ran %d times this frame, want 1", second)
	}

	s.dispatchUpdate(0.016)
	if first != 1 {
		t.Errorf("removed subscriber ran again, %d total calls", first)
	}
	if second != 2 {
		t.Errorf("surviving subscriber ran %d times over two frames, want 2", second)
	}
}

func TestSchedulerRemoveOtherDuringDispatch(t *testing.T) {
	s := NewScheduler()
	var calls []int

	var hLast TickHandle
	s.OnUpdate(func(dt float64) {
		calls = append(calls, 1)
		hLast.Remove() // removes a later subscriber mid-frame
	})
	s.OnUpdate(func(dt float64) { calls = append(calls, 2) })
	hLast = s.OnUpdate(func(dt float64) { calls = append(calls, 3) })

	s.dispatchUpdate(0.016)
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("dispatch calls = %v, want [1 2]", calls)
	}
}

func TestSchedulerRemoveSelfDuringRenderDispatch(t *testing.T) {
	s := NewScheduler()
	frame := ebiten.NewImage(8, 8)
	var pre, post int

	var hPre, hPost TickHandle
	hPre = s.OnPreRender(func(f *ebiten.Image) {
		pre++
		hPre.Remove()
	})
	s.OnPreRender(func(f *ebiten.Image) { pre += 10 })
	hPost = s.OnPostRender(func(f *ebiten.Image) {
		post++
		hPost.Remove()
	})
	s.OnPostRender(func(f *ebiten.Image) { post += 10 })

	s.dispatchPreRender(frame)
	s.dispatchPostRender(frame)
	if pre != 11 {
		t.Errorf("pre-render calls = %d, want 11 (both subscribers once)", pre)
	}
	if post != 11 {
		t.Errorf("post-render calls = %d, want 11 (both subscribers once)", post)
	}
}

func TestSchedulerZeroHandleRemoveIsNoop(t *testing.T) {
	var h TickHandle
	h.Remove() // must not panic
}

func TestSchedulerRenderPhases(t *testing.T) {
	s := NewScheduler()
	frame := ebiten.NewImage(8, 8)
	var order []string

	s.OnPreRender(func(f *ebiten.Image) { order = append(order, "pre") })
	s.OnPostRender(func(f *ebiten.Image) { order = append(order, "post") })

	s.dispatchPreRender(frame)
	s.dispatchPostRender(frame)
	if len(order) != 2 || order[0] != "pre" || order[1] != "post" {
		t.Errorf("render phase order = %v, want [pre post]", order)
	}
}

func TestSchedulerRemoveByPhase(t *testing.T) {
	s := NewScheduler()
	frame := ebiten.NewImage(8, 8)
	var pre, post int

	hPre := s.OnPreRender(func(f *ebiten.Image) { pre++ })
	s.OnPostRender(func(f *ebiten.Image) { post++ })

	hPre.Remove()
	s.dispatchPreRender(frame)
	s.dispatchPostRender(frame)

	if pre != 0 {
		t.Errorf("removed pre-render subscriber ran %d times", pre)
	}
	if post != 1 {
		t.Errorf("post-render subscriber ran %d times, want 1", post)
	}
}
