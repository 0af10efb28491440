package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenPosition, TweenScale, TweenAlpha,
// TweenRotation) or NewTween, then either call Update(dt) yourself each frame
// or hand it to the scheduler with Play.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool

	handle  TickHandle
	playing bool
}

// NewTween creates a group animating each field to the matching target value
// over duration seconds. Panics when fields and targets disagree in length,
// are empty, or exceed 4 entries.
func NewTween(fields []*float64, targets []float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	if len(fields) == 0 || len(fields) > 4 || len(fields) != len(targets) {
		panic("rowan: tween needs 1 to 4 fields with matching targets")
	}
	g := &TweenGroup{count: len(fields)}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(targets[i]), float32(duration), fn)
		g.fields[i] = f
	}
	return g
}

// TweenPosition animates a sprite's X and Y.
func TweenPosition(s *Sprite, toX, toY, duration float64, fn ease.TweenFunc) *TweenGroup {
	return NewTween([]*float64{&s.X, &s.Y}, []float64{toX, toY}, duration, fn)
}

// TweenScale animates a sprite's ScaleX and ScaleY.
func TweenScale(s *Sprite, toX, toY, duration float64, fn ease.TweenFunc) *TweenGroup {
	return NewTween([]*float64{&s.ScaleX, &s.ScaleY}, []float64{toX, toY}, duration, fn)
}

// TweenAlpha animates a sprite's tint alpha.
func TweenAlpha(s *Sprite, to, duration float64, fn ease.TweenFunc) *TweenGroup {
	return NewTween([]*float64{&s.Color.A}, []float64{to}, duration, fn)
}

// TweenRotation animates a sprite's rotation.
func TweenRotation(s *Sprite, to, duration float64, fn ease.TweenFunc) *TweenGroup {
	return NewTween([]*float64{&s.Rotation}, []float64{to}, duration, fn)
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Once every tween finishes, Done is set and further calls no-op.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.Done && g.playing {
		g.playing = false
		g.handle.Remove()
	}
}

// Play subscribes the group to the scheduler's update phase. The
// subscription removes itself when the group finishes. Calling Play on an
// already playing or finished group is a no-op.
func (g *TweenGroup) Play(sched *Scheduler) {
	if g.playing || g.Done {
		return
	}
	g.playing = true
	g.handle = sched.OnUpdate(g.Update)
}

// Stop removes a playing group from the scheduler without finishing it.
func (g *TweenGroup) Stop() {
	if g.playing {
		g.playing = false
		g.handle.Remove()
	}
}
