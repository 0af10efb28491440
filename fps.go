package rowan

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSMeter is a small overlay showing the scheduler's frame rate and delta
// time, refreshed every half second. Subscribe it yourself:
//
//	meter := rowan.NewFPSMeter(eng.Scheduler())
//	defer meter.Close()
//
// It registers both an update and a post-render subscription so it works
// regardless of what the active scene draws.
type FPSMeter struct {
	sched        *Scheduler
	img          *ebiten.Image
	sinceRefresh float64
	updateHandle TickHandle
	drawHandle   TickHandle
	closed       bool
}

// NewFPSMeter creates a meter attached to the scheduler's update and
// post-render phases.
func NewFPSMeter(sched *Scheduler) *FPSMeter {
	m := &FPSMeter{
		sched:        sched,
		img:          ebiten.NewImage(100, 32),
		sinceRefresh: 1, // force an immediate first refresh
	}
	m.updateHandle = sched.OnUpdate(m.update)
	m.drawHandle = sched.OnPostRender(m.draw)
	return m
}

func (m *FPSMeter) update(dt float64) {
	m.sinceRefresh += dt
	if m.sinceRefresh < 0.5 {
		return
	}
	m.sinceRefresh = 0

	m.img.Clear()
	// Semi-transparent background for readability
	m.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(m.img, fmt.Sprintf("FPS: %d\ndt: %.1fms", m.sched.FPS(), m.sched.DeltaTime()*1000))
}

func (m *FPSMeter) draw(frame *ebiten.Image) {
	frame.DrawImage(m.img, nil)
}

// Close removes both subscriptions. Idempotent.
func (m *FPSMeter) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.updateHandle.Remove()
	m.drawHandle.Remove()
}
