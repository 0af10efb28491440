package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Keyboard state machine ---

func TestKeyboardDefaultsUp(t *testing.T) {
	k := NewKeyboard()
	k.reconcile(0.016)

	if !k.IsUp(ebiten.KeyA) {
		t.Error("never-pressed key should report IsUp")
	}
	if k.IsDown(ebiten.KeyA) {
		t.Error("never-pressed key should not report IsDown")
	}
	if k.IsJustDown(ebiten.KeyA) || k.IsJustUp(ebiten.KeyA) {
		t.Error("never-pressed key should not report transitions")
	}
}

func TestKeyboardJustDownHoldsOneFrame(t *testing.T) {
	k := NewKeyboard()

	k.RecordDown(ebiten.KeyA)
	k.reconcile(0.016)
	if !k.IsJustDown(ebiten.KeyA) {
		t.Fatal("frame 1: expected IsJustDown after a down edge")
	}
	if !k.IsDown(ebiten.KeyA) {
		t.Error("frame 1: JustDown should also report IsDown")
	}

	// No new edge: the state decays to steady Down.
	k.reconcile(0.016)
	if k.IsJustDown(ebiten.KeyA) {
		t.Error("frame 2: IsJustDown should hold for exactly one frame")
	}
	if !k.IsDown(ebiten.KeyA) {
		t.Error("frame 2: key should remain down with no release edge")
	}

	// And stays steady however many frames pass.
	for i := 0; i < 5; i++ {
		k.reconcile(0.016)
	}
	if !k.IsDown(ebiten.KeyA) || k.IsJustDown(ebiten.KeyA) {
		t.Error("held key should stay plain Down across frames")
	}
}

func TestKeyboardJustUpHoldsOneFrame(t *testing.T) {
	k := NewKeyboard()

	k.RecordDown(ebiten.KeySpace)
	k.reconcile(0.016)
	k.RecordUp(ebiten.KeySpace)
	k.reconcile(0.016)

	if !k.IsJustUp(ebiten.KeySpace) {
		t.Fatal("expected IsJustUp after a release edge")
	}
	if k.IsDown(ebiten.KeySpace) {
		t.Error("JustUp should not report IsDown")
	}

	k.reconcile(0.016)
	if k.IsJustUp(ebiten.KeySpace) {
		t.Error("IsJustUp should hold for exactly one frame")
	}
	if !k.IsUp(ebiten.KeySpace) {
		t.Error("key should remain up")
	}
}

func TestKeyboardCoalescesEdgesWithinOneFrame(t *testing.T) {
	k := NewKeyboard()

	// Down then up before a single reconciliation: the last edge wins.
	k.RecordDown(ebiten.KeyA)
	k.RecordUp(ebiten.KeyA)
	k.reconcile(0.016)

	if k.IsDown(ebiten.KeyA) {
		t.Error("coalesced down+up should resolve to up")
	}
	if k.IsJustUp(ebiten.KeyA) {
		t.Error("key that was never observed down should not report IsJustUp")
	}

	// Up then down: down wins, and it is a fresh transition.
	k.RecordUp(ebiten.KeyB)
	k.RecordDown(ebiten.KeyB)
	k.reconcile(0.016)
	if !k.IsJustDown(ebiten.KeyB) {
		t.Error("coalesced up+down should resolve to JustDown")
	}
}

func TestKeyboardRepeatedDownEdgeStaysDown(t *testing.T) {
	k := NewKeyboard()

	k.RecordDown(ebiten.KeyA)
	k.reconcile(0.016)
	// Host key-repeat may deliver another down edge for a held key.
	k.RecordDown(ebiten.KeyA)
	k.reconcile(0.016)

	if k.IsJustDown(ebiten.KeyA) {
		t.Error("a repeated down edge on a held key must not re-emit JustDown")
	}
	if !k.IsDown(ebiten.KeyA) {
		t.Error("held key should stay down")
	}
}

func TestKeyboardIndependentKeys(t *testing.T) {
	k := NewKeyboard()

	k.RecordDown(ebiten.KeyA)
	k.RecordDown(ebiten.KeyB)
	k.reconcile(0.016)
	k.RecordUp(ebiten.KeyA)
	k.reconcile(0.016)

	if !k.IsJustUp(ebiten.KeyA) {
		t.Error("KeyA should be JustUp")
	}
	if !k.IsDown(ebiten.KeyB) {
		t.Error("KeyB should be unaffected by KeyA's release")
	}
}

// --- Mouse state machine ---

func TestMouseButtonLifecycle(t *testing.T) {
	m := NewMouse()

	if !m.IsUp(ebiten.MouseButtonLeft) {
		t.Error("never-pressed button should report IsUp")
	}

	m.RecordDown(ebiten.MouseButtonLeft)
	m.reconcile(0.016)
	if !m.IsJustDown(ebiten.MouseButtonLeft) {
		t.Fatal("expected JustDown after press edge")
	}

	m.reconcile(0.016)
	if !m.IsDown(ebiten.MouseButtonLeft) || m.IsJustDown(ebiten.MouseButtonLeft) {
		t.Error("held button should decay to steady Down")
	}

	m.RecordUp(ebiten.MouseButtonLeft)
	m.reconcile(0.016)
	if !m.IsJustUp(ebiten.MouseButtonLeft) {
		t.Error("expected JustUp after release edge")
	}

	m.reconcile(0.016)
	if !m.IsUp(ebiten.MouseButtonLeft) || m.IsJustUp(ebiten.MouseButtonLeft) {
		t.Error("released button should decay to steady Up")
	}
}

func TestMousePositionNotClamped(t *testing.T) {
	m := NewMouse()
	m.RecordMove(-40, 999)

	got := m.Position()
	if got.X != -40 || got.Y != 999 {
		t.Errorf("mouse position = %+v, want (-40, 999); mouse must not clamp", got)
	}
}

func TestMouseButtonsIndependent(t *testing.T) {
	m := NewMouse()

	m.RecordDown(ebiten.MouseButtonLeft)
	m.RecordDown(ebiten.MouseButtonRight)
	m.reconcile(0.016)
	m.RecordUp(ebiten.MouseButtonRight)
	m.reconcile(0.016)

	if !m.IsDown(ebiten.MouseButtonLeft) {
		t.Error("left button should stay down")
	}
	if !m.IsJustUp(ebiten.MouseButtonRight) {
		t.Error("right button should be JustUp")
	}
}
