package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of a game: a title, a level, a pause overlay. The
// engine calls Update once per frame after input reconciliation and all
// scheduler update subscribers, then Draw after the frame has been cleared.
type Scene interface {
	Update(e *Engine, dt float64)
	Draw(e *Engine, frame *ebiten.Image)
}

// SceneLoader is implemented by scenes that need setup when they become
// active.
type SceneLoader interface {
	Load(e *Engine)
}

// SceneUnloader is implemented by scenes that need teardown when another
// scene replaces them.
type SceneUnloader interface {
	Unload(e *Engine)
}

// SceneManager tracks named scenes and the single active one.
//
// Registration is configuration: registering the same name twice is a
// programmer error and panics, as is switching to a name that was never
// registered. With no active scene, update and draw are no-ops.
type SceneManager struct {
	engine  *Engine
	scenes  map[string]Scene
	current Scene
	name    string
}

func newSceneManager(e *Engine) *SceneManager {
	return &SceneManager{engine: e, scenes: make(map[string]Scene)}
}

// Register adds a scene under the given name. Panics if the name is taken.
func (m *SceneManager) Register(name string, s Scene) {
	if _, ok := m.scenes[name]; ok {
		panic(fmt.Sprintf("rowan: scene %q already exists", name))
	}
	m.scenes[name] = s
}

// Goto unloads the active scene (if it implements SceneUnloader), activates
// the named scene, and loads it (if it implements SceneLoader). Panics if no
// scene was registered under the name.
func (m *SceneManager) Goto(name string) {
	next, ok := m.scenes[name]
	if !ok {
		panic(fmt.Sprintf("rowan: unknown scene %q", name))
	}
	if u, ok := m.current.(SceneUnloader); ok {
		u.Unload(m.engine)
	}
	m.current = next
	m.name = name
	if l, ok := next.(SceneLoader); ok {
		l.Load(m.engine)
	}
}

// Current returns the active scene, or nil if none has been activated.
func (m *SceneManager) Current() Scene {
	return m.current
}

// CurrentName returns the active scene's registered name, or "".
func (m *SceneManager) CurrentName() string {
	return m.name
}

func (m *SceneManager) update(dt float64) {
	if m.current != nil {
		m.current.Update(m.engine, dt)
	}
}

func (m *SceneManager) draw(frame *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(m.engine, frame)
	}
}
