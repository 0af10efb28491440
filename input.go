package rowan

// rawEdge is the last-seen physical edge for a key or button, as recorded by
// the host event handlers between two reconciliations.
type rawEdge uint8

const (
	edgeUp rawEdge = iota
	edgeDown
)

// edgeStates is the four-valued state machine shared by Keyboard and Mouse.
//
// Host callbacks (or injection) write the most recent physical edge per
// identifier into the raw buffer; multiple edges for the same identifier
// between two frames coalesce to the last arrival. Once per frame, reconcile
// folds the buffer against a snapshot of the previous frame's states into a
// fresh map and swaps the two maps, so the fold never reads a map it is
// mutating. The buffer is cleared afterwards; identifiers with no fresh edge
// decay JustDown to Down and JustUp to Up, guaranteeing that Just* states
// hold for exactly one frame.
type edgeStates[K comparable] struct {
	edges map[K]rawEdge
	cur   map[K]KeyState
	prev  map[K]KeyState
}

func newEdgeStates[K comparable]() edgeStates[K] {
	return edgeStates[K]{
		edges: make(map[K]rawEdge),
		cur:   make(map[K]KeyState),
		prev:  make(map[K]KeyState),
	}
}

// recordDown records a "down" edge. The first-ever down for an identifier
// seeds its state with Up so the next reconcile derives JustDown.
func (m *edgeStates[K]) recordDown(id K) {
	if _, ok := m.cur[id]; !ok {
		m.cur[id] = KeyStateUp
	}
	m.edges[id] = edgeDown
}

// recordUp records an "up" edge.
func (m *edgeStates[K]) recordUp(id K) {
	if _, ok := m.cur[id]; !ok {
		m.cur[id] = KeyStateUp
	}
	m.edges[id] = edgeUp
}

// reconcile folds the raw buffer into the state map. Called exactly once per
// frame, before the scene updates.
func (m *edgeStates[K]) reconcile() {
	m.prev, m.cur = m.cur, m.prev
	clear(m.cur)

	for id, st := range m.prev {
		edge, fresh := m.edges[id]
		switch {
		case fresh && edge == edgeDown && !st.isDown():
			m.cur[id] = KeyStateJustDown
		case fresh && edge == edgeUp && st.isDown():
			m.cur[id] = KeyStateJustUp
		case fresh && edge == edgeDown:
			m.cur[id] = KeyStateDown
		case fresh:
			m.cur[id] = KeyStateUp
		case st == KeyStateJustDown:
			m.cur[id] = KeyStateDown
		case st == KeyStateJustUp:
			m.cur[id] = KeyStateUp
		default:
			m.cur[id] = st
		}
	}
	clear(m.edges)
}

// state returns the reconciled state for id. Never-seen identifiers resolve
// to Up.
func (m *edgeStates[K]) state(id K) KeyState {
	return m.cur[id] // zero value is KeyStateUp
}
