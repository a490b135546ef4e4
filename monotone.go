package tess

import "github.com/gogpu/tess/geom"

// side distinguishes the two chains of a y-monotone span.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

func (s side) opposite() side {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

// crossFixed returns the exact cross product (a-o) x (b-o).
// Positive means o, a, b wind clockwise in y-down coordinates.
func crossFixed(o, a, b fixedPoint) fdot32 {
	return fdot32(a.X-o.X)*fdot32(b.Y-o.Y) - fdot32(a.Y-o.Y)*fdot32(b.X-o.X)
}

// monoVertex is one vertex of a monotone polygon chain.
type monoVertex struct {
	pos  fixedPoint
	id   geom.VertexID
	side side
}

// monotoneTessellator triangulates a y-monotone polygon incrementally.
// Vertices arrive in sweep order, each tagged with the chain it
// belongs to; triangles are emitted as soon as they are known.
//
// The stack holds the reflex chain: vertices seen so far that could
// not be cut off yet. previous is the most recent vertex and doubles
// as the attachment point when a span is subdivided.
type monotoneTessellator struct {
	stack    []monoVertex
	previous monoVertex
}

// begin starts a new monotone polygon at its topmost vertex.
func (m *monotoneTessellator) begin(pos fixedPoint, id geom.VertexID) {
	m.previous = monoVertex{pos: pos, id: id, side: sideLeft}
	m.stack = m.stack[:0]
	m.stack = append(m.stack, m.previous)
}

// vertex feeds the next vertex in sweep order.
func (m *monotoneTessellator) vertex(pos fixedPoint, id geom.VertexID, s side, out geom.Builder) error {
	current := monoVertex{pos: pos, id: id, side: s}

	if s != m.previous.side {
		// Chain changed: every stacked vertex is now visible from
		// current, so the whole fan can be cut.
		for i := 0; i+1 < len(m.stack); i++ {
			a := m.stack[i]
			b := m.stack[i+1]
			if s == sideRight {
				a, b = b, a
			}
			if err := m.pushTriangle(a, b, current, out); err != nil {
				return err
			}
		}
		m.stack = m.stack[:0]
		m.stack = append(m.stack, m.previous)
	} else if len(m.stack) > 0 {
		// Same chain: cut ears while the turn stays convex.
		lastPopped := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		for len(m.stack) > 0 {
			w := m.stack[len(m.stack)-1]
			v := lastPopped
			cr := crossFixed(w.pos, v.pos, current.pos)
			ok := (s == sideLeft && cr <= 0) || (s == sideRight && cr >= 0)
			if !ok {
				break
			}
			if err := m.pushTriangle(w, v, current, out); err != nil {
				return err
			}
			lastPopped = w
			m.stack = m.stack[:len(m.stack)-1]
		}
		m.stack = append(m.stack, lastPopped)
	}

	m.stack = append(m.stack, current)
	m.previous = current
	return nil
}

// end feeds the bottommost vertex and flushes the remaining fan.
func (m *monotoneTessellator) end(pos fixedPoint, id geom.VertexID, out geom.Builder) error {
	err := m.vertex(pos, id, m.previous.side.opposite(), out)
	m.stack = m.stack[:0]
	return err
}

// pushTriangle emits one triangle with consistent winding. Zero-area
// triangles are kept so a simple polygon always yields exactly n-2.
func (m *monotoneTessellator) pushTriangle(a, b, c monoVertex, out geom.Builder) error {
	if crossFixed(a.pos, b.pos, c.pos) < 0 {
		a, b = b, a
	}
	if err := out.AddTriangle(a.id, b.id, c.id); err != nil {
		return errBuilder(err)
	}
	return nil
}
