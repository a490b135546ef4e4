package tess

import "github.com/gogpu/tess/geom"

// VertexKind classifies a sweep vertex by how it changes the set of
// filled spans crossing the sweep line.
type VertexKind uint8

const (
	// VertexStart opens one or more spans: edges leave the vertex
	// downward and none arrive from above.
	VertexStart VertexKind = iota
	// VertexEnd closes spans: edges arrive from above and none leave.
	VertexEnd
	// VertexSplit divides a span in two from the inside.
	VertexSplit
	// VertexMerge joins two neighboring spans into one region.
	VertexMerge
	// VertexRegular continues a span boundary.
	VertexRegular
)

// vertexKindNames maps VertexKind values to their string representation.
var vertexKindNames = [...]string{
	VertexStart:   "Start",
	VertexEnd:     "End",
	VertexSplit:   "Split",
	VertexMerge:   "Merge",
	VertexRegular: "Regular",
}

// String returns the string representation of a VertexKind.
func (k VertexKind) String() string {
	if int(k) < len(vertexKindNames) {
		return vertexKindNames[k]
	}
	return "Unknown"
}

// MessageKind identifies a sweep transition reported to a Tracer.
type MessageKind uint8

const (
	// MessageVertex reports a processed vertex event.
	MessageVertex MessageKind = iota
	// MessageEdgeInserted reports an edge entering the active list.
	MessageEdgeInserted
	// MessageEdgeRemoved reports an edge leaving the active list.
	MessageEdgeRemoved
	// MessageSpanOpened reports a filled span starting.
	MessageSpanOpened
	// MessageSpanClosed reports a filled span ending.
	MessageSpanClosed
	// MessageSpanSplit reports a span dividing in two.
	MessageSpanSplit
	// MessageSpanMerged reports two spans joining.
	MessageSpanMerged
	// MessageIntersection reports a crossing found between two active
	// edges.
	MessageIntersection
	// MessageError reports the error aborting the run.
	MessageError
)

// messageKindNames maps MessageKind values to their string representation.
var messageKindNames = [...]string{
	MessageVertex:       "Vertex",
	MessageEdgeInserted: "EdgeInserted",
	MessageEdgeRemoved:  "EdgeRemoved",
	MessageSpanOpened:   "SpanOpened",
	MessageSpanClosed:   "SpanClosed",
	MessageSpanSplit:    "SpanSplit",
	MessageSpanMerged:   "SpanMerged",
	MessageIntersection: "Intersection",
	MessageError:        "Error",
}

// String returns the string representation of a MessageKind.
func (k MessageKind) String() string {
	if int(k) < len(messageKindNames) {
		return messageKindNames[k]
	}
	return "Unknown"
}

// Message is one sweep transition. Position is the sweep position the
// transition happened at, after fixed-point snapping. The remaining
// fields are filled per kind: Vertex, Above and Below for
// MessageVertex, Err for MessageError.
type Message struct {
	Kind     MessageKind
	Position geom.Vertex

	// Vertex classifies the vertex of a MessageVertex.
	Vertex VertexKind

	// Above counts the edges connecting to the vertex from above,
	// including edges that pass exactly through it.
	Above int

	// Below counts the edges leaving the vertex downward, including
	// the lower halves of passing edges.
	Below int

	// Err is the error aborting the run, for MessageError.
	Err error
}

// A Tracer observes the sweep one transition at a time. It runs inside
// the sweep loop, so implementations should be cheap and must not call
// back into the tessellator. Tracers see transitions in sweep order,
// which makes them useful for debugging a shape's decomposition or
// driving visualizations.
type Tracer interface {
	Trace(m Message)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(m Message)

// Trace calls f(m).
func (f TracerFunc) Trace(m Message) { f(m) }

// BufferTracer records every message it receives, in order. Useful in
// tests and for attaching a sweep transcript to a bug report.
type BufferTracer struct {
	Messages []Message
}

// Trace implements Tracer.
func (b *BufferTracer) Trace(m Message) {
	b.Messages = append(b.Messages, m)
}

// Reset drops the recorded messages, keeping capacity.
func (b *BufferTracer) Reset() {
	b.Messages = b.Messages[:0]
}

// VertexKinds returns the classifications of the recorded vertex
// events, in sweep order.
func (b *BufferTracer) VertexKinds() []VertexKind {
	var kinds []VertexKind
	for _, m := range b.Messages {
		if m.Kind == MessageVertex {
			kinds = append(kinds, m.Vertex)
		}
	}
	return kinds
}

// Count returns how many recorded messages have the given kind.
func (b *BufferTracer) Count(kind MessageKind) int {
	n := 0
	for _, m := range b.Messages {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// LogTracer forwards every message to the package logger at debug
// level.
type LogTracer struct{}

// Trace implements Tracer.
func (LogTracer) Trace(m Message) {
	switch m.Kind {
	case MessageVertex:
		Logger().Debug("sweep transition",
			"kind", m.Kind.String(),
			"x", m.Position.X,
			"y", m.Position.Y,
			"vertex", m.Vertex.String(),
			"above", m.Above,
			"below", m.Below,
		)
	case MessageError:
		Logger().Debug("sweep transition",
			"kind", m.Kind.String(),
			"error", m.Err,
		)
	default:
		Logger().Debug("sweep transition",
			"kind", m.Kind.String(),
			"x", m.Position.X,
			"y", m.Position.Y,
		)
	}
}
