// Package geom defines the geometry receiver consumed by the tessellator
// and a concrete vertex/index buffer implementation.
//
// The tessellator does not retain meshes. It pushes vertices and triangles
// into a Builder as they are produced; the Builder owns the storage policy
// (index width, interleaving, growth). Buffers is the stock implementation
// and is what most callers want.
package geom

import "errors"

// VertexID identifies a vertex previously registered with a Builder.
// IDs are opaque to the tessellator; Buffers uses positional indices.
type VertexID uint32

// Vertex is a single output vertex position.
type Vertex struct {
	X, Y float32
}

// Count reports the size of a completed geometry.
type Count struct {
	// Vertices is the number of vertices added since BeginGeometry.
	Vertices uint32

	// Indices is the number of triangle indices added since BeginGeometry.
	// Always a multiple of three.
	Indices uint32
}

// Triangles returns the number of triangles in the geometry.
func (c Count) Triangles() uint32 {
	return c.Indices / 3
}

// Builder receives tessellation output incrementally.
//
// Call order: BeginGeometry, then any number of AddVertex/AddTriangle
// calls, then exactly one of EndGeometry or AbortGeometry. A Builder may
// be reused for several geometries in sequence. Implementations are not
// required to be safe for concurrent use.
type Builder interface {
	// BeginGeometry marks the start of a new geometry.
	BeginGeometry()

	// AddVertex registers a vertex and returns its identifier.
	// Fails with ErrTooManyVertices when the identifier space is exhausted.
	AddVertex(v Vertex) (VertexID, error)

	// AddTriangle adds one triangle referencing previously returned
	// identifiers. Fails with an InvalidVertexIDError for identifiers
	// that were never returned by AddVertex.
	AddTriangle(a, b, c VertexID) error

	// EndGeometry completes the geometry and returns its size.
	EndGeometry() Count

	// AbortGeometry discards everything added since BeginGeometry.
	// Used by the tessellator on error so partial output never leaks.
	AbortGeometry()
}

// ErrTooManyVertices is returned by AddVertex when the builder's index
// space is exhausted (for example more than 65535 vertices with uint16
// indices). Callers recover by splitting the input into several meshes.
var ErrTooManyVertices = errors.New("geom: too many vertices for index type")

// InvalidVertexIDError is returned by AddTriangle for an identifier that
// does not refer to a registered vertex.
type InvalidVertexIDError struct {
	ID VertexID
}

func (e *InvalidVertexIDError) Error() string {
	return "geom: invalid vertex id in triangle"
}
