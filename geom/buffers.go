// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// IndexType constrains the index width of a Buffers.
type IndexType interface {
	~uint16 | ~uint32
}

// Buffers accumulates tessellation output as flat vertex and index
// slices, ready for upload to a GPU buffer pair. The zero value is ready
// to use. Slices grow across geometries; successive geometries append,
// so one Buffers can hold a whole scene.
type Buffers[I IndexType] struct {
	Vertices []Vertex
	Indices  []I

	vertexMark int
	indexMark  int
}

// BeginGeometry implements Builder.
func (b *Buffers[I]) BeginGeometry() {
	b.vertexMark = len(b.Vertices)
	b.indexMark = len(b.Indices)
}

// AddVertex implements Builder. Identifiers are offsets relative to the
// current geometry's start; stored indices are absolute, so the capacity
// check is against the absolute position.
func (b *Buffers[I]) AddVertex(v Vertex) (VertexID, error) {
	if uint64(len(b.Vertices)) > uint64(^I(0)) {
		return 0, ErrTooManyVertices
	}
	b.Vertices = append(b.Vertices, v)
	return VertexID(len(b.Vertices) - 1 - b.vertexMark), nil
}

// AddTriangle implements Builder.
func (b *Buffers[I]) AddTriangle(x, y, z VertexID) error {
	n := VertexID(len(b.Vertices) - b.vertexMark)
	for _, id := range [3]VertexID{x, y, z} {
		if id >= n {
			return &InvalidVertexIDError{ID: id}
		}
	}
	base := I(b.vertexMark)
	b.Indices = append(b.Indices, base+I(x), base+I(y), base+I(z))
	return nil
}

// EndGeometry implements Builder.
func (b *Buffers[I]) EndGeometry() Count {
	return Count{
		Vertices: uint32(len(b.Vertices) - b.vertexMark),
		Indices:  uint32(len(b.Indices) - b.indexMark),
	}
}

// AbortGeometry implements Builder.
func (b *Buffers[I]) AbortGeometry() {
	b.Vertices = b.Vertices[:b.vertexMark]
	b.Indices = b.Indices[:b.indexMark]
}

// Reset empties both slices, keeping capacity.
func (b *Buffers[I]) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.vertexMark = 0
	b.indexMark = 0
}
