package cache

import (
	"math"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/geom"
	"github.com/gogpu/tess/path"
)

// Mesh is an immutable tessellation result. The slices are shared
// between all users of the cache entry; callers must not modify them.
type Mesh struct {
	Vertices []geom.Vertex
	Indices  []uint32
	Count    geom.Count
}

// meshKey identifies one (path, fill options) combination. Tolerance
// is stored as float bits so the struct stays comparable.
type meshKey struct {
	path      uint64
	rule      tess.FillRule
	tolerance uint32
	intersect bool
}

// Meshes caches fill meshes keyed by path hash and fill options. It
// is safe for concurrent use; a miss tessellates under the shard lock
// so the same path is never tessellated twice concurrently.
type Meshes struct {
	cache *Sharded[meshKey, *Mesh]
}

// NewMeshes returns a mesh cache holding up to capacity meshes per
// shard; capacity <= 0 selects DefaultCapacity.
func NewMeshes(capacity int) *Meshes {
	return &Meshes{cache: NewSharded[meshKey, *Mesh](capacity, meshKeyHash)}
}

// makeKey normalizes opts the way tessellation does, so calls that
// tessellate identically share an entry.
func makeKey(p *path.Path, opts *tess.FillOptions) meshKey {
	o := tess.DefaultFillOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tolerance <= 0 {
		o.Tolerance = path.DefaultTolerance
	}
	return meshKey{
		path:      p.Hash(),
		rule:      o.FillRule,
		tolerance: math.Float32bits(o.Tolerance),
		intersect: o.HandleIntersections,
	}
}

// meshKeyHash folds all key fields FNV-1a style for shard selection.
func meshKeyHash(k meshKey) uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)
	h := uint64(fnvOffset)
	h ^= k.path
	h *= fnvPrime
	h ^= uint64(k.rule)
	h *= fnvPrime
	h ^= uint64(k.tolerance)
	h *= fnvPrime
	if k.intersect {
		h ^= 1
	}
	h *= fnvPrime
	return h
}

// GetOrTessellate returns the cached mesh for p under opts,
// tessellating and storing it on a miss. A nil opts selects the
// defaults. The returned mesh is shared; treat it as read-only.
//
// The key is the 64-bit path hash; colliding paths would share an
// entry, which is accepted.
func (m *Meshes) GetOrTessellate(p *path.Path, opts *tess.FillOptions) (*Mesh, error) {
	return m.cache.GetOrCreate(makeKey(p, opts), func() (*Mesh, error) {
		var buf geom.Buffers[uint32]
		count, err := tess.TessellatePath(p, opts, &buf)
		if err != nil {
			return nil, err
		}
		return &Mesh{Vertices: buf.Vertices, Indices: buf.Indices, Count: count}, nil
	})
}

// Stats returns a snapshot of the hit, miss and eviction counters.
func (m *Meshes) Stats() Stats {
	return m.cache.Stats()
}

// Len counts cached meshes.
func (m *Meshes) Len() int {
	return m.cache.Len()
}

// Clear drops every cached mesh.
func (m *Meshes) Clear() {
	m.cache.Clear()
}
