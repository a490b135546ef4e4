// Package tess converts 2D vector paths into triangle meshes.
//
// # Overview
//
// tess is a Pure Go fill tessellation library for the GoGPU ecosystem.
// It takes a path (any mix of closed and open subpaths, with holes and
// self-intersections) and produces an indexed triangle list suitable
// for uploading straight to a GPU vertex buffer.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/tess"
//		"github.com/gogpu/tess/geom"
//		"github.com/gogpu/tess/path"
//	)
//
//	p := path.New()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//	p.LineTo(0, 100)
//	p.Close()
//
//	var buf geom.Buffers[uint32]
//	count, err := tess.TessellatePath(p, nil, &buf)
//	// buf.Vertices and buf.Indices now hold the mesh.
//
// # Fill Rules
//
// Both standard fill rules are supported. FillRuleEvenOdd (the default)
// fills regions crossed an odd number of times; FillRuleNonZero fills
// regions with a non-zero winding number. Select via FillOptions.
//
// # Algorithm
//
// The tessellator runs a single top-to-bottom sweep over the path's
// vertices. Edges crossing the sweep line are kept sorted left to
// right, the regions between them are classified by the fill rule, and
// each filled region feeds an incremental monotone-polygon
// triangulator. Self-intersections are found and resolved during the
// sweep, so the input does not need to be pre-cleaned. Interior
// coordinates are 16.16 fixed point, which keeps the sweep's
// orientation tests exact.
//
// # Architecture
//
// The module is organized into:
//   - Root: FillTessellator, the sweep and monotone triangulation core
//   - path: path building, Bézier flattening, and the event iterator
//   - geom: vertex/index buffer types shared with GPU code
//   - glyph: font glyph outlines as tessellatable paths
//   - cache: memoized meshes keyed by path and options
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin at top-left,
// X increases right, Y increases down. The sweep proceeds in order of
// increasing Y. Coordinates are clamped to ±16384; inputs containing
// NaN are rejected.
package tess

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
