// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"errors"
	"iter"
	"math"

	"github.com/gogpu/tess/geom"
	"github.com/gogpu/tess/path"
)

// FillTessellator converts filled 2D shapes into triangle meshes.
//
// A tessellator is reusable: calling Tessellate again recycles the
// internal queues and buffers from the previous run. It is not safe
// for concurrent use; create one per goroutine or use TessellateAll.
//
// The zero value is ready to use.
type FillTessellator struct {
	queue  eventQueue
	active []activeEdge
	spans  []monotoneTessellator
	opts   FillOptions
	out    geom.Builder
	tracer Tracer

	events int
	hits   int
}

// NewFillTessellator returns a tessellator ready for use.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// SetTracer registers a tracer invoked for every sweep transition of
// subsequent runs. A nil tracer disables tracing.
func (t *FillTessellator) SetTracer(tr Tracer) {
	t.tracer = tr
}

// Tessellate fills the shape described by the event sequence and
// writes the resulting mesh to out. Every subpath is treated as
// closed, whether or not its End event says so. Subpaths that enclose
// no area produce no triangles, though the sweep may still register
// vertices that no triangle references.
//
// opts may be nil, in which case DefaultFillOptions apply. On error
// the builder's geometry is aborted and no partial output is kept.
func (t *FillTessellator) Tessellate(events iter.Seq[path.Event], opts *FillOptions, out geom.Builder) (geom.Count, error) {
	if opts == nil {
		def := DefaultFillOptions()
		opts = &def
	}
	t.opts = *opts
	t.out = out
	t.queue.reset()
	t.active = t.active[:0]
	t.spans = t.spans[:0]
	t.events = 0
	t.hits = 0

	out.BeginGeometry()
	fail := func(err error) (geom.Count, error) {
		out.AbortGeometry()
		if t.tracer != nil {
			t.tracer.Trace(Message{Kind: MessageError, Err: err})
		}
		Logger().Warn("fill tessellation failed", "error", err, "events", t.events)
		return geom.Count{}, err
	}

	if err := t.buildQueue(events); err != nil {
		return fail(err)
	}
	for !t.queue.empty() {
		ev := t.queue.pop()
		if err := t.processEvent(ev); err != nil {
			var ie *InternalError
			if errors.As(err, &ie) {
				ie.Position = geom.Vertex{X: fdot16ToFloat32(ev.at.X), Y: fdot16ToFloat32(ev.at.Y)}
			}
			return fail(err)
		}
	}
	// A consistent sweep consumes every edge and closes every span.
	if len(t.active) != 0 || len(t.spans) != 0 {
		return fail(errInternalCode(IncorrectActiveEdgeOrder, 4))
	}

	count := out.EndGeometry()
	Logger().Debug("tessellated fill",
		"vertices", count.Vertices,
		"indices", count.Indices,
		"events", t.events,
		"intersections", t.hits,
	)
	return count, nil
}

// TessellatePath flattens p with the tolerance from opts and fills it.
func (t *FillTessellator) TessellatePath(p *path.Path, opts *FillOptions, out geom.Builder) (geom.Count, error) {
	if opts == nil {
		def := DefaultFillOptions()
		opts = &def
	}
	if math.IsNaN(float64(opts.Tolerance)) {
		return geom.Count{}, &UnsupportedParameterError{Reason: ToleranceIsNaN}
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = path.DefaultTolerance
	}
	return t.Tessellate(p.Events(tol), opts, out)
}

// buildQueue converts the event sequence into sweep events. Each edge
// produces an event at its upper endpoint carrying the edge, and an
// empty event at its lower endpoint. Edges that collapse to a point
// on the fixed-point grid are dropped.
func (t *FillTessellator) buildQueue(events iter.Seq[path.Event]) error {
	var first, prev fixedPoint
	open := false
	var err error

	for ev := range events {
		switch ev.Kind {
		case path.EventBegin:
			if pointIsNaN(ev.At) {
				err = &UnsupportedParameterError{Reason: PositionIsNaN}
				break
			}
			first = snapPoint(ev.At)
			prev = first
			open = true
		case path.EventLine:
			if !open {
				continue
			}
			if pointIsNaN(ev.At) {
				err = &UnsupportedParameterError{Reason: PositionIsNaN}
				break
			}
			to := snapPoint(ev.At)
			t.addEdge(prev, to)
			prev = to
		case path.EventEnd:
			if !open {
				continue
			}
			t.addEdge(prev, first)
			open = false
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addEdge queues the edge between a and b. The traversal direction
// relative to sweep order decides the winding the edge contributes.
func (t *FillTessellator) addEdge(a, b fixedPoint) {
	if a == b {
		return
	}
	if sweepLess(a, b) {
		t.queue.pushEdge(a, b, 1)
		t.queue.pushVertex(b)
	} else {
		t.queue.pushEdge(b, a, -1)
		t.queue.pushVertex(a)
	}
}

func snapPoint(p path.Point) fixedPoint {
	return fixedPoint{
		X: fdot16FromFloat32(p.X),
		Y: fdot16FromFloat32(p.Y),
	}
}

func pointIsNaN(p path.Point) bool {
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}

// Tessellate fills the shape described by the event sequence using a
// throwaway tessellator. See FillTessellator.Tessellate.
func Tessellate(events iter.Seq[path.Event], opts *FillOptions, out geom.Builder) (geom.Count, error) {
	return NewFillTessellator().Tessellate(events, opts, out)
}

// TessellatePath flattens and fills p using a throwaway tessellator.
// See FillTessellator.TessellatePath.
func TessellatePath(p *path.Path, opts *FillOptions, out geom.Builder) (geom.Count, error) {
	return NewFillTessellator().TessellatePath(p, opts, out)
}
