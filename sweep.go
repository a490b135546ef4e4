// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"slices"

	"github.com/gogpu/tess/geom"
)

// The sweep processes events from top to bottom. Its state is the
// active edge list (edges crossing the sweep line, ordered left to
// right) and one monotone span per inside gap between active edges.
// Merge vertices leave a degenerate marker entry in the active list;
// the marker splits its gap in two, keeping the span list and the
// inside gaps in one-to-one positional correspondence. No pointers are
// kept between edges and spans; the pairing is recomputed at every
// event from positions alone.

// activeEdge is one edge crossing the sweep line, or a merge marker.
// For edges, from is the upper endpoint in sweep order; horizontal
// edges run left to right. Markers have from == to == the merge
// position and no winding.
type activeEdge struct {
	from    fixedPoint
	to      fixedPoint
	winding int16
	merge   bool
}

// edgeSide classifies an active edge against an event position:
// -1 left of it, 0 connecting (ends at it or passes exactly through),
// +1 right of it. Exact in int64; never called for markers.
func edgeSide(e *activeEdge, p fixedPoint) int {
	if e.from.Y == e.to.Y {
		// Horizontal edges only face events on their own row, so the
		// x extent decides.
		switch {
		case e.to.X < p.X:
			return -1
		case e.to.X == p.X:
			return 0
		case e.from.X < p.X:
			return 0 // passes through p
		default:
			return 1
		}
	}

	s := fdot32(e.from.X-p.X)*fdot32(e.to.Y-e.from.Y) +
		fdot32(e.to.X-e.from.X)*fdot32(p.Y-e.from.Y)
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	case e.to == p:
		return 0
	case sweepLess(p, e.to):
		return 0 // collinear, p strictly inside the edge
	default:
		return -1
	}
}

// compareBelowEdges orders edges leaving a shared upper endpoint from
// left to right by direction: steeper-left first, horizontal last.
// Exact slope comparison, no division.
func compareBelowEdges(p fixedPoint, a, b pendingEdge) int {
	ah := a.to.Y == p.Y
	bh := b.to.Y == p.Y
	switch {
	case ah && bh:
		return 0
	case ah:
		return 1
	case bh:
		return -1
	}
	lhs := fdot32(a.to.X-p.X) * fdot32(b.to.Y-p.Y)
	rhs := fdot32(b.to.X-p.X) * fdot32(a.to.Y-p.Y)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// scanRange is the result of positioning one event against the active
// edge list.
type scanRange struct {
	// rs and re delimit active[rs:re], the entries connecting to the
	// event: edges ending at it, edges passing through it, and merge
	// markers resolved by it.
	rs, re int

	// sPre counts the spans whose gaps lie entirely left of the range.
	sPre int

	// w0 is the winding number of the gap immediately left of the
	// range.
	w0 int16

	// ncon counts the real connecting edges in the range.
	ncon int
}

// scanActive positions the event at p. Pass-through edges contribute
// their lower part to below; the scan itself does not modify sweep
// state. m0 is the number of edges already below the event, which
// decides whether a marker run with no connecting edges resolves here.
func (t *FillTessellator) scanActive(p fixedPoint, below []pendingEdge) (scanRange, []pendingEdge, error) {
	inside := t.opts.FillRule.Includes
	m0 := len(below)

	var rg scanRange
	w := int16(0)
	runStart := -1

	// Walk the entries strictly left of p, counting spans.
	i := 0
	for i < len(t.active) {
		e := &t.active[i]
		if e.merge {
			if runStart < 0 {
				runStart = i
			}
			i++
			continue
		}
		if edgeSide(e, p) != -1 {
			break
		}
		if runStart >= 0 {
			// The marker run sits in the gap left of this edge. A
			// marker in an outside gap has lost its region.
			if !inside(w) {
				return rg, below, errInternal(MergeVertexOutside)
			}
			rg.sPre += i - runStart
			runStart = -1
		}
		if inside(w) {
			rg.sPre++
		}
		w += e.winding
		i++
	}
	rg.w0 = w

	// Collect the connecting entries.
	re := i
	for j := i; j < len(t.active); j++ {
		e := &t.active[j]
		if e.merge {
			continue
		}
		s := edgeSide(e, p)
		if s < 0 {
			// A left edge after the range means the list is no
			// longer sorted.
			return rg, below, errInternalCode(IncorrectActiveEdgeOrder, 1)
		}
		if s > 0 {
			break
		}
		if e.to != p {
			// Passes exactly through p: the upper part ends here and
			// the lower part rejoins as a new edge below.
			below = append(below, pendingEdge{to: e.to, winding: e.winding})
		}
		rg.ncon++
		re = j + 1
	}

	rg.rs = i
	rg.re = re
	switch {
	case rg.ncon > 0:
		if runStart >= 0 {
			rg.rs = runStart
		}
		// Markers trailing the last connecting edge resolve here too.
		for rg.re < len(t.active) && t.active[rg.re].merge {
			rg.re++
		}
	case runStart >= 0 && m0 > 0:
		// No connecting edges, but p lies in the gap holding a marker
		// run: the run resolves against p's new edges.
		if !inside(w) {
			return rg, below, errInternal(MergeVertexOutside)
		}
		rg.rs = runStart
		rg.re = i
	default:
		rg.re = rg.rs
	}

	// Anything beyond the range that still connects to p proves the
	// list is out of order, typically an uncorrected intersection.
	for j := rg.re; j < len(t.active); j++ {
		e := &t.active[j]
		if !e.merge && edgeSide(e, p) == 0 {
			return rg, below, errInternalCode(IncorrectActiveEdgeOrder, 2)
		}
	}

	return rg, below, nil
}

// processEvent applies one merged event to the sweep state.
func (t *FillTessellator) processEvent(ev sweepEvent) error {
	p := ev.at
	below := ev.below

	rg, below, err := t.scanActive(p, below)
	if err != nil {
		return err
	}
	m := len(below)

	// Nothing connects and nothing starts: a stale position.
	if rg.ncon == 0 && m == 0 && rg.rs == rg.re {
		return nil
	}

	// A vertex of a closed shape has even degree. Horizontal edges
	// and pass-throughs are already normalized into the counts.
	if (rg.ncon+m)%2 != 0 {
		return errInternal(InvalidNumberOfEdgesBelowVertex)
	}

	id, err := t.out.AddVertex(geom.Vertex{
		X: fdot16ToFloat32(p.X),
		Y: fdot16ToFloat32(p.Y),
	})
	if err != nil {
		return errBuilder(err)
	}

	inside := t.opts.FillRule.Includes
	leftIn := inside(rg.w0)
	l := 0
	if leftIn {
		l = 1
	}

	// Close the spans whose gaps are squeezed shut between connecting
	// entries.
	ended := 0
	wr := rg.w0
	for j := rg.rs; j < rg.re-1; j++ {
		wr += t.active[j].winding // markers carry zero
		if !inside(wr) {
			continue
		}
		idx := rg.sPre + l + ended
		if idx >= len(t.spans) {
			return errInternal(InsufficientNumberOfSpans)
		}
		if err := t.spans[idx].end(p, id, t.out); err != nil {
			return err
		}
		ended++
	}
	wRight := rg.w0
	for j := rg.rs; j < rg.re; j++ {
		wRight += t.active[j].winding
	}
	rightIn := inside(wRight)

	// Sort the edges leaving p and find the gaps between them that
	// open new spans.
	slices.SortFunc(below, func(a, b pendingEdge) int {
		return compareBelowEdges(p, a, b)
	})
	var newSpans []monotoneTessellator
	wb := rg.w0
	for j := 0; j+1 < len(below); j++ {
		wb += below[j].winding
		if inside(wb) {
			var mt monotoneTessellator
			mt.begin(p, id)
			newSpans = append(newSpans, mt)
		}
	}
	opened := len(newSpans)

	markerCreated := false
	splitResolved := false
	spliceAt := rg.sPre + l

	switch {
	case rg.rs == rg.re && leftIn:
		// p floats inside a span: a split vertex. The chord from the
		// span's most recent vertex down to p divides it; the half on
		// the far side becomes a new span seeded with that vertex.
		if m < 2 {
			return errInternal(InvalidNumberOfEdgesBelowVertex)
		}
		if rg.sPre >= len(t.spans) {
			return errInternal(InsufficientNumberOfSpans)
		}
		splitResolved = true
		helper := t.spans[rg.sPre].previous

		var piece monotoneTessellator
		piece.begin(helper.pos, helper.id)
		if helper.side == sideLeft {
			// The span keeps growing along its right side; the new
			// piece takes over the left boundary.
			if err := piece.vertex(p, id, sideRight, t.out); err != nil {
				return err
			}
			if err := t.spans[rg.sPre].vertex(p, id, sideLeft, t.out); err != nil {
				return err
			}
			newSpans = append([]monotoneTessellator{piece}, newSpans...)
			spliceAt = rg.sPre
		} else {
			if err := piece.vertex(p, id, sideLeft, t.out); err != nil {
				return err
			}
			if err := t.spans[rg.sPre].vertex(p, id, sideRight, t.out); err != nil {
				return err
			}
			newSpans = append(newSpans, piece)
			spliceAt = rg.sPre + 1
		}

	default:
		// Attach p to the spans whose boundary it sits on.
		if leftIn {
			if rg.sPre >= len(t.spans) {
				return errInternal(InsufficientNumberOfSpans)
			}
			if err := t.spans[rg.sPre].vertex(p, id, sideRight, t.out); err != nil {
				return err
			}
		}
		if rightIn {
			idx := rg.sPre + l + ended
			if idx >= len(t.spans) {
				return errInternal(InsufficientNumberOfSpans)
			}
			if err := t.spans[idx].vertex(p, id, sideLeft, t.out); err != nil {
				return err
			}
		}
		// Two inside gaps meeting over an outside notch with no edges
		// leaving p: the neighboring spans merge. The marker keeps
		// their gaps apart until a later event resolves it.
		if m == 0 && leftIn && rightIn {
			markerCreated = true
		}
	}

	// Rebuild the active list and the span list in one splice each.
	replacement := make([]activeEdge, 0, m+1)
	for _, e := range below {
		replacement = append(replacement, activeEdge{
			from:    p,
			to:      e.to,
			winding: e.winding,
		})
	}
	if markerCreated {
		replacement = append(replacement, activeEdge{from: p, to: p, merge: true})
	}
	if rg.re > len(t.active) {
		return errInternal(InsufficientNumberOfEdges)
	}
	t.active = slices.Replace(t.active, rg.rs, rg.re, replacement...)

	if !splitResolved {
		endedLo := rg.sPre + l
		if endedLo > len(t.spans) || endedLo+ended > len(t.spans) {
			return errInternal(InsufficientNumberOfSpans)
		}
		t.spans = slices.Replace(t.spans, endedLo, endedLo+ended, newSpans...)
	} else {
		t.spans = slices.Insert(t.spans, spliceAt, newSpans...)
	}

	if m > 0 && t.opts.HandleIntersections {
		if err := t.checkIntersections(rg.rs, rg.rs+m); err != nil {
			return err
		}
	}

	if t.tracer != nil {
		pos := geom.Vertex{X: fdot16ToFloat32(p.X), Y: fdot16ToFloat32(p.Y)}
		kind := VertexRegular
		switch {
		case markerCreated:
			kind = VertexMerge
		case splitResolved || (rg.ncon == 0 && leftIn && rg.rs != rg.re):
			kind = VertexSplit
		case rg.ncon == 0:
			kind = VertexStart
		case m == 0:
			kind = VertexEnd
		}
		t.tracer.Trace(Message{
			Kind:     MessageVertex,
			Position: pos,
			Vertex:   kind,
			Above:    rg.ncon,
			Below:    m,
		})
		for i := 0; i < rg.ncon; i++ {
			t.tracer.Trace(Message{Kind: MessageEdgeRemoved, Position: pos})
		}
		for i := 0; i < ended; i++ {
			t.tracer.Trace(Message{Kind: MessageSpanClosed, Position: pos})
		}
		switch {
		case splitResolved:
			t.tracer.Trace(Message{Kind: MessageSpanSplit, Position: pos})
		case markerCreated:
			t.tracer.Trace(Message{Kind: MessageSpanMerged, Position: pos})
		}
		for i := 0; i < opened; i++ {
			t.tracer.Trace(Message{Kind: MessageSpanOpened, Position: pos})
		}
		for i := 0; i < m; i++ {
			t.tracer.Trace(Message{Kind: MessageEdgeInserted, Position: pos})
		}
	}

	t.events++
	return nil
}

// checkIntersections tests the freshly inserted edges active[lo:hi]
// against their nearest real neighbors on each side and subdivides
// both edges at any crossing. Edges meeting at endpoints are not
// crossings; those points become ordinary events.
func (t *FillTessellator) checkIntersections(lo, hi int) error {
	li := lo - 1
	for li >= 0 && t.active[li].merge {
		li--
	}
	if li >= 0 {
		if err := t.intersect(li, lo); err != nil {
			return err
		}
	}

	ri := hi
	for ri < len(t.active) && t.active[ri].merge {
		ri++
	}
	if ri < len(t.active) {
		if err := t.intersect(hi-1, ri); err != nil {
			return err
		}
	}
	return nil
}

// intersect subdivides active[ai] and active[bi] if their interiors
// cross. The crossing must land strictly below the current position;
// the test is exact, the crossing position is computed in float64 and
// snapped back to the fixed-point grid.
func (t *FillTessellator) intersect(ai, bi int) error {
	a := &t.active[ai]
	b := &t.active[bi]

	r := [2]fdot32{fdot32(a.to.X - a.from.X), fdot32(a.to.Y - a.from.Y)}
	s := [2]fdot32{fdot32(b.to.X - b.from.X), fdot32(b.to.Y - b.from.Y)}
	denom := r[0]*s[1] - r[1]*s[0]
	if denom == 0 {
		return nil // parallel or collinear
	}

	ac := [2]fdot32{fdot32(b.from.X - a.from.X), fdot32(b.from.Y - a.from.Y)}
	tn := ac[0]*s[1] - ac[1]*s[0]
	un := ac[0]*r[1] - ac[1]*r[0]
	if denom < 0 {
		denom, tn, un = -denom, -tn, -un
	}
	if tn <= 0 || tn >= denom || un <= 0 || un >= denom {
		return nil
	}

	tf := float64(tn) / float64(denom)
	ix := fdot16FromFloat64(fdot16ToFloat64(a.from.X) + tf*float64(r[0])/float64(fdot16One))
	iy := fdot16FromFloat64(fdot16ToFloat64(a.from.Y) + tf*float64(r[1])/float64(fdot16One))
	ipos := fixedPoint{X: ix, Y: iy}

	// Snapping must not move the crossing back above the sweep line;
	// the queue only accepts future events.
	later := a.from
	if sweepLess(later, b.from) {
		later = b.from
	}
	if !sweepLess(later, ipos) {
		return errInternalCode(ErrorCode, 3)
	}

	t.hits++
	if t.tracer != nil {
		t.tracer.Trace(Message{
			Kind:     MessageIntersection,
			Position: geom.Vertex{X: fdot16ToFloat32(ipos.X), Y: fdot16ToFloat32(ipos.Y)},
		})
	}
	if sweepLess(ipos, a.to) {
		t.queue.pushEdge(ipos, a.to, a.winding)
		a.to = ipos
	}
	if sweepLess(ipos, b.to) {
		t.queue.pushEdge(ipos, b.to, b.winding)
		b.to = ipos
	}
	return nil
}
