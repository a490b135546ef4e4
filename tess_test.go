package tess

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tess/geom"
	"github.com/gogpu/tess/path"
)

// polygon builds a closed path through the given points.
func polygon(pts ...[2]float32) *path.Path {
	p := path.New()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt[0], pt[1])
		} else {
			p.LineTo(pt[0], pt[1])
		}
	}
	p.Close()
	return p
}

// meshArea sums the unsigned areas of all triangles in the buffers.
// For a valid tessellation with no overlapping triangles this equals
// the filled area.
func meshArea(buf *geom.Buffers[uint32]) float64 {
	var total float64
	for i := 0; i+3 <= len(buf.Indices); i += 3 {
		a := buf.Vertices[buf.Indices[i]]
		b := buf.Vertices[buf.Indices[i+1]]
		c := buf.Vertices[buf.Indices[i+2]]
		cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
		total += math.Abs(cross) / 2
	}
	return total
}

func checkArea(t *testing.T, buf *geom.Buffers[uint32], want float64) {
	t.Helper()
	got := meshArea(buf)
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("expected area %v, got %v", want, got)
	}
}

func TestFillSquare(t *testing.T) {
	p := polygon([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1})

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 4 {
		t.Errorf("expected 4 vertices, got %d", count.Vertices)
	}
	if got := count.Triangles(); got != 2 {
		t.Errorf("expected 2 triangles, got %d", got)
	}
	checkArea(t, &buf, 1.0)
}

func TestFillSquareDeterministic(t *testing.T) {
	// The sweep visits (0,0), (1,0), (0,1), (1,1) in that order and
	// always produces the same two triangles.
	p := polygon([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1})

	// Both triangles share the diagonal between vertex 1 (1,0) and
	// vertex 2 (0,1).
	want := []uint32{0, 1, 2, 2, 1, 3}
	for run := 0; run < 3; run++ {
		var buf geom.Buffers[uint32]
		if _, err := TessellatePath(p, nil, &buf); err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if len(buf.Indices) != len(want) {
			t.Fatalf("run %d: expected %d indices, got %d", run, len(want), len(buf.Indices))
		}
		for i := range want {
			if buf.Indices[i] != want[i] {
				t.Errorf("run %d: index %d: expected %d, got %d", run, i, want[i], buf.Indices[i])
			}
		}
	}
}

func TestFillTriangle(t *testing.T) {
	p := polygon([2]float32{0, 0}, [2]float32{2, 0}, [2]float32{1, 2})

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 3 || count.Triangles() != 1 {
		t.Errorf("expected 3 vertices and 1 triangle, got %d and %d", count.Vertices, count.Triangles())
	}
	checkArea(t, &buf, 2.0)
}

func TestFillDiamond(t *testing.T) {
	p := polygon([2]float32{1, 0}, [2]float32{2, 1}, [2]float32{1, 2}, [2]float32{0, 1})

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 4 || count.Triangles() != 2 {
		t.Errorf("expected 4 vertices and 2 triangles, got %d and %d", count.Vertices, count.Triangles())
	}
	checkArea(t, &buf, 2.0)
}

func TestFillConvexPolygons(t *testing.T) {
	// A simple polygon with n vertices always yields n-2 triangles.
	for n := 3; n <= 12; n++ {
		var pts [][2]float32
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, [2]float32{
				float32(10 + 5*math.Cos(a)),
				float32(10 + 5*math.Sin(a)),
			})
		}
		var buf geom.Buffers[uint32]
		count, err := TessellatePath(polygon(pts...), nil, &buf)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if int(count.Vertices) != n {
			t.Errorf("n=%d: expected %d vertices, got %d", n, n, count.Vertices)
		}
		if got := int(count.Triangles()); got != n-2 {
			t.Errorf("n=%d: expected %d triangles, got %d", n, n-2, got)
		}
		referenced := make([]bool, len(buf.Vertices))
		for _, idx := range buf.Indices {
			referenced[idx] = true
		}
		for id, ok := range referenced {
			if !ok {
				t.Errorf("n=%d: vertex %d is not referenced by any triangle", n, id)
			}
		}
	}
}

func annulus(reversedHole bool) *path.Path {
	p := path.New()
	p.Rectangle(0, 0, 4, 4)
	hole := path.New()
	hole.Rectangle(1, 1, 2, 2)
	if reversedHole {
		hole = hole.Reverse()
	}
	p.AddPath(hole)
	return p
}

func TestFillAnnulusNonZero(t *testing.T) {
	opts := DefaultFillOptions()
	opts.FillRule = FillRuleNonZero

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(annulus(true), &opts, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := count.Triangles(); got != 8 {
		t.Errorf("expected 8 triangles, got %d", got)
	}
	if count.Vertices != 8 {
		t.Errorf("expected 8 vertices, got %d", count.Vertices)
	}
	checkArea(t, &buf, 12.0)
}

func TestFillAnnulusEvenOdd(t *testing.T) {
	// Even-odd ignores winding direction: the hole stays a hole
	// whichever way it is wound.
	for _, reversed := range []bool{false, true} {
		var buf geom.Buffers[uint32]
		count, err := TessellatePath(annulus(reversed), nil, &buf)
		if err != nil {
			t.Fatalf("reversed=%v: unexpected error: %v", reversed, err)
		}
		if got := count.Triangles(); got != 8 {
			t.Errorf("reversed=%v: expected 8 triangles, got %d", reversed, got)
		}
		checkArea(t, &buf, 12.0)
	}
}

func TestFillAnnulusNonZeroUnreversed(t *testing.T) {
	// With both rectangles wound the same way the inner region has
	// winding 2: non-zero fills straight through it.
	opts := DefaultFillOptions()
	opts.FillRule = FillRuleNonZero

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(annulus(false), &opts, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkArea(t, &buf, 16.0)
}

func TestFillBowtie(t *testing.T) {
	// The bowtie self-intersects at (1,1); the crossing becomes a new
	// vertex and each lobe fills separately.
	p := polygon([2]float32{0, 0}, [2]float32{2, 0}, [2]float32{0, 2}, [2]float32{2, 2})

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 5 {
		t.Errorf("expected 5 vertices, got %d", count.Vertices)
	}
	if got := count.Triangles(); got != 2 {
		t.Errorf("expected 2 triangles, got %d", got)
	}
	checkArea(t, &buf, 2.0)
}

func TestFillBowtieWithoutIntersectionHandling(t *testing.T) {
	p := polygon([2]float32{0, 0}, [2]float32{2, 0}, [2]float32{0, 2}, [2]float32{2, 2})
	opts := DefaultFillOptions()
	opts.HandleIntersections = false

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, &opts, &buf)
	if err == nil {
		t.Fatal("expected an internal error, got nil")
	}
	if !errors.Is(err, ErrInternal) {
		t.Errorf("expected ErrInternal, got %v", err)
	}
	var ie *InternalError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InternalError, got %T", err)
	}
	if ie.Kind != IncorrectActiveEdgeOrder {
		t.Errorf("expected IncorrectActiveEdgeOrder, got %v", ie.Kind)
	}
	if len(buf.Vertices) != 0 || len(buf.Indices) != 0 {
		t.Errorf("expected aborted geometry to leave no output, got %d vertices and %d indices",
			len(buf.Vertices), len(buf.Indices))
	}
}

func TestFillHourglassSharedWaist(t *testing.T) {
	// Two triangles meeting at (1,1), drawn as one subpath that visits
	// the waist twice. The edges touch but never cross, so the path
	// fills cleanly with intersection handling on or off.
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.LineTo(1, 1)
	p.LineTo(2, 2)
	p.LineTo(0, 2)
	p.LineTo(1, 1)
	p.Close()

	for _, handle := range []bool{true, false} {
		opts := DefaultFillOptions()
		opts.HandleIntersections = handle

		var buf geom.Buffers[uint32]
		count, err := TessellatePath(p, &opts, &buf)
		if err != nil {
			t.Fatalf("handle=%v: unexpected error: %v", handle, err)
		}
		if count.Vertices != 5 {
			t.Errorf("handle=%v: expected 5 vertices, got %d", handle, count.Vertices)
		}
		if got := count.Triangles(); got != 2 {
			t.Errorf("handle=%v: expected 2 triangles, got %d", handle, got)
		}
		checkArea(t, &buf, 2.0)
	}
}

func TestFillIntersectionOnVertex(t *testing.T) {
	// The bowtie crossing at (1,1) coincides with a vertex of the
	// second subpath, so the synthetic intersection event merges with
	// a real one instead of looping.
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.LineTo(0, 2)
	p.LineTo(2, 2)
	p.Close()
	p.MoveTo(1, 1)
	p.LineTo(3, 1)
	p.LineTo(3, 2)
	p.Close()

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkArea(t, &buf, 3.0)
}

func TestFillTJunction(t *testing.T) {
	// The second rectangle's left corners land exactly on the first
	// rectangle's right edge, which must be subdivided in passing.
	p := path.New()
	p.Rectangle(0, 0, 4, 4)
	p.Rectangle(4, 1, 2, 2)

	opts := DefaultFillOptions()
	opts.FillRule = FillRuleNonZero

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, &opts, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkArea(t, &buf, 20.0)
}

func TestFillOverlappingSquares(t *testing.T) {
	p := path.New()
	p.Rectangle(0, 0, 2, 2)
	p.Rectangle(1, 1, 2, 2)

	nonZero := DefaultFillOptions()
	nonZero.FillRule = FillRuleNonZero

	var buf geom.Buffers[uint32]
	if _, err := TessellatePath(p, &nonZero, &buf); err != nil {
		t.Fatalf("non-zero: unexpected error: %v", err)
	}
	checkArea(t, &buf, 7.0) // union

	buf.Reset()
	if _, err := TessellatePath(p, nil, &buf); err != nil {
		t.Fatalf("even-odd: unexpected error: %v", err)
	}
	checkArea(t, &buf, 6.0) // union minus the doubly covered square
}

func TestFillTrianglesInsideFill(t *testing.T) {
	// Every emitted triangle covers filled area only: the centroid of
	// each non-degenerate triangle lands in a region the fill rule
	// classifies inside. The shapes intersect on grid points, so the
	// mesh boundary matches the float path exactly.
	overlap := path.New()
	overlap.Rectangle(0, 0, 2, 2)
	overlap.Rectangle(1, 1, 2, 2)

	tests := []struct {
		name string
		p    *path.Path
		rule FillRule
	}{
		{"annulus even-odd", annulus(true), FillRuleEvenOdd},
		{"overlap non-zero", overlap, FillRuleNonZero},
		{"doubled non-zero", annulus(false), FillRuleNonZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultFillOptions()
			opts.FillRule = tt.rule

			var buf geom.Buffers[uint32]
			if _, err := TessellatePath(tt.p, &opts, &buf); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := 0; i+3 <= len(buf.Indices); i += 3 {
				a := buf.Vertices[buf.Indices[i]]
				b := buf.Vertices[buf.Indices[i+1]]
				c := buf.Vertices[buf.Indices[i+2]]
				cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
				if math.Abs(cross)/2 < 1e-9 {
					continue
				}
				cx := (a.X + b.X + c.X) / 3
				cy := (a.Y + b.Y + c.Y) / 3
				w := tt.p.Winding(cx, cy)
				inside := w%2 != 0
				if tt.rule == FillRuleNonZero {
					inside = w != 0
				}
				if !inside {
					t.Errorf("triangle %d: centroid (%v,%v) has winding %d, outside the %v fill",
						i/3, cx, cy, w, tt.rule)
				}
			}
		})
	}
}

func TestFillPentagram(t *testing.T) {
	// Star drawn by connecting every second vertex of a pentagon. The
	// center is wound twice: even-odd leaves it empty, non-zero fills
	// it, so the non-zero mesh must cover strictly more area.
	var pts [][2]float32
	for i := 0; i < 5; i++ {
		a := 2*math.Pi*float64(i*2)/5 - math.Pi/2
		pts = append(pts, [2]float32{
			float32(5 + 4*math.Cos(a)),
			float32(5 + 4*math.Sin(a)),
		})
	}
	p := polygon(pts...)

	var evenOdd geom.Buffers[uint32]
	if _, err := TessellatePath(p, nil, &evenOdd); err != nil {
		t.Fatalf("even-odd: unexpected error: %v", err)
	}
	opts := DefaultFillOptions()
	opts.FillRule = FillRuleNonZero
	var nonZero geom.Buffers[uint32]
	if _, err := TessellatePath(p, &opts, &nonZero); err != nil {
		t.Fatalf("non-zero: unexpected error: %v", err)
	}

	ea, na := meshArea(&evenOdd), meshArea(&nonZero)
	if ea <= 0 {
		t.Errorf("expected positive even-odd area, got %v", ea)
	}
	if na <= ea {
		t.Errorf("expected non-zero area %v to exceed even-odd area %v", na, ea)
	}
}

func TestFillCircle(t *testing.T) {
	p := path.New()
	p.Circle(0, 0, 10)

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Triangles() == 0 {
		t.Fatal("expected triangles, got none")
	}
	// Flattened circle area converges to pi*r^2 from below.
	got := meshArea(&buf)
	want := math.Pi * 100
	if math.Abs(got-want) > 2.0 {
		t.Errorf("expected area near %v, got %v", want, got)
	}
}

func TestFillToleranceControlsDetail(t *testing.T) {
	p := path.New()
	p.Circle(0, 0, 10)

	coarse := DefaultFillOptions()
	coarse.Tolerance = 1.0
	fine := DefaultFillOptions()
	fine.Tolerance = 0.01

	var a, b geom.Buffers[uint32]
	ca, err := TessellatePath(p, &coarse, &a)
	if err != nil {
		t.Fatalf("coarse: unexpected error: %v", err)
	}
	cb, err := TessellatePath(p, &fine, &b)
	if err != nil {
		t.Fatalf("fine: unexpected error: %v", err)
	}
	if cb.Vertices <= ca.Vertices {
		t.Errorf("expected finer tolerance to add vertices: %d vs %d", cb.Vertices, ca.Vertices)
	}
}

func TestFillEmptyPath(t *testing.T) {
	var buf geom.Buffers[uint32]
	count, err := TessellatePath(path.New(), nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 0 || count.Indices != 0 {
		t.Errorf("expected empty output, got %d vertices and %d indices", count.Vertices, count.Indices)
	}
}

func TestFillDegeneratePath(t *testing.T) {
	// A lone point and a zero-area segment produce no geometry.
	p := path.New()
	p.MoveTo(1, 1)
	p.Close()
	p.MoveTo(2, 2)
	p.LineTo(2, 2)
	p.Close()

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Vertices != 0 || count.Indices != 0 {
		t.Errorf("expected empty output, got %d vertices and %d indices", count.Vertices, count.Indices)
	}
}

func TestFillHairlineSubpath(t *testing.T) {
	// A subpath that doubles back over a single segment encloses no
	// area: no triangles come out, but the sweep still registers the
	// two endpoints with the builder.
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.Close()

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Indices != 0 {
		t.Errorf("expected no triangles, got %d indices", count.Indices)
	}
	if count.Vertices != 2 {
		t.Errorf("expected 2 registered vertices, got %d", count.Vertices)
	}
}

func TestFillNaNPosition(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(float32(math.NaN()), 1)
	p.LineTo(1, 1)
	p.Close()

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, nil, &buf)
	if !errors.Is(err, ErrUnsupportedParameter) {
		t.Fatalf("expected ErrUnsupportedParameter, got %v", err)
	}
	var ue *UnsupportedParameterError
	if !errors.As(err, &ue) || ue.Reason != PositionIsNaN {
		t.Errorf("expected PositionIsNaN, got %v", err)
	}
	if len(buf.Vertices) != 0 {
		t.Errorf("expected aborted geometry to leave no vertices, got %d", len(buf.Vertices))
	}
}

func TestFillNaNCurve(t *testing.T) {
	// NaN inside a curve is rejected like NaN on a line: the bad point
	// surfaces through flattening and the fill reports it.
	nan := float32(math.NaN())
	cases := []struct {
		name  string
		build func(p *path.Path)
	}{
		{"quad control", func(p *path.Path) { p.QuadTo(nan, 1, 2, 0) }},
		{"quad endpoint", func(p *path.Path) { p.QuadTo(1, 1, nan, 0) }},
		{"cubic first control", func(p *path.Path) { p.CubicTo(nan, 1, 2, 1, 3, 0) }},
		{"cubic second control", func(p *path.Path) { p.CubicTo(1, 1, 2, nan, 3, 0) }},
		{"cubic endpoint", func(p *path.Path) { p.CubicTo(1, 1, 2, 1, 3, nan) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := path.New()
			p.MoveTo(0, 0)
			tc.build(p)
			p.LineTo(1, 2)
			p.Close()

			var buf geom.Buffers[uint32]
			_, err := TessellatePath(p, nil, &buf)
			var ue *UnsupportedParameterError
			if !errors.As(err, &ue) || ue.Reason != PositionIsNaN {
				t.Fatalf("expected PositionIsNaN, got %v", err)
			}
			if len(buf.Vertices) != 0 {
				t.Errorf("expected aborted geometry to leave no vertices, got %d", len(buf.Vertices))
			}
		})
	}
}

func TestFillNaNTolerance(t *testing.T) {
	p := polygon([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0, 1})
	opts := DefaultFillOptions()
	opts.Tolerance = float32(math.NaN())

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, &opts, &buf)
	var ue *UnsupportedParameterError
	if !errors.As(err, &ue) || ue.Reason != ToleranceIsNaN {
		t.Fatalf("expected ToleranceIsNaN, got %v", err)
	}
}

func TestFillInfiniteCurve(t *testing.T) {
	// Infinite curve points clamp to the representable range like any
	// other out-of-range coordinate; the fill succeeds.
	inf := float32(math.Inf(1))
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.QuadTo(inf, 1, 2, 2)
	p.LineTo(0, 2)
	p.CubicTo(-inf, 1.5, -inf, 0.5, 0, 0)
	p.Close()

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Triangles() == 0 {
		t.Error("expected a non-empty mesh")
	}
	for _, v := range buf.Vertices {
		if math.Abs(float64(v.X)) > 16384 || math.Abs(float64(v.Y)) > 16384 {
			t.Errorf("vertex (%g, %g) outside the clamped range", v.X, v.Y)
		}
	}
}

// rejectingBuilder wraps Buffers and fails vertex or triangle adds on
// demand.
type rejectingBuilder struct {
	geom.Buffers[uint32]
	rejectVertices  bool
	rejectTriangles bool
}

var errSinkFull = errors.New("sink full")

func (r *rejectingBuilder) AddVertex(v geom.Vertex) (geom.VertexID, error) {
	if r.rejectVertices {
		return 0, errSinkFull
	}
	return r.Buffers.AddVertex(v)
}

func (r *rejectingBuilder) AddTriangle(a, b, c geom.VertexID) error {
	if r.rejectTriangles {
		return errSinkFull
	}
	return r.Buffers.AddTriangle(a, b, c)
}

func TestFillBuilderRejection(t *testing.T) {
	// Builder failures surface as ErrGeometryBuilder with the builder's
	// own error preserved underneath, for vertices and triangles alike.
	square := polygon([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1})
	cases := []struct {
		name string
		out  *rejectingBuilder
	}{
		{"vertex", &rejectingBuilder{rejectVertices: true}},
		{"triangle", &rejectingBuilder{rejectTriangles: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TessellatePath(square, nil, tc.out)
			if !errors.Is(err, ErrGeometryBuilder) {
				t.Fatalf("expected ErrGeometryBuilder, got %v", err)
			}
			if !errors.Is(err, errSinkFull) {
				t.Errorf("expected the builder's error underneath, got %v", err)
			}
			if len(tc.out.Vertices) != 0 || len(tc.out.Indices) != 0 {
				t.Errorf("expected aborted geometry to leave nothing, got %d vertices and %d indices",
					len(tc.out.Vertices), len(tc.out.Indices))
			}
		})
	}
}

func TestFillTessellatorReuse(t *testing.T) {
	tess := NewFillTessellator()
	square := polygon([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1})
	tri := polygon([2]float32{0, 0}, [2]float32{2, 0}, [2]float32{1, 2})

	var buf geom.Buffers[uint32]
	c1, err := tess.TessellatePath(square, nil, &buf)
	if err != nil {
		t.Fatalf("first run: unexpected error: %v", err)
	}
	c2, err := tess.TessellatePath(tri, nil, &buf)
	if err != nil {
		t.Fatalf("second run: unexpected error: %v", err)
	}
	if c1.Triangles() != 2 || c2.Triangles() != 1 {
		t.Errorf("expected 2 and 1 triangles, got %d and %d", c1.Triangles(), c2.Triangles())
	}
	if len(buf.Vertices) != 7 {
		t.Errorf("expected 7 accumulated vertices, got %d", len(buf.Vertices))
	}
	checkArea(t, &buf, 3.0)
}

func TestFillMultipleDisjointSubpaths(t *testing.T) {
	p := path.New()
	p.Rectangle(0, 0, 1, 1)
	p.Rectangle(3, 0, 2, 1)
	p.Rectangle(0, 3, 1, 2)

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := count.Triangles(); got != 6 {
		t.Errorf("expected 6 triangles, got %d", got)
	}
	checkArea(t, &buf, 5.0)
}

func TestFillOpenSubpathIsClosed(t *testing.T) {
	// Fill treats every subpath as closed: an open L-shape gains the
	// implicit closing edge and fills like a triangle.
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.LineTo(2, 2)

	var buf geom.Buffers[uint32]
	count, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Triangles() != 1 {
		t.Errorf("expected 1 triangle, got %d", count.Triangles())
	}
	checkArea(t, &buf, 2.0)
}

func TestFillSharedCorner(t *testing.T) {
	// Two squares touching at a single corner: four edges meet at
	// (2,2) in one event.
	p := path.New()
	p.Rectangle(0, 0, 2, 2)
	p.Rectangle(2, 2, 2, 2)

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkArea(t, &buf, 8.0)
}

func TestFillCoordinateClamp(t *testing.T) {
	// Coordinates beyond the supported range are clamped, not
	// rejected.
	p := polygon([2]float32{-1e9, 0}, [2]float32{1e9, 0}, [2]float32{0, 1e9})

	var buf geom.Buffers[uint32]
	_, err := TessellatePath(p, nil, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshArea(&buf) <= 0 {
		t.Error("expected clamped triangle to keep positive area")
	}
}
