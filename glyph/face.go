// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/tess/path"
)

// FromFace loads the outline of gid from a go-text face into a new path,
// scaled to size pixels per em. Font units are y-up; the outline is flipped
// to the tessellator's y-down convention, so ascenders get negative y.
//
// A face is not safe for concurrent use; give each goroutine its own.
func FromFace(face *font.Face, gid font.GID, size float32) (*path.Path, error) {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, ErrNoOutline
	}
	p := path.New()
	appendOutline(p, outline, size/float32(face.Upem()), 0, 0)
	return p, nil
}

// AppendRune resolves r through the face's character map and appends its
// outline to p at (dx, dy), scaled to size pixels per em. It returns the
// horizontal advance to the next glyph position, in pixels. Runes that map
// to a glyph without contours, such as a space, append nothing but still
// advance.
func AppendRune(p *path.Path, face *font.Face, r rune, size float32, dx, dy float32) (float32, error) {
	gid, ok := face.Cmap.Lookup(r)
	if !ok {
		return 0, ErrGlyphNotFound
	}
	scale := size / float32(face.Upem())
	if outline, ok := face.GlyphData(gid).(font.GlyphOutline); ok {
		appendOutline(p, outline, scale, dx, dy)
	}
	return face.HorizontalAdvance(gid) * scale, nil
}

// appendOutline converts typesetting segments to path verbs, closing each
// contour and flipping y.
func appendOutline(p *path.Path, outline font.GlyphOutline, scale, dx, dy float32) {
	started := false
	for _, s := range outline.Segments {
		x0 := s.Args[0].X*scale + dx
		y0 := -s.Args[0].Y*scale + dy
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if started {
				p.Close()
			}
			p.MoveTo(x0, y0)
			started = true
		case opentype.SegmentOpLineTo:
			p.LineTo(x0, y0)
		case opentype.SegmentOpQuadTo:
			p.QuadTo(x0, y0,
				s.Args[1].X*scale+dx, -s.Args[1].Y*scale+dy)
		case opentype.SegmentOpCubeTo:
			p.CubicTo(x0, y0,
				s.Args[1].X*scale+dx, -s.Args[1].Y*scale+dy,
				s.Args[2].X*scale+dx, -s.Args[2].Y*scale+dy)
		}
	}
	if started {
		p.Close()
	}
}
