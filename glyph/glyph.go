// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph converts font glyph outlines into tessellation paths.
//
// Outlines can be loaded from two font stacks: golang.org/x/image/font/sfnt
// via [Extractor], and github.com/go-text/typesetting via [FromFace] and
// [AppendRune]. Both produce y-down paths with the origin at the glyph
// baseline, so an ascender ends up at negative y. Quadratic and cubic
// contours are kept as curves; flattening happens later, when the path is
// tessellated with a tolerance.
package glyph

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tess/path"
)

// Sentinel errors for glyph extraction.
var (
	// ErrGlyphNotFound is returned when a rune has no glyph in the face's
	// character map.
	ErrGlyphNotFound = errors.New("glyph: glyph not found")

	// ErrNoOutline is returned when a glyph carries no vector outline,
	// for example a bitmap or SVG color glyph.
	ErrNoOutline = errors.New("glyph: glyph has no outline")
)

// Extractor loads glyph outlines from an sfnt font, reusing its scratch
// buffer across loads. The zero value is ready to use.
//
// An Extractor is not safe for concurrent use; give each goroutine its own.
type Extractor struct {
	buf sfnt.Buffer
}

// FromSFNT loads the outline of gid at the given pixel size into a new path.
func (e *Extractor) FromSFNT(f *sfnt.Font, gid sfnt.GlyphIndex, ppem float32) (*path.Path, error) {
	p := path.New()
	if err := e.AppendSFNT(p, f, gid, ppem, 0, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// AppendSFNT appends the outline of gid to p, translated by (dx, dy) and
// scaled to ppem pixels. Glyphs without contours, such as a space, append
// nothing.
func (e *Extractor) AppendSFNT(p *path.Path, f *sfnt.Font, gid sfnt.GlyphIndex, ppem float32, dx, dy float32) error {
	segs, err := f.LoadGlyph(&e.buf, gid, fixed.Int26_6(ppem * 64), nil)
	if err != nil {
		return fmt.Errorf("glyph: load glyph %d: %w", gid, err)
	}
	started := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				p.Close()
			}
			p.MoveTo(fix26(s.Args[0].X)+dx, fix26(s.Args[0].Y)+dy)
			started = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(fix26(s.Args[0].X)+dx, fix26(s.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(
				fix26(s.Args[0].X)+dx, fix26(s.Args[0].Y)+dy,
				fix26(s.Args[1].X)+dx, fix26(s.Args[1].Y)+dy,
			)
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(
				fix26(s.Args[0].X)+dx, fix26(s.Args[0].Y)+dy,
				fix26(s.Args[1].X)+dx, fix26(s.Args[1].Y)+dy,
				fix26(s.Args[2].X)+dx, fix26(s.Args[2].Y)+dy,
			)
		}
	}
	if started {
		p.Close()
	}
	return nil
}

// AppendGlyph resolves r through the font's character map and appends its
// outline to p at (dx, dy). It returns the horizontal advance to the next
// glyph position, in pixels.
func (e *Extractor) AppendGlyph(p *path.Path, f *sfnt.Font, r rune, ppem float32, dx, dy float32) (float32, error) {
	gid, err := f.GlyphIndex(&e.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph: lookup %q: %w", r, err)
	}
	if gid == 0 {
		return 0, ErrGlyphNotFound
	}
	fp := fixed.Int26_6(ppem * 64)
	if err := e.AppendSFNT(p, f, gid, ppem, dx, dy); err != nil {
		return 0, err
	}
	adv, err := f.GlyphAdvance(&e.buf, gid, fp, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph: advance %q: %w", r, err)
	}
	return fix26(adv), nil
}

// fix26 converts a 26.6 fixed-point coordinate to float32 pixels.
func fix26(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
