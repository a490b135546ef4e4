package tess

import (
	"errors"
	"strconv"

	"github.com/gogpu/tess/geom"
)

// Sentinel errors for the tess package. Every error returned by a
// tessellation matches exactly one of these under errors.Is.
var (
	// ErrUnsupportedParameter is returned for inputs the tessellator
	// cannot process, such as NaN coordinates.
	ErrUnsupportedParameter = errors.New("tess: unsupported parameter")

	// ErrGeometryBuilder is returned when the output geometry builder
	// rejects a vertex or triangle. The builder's own error is wrapped
	// and available through errors.Is and errors.As.
	ErrGeometryBuilder = errors.New("tess: geometry builder failed")

	// ErrInternal is returned when the sweep detects an inconsistency
	// in its own state. Inconsistencies surface as errors, not panics;
	// the output builder is reset and no partial geometry leaks.
	ErrInternal = errors.New("tess: internal error")
)

// UnsupportedReason identifies why a parameter was rejected.
type UnsupportedReason uint8

// Unsupported parameter reasons.
const (
	// PositionIsNaN reports a NaN coordinate in the input path.
	PositionIsNaN UnsupportedReason = iota
	// ToleranceIsNaN reports a NaN flattening tolerance.
	ToleranceIsNaN
	// MismatchedBuilderCount reports a batch call with a different
	// number of builders than paths.
	MismatchedBuilderCount
)

// String returns a human-readable name for the reason.
func (r UnsupportedReason) String() string {
	switch r {
	case PositionIsNaN:
		return "PositionIsNaN"
	case ToleranceIsNaN:
		return "ToleranceIsNaN"
	case MismatchedBuilderCount:
		return "MismatchedBuilderCount"
	default:
		return "Unknown"
	}
}

// UnsupportedParameterError reports an input the tessellator rejects.
type UnsupportedParameterError struct {
	Reason UnsupportedReason
}

func (e *UnsupportedParameterError) Error() string {
	return "tess: unsupported parameter: " + e.Reason.String()
}

// Is reports a match with ErrUnsupportedParameter.
func (e *UnsupportedParameterError) Is(target error) bool {
	return target == ErrUnsupportedParameter
}

// GeometryBuilderError wraps an error returned by the output builder.
type GeometryBuilderError struct {
	Err error
}

func (e *GeometryBuilderError) Error() string {
	return "tess: geometry builder failed: " + e.Err.Error()
}

// Unwrap returns the builder's error.
func (e *GeometryBuilderError) Unwrap() error {
	return e.Err
}

// Is reports a match with ErrGeometryBuilder.
func (e *GeometryBuilderError) Is(target error) bool {
	return target == ErrGeometryBuilder
}

// InternalKind identifies which sweep invariant was violated.
type InternalKind uint8

// Internal error kinds.
const (
	// IncorrectActiveEdgeOrder reports active edges out of sweep order,
	// typically caused by uncorrected self-intersections.
	IncorrectActiveEdgeOrder InternalKind = iota
	// InsufficientNumberOfSpans reports a span lookup past the end of
	// the span list.
	InsufficientNumberOfSpans
	// InsufficientNumberOfEdges reports fewer connecting edges than the
	// event requires.
	InsufficientNumberOfEdges
	// MergeVertexOutside reports a merge vertex found outside the
	// filled area.
	MergeVertexOutside
	// InvalidNumberOfEdgesBelowVertex reports an event whose edge
	// counts cannot occur in a well-formed closed path.
	InvalidNumberOfEdgesBelowVertex
	// ErrorCode is the fallback for violations without a dedicated
	// kind; Code carries a stable number identifying the check site.
	ErrorCode
)

// String returns a human-readable name for the kind.
func (k InternalKind) String() string {
	switch k {
	case IncorrectActiveEdgeOrder:
		return "IncorrectActiveEdgeOrder"
	case InsufficientNumberOfSpans:
		return "InsufficientNumberOfSpans"
	case InsufficientNumberOfEdges:
		return "InsufficientNumberOfEdges"
	case MergeVertexOutside:
		return "MergeVertexOutside"
	case InvalidNumberOfEdgesBelowVertex:
		return "InvalidNumberOfEdgesBelowVertex"
	case ErrorCode:
		return "ErrorCode"
	default:
		return "Unknown"
	}
}

// InternalError reports a violated sweep invariant. Internal errors
// indicate either a malformed input interacting with disabled
// intersection handling, or a bug; they are safe to treat as "this
// path could not be tessellated".
type InternalError struct {
	Kind InternalKind

	// Code identifies the check site for IncorrectActiveEdgeOrder and
	// ErrorCode kinds; zero otherwise.
	Code int16

	// Position is the sweep position being processed when the
	// invariant broke, after fixed-point snapping. Zero for violations
	// detected outside event processing.
	Position geom.Vertex
}

func (e *InternalError) Error() string {
	s := "tess: internal error: " + e.Kind.String()
	if e.Code != 0 {
		s += " (" + strconv.Itoa(int(e.Code)) + ")"
	}
	return s
}

// Is reports a match with ErrInternal.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

func errInternal(kind InternalKind) error {
	return &InternalError{Kind: kind}
}

func errInternalCode(kind InternalKind, code int16) error {
	return &InternalError{Kind: kind, Code: code}
}

func errBuilder(err error) error {
	return &GeometryBuilderError{Err: err}
}
