package geoarrow

import (
	"errors"
	"fmt"
)

// Error kind strings carried by GeometryError.Kind.
const (
	KindUnsupportedGeometry  = "UnsupportedGeometryType"
	KindMalformedCoordinates = "MalformedCoordinateData"
)

// ErrUnsupportedGeometry is a sentinel for use with errors.Is to check
// whether any error in a chain is a *GeometryError for a geometry kind
// outside the four encodable families, such as a GeometryCollection or a
// nil geometry.
var ErrUnsupportedGeometry = &GeometryError{Kind: KindUnsupportedGeometry, Index: -1}

// ErrMalformedCoordinates is a sentinel for use with errors.Is to check
// whether any error in a chain is a *GeometryError for coordinate content
// that does not match its declared kind, such as a non-XY layout or an
// empty geometry.
var ErrMalformedCoordinates = &GeometryError{Kind: KindMalformedCoordinates, Index: -1}

// errFinished is returned when an Encoder is used after Finish.
var errFinished = errors.New("geoarrow: encoder already finished")

// GeometryError represents a fatal encode or decode failure. Encoding stops
// at the first failing element and produces no column.
type GeometryError struct {
	Kind    string // KindUnsupportedGeometry or KindMalformedCoordinates
	Shape   string // kind name of the offending element, e.g. "GeometryCollection"
	Message string
	Index   int // position of the offending element in the sequence, -1 if unknown
}

func (e *GeometryError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (element %d, %s)", e.Kind, e.Message, e.Index, e.Shape)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is supports errors.Is by matching any *GeometryError with the same Kind.
// A target with an empty Kind matches every *GeometryError.
func (e *GeometryError) Is(target error) bool {
	t, ok := target.(*GeometryError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// unsupportedError builds a positioned UnsupportedGeometryType error.
func unsupportedError(index int, shape, format string, args ...any) *GeometryError {
	return &GeometryError{
		Kind:    KindUnsupportedGeometry,
		Shape:   shape,
		Message: fmt.Sprintf(format, args...),
		Index:   index,
	}
}

// malformedError builds a positioned MalformedCoordinateData error.
func malformedError(index int, shape, format string, args ...any) *GeometryError {
	return &GeometryError{
		Kind:    KindMalformedCoordinates,
		Shape:   shape,
		Message: fmt.Sprintf(format, args...),
		Index:   index,
	}
}
