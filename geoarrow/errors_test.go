package geoarrow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryErrorMessage(t *testing.T) {
	err := unsupportedError(4, "GeometryCollection", "geometry collections cannot be encoded")
	require.Equal(t,
		"UnsupportedGeometryType: geometry collections cannot be encoded (element 4, GeometryCollection)",
		err.Error())

	bare := &GeometryError{Kind: KindMalformedCoordinates, Message: "bad data", Index: -1}
	require.Equal(t, "MalformedCoordinateData: bad data", bare.Error())
}

func TestGeometryErrorSentinels(t *testing.T) {
	unsupported := unsupportedError(0, "nil", "geometry is nil")
	malformed := malformedError(2, "Point", "empty geometries cannot be encoded")

	require.ErrorIs(t, unsupported, ErrUnsupportedGeometry)
	require.NotErrorIs(t, unsupported, ErrMalformedCoordinates)
	require.ErrorIs(t, malformed, ErrMalformedCoordinates)
	require.NotErrorIs(t, malformed, ErrUnsupportedGeometry)

	// Matching survives wrapping with %w.
	wrapped := fmt.Errorf("encoding batch: %w", malformed)
	require.ErrorIs(t, wrapped, ErrMalformedCoordinates)

	var gerr *GeometryError
	require.ErrorAs(t, wrapped, &gerr)
	require.Equal(t, 2, gerr.Index)
	require.Equal(t, "Point", gerr.Shape)
}

func TestGeometryErrorKindMatching(t *testing.T) {
	err := malformedError(0, "Point", "bad")

	// An empty-kind target matches any *GeometryError.
	require.ErrorIs(t, err, &GeometryError{})
	// A plain error target does not match.
	require.False(t, errors.Is(err, errors.New("MalformedCoordinateData: bad")))
}
