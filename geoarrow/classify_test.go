// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestFamilyCodes(t *testing.T) {
	require.Equal(t, int8(0), FamilyPoint.Code())
	require.Equal(t, int8(1), FamilyMultiPoint.Code())
	require.Equal(t, int8(2), FamilyLineString.Code())
	require.Equal(t, int8(3), FamilyPolygon.Code())

	require.Equal(t, "points", FamilyPoint.String())
	require.Equal(t, "mpoints", FamilyMultiPoint.String())
	require.Equal(t, "lines", FamilyLineString.String())
	require.Equal(t, "polygons", FamilyPolygon.String())
}

func TestFamilyFromCode(t *testing.T) {
	for code := int8(0); code < NumFamilies; code++ {
		f, ok := FamilyFromCode(code)
		require.True(t, ok)
		require.Equal(t, code, f.Code())
	}

	_, ok := FamilyFromCode(-1)
	require.False(t, ok)
	_, ok = FamilyFromCode(NumFamilies)
	require.False(t, ok)
}

func TestClassifyFamilies(t *testing.T) {
	t.Run("Point", func(t *testing.T) {
		fam, n, err := classify(0, testPoint(1, 2))
		require.NoError(t, err)
		require.Equal(t, FamilyPoint, fam)
		require.Equal(t, []float64{1, 2}, n.flat)
	})

	t.Run("MultiPoint", func(t *testing.T) {
		fam, n, err := classify(0, testMultiPoint(1, 2, 3, 4))
		require.NoError(t, err)
		require.Equal(t, FamilyMultiPoint, fam)
		require.Equal(t, []float64{1, 2, 3, 4}, n.flat)
	})

	t.Run("LineStringWrapsToSinglePart", func(t *testing.T) {
		fam, n, err := classify(0, testLineString(0, 0, 1, 1, 2, 0))
		require.NoError(t, err)
		require.Equal(t, FamilyLineString, fam)
		require.Equal(t, []float64{0, 0, 1, 1, 2, 0}, n.flat)
		require.Equal(t, []int{6}, n.ends) // one synthesized part
	})

	t.Run("MultiLineStringKeepsParts", func(t *testing.T) {
		mls := geom.NewMultiLineStringFlat(geom.XY, []float64{0, 0, 1, 1, 5, 5, 6, 6}, []int{4, 8})
		fam, n, err := classify(0, mls)
		require.NoError(t, err)
		require.Equal(t, FamilyLineString, fam)
		require.Equal(t, []int{4, 8}, n.ends)
	})

	t.Run("PolygonWrapsToSinglePart", func(t *testing.T) {
		fam, n, err := classify(0, testPolygon(0, 0, 4))
		require.NoError(t, err)
		require.Equal(t, FamilyPolygon, fam)
		require.Len(t, n.endss, 1) // one synthesized part
		require.Equal(t, []int{10}, n.endss[0])
	})

	t.Run("MultiPolygonKeepsParts", func(t *testing.T) {
		ringA := squareRing(0, 0, 1)
		ringB := squareRing(10, 10, 1)
		flat := append(append([]float64{}, ringA...), ringB...)
		mp := geom.NewMultiPolygonFlat(geom.XY, flat, [][]int{{10}, {20}})
		fam, n, err := classify(0, mp)
		require.NoError(t, err)
		require.Equal(t, FamilyPolygon, fam)
		require.Equal(t, [][]int{{10}, {20}}, n.endss)
	})
}

func TestClassifyRejectsUnsupported(t *testing.T) {
	t.Run("NilGeometry", func(t *testing.T) {
		_, _, err := classify(3, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrUnsupportedGeometry)

		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, 3, gerr.Index)
	})

	t.Run("GeometryCollection", func(t *testing.T) {
		gc := geom.NewGeometryCollection()
		gc.MustPush(testPoint(1, 2))

		_, _, err := classify(7, gc)
		require.ErrorIs(t, err, ErrUnsupportedGeometry)
		require.NotErrorIs(t, err, ErrMalformedCoordinates)

		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, 7, gerr.Index)
		require.Equal(t, "GeometryCollection", gerr.Shape)
	})
}

func TestClassifyRejectsMalformed(t *testing.T) {
	t.Run("EmptyPoint", func(t *testing.T) {
		_, _, err := classify(0, geom.NewPoint(geom.XY))
		require.ErrorIs(t, err, ErrMalformedCoordinates)
	})

	t.Run("EmptyLineString", func(t *testing.T) {
		_, _, err := classify(1, geom.NewLineString(geom.XY))
		require.ErrorIs(t, err, ErrMalformedCoordinates)

		var gerr *GeometryError
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, 1, gerr.Index)
		require.Equal(t, "LineString", gerr.Shape)
	})

	t.Run("EmptyPolygon", func(t *testing.T) {
		_, _, err := classify(0, geom.NewPolygon(geom.XY))
		require.ErrorIs(t, err, ErrMalformedCoordinates)
	})

	t.Run("ThreeDimensionalPoint", func(t *testing.T) {
		p := geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3})
		_, _, err := classify(0, p)
		require.ErrorIs(t, err, ErrMalformedCoordinates)
		require.NotErrorIs(t, err, ErrUnsupportedGeometry)
	})

	t.Run("MeasuredLineString", func(t *testing.T) {
		ls := geom.NewLineStringFlat(geom.XYM, []float64{0, 0, 1, 1, 1, 2})
		_, _, err := classify(0, ls)
		require.ErrorIs(t, err, ErrMalformedCoordinates)
	})

	t.Run("EmptyLineStringPart", func(t *testing.T) {
		mls := geom.NewMultiLineStringFlat(geom.XY, []float64{0, 0, 1, 1}, []int{4, 4})
		_, _, err := classify(0, mls)
		require.ErrorIs(t, err, ErrMalformedCoordinates)
	})
}

func TestClassifyNormalizedAliasesInput(t *testing.T) {
	ls := testLineString(0, 0, 1, 1)
	_, n, err := classify(0, ls)
	require.NoError(t, err)

	// The normalized view references the geometry's flat data rather than
	// copying it.
	require.Same(t, &ls.FlatCoords()[0], &n.flat[0])
}

func TestGeometryErrorMatching(t *testing.T) {
	err := unsupportedError(4, "GeometryCollection", "geometry collections cannot be encoded")

	require.ErrorIs(t, err, ErrUnsupportedGeometry)
	require.NotErrorIs(t, err, ErrMalformedCoordinates)
	require.ErrorIs(t, err, &GeometryError{}) // empty kind matches any

	wrapped := errors.Join(errors.New("outer"), err)
	require.ErrorIs(t, wrapped, ErrUnsupportedGeometry)
}
