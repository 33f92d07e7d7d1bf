// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/twpayne/go-geom"

	"github.com/Query-farm/geoarrow/geoarrow"
)

// Vector is one conformance case: an input geometry sequence together with
// the wire-level encoding it must produce.
type Vector struct {
	Name        string
	Description string
	Geoms       []geom.T
	WantTypes   []int8
	WantOffsets []int32
	WantCounts  [geoarrow.NumFamilies]int
}

// Vectors returns the canonical conformance cases.
func Vectors() []Vector {
	return []Vector{
		{
			Name:        "mixed_sequence",
			Description: "two points interleaved with a linestring and a polygon",
			Geoms: []geom.T{
				point(1, 2),
				lineString(0, 0, 1, 1),
				point(3, 4),
				polygon(squareRing(0, 0, 4)),
			},
			WantTypes:   []int8{0, 2, 0, 3},
			WantOffsets: []int32{0, 0, 1, 0},
			WantCounts:  [geoarrow.NumFamilies]int{2, 0, 1, 1},
		},
		{
			Name:        "empty_input",
			Description: "no geometries still yields all four family buffers",
			WantTypes:   []int8{},
			WantOffsets: []int32{},
		},
		{
			Name:        "all_families",
			Description: "every supported kind, bare and multi",
			Geoms: []geom.T{
				point(0, 0),
				multiPoint(1, 1, 2, 2),
				lineString(0, 0, 3, 3),
				multiLineString([]float64{0, 0, 1, 1, 5, 5, 6, 6}, []int{4, 8}),
				polygon(squareRing(0, 0, 1)),
				multiPolygon([]float64{0, 0, 2, 0, 2, 2, 0, 2, 0, 0, 5, 5, 6, 5, 6, 6, 5, 6, 5, 5}, [][]int{{10}, {20}}),
			},
			WantTypes:   []int8{0, 1, 2, 2, 3, 3},
			WantOffsets: []int32{0, 0, 0, 1, 0, 1},
			WantCounts:  [geoarrow.NumFamilies]int{1, 1, 2, 2},
		},
		{
			Name:        "interleaved_points",
			Description: "offsets count independently per family",
			Geoms: []geom.T{
				point(0, 0),
				multiPoint(1, 1),
				point(2, 2),
				multiPoint(3, 3, 4, 4),
				point(5, 5),
			},
			WantTypes:   []int8{0, 1, 0, 1, 0},
			WantOffsets: []int32{0, 0, 1, 1, 2},
			WantCounts:  [geoarrow.NumFamilies]int{3, 2, 0, 0},
		},
		{
			Name:        "singleton_wrapping",
			Description: "bare kinds and one-part multis share a family",
			Geoms: []geom.T{
				lineString(0, 0, 1, 1),
				multiLineString([]float64{2, 2, 3, 3}, []int{4}),
				polygon(squareRing(0, 0, 1)),
				multiPolygon(squareRing(9, 9, 1), [][]int{{10}}),
			},
			WantTypes:   []int8{2, 2, 3, 3},
			WantOffsets: []int32{0, 1, 0, 1},
			WantCounts:  [geoarrow.NumFamilies]int{0, 0, 2, 2},
		},
		{
			Name:        "polygon_with_hole",
			Description: "ring structure survives inside the polygon family",
			Geoms: []geom.T{
				polygonRings(squareRing(0, 0, 10), squareRing(4, 4, 2)),
			},
			WantTypes:   []int8{3},
			WantOffsets: []int32{0},
			WantCounts:  [geoarrow.NumFamilies]int{0, 0, 0, 1},
		},
	}
}

// Verify checks an encoded column against a vector's expectations,
// including a decode and re-encode round trip.
func Verify(v Vector, col *geoarrow.GeometryColumn) error {
	if col.Len() != len(v.WantTypes) {
		return fmt.Errorf("%s: column length %d, want %d", v.Name, col.Len(), len(v.WantTypes))
	}
	if got := col.TypeCodes(); !slices.Equal(got, v.WantTypes) {
		return fmt.Errorf("%s: type codes %v, want %v", v.Name, got, v.WantTypes)
	}
	if got := col.UnionOffsets(); !slices.Equal(got, v.WantOffsets) {
		return fmt.Errorf("%s: union offsets %v, want %v", v.Name, got, v.WantOffsets)
	}
	for f := geoarrow.Family(0); f < geoarrow.NumFamilies; f++ {
		if got := col.FamilyCount(f); got != v.WantCounts[f] {
			return fmt.Errorf("%s: %s count %d, want %d", v.Name, f, got, v.WantCounts[f])
		}
	}

	decoded, err := col.Geometries()
	if err != nil {
		return fmt.Errorf("%s: decoding: %w", v.Name, err)
	}
	again, err := geoarrow.Encode(decoded)
	if err != nil {
		return fmt.Errorf("%s: re-encoding: %w", v.Name, err)
	}
	defer again.Release()
	if !array.Equal(col.Union(), again.Union()) {
		return fmt.Errorf("%s: decode and re-encode does not reproduce the column", v.Name)
	}
	return nil
}

// --- Geometry constructors for vector fixtures ---

func point(x, y float64) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{x, y})
}

func multiPoint(flat ...float64) *geom.MultiPoint {
	return geom.NewMultiPointFlat(geom.XY, flat)
}

func lineString(flat ...float64) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, flat)
}

func multiLineString(flat []float64, ends []int) *geom.MultiLineString {
	return geom.NewMultiLineStringFlat(geom.XY, flat, ends)
}

func polygon(ring []float64) *geom.Polygon {
	return geom.NewPolygonFlat(geom.XY, ring, []int{len(ring)})
}

func polygonRings(rings ...[]float64) *geom.Polygon {
	var flat []float64
	var ends []int
	for _, ring := range rings {
		flat = append(flat, ring...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

func multiPolygon(flat []float64, endss [][]int) *geom.MultiPolygon {
	return geom.NewMultiPolygonFlat(geom.XY, flat, endss)
}

// squareRing returns a closed 5-vertex ring with corner (x, y) and the
// given side length.
func squareRing(x, y, side float64) []float64 {
	return []float64{
		x, y,
		x + side, y,
		x + side, y + side,
		x, y + side,
		x, y,
	}
}
