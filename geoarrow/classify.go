// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// normalized holds one classified geometry in its family's canonical shape,
// referencing the source geometry's flat coordinate data without copying.
//
//   - FamilyPoint: flat holds exactly one XY pair.
//   - FamilyMultiPoint: flat holds the member XY pairs back to back.
//   - FamilyLineString: ends holds the per-part vertex boundaries into flat.
//     A bare LineString carries a single synthesized part.
//   - FamilyPolygon: endss holds the per-part ring boundaries into flat.
//     A bare Polygon carries a single synthesized part.
type normalized struct {
	flat  []float64
	ends  []int
	endss [][]int
}

// classify maps one geometry to its family and normalized coordinate shape.
// index is the element's position in the input sequence, used only for error
// reporting. Geometry kinds outside the four families are rejected as
// unsupported; empty geometries and non-XY layouts are rejected as
// malformed.
func classify(index int, g geom.T) (Family, normalized, error) {
	if g == nil {
		return 0, normalized{}, unsupportedError(index, "nil", "geometry is nil")
	}

	shape := shapeName(g)
	switch t := g.(type) {
	case *geom.Point:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		return FamilyPoint, normalized{flat: flat}, nil

	case *geom.MultiPoint:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		// Newer go-geom multipoints track per-member ends so individual
		// members can be empty. An empty member has no buffer slot to
		// land in, so it is malformed here.
		prev := 0
		for _, end := range t.Ends() {
			if end == prev {
				return 0, normalized{}, malformedError(index, shape, "contains an empty point member")
			}
			prev = end
		}
		return FamilyMultiPoint, normalized{flat: flat}, nil

	case *geom.LineString:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		return FamilyLineString, normalized{flat: flat, ends: []int{len(flat)}}, nil

	case *geom.MultiLineString:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		if err := checkEnds(index, shape, "linestring part", t.Ends()); err != nil {
			return 0, normalized{}, err
		}
		return FamilyLineString, normalized{flat: flat, ends: t.Ends()}, nil

	case *geom.Polygon:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		if err := checkEnds(index, shape, "ring", t.Ends()); err != nil {
			return 0, normalized{}, err
		}
		return FamilyPolygon, normalized{flat: flat, endss: [][]int{t.Ends()}}, nil

	case *geom.MultiPolygon:
		flat, err := checkFlat(index, shape, t.Layout(), t.FlatCoords())
		if err != nil {
			return 0, normalized{}, err
		}
		prev := 0
		for _, ends := range t.Endss() {
			if len(ends) == 0 {
				return 0, normalized{}, malformedError(index, shape, "contains a polygon part with no rings")
			}
			for _, end := range ends {
				if end == prev {
					return 0, normalized{}, malformedError(index, shape, "contains an empty ring")
				}
				prev = end
			}
		}
		return FamilyPolygon, normalized{flat: flat, endss: t.Endss()}, nil

	case *geom.GeometryCollection:
		return 0, normalized{}, unsupportedError(index, shape, "geometry collections cannot be encoded")

	default:
		return 0, normalized{}, unsupportedError(index, shape, "unsupported geometry type %T", g)
	}
}

// checkFlat validates the layout and coordinate content shared by every
// geometry kind and returns the flat coordinate data.
func checkFlat(index int, shape string, layout geom.Layout, flat []float64) ([]float64, error) {
	if len(flat) == 0 {
		return nil, malformedError(index, shape, "empty geometries cannot be encoded")
	}
	if layout != geom.XY {
		return nil, malformedError(index, shape, "coordinate layout %s is not encodable, want XY", layout)
	}
	if len(flat)%coordWidth != 0 {
		return nil, malformedError(index, shape, "coordinate data length %d is not a multiple of %d", len(flat), coordWidth)
	}
	return flat, nil
}

// checkEnds rejects zero-width segments in a geometry's end offsets.
func checkEnds(index int, shape, segment string, ends []int) error {
	prev := 0
	for _, end := range ends {
		if end == prev {
			return malformedError(index, shape, "contains an empty %s", segment)
		}
		prev = end
	}
	return nil
}

// shapeName returns the conventional kind name of a geometry.
func shapeName(g geom.T) string {
	switch g.(type) {
	case *geom.Point:
		return "Point"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.LineString:
		return "LineString"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	default:
		return fmt.Sprintf("%T", g)
	}
}
