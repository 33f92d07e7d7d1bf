// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/twpayne/go-geom"
)

// Geometry reconstructs the geometry stored at row i. Entries in the
// linestring and polygon families decode to the bare kind when they hold a
// single part, matching how bare inputs were wrapped during encoding, and
// to the multi kind otherwise.
func (c *GeometryColumn) Geometry(i int) (geom.T, error) {
	if i < 0 || i >= c.Len() {
		return nil, fmt.Errorf("geoarrow: row %d out of range [0, %d)", i, c.Len())
	}

	code := c.union.RawTypeCodes()[i]
	fam, ok := FamilyFromCode(code)
	if !ok {
		return nil, malformedError(i, "union", "unknown type code %d", code)
	}
	offset := int(c.union.RawValueOffsets()[i])
	child := c.union.Field(int(fam))

	switch fam {
	case FamilyPoint:
		return decodePoint(child, offset, i)
	case FamilyMultiPoint:
		return decodeMultiPoint(child, offset, i)
	case FamilyLineString:
		return decodeLineString(child, offset, i)
	default:
		return decodePolygon(child, offset, i)
	}
}

// Geometries reconstructs every geometry in the column in input order.
func (c *GeometryColumn) Geometries() ([]geom.T, error) {
	out := make([]geom.T, c.Len())
	for i := range out {
		g, err := c.Geometry(i)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

func decodePoint(child arrow.Array, offset, row int) (geom.T, error) {
	points, vals, err := pointValues(child, row, "Point")
	if err != nil {
		return nil, err
	}
	start, _ := points.ValueOffsets(offset)
	return geom.NewPointFlat(geom.XY, []float64{vals.Value(int(start)), vals.Value(int(start) + 1)}), nil
}

func decodeMultiPoint(child arrow.Array, offset, row int) (geom.T, error) {
	lst, ok := child.(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiPoint", "family buffer has type %s", child.DataType())
	}
	points, vals, err := pointValues(lst.ListValues(), row, "MultiPoint")
	if err != nil {
		return nil, err
	}

	start, end := lst.ValueOffsets(offset)
	coords := make([]geom.Coord, 0, end-start)
	for j := start; j < end; j++ {
		coords = append(coords, pointCoord(points, vals, int(j)))
	}
	mp, err := geom.NewMultiPoint(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformedError(row, "MultiPoint", "rebuilding geometry: %v", err)
	}
	return mp, nil
}

func decodeLineString(child arrow.Array, offset, row int) (geom.T, error) {
	outer, ok := child.(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiLineString", "family buffer has type %s", child.DataType())
	}
	parts, ok := outer.ListValues().(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiLineString", "part buffer has type %s", outer.ListValues().DataType())
	}
	points, vals, err := pointValues(parts.ListValues(), row, "MultiLineString")
	if err != nil {
		return nil, err
	}

	partStart, partEnd := outer.ValueOffsets(offset)
	coords := make([][]geom.Coord, 0, partEnd-partStart)
	for p := partStart; p < partEnd; p++ {
		coords = append(coords, rangeCoords(parts, points, vals, int(p)))
	}

	// A single part round-trips to the bare kind it was wrapped from.
	if len(coords) == 1 {
		ls, err := geom.NewLineString(geom.XY).SetCoords(coords[0])
		if err != nil {
			return nil, malformedError(row, "LineString", "rebuilding geometry: %v", err)
		}
		return ls, nil
	}
	mls, err := geom.NewMultiLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformedError(row, "MultiLineString", "rebuilding geometry: %v", err)
	}
	return mls, nil
}

func decodePolygon(child arrow.Array, offset, row int) (geom.T, error) {
	outer, ok := child.(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiPolygon", "family buffer has type %s", child.DataType())
	}
	rings, ok := outer.ListValues().(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiPolygon", "part buffer has type %s", outer.ListValues().DataType())
	}
	ringPts, ok := rings.ListValues().(*array.List)
	if !ok {
		return nil, malformedError(row, "MultiPolygon", "ring buffer has type %s", rings.ListValues().DataType())
	}
	points, vals, err := pointValues(ringPts.ListValues(), row, "MultiPolygon")
	if err != nil {
		return nil, err
	}

	partStart, partEnd := outer.ValueOffsets(offset)
	coords := make([][][]geom.Coord, 0, partEnd-partStart)
	for p := partStart; p < partEnd; p++ {
		ringStart, ringEnd := rings.ValueOffsets(int(p))
		part := make([][]geom.Coord, 0, ringEnd-ringStart)
		for r := ringStart; r < ringEnd; r++ {
			part = append(part, rangeCoords(ringPts, points, vals, int(r)))
		}
		coords = append(coords, part)
	}

	// A single part round-trips to the bare kind it was wrapped from.
	if len(coords) == 1 {
		poly, err := geom.NewPolygon(geom.XY).SetCoords(coords[0])
		if err != nil {
			return nil, malformedError(row, "Polygon", "rebuilding geometry: %v", err)
		}
		return poly, nil
	}
	mp, err := geom.NewMultiPolygon(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformedError(row, "MultiPolygon", "rebuilding geometry: %v", err)
	}
	return mp, nil
}

// pointValues unwraps a point buffer into its fixed-size list and float64
// value arrays.
func pointValues(arr arrow.Array, row int, shape string) (*array.FixedSizeList, *array.Float64, error) {
	points, ok := arr.(*array.FixedSizeList)
	if !ok {
		return nil, nil, malformedError(row, shape, "point buffer has type %s", arr.DataType())
	}
	vals, ok := points.ListValues().(*array.Float64)
	if !ok {
		return nil, nil, malformedError(row, shape, "coordinate buffer has type %s", points.ListValues().DataType())
	}
	return points, vals, nil
}

// pointCoord reads the XY pair at one point buffer slot.
func pointCoord(points *array.FixedSizeList, vals *array.Float64, i int) geom.Coord {
	start, _ := points.ValueOffsets(i)
	return geom.Coord{vals.Value(int(start)), vals.Value(int(start) + 1)}
}

// rangeCoords reads the XY pairs of one vertex list slot.
func rangeCoords(lst *array.List, points *array.FixedSizeList, vals *array.Float64, i int) []geom.Coord {
	start, end := lst.ValueOffsets(i)
	coords := make([]geom.Coord, 0, end-start)
	for j := start; j < end; j++ {
		coords = append(coords, pointCoord(points, vals, int(j)))
	}
	return coords
}
