// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// PointDataType returns the Arrow type of the point family buffer:
// an interleaved XY pair per element.
func PointDataType() arrow.DataType {
	return arrow.FixedSizeListOf(coordWidth, arrow.PrimitiveTypes.Float64)
}

// MultiPointDataType returns the Arrow type of the multipoint family buffer:
// a list of points per element.
func MultiPointDataType() arrow.DataType {
	return arrow.ListOf(PointDataType())
}

// LineStringDataType returns the Arrow type of the linestring family buffer:
// a list of parts per element, each part a list of points. Bare linestrings
// occupy a single part.
func LineStringDataType() arrow.DataType {
	return arrow.ListOf(arrow.ListOf(PointDataType()))
}

// PolygonDataType returns the Arrow type of the polygon family buffer:
// a list of parts per element, each part a list of rings, each ring a list
// of points. Bare polygons occupy a single part.
func PolygonDataType() arrow.DataType {
	return arrow.ListOf(arrow.ListOf(arrow.ListOf(PointDataType())))
}

// familyDataType returns the Arrow type of one family buffer.
func familyDataType(f Family) arrow.DataType {
	switch f {
	case FamilyPoint:
		return PointDataType()
	case FamilyMultiPoint:
		return MultiPointDataType()
	case FamilyLineString:
		return LineStringDataType()
	case FamilyPolygon:
		return PolygonDataType()
	default:
		return nil
	}
}

// UnionDataType returns the Arrow type of a complete geometry column: a
// dense union of the four family buffers with type codes 0 through 3.
func UnionDataType() *arrow.DenseUnionType {
	fields := make([]arrow.Field, NumFamilies)
	codes := make([]arrow.UnionTypeCode, NumFamilies)
	for f := Family(0); f < NumFamilies; f++ {
		fields[f] = arrow.Field{Name: f.String(), Type: familyDataType(f), Nullable: true}
		codes[f] = arrow.UnionTypeCode(f.Code())
	}
	return arrow.DenseUnionOf(fields, codes)
}

// familyTypeMatches reports whether dt has the buffer layout of family f.
// Field names and nullability are not significant, only the nesting shape.
func familyTypeMatches(f Family, dt arrow.DataType) bool {
	var depth int
	switch f {
	case FamilyPoint:
		depth = 0
	case FamilyMultiPoint:
		depth = 1
	case FamilyLineString:
		depth = 2
	case FamilyPolygon:
		depth = 3
	default:
		return false
	}
	for range depth {
		lt, ok := dt.(*arrow.ListType)
		if !ok {
			return false
		}
		dt = lt.Elem()
	}
	fsl, ok := dt.(*arrow.FixedSizeListType)
	if !ok || fsl.Len() != coordWidth {
		return false
	}
	return fsl.Elem().ID() == arrow.FLOAT64
}
