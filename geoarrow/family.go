// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import "fmt"

// Family identifies one of the four type-homogeneous buffers in a geometry
// union column. The numeric value doubles as the Arrow dense union type code
// and child index on the wire, so the mapping is fixed and never reordered.
type Family int8

const (
	// FamilyPoint holds Point geometries.
	FamilyPoint Family = 0
	// FamilyMultiPoint holds MultiPoint geometries.
	FamilyMultiPoint Family = 1
	// FamilyLineString holds LineString and MultiLineString geometries.
	// A bare LineString is stored as a single-part multi.
	FamilyLineString Family = 2
	// FamilyPolygon holds Polygon and MultiPolygon geometries.
	// A bare Polygon is stored as a single-part multi.
	FamilyPolygon Family = 3

	// NumFamilies is the number of children in a geometry union column.
	NumFamilies = 4
)

// coordWidth is the number of values per vertex. Only planar XY coordinates
// are encodable.
const coordWidth = 2

// String returns the union child field name for the family.
func (f Family) String() string {
	switch f {
	case FamilyPoint:
		return "points"
	case FamilyMultiPoint:
		return "mpoints"
	case FamilyLineString:
		return "lines"
	case FamilyPolygon:
		return "polygons"
	default:
		return fmt.Sprintf("Family(%d)", int8(f))
	}
}

// Code returns the Arrow union type code for the family.
func (f Family) Code() int8 {
	return int8(f)
}

// FamilyFromCode converts a union type code back to a Family. The second
// return value reports whether the code identifies a known family.
func FamilyFromCode(code int8) (Family, bool) {
	if code < 0 || code >= NumFamilies {
		return 0, false
	}
	return Family(code), true
}

// familyFieldNames returns the union child names in code order.
func familyFieldNames() []string {
	return []string{
		FamilyPoint.String(),
		FamilyMultiPoint.String(),
		FamilyLineString.String(),
		FamilyPolygon.String(),
	}
}
