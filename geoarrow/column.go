// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// GeometryColumn is an immutable geometry sequence stored as an Arrow dense
// union of the four family buffers. Columns come from [Encoder.Finish],
// [Encode], or [ReadColumn], and own one reference to the underlying union
// array; call Release when done.
type GeometryColumn struct {
	union *array.DenseUnion
}

// NewGeometryColumn wraps an existing dense union array as a geometry
// column after validating its shape: four children in fixed code order,
// each with its family's buffer layout. The column takes over the caller's
// reference on success.
func NewGeometryColumn(u *array.DenseUnion) (*GeometryColumn, error) {
	ut := u.UnionType()
	if ut.Mode() != arrow.DenseMode {
		return nil, fmt.Errorf("geoarrow: union mode %v is not dense", ut.Mode())
	}
	if n := len(ut.Fields()); n != NumFamilies {
		return nil, fmt.Errorf("geoarrow: union has %d children, want %d", n, NumFamilies)
	}
	for i, code := range ut.TypeCodes() {
		if int(code) != i {
			return nil, fmt.Errorf("geoarrow: union type code %d at child %d, want %d", code, i, i)
		}
	}
	for f := Family(0); f < NumFamilies; f++ {
		child := u.Field(int(f))
		if !familyTypeMatches(f, child.DataType()) {
			return nil, fmt.Errorf("geoarrow: child %s has type %s, want %s",
				f, child.DataType(), familyDataType(f))
		}
	}
	return &GeometryColumn{union: u}, nil
}

// Len returns the number of geometries in the column.
func (c *GeometryColumn) Len() int {
	return c.union.Len()
}

// Union returns the underlying dense union array. The caller must not
// release it; use Retain if it needs to outlive the column.
func (c *GeometryColumn) Union() *array.DenseUnion {
	return c.union
}

// DataType returns the column's dense union type.
func (c *GeometryColumn) DataType() arrow.DataType {
	return c.union.DataType()
}

// Field returns one family buffer, or nil for an unknown family. All four
// buffers exist on every column, possibly with zero length.
func (c *GeometryColumn) Field(f Family) arrow.Array {
	if f < 0 || f >= NumFamilies {
		return nil
	}
	return c.union.Field(int(f))
}

// FamilyCount returns the number of elements stored in one family buffer.
func (c *GeometryColumn) FamilyCount(f Family) int {
	child := c.Field(f)
	if child == nil {
		return 0
	}
	return child.Len()
}

// Family returns the family of the geometry at row i.
func (c *GeometryColumn) Family(i int) Family {
	return Family(c.union.RawTypeCodes()[i])
}

// TypeCodes returns the per-element family codes in input order. The slice
// aliases the column's type buffer and must not be modified.
func (c *GeometryColumn) TypeCodes() []int8 {
	return c.union.RawTypeCodes()
}

// UnionOffsets returns the per-element offsets into the family buffers in
// input order. The slice aliases the column's offset buffer and must not
// be modified.
func (c *GeometryColumn) UnionOffsets() []int32 {
	return c.union.RawValueOffsets()
}

// ColumnMetadata is a read-only snapshot of the two per-element sequences
// that reconstruct input order from the family buffers. Both slices have
// exactly one entry per input geometry.
type ColumnMetadata struct {
	// InputTypes holds each element's family code.
	InputTypes []int8
	// UnionOffsets holds each element's position inside its family buffer.
	UnionOffsets []int32
}

// Metadata returns copies of the type and offset sequences, safe to hold
// or modify after the column is released.
func (c *GeometryColumn) Metadata() ColumnMetadata {
	tags := c.TypeCodes()
	offsets := c.UnionOffsets()
	md := ColumnMetadata{
		InputTypes:   make([]int8, len(tags)),
		UnionOffsets: make([]int32, len(offsets)),
	}
	copy(md.InputTypes, tags)
	copy(md.UnionOffsets, offsets)
	return md
}

// Retain increases the reference count of the underlying union array.
func (c *GeometryColumn) Retain() {
	c.union.Retain()
}

// Release decreases the reference count of the underlying union array.
// The column must not be used afterwards.
func (c *GeometryColumn) Release() {
	c.union.Release()
}
