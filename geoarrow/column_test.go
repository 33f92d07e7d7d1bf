// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestColumnUnionShape(t *testing.T) {
	col := encodeColumn(t, mixedGeometries())

	ut, ok := col.DataType().(*arrow.DenseUnionType)
	require.True(t, ok)
	require.Equal(t, arrow.DenseMode, ut.Mode())

	fields := ut.Fields()
	require.Len(t, fields, NumFamilies)
	require.Equal(t, "points", fields[0].Name)
	require.Equal(t, "mpoints", fields[1].Name)
	require.Equal(t, "lines", fields[2].Name)
	require.Equal(t, "polygons", fields[3].Name)

	for i, code := range ut.TypeCodes() {
		require.Equal(t, arrow.UnionTypeCode(i), code)
	}
	for f := Family(0); f < NumFamilies; f++ {
		require.True(t, familyTypeMatches(f, fields[f].Type), "family %s", f)
	}
}

func TestColumnMetadataSnapshot(t *testing.T) {
	col := encodeColumn(t, mixedGeometries())

	md := col.Metadata()
	require.Equal(t, []int8{0, 2, 0, 3}, md.InputTypes)
	require.Equal(t, []int32{0, 0, 1, 0}, md.UnionOffsets)
	require.Len(t, md.InputTypes, col.Len())
	require.Len(t, md.UnionOffsets, col.Len())

	// The snapshot is a copy: mutating it leaves the column untouched.
	md.InputTypes[0] = 9
	md.UnionOffsets[0] = 9
	require.Equal(t, []int8{0, 2, 0, 3}, col.TypeCodes())
	require.Equal(t, []int32{0, 0, 1, 0}, col.UnionOffsets())
}

func TestColumnFieldRange(t *testing.T) {
	col := encodeColumn(t, mixedGeometries())

	require.Nil(t, col.Field(Family(-1)))
	require.Nil(t, col.Field(Family(NumFamilies)))
	require.Equal(t, 0, col.FamilyCount(Family(99)))
}

func TestNewGeometryColumnValidates(t *testing.T) {
	t.Run("AcceptsOwnUnion", func(t *testing.T) {
		col := encodeColumn(t, mixedGeometries())

		u := col.Union()
		u.Retain()
		wrapped, err := NewGeometryColumn(u)
		require.NoError(t, err)
		defer wrapped.Release()

		require.Equal(t, col.Len(), wrapped.Len())
	})

	t.Run("RejectsWrongChildCount", func(t *testing.T) {
		u := buildForeignUnion(t, 2)
		defer u.Release()

		_, err := NewGeometryColumn(u)
		require.ErrorContains(t, err, "children")
	})

	t.Run("RejectsWrongChildTypes", func(t *testing.T) {
		u := buildForeignUnion(t, NumFamilies)
		defer u.Release()

		_, err := NewGeometryColumn(u)
		require.ErrorContains(t, err, "points")
	})
}

// buildForeignUnion builds a dense union of n int64 children, which is a
// valid union but not a geometry column.
func buildForeignUnion(t *testing.T, n int) *array.DenseUnion {
	t.Helper()
	mem := memory.NewGoAllocator()

	tagB := array.NewInt8Builder(mem)
	defer tagB.Release()
	tags := tagB.NewInt8Array()
	defer tags.Release()

	offB := array.NewInt32Builder(mem)
	defer offB.Release()
	offsets := offB.NewInt32Array()
	defer offsets.Release()

	children := make([]arrow.Array, n)
	names := make([]string, n)
	for i := range children {
		b := array.NewInt64Builder(mem)
		children[i] = b.NewArray()
		names[i] = fmt.Sprintf("child%d", i)
		b.Release()
	}
	defer func() {
		for _, c := range children {
			c.Release()
		}
	}()

	u, err := array.NewDenseUnionFromArraysWithFields(tags, offsets, children, names)
	require.NoError(t, err)

	return u
}
