// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// familyBuilders owns the four child array builders for a column under
// construction. Elements append in input order within each family, which is
// what keeps the union offsets dense and monotone per family.
type familyBuilders struct {
	points  *array.FixedSizeListBuilder
	mpoints *array.ListBuilder
	lines   *array.ListBuilder
	polys   *array.ListBuilder
}

func newFamilyBuilders(mem memory.Allocator) *familyBuilders {
	return &familyBuilders{
		points:  array.NewFixedSizeListBuilder(mem, coordWidth, arrow.PrimitiveTypes.Float64),
		mpoints: array.NewListBuilder(mem, PointDataType()),
		lines:   array.NewListBuilder(mem, arrow.ListOf(PointDataType())),
		polys:   array.NewListBuilder(mem, arrow.ListOf(arrow.ListOf(PointDataType()))),
	}
}

// appendPoint adds one XY pair to the point family.
func (b *familyBuilders) appendPoint(flat []float64) {
	b.points.Append(true)
	vb := b.points.ValueBuilder().(*array.Float64Builder)
	vb.Append(flat[0])
	vb.Append(flat[1])
}

// appendMultiPoint adds one element of back-to-back XY pairs to the
// multipoint family.
func (b *familyBuilders) appendMultiPoint(flat []float64) {
	b.mpoints.Append(true)
	pb := b.mpoints.ValueBuilder().(*array.FixedSizeListBuilder)
	vb := pb.ValueBuilder().(*array.Float64Builder)
	appendVertices(pb, vb, flat)
}

// appendLineString adds one multi-part element to the linestring family.
// ends holds the absolute part boundaries into flat.
func (b *familyBuilders) appendLineString(flat []float64, ends []int) {
	b.lines.Append(true)
	partB := b.lines.ValueBuilder().(*array.ListBuilder)
	pb := partB.ValueBuilder().(*array.FixedSizeListBuilder)
	vb := pb.ValueBuilder().(*array.Float64Builder)

	start := 0
	for _, end := range ends {
		partB.Append(true)
		appendVertices(pb, vb, flat[start:end])
		start = end
	}
}

// appendPolygon adds one multi-part element to the polygon family. endss
// holds the absolute ring boundaries into flat, grouped by part.
func (b *familyBuilders) appendPolygon(flat []float64, endss [][]int) {
	b.polys.Append(true)
	partB := b.polys.ValueBuilder().(*array.ListBuilder)
	ringB := partB.ValueBuilder().(*array.ListBuilder)
	pb := ringB.ValueBuilder().(*array.FixedSizeListBuilder)
	vb := pb.ValueBuilder().(*array.Float64Builder)

	start := 0
	for _, ends := range endss {
		partB.Append(true)
		for _, end := range ends {
			ringB.Append(true)
			appendVertices(pb, vb, flat[start:end])
			start = end
		}
	}
}

// appendVertices appends the XY pairs in flat to a point builder.
func appendVertices(pb *array.FixedSizeListBuilder, vb *array.Float64Builder, flat []float64) {
	for i := 0; i+coordWidth <= len(flat); i += coordWidth {
		pb.Append(true)
		vb.Append(flat[i])
		vb.Append(flat[i+1])
	}
}

// newArrays materializes the four family buffers in code order. The builders
// are reset afterwards, per the usual Arrow builder contract.
func (b *familyBuilders) newArrays() [NumFamilies]arrow.Array {
	return [NumFamilies]arrow.Array{
		b.points.NewArray(),
		b.mpoints.NewArray(),
		b.lines.NewArray(),
		b.polys.NewArray(),
	}
}

func (b *familyBuilders) release() {
	b.points.Release()
	b.mpoints.Release()
	b.lines.Release()
	b.polys.Release()
}
