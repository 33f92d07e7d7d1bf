// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// EncodeHook provides observability callpoints around one encode pass.
// OnEncodeStart fires before the first element is processed and
// OnEncodeEnd fires when the pass completes or fails. Implementations do
// not need to be safe for concurrent use; an Encoder is single-threaded.
type EncodeHook interface {
	OnEncodeStart() HookToken
	OnEncodeEnd(token HookToken, stats *EncodeStatistics, err error)
}

// HookToken is an opaque value returned by OnEncodeStart and passed back to
// OnEncodeEnd. Only meaningful to the EncodeHook that created it.
type HookToken interface{}

// EncodeStatistics holds per-pass counters.
type EncodeStatistics struct {
	Elements    int64 // geometries encoded
	Points      int64 // elements landed in the point family
	MultiPoints int64 // elements landed in the multipoint family
	LineStrings int64 // elements landed in the linestring family
	Polygons    int64 // elements landed in the polygon family
	Coordinates int64 // total vertices across all elements
	BufferBytes int64 // total Arrow buffer bytes in the finished column
}

// RecordElement records one encoded element with its vertex count.
func (s *EncodeStatistics) RecordElement(f Family, coords int64) {
	s.Elements++
	s.Coordinates += coords
	switch f {
	case FamilyPoint:
		s.Points++
	case FamilyMultiPoint:
		s.MultiPoints++
	case FamilyLineString:
		s.LineStrings++
	case FamilyPolygon:
		s.Polygons++
	}
}

// FamilyElements returns the element count recorded for one family.
func (s *EncodeStatistics) FamilyElements(f Family) int64 {
	switch f {
	case FamilyPoint:
		return s.Points
	case FamilyMultiPoint:
		return s.MultiPoints
	case FamilyLineString:
		return s.LineStrings
	case FamilyPolygon:
		return s.Polygons
	default:
		return 0
	}
}

// arrayBufferSize returns the total buffer size in bytes for an array,
// including all child arrays. This matches Arrow's total buffer size
// accounting.
func arrayBufferSize(data arrow.ArrayData) int64 {
	var total int64
	for _, buf := range data.Buffers() {
		if buf != nil {
			total += int64(buf.Len())
		}
	}
	for _, child := range data.Children() {
		total += arrayBufferSize(child)
	}
	return total
}
