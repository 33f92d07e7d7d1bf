// Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

// Package geoarrow encodes ordered, mixed-type planar geometry sequences
// into Arrow dense union columns and reconstructs them.
//
// A geometry column stores a heterogeneous sequence of points, multipoints,
// linestrings, and polygons as four type-homogeneous Arrow child arrays plus
// two per-element sequences: the union type codes identifying each element's
// family, and the union offsets locating each element inside its family
// buffer. Together they reproduce the original sequence order and kinds
// exactly, while keeping coordinate data contiguous per family for columnar
// processing.
//
// # Families
//
// Every supported geometry kind maps to one of four [Family] buffers:
//
//   - [FamilyPoint] (code 0): Point, stored as fixed_size_list<float64>[2].
//   - [FamilyMultiPoint] (code 1): MultiPoint, stored as list<point>.
//   - [FamilyLineString] (code 2): LineString and MultiLineString, stored as
//     list<list<point>>. A bare LineString becomes a single-part multi.
//   - [FamilyPolygon] (code 3): Polygon and MultiPolygon, stored as
//     list<list<list<point>>>. A bare Polygon becomes a single-part multi.
//
// The numeric codes are part of the wire format and never change.
// GeometryCollection and geometry kinds outside this set are rejected with
// [ErrUnsupportedGeometry]; coordinate content that does not match its
// declared kind (wrong layout, empty geometries) is rejected with
// [ErrMalformedCoordinates]. Failures are fatal: a sequence either encodes
// completely or not at all.
//
// # Encoding
//
// [Encode] converts a slice of geometries in one call. For incremental
// construction, create an [Encoder], call [Encoder.Append] per element in
// order, and materialize the column with [Encoder.Finish]:
//
//	enc := geoarrow.NewEncoder(nil)
//	for _, g := range geoms {
//		if err := enc.Append(g); err != nil {
//			return err
//		}
//	}
//	col, err := enc.Finish()
//
// Geometries are values of [github.com/twpayne/go-geom.T] with an XY layout.
// The resulting [GeometryColumn] owns an Arrow dense union array; release it
// with [GeometryColumn.Release] when done.
//
// # Reconstruction
//
// [GeometryColumn.Geometry] and [GeometryColumn.Geometries] rebuild host
// geometries from the column. A single-part entry in the linestring or
// polygon family decodes back to the bare kind, so the stored wrapping of
// bare inputs is transparent to callers. [GeometryColumn.Metadata] exposes
// copies of the per-element type and offset sequences for callers that walk
// the family buffers directly.
//
// # Serialization
//
// [WriteColumn] and [ReadColumn] move columns through Arrow IPC streams with
// a single geometry field and identifying schema metadata. The usual Arrow
// IPC options apply, including ipc.WithZstd and ipc.WithLZ4 body
// compression.
//
// # Observability
//
// An [EncodeHook] installed with [Encoder.SetHook] observes encode passes
// and their [EncodeStatistics]. The geoarrow/otel subpackage provides a hook
// implementation that records OpenTelemetry spans and metrics.
package geoarrow
