// Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

// Package conformance provides canonical test vectors for the geometry
// union column format. Each [Vector] pairs an input geometry sequence with
// the exact type codes, union offsets, and per-family element counts its
// encoding must produce, pinning the wire-level contract: the fixed family
// code mapping, per-family offset bookkeeping, singleton wrapping of bare
// linestrings and polygons, and the empty-input column shape.
//
// [Vectors] returns the full set and [Verify] checks an encoded column
// against one vector, including a decode and re-encode round trip. The
// geoarrow-conformance command serializes every vector as an Arrow IPC
// stream for cross-implementation comparison.
package conformance
