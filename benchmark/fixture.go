// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Geometry generators
//
// All fixtures are deterministic so throughput and allocation numbers are
// comparable across runs and machines.

// Points returns n distinct points.
func Points(n int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		geoms[i] = geom.NewPointFlat(geom.XY, []float64{float64(i), float64(i) * 0.5})
	}
	return geoms
}

// MultiPoints returns n multipoints with pts members each.
func MultiPoints(n, pts int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		flat := make([]float64, 0, pts*2)
		for p := 0; p < pts; p++ {
			flat = append(flat, float64(i+p), float64(i-p))
		}
		geoms[i] = geom.NewMultiPointFlat(geom.XY, flat)
	}
	return geoms
}

// LineStrings returns n open paths with the given vertex count.
func LineStrings(n, vertices int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		geoms[i] = geom.NewLineStringFlat(geom.XY, zigzag(float64(i), vertices))
	}
	return geoms
}

// MultiLineStrings returns n multilinestrings with parts paths of the given
// vertex count.
func MultiLineStrings(n, parts, vertices int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		var flat []float64
		ends := make([]int, 0, parts)
		for p := 0; p < parts; p++ {
			flat = append(flat, zigzag(float64(i*parts+p), vertices)...)
			ends = append(ends, len(flat))
		}
		geoms[i] = geom.NewMultiLineStringFlat(geom.XY, flat, ends)
	}
	return geoms
}

// Polygons returns n single-ring polygons approximating circles with the
// given vertex count.
func Polygons(n, vertices int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		ring := circle(float64(i*4), float64(i*4), 1.5, vertices)
		geoms[i] = geom.NewPolygonFlat(geom.XY, ring, []int{len(ring)})
	}
	return geoms
}

// MultiPolygons returns n multipolygons with parts disjoint single-ring
// members of the given vertex count.
func MultiPolygons(n, parts, vertices int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		var flat []float64
		endss := make([][]int, 0, parts)
		for p := 0; p < parts; p++ {
			ring := circle(float64(i*4), float64(p*4), 1.5, vertices)
			flat = append(flat, ring...)
			endss = append(endss, []int{len(flat)})
		}
		geoms[i] = geom.NewMultiPolygonFlat(geom.XY, flat, endss)
	}
	return geoms
}

// Mixed returns n geometries cycling through all six supported kinds.
func Mixed(n int) []geom.T {
	geoms := make([]geom.T, n)
	for i := range geoms {
		switch i % 6 {
		case 0:
			geoms[i] = geom.NewPointFlat(geom.XY, []float64{float64(i), float64(i)})
		case 1:
			geoms[i] = geom.NewMultiPointFlat(geom.XY, []float64{float64(i), 0, float64(i), 1})
		case 2:
			geoms[i] = geom.NewLineStringFlat(geom.XY, zigzag(float64(i), 8))
		case 3:
			flat := zigzag(float64(i), 4)
			half := len(flat)
			flat = append(flat, zigzag(float64(i)+100, 4)...)
			geoms[i] = geom.NewMultiLineStringFlat(geom.XY, flat, []int{half, len(flat)})
		case 4:
			ring := circle(float64(i), float64(i), 2, 12)
			geoms[i] = geom.NewPolygonFlat(geom.XY, ring, []int{len(ring)})
		case 5:
			ring := circle(float64(i), float64(i), 2, 12)
			flat := append([]float64(nil), ring...)
			first := len(flat)
			flat = append(flat, circle(float64(i)+10, float64(i), 2, 12)...)
			geoms[i] = geom.NewMultiPolygonFlat(geom.XY, flat, [][]int{{first}, {len(flat)}})
		}
	}
	return geoms
}

// zigzag returns an open path of the given vertex count starting at (seed, 0).
func zigzag(seed float64, vertices int) []float64 {
	flat := make([]float64, 0, vertices*2)
	for v := 0; v < vertices; v++ {
		flat = append(flat, seed+float64(v), float64(v%2))
	}
	return flat
}

// circle returns a closed ring approximating a circle, first vertex repeated
// at the end.
func circle(cx, cy, r float64, vertices int) []float64 {
	flat := make([]float64, 0, (vertices+1)*2)
	for v := 0; v < vertices; v++ {
		a := 2 * math.Pi * float64(v) / float64(vertices)
		flat = append(flat, cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return append(flat, flat[0], flat[1])
}
