// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// readGeometries loads a GeoJSON document from path (stdin when empty) and
// returns its geometries in document order. Gzip input is detected by the
// magic bytes, so compressed stdin works too.
func readGeometries(path string) ([]geom.T, error) {
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	br := bufio.NewReader(src)
	src = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		src = gz
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return parseGeoJSON(data)
}

// parseGeoJSON accepts a FeatureCollection, a single Feature, or a bare
// geometry.
func parseGeoJSON(data []byte) ([]geom.T, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("not a GeoJSON document: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
		geoms := make([]geom.T, 0, len(fc.Features))
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
		return geoms, nil
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return []geom.T{f.Geometry}, nil
	case "":
		return nil, fmt.Errorf("document has no GeoJSON type")
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		return []geom.T{g}, nil
	}
}
