// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Query-farm/geoarrow/conformance"
	"github.com/Query-farm/geoarrow/geoarrow"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--list" {
		for _, v := range conformance.Vectors() {
			fmt.Println(v.Name)
		}
		return
	}

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, v := range conformance.Vectors() {
		path := filepath.Join(dir, v.Name+".arrows")
		if err := writeVector(path, v); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", v.Name, err)
			os.Exit(1)
		}
		fmt.Printf("WROTE:%s\n", path)
	}
}

// writeVector encodes one vector, checks it against its own expectations
// and serializes it as an Arrow IPC stream.
func writeVector(path string, v conformance.Vector) error {
	col, err := geoarrow.Encode(v.Geoms)
	if err != nil {
		return err
	}
	defer col.Release()

	if err := conformance.Verify(v, col); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := geoarrow.WriteColumn(f, col); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
