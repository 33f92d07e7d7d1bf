// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

// Command geoarrow-inspect reads a geometry union column from an Arrow IPC
// stream and prints a summary report, optionally with every geometry as WKT.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/Query-farm/geoarrow/geoarrow"
	"github.com/Query-farm/geoarrow/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	WKT bool `short:"w" long:"wkt" description:"Print each geometry as WKT"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	var src io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open input")
		}
		defer f.Close()
		src = f
	}

	col, err := geoarrow.ReadColumn(src)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read geometry column")
	}
	defer col.Release()

	meta := col.Metadata()
	fmt.Printf("elements:      %d\n", col.Len())
	for f := geoarrow.Family(0); f < geoarrow.NumFamilies; f++ {
		fmt.Printf("%-14s %d\n", f.String()+":", col.FamilyCount(f))
	}
	fmt.Printf("input_types:   %v\n", meta.InputTypes)
	fmt.Printf("union_offsets: %v\n", meta.UnionOffsets)

	if !opts.WKT {
		return
	}
	for i := 0; i < col.Len(); i++ {
		g, err := col.Geometry(i)
		if err != nil {
			log.Fatal().Err(err).Int("element", i).Msg("Failed to decode geometry")
		}
		s, err := wkt.Marshal(g)
		if err != nil {
			log.Fatal().Err(err).Int("element", i).Msg("Failed to format geometry")
		}
		fmt.Printf("%4d  %s\n", i, s)
	}
}
