// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

// Command geoarrow-pack reads GeoJSON documents and writes them as geometry
// union columns in Arrow IPC stream format. Inputs may be plain or gzip
// compressed. A YAML job file packs several documents in one run.
package main

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/Query-farm/geoarrow/geoarrow"
	"github.com/Query-farm/geoarrow/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to a YAML job file"`
	Output      string `short:"o" long:"out"         env:"OUTPUT_FILE" description:"Output file path. Writes to stdout if empty"`
	Compression string `short:"z" long:"compression" env:"COMPRESSION" description:"IPC buffer compression" choice:"none" choice:"zstd" choice:"lz4" default:"none"`
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

	if opts.ConfigFile != "" {
		cfg, err := loadConfig(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load job configuration")
		}
		runJobs(cfg)
		return
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	if err := packFile(input, opts.Output, opts.Compression); err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("Packing failed")
	}
}

func runJobs(cfg *Config) {
	failed := 0
	for _, job := range cfg.Jobs {
		if job.Input == "" || job.Output == "" {
			log.Error().
				Str("input", job.Input).
				Str("output", job.Output).
				Msg("Job needs both input and output")
			failed++
			continue
		}
		if err := packFile(job.Input, job.Output, job.Compression); err != nil {
			log.Error().Err(err).Str("input", job.Input).Msg("Packing failed")
			failed++
		}
	}

	log.Info().
		Int("jobs", len(cfg.Jobs)).
		Int("failed", failed).
		Msg("Pack run finished")
	if failed > 0 {
		os.Exit(1)
	}
}

// packFile reads one GeoJSON document (stdin when input is empty), encodes
// it and writes the IPC stream (stdout when output is empty).
func packFile(input, output, compression string) error {
	opts, err := compressionOptions(compression)
	if err != nil {
		return err
	}

	geoms, err := readGeometries(input)
	if err != nil {
		return err
	}

	col, err := geoarrow.Encode(geoms)
	if err != nil {
		return err
	}
	defer col.Release()

	if err := writeStream(output, col, opts); err != nil {
		return err
	}

	name := output
	if name == "" {
		name = "-"
	}
	log.Info().
		Int("elements", col.Len()).
		Str("output", name).
		Str("compression", compression).
		Msg("Packed geometries")
	return nil
}

func writeStream(output string, col *geoarrow.GeometryColumn, opts []ipc.Option) error {
	if output == "" {
		return geoarrow.WriteColumn(os.Stdout, col, opts...)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := geoarrow.WriteColumn(f, col, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func compressionOptions(name string) ([]ipc.Option, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "zstd":
		return []ipc.Option{ipc.WithZstd()}, nil
	case "lz4":
		return []ipc.Option{ipc.WithLZ4()}, nil
	default:
		return nil, fmt.Errorf("unknown compression %q", name)
	}
}
