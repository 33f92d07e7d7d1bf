// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// ColumnSchema returns the single-field schema used to serialize a geometry
// column of the given union type, with identifying metadata attached.
func ColumnSchema(dt arrow.DataType) *arrow.Schema {
	md := arrow.NewMetadata(
		[]string{MetaLayout, MetaVersion},
		[]string{LayoutDenseUnion, FormatVersion},
	)
	return arrow.NewSchema([]arrow.Field{
		{Name: ColumnName, Type: dt, Nullable: false},
	}, &md)
}

// WriteColumn writes a geometry column as a complete Arrow IPC stream:
// schema, one record, end of stream. Additional IPC options are passed to
// the writer, e.g. ipc.WithZstd() or ipc.WithLZ4() for body compression.
func WriteColumn(w io.Writer, col *GeometryColumn, opts ...ipc.Option) error {
	schema := ColumnSchema(col.DataType())
	rec := array.NewRecord(schema, []arrow.Array{col.Union()}, int64(col.Len()))
	defer rec.Release()

	writer := ipc.NewWriter(w, append([]ipc.Option{ipc.WithSchema(schema)}, opts...)...)
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("writing geometry batch: %w", err)
	}
	return writer.Close()
}

// ReadColumn reads a geometry column from an Arrow IPC stream produced by
// WriteColumn. The schema must carry the dense union layout metadata and a
// geometry field whose union shape matches the four family buffers.
func ReadColumn(r io.Reader) (*GeometryColumn, error) {
	reader, err := ipc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading geometry IPC stream: %w", err)
	}
	defer reader.Release()

	schema := reader.Schema()
	layout, ok := schema.Metadata().GetValue(MetaLayout)
	if !ok {
		return nil, fmt.Errorf("geoarrow: schema metadata missing %q", MetaLayout)
	}
	if layout != LayoutDenseUnion {
		return nil, fmt.Errorf("geoarrow: unsupported layout %q, want %q", layout, LayoutDenseUnion)
	}
	indices := schema.FieldIndices(ColumnName)
	if len(indices) == 0 {
		return nil, fmt.Errorf("geoarrow: schema has no %q field", ColumnName)
	}

	if !reader.Next() {
		if err := reader.Err(); err != nil {
			return nil, fmt.Errorf("reading geometry batch: %w", err)
		}
		return nil, io.ErrUnexpectedEOF
	}
	rec := reader.Record()

	union, ok := rec.Column(indices[0]).(*array.DenseUnion)
	if !ok {
		return nil, fmt.Errorf("geoarrow: %q field has type %s, want a dense union",
			ColumnName, rec.Column(indices[0]).DataType())
	}
	union.Retain()

	col, err := NewGeometryColumn(union)
	if err != nil {
		union.Release()
		return nil, err
	}
	if reader.Next() {
		col.Release()
		return nil, fmt.Errorf("geoarrow: stream carries more than one geometry batch")
	}
	return col, nil
}
