// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestColumnIPCRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		opts []ipc.Option
	}{
		{name: "Uncompressed"},
		{name: "Zstd", opts: []ipc.Option{ipc.WithZstd()}},
		{name: "LZ4", opts: []ipc.Option{ipc.WithLZ4()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			col := encodeColumn(t, mixedGeometries())

			var buf bytes.Buffer
			require.NoError(t, WriteColumn(&buf, col, tc.opts...))
			require.NotZero(t, buf.Len())

			got, err := ReadColumn(&buf)
			require.NoError(t, err)
			defer got.Release()

			require.Equal(t, col.Len(), got.Len())
			require.Equal(t, col.TypeCodes(), got.TypeCodes())
			require.Equal(t, col.UnionOffsets(), got.UnionOffsets())
			require.True(t, array.Equal(col.Union(), got.Union()))
		})
	}
}

func TestColumnIPCRoundTripEmpty(t *testing.T) {
	col := encodeColumn(t, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, col))

	got, err := ReadColumn(&buf)
	require.NoError(t, err)
	defer got.Release()

	require.Equal(t, 0, got.Len())
	for f := Family(0); f < NumFamilies; f++ {
		require.Equal(t, 0, got.FamilyCount(f))
	}
}

func TestColumnSchemaMetadata(t *testing.T) {
	schema := ColumnSchema(UnionDataType())

	layout, ok := schema.Metadata().GetValue(MetaLayout)
	require.True(t, ok)
	require.Equal(t, LayoutDenseUnion, layout)

	version, ok := schema.Metadata().GetValue(MetaVersion)
	require.True(t, ok)
	require.Equal(t, FormatVersion, version)

	require.Len(t, schema.Fields(), 1)
	require.Equal(t, ColumnName, schema.Field(0).Name)
	require.False(t, schema.Field(0).Nullable)
}

func TestReadColumnRejectsForeignStream(t *testing.T) {
	// A well-formed IPC stream that is not a geometry column.
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "value", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	b := array.NewInt64Builder(mem)
	b.AppendValues([]int64{1, 2, 3}, nil)
	arr := b.NewArray()
	b.Release()
	rec := array.NewRecord(schema, []arrow.Array{arr}, 3)
	arr.Release()

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(schema))
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	rec.Release()

	_, err := ReadColumn(&buf)
	require.ErrorContains(t, err, MetaLayout)
}

func TestReadColumnRejectsTruncatedStream(t *testing.T) {
	col := encodeColumn(t, mixedGeometries())

	var buf bytes.Buffer
	require.NoError(t, WriteColumn(&buf, col))

	_, err := ReadColumn(bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	require.Error(t, err)
}
