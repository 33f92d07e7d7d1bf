// © Copyright 2025-2026, Query.Farm LLC - https://query.farm
// SPDX-License-Identifier: Apache-2.0

package geoarrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/twpayne/go-geom"
)

// Encoder builds a geometry union column incrementally. Append geometries
// in sequence order, then call Finish to materialize the column.
//
// An Encoder is single-use: after Finish it accepts no further input, and
// the first failed Append poisons it permanently. Every call after a
// failure returns the same error and Finish produces no column, so a
// sequence either encodes completely or not at all. Not safe for
// concurrent use.
type Encoder struct {
	mem      memory.Allocator
	hook     EncodeHook
	token    HookToken
	started  bool
	finished bool

	builders *familyBuilders
	tags     *array.Int8Builder
	offsets  *array.Int32Builder
	next     [NumFamilies]int32
	length   int
	stats    EncodeStatistics
	err      error
}

// NewEncoder creates an Encoder allocating from mem. A nil mem uses the
// default Go allocator.
func NewEncoder(mem memory.Allocator) *Encoder {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Encoder{
		mem:      mem,
		builders: newFamilyBuilders(mem),
		tags:     array.NewInt8Builder(mem),
		offsets:  array.NewInt32Builder(mem),
	}
}

// SetHook installs an observability hook. Must be called before the first
// Append to observe the whole pass.
func (e *Encoder) SetHook(hook EncodeHook) {
	e.hook = hook
}

// Len returns the number of geometries appended so far.
func (e *Encoder) Len() int {
	return e.length
}

// Err returns the error that poisoned the encoder, or nil.
func (e *Encoder) Err() error {
	return e.err
}

// Append classifies one geometry and adds it to the column under
// construction. The element's family buffer, type tag, and union offset
// are all written in this call, so the two metadata sequences stay exactly
// as long as the input.
func (e *Encoder) Append(g geom.T) error {
	if e.err != nil {
		return e.err
	}
	if e.finished {
		e.err = errFinished
		return e.err
	}
	e.start()

	fam, n, err := classify(e.length, g)
	if err != nil {
		return e.fail(err)
	}

	switch fam {
	case FamilyPoint:
		e.builders.appendPoint(n.flat)
	case FamilyMultiPoint:
		e.builders.appendMultiPoint(n.flat)
	case FamilyLineString:
		e.builders.appendLineString(n.flat, n.ends)
	case FamilyPolygon:
		e.builders.appendPolygon(n.flat, n.endss)
	}

	e.tags.Append(fam.Code())
	e.offsets.Append(e.next[fam])
	e.next[fam]++
	e.length++
	e.stats.RecordElement(fam, int64(len(n.flat)/coordWidth))
	return nil
}

// Finish materializes the geometry column. The encoder releases its
// builders and cannot be used afterwards.
func (e *Encoder) Finish() (*GeometryColumn, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.finished {
		return nil, errFinished
	}
	e.start()
	e.finished = true

	children := e.builders.newArrays()
	tags := e.tags.NewInt8Array()
	offsets := e.offsets.NewInt32Array()
	defer func() {
		for _, c := range children {
			c.Release()
		}
		tags.Release()
		offsets.Release()
		e.releaseBuilders()
	}()

	u, err := array.NewDenseUnionFromArraysWithFields(tags, offsets, children[:], familyFieldNames())
	if err != nil {
		err = fmt.Errorf("assembling geometry union: %w", err)
		e.err = err
		e.end(err)
		return nil, err
	}

	e.stats.BufferBytes = arrayBufferSize(u.Data())
	e.end(nil)
	return &GeometryColumn{union: u}, nil
}

// start fires the hook's start callpoint once per encoder.
func (e *Encoder) start() {
	if e.started {
		return
	}
	e.started = true
	if e.hook != nil {
		e.token = e.hook.OnEncodeStart()
	}
}

// end fires the hook's end callpoint with the final statistics.
func (e *Encoder) end(err error) {
	if e.hook == nil {
		return
	}
	hook := e.hook
	e.hook = nil
	hook.OnEncodeEnd(e.token, &e.stats, err)
}

// fail poisons the encoder and discards everything buffered so far.
func (e *Encoder) fail(err error) error {
	e.err = err
	e.releaseBuilders()
	e.end(err)
	return err
}

func (e *Encoder) releaseBuilders() {
	if e.builders == nil {
		return
	}
	e.builders.release()
	e.builders = nil
	e.tags.Release()
	e.offsets.Release()
}

// Encode converts a geometry sequence to a union column in one call using
// the default allocator.
func Encode(geoms []geom.T) (*GeometryColumn, error) {
	return EncodeWith(nil, nil, geoms)
}

// EncodeWith converts a geometry sequence to a union column with an
// explicit allocator and optional hook. Either may be nil.
func EncodeWith(mem memory.Allocator, hook EncodeHook, geoms []geom.T) (*GeometryColumn, error) {
	enc := NewEncoder(mem)
	if hook != nil {
		enc.SetHook(hook)
	}
	for _, g := range geoms {
		if err := enc.Append(g); err != nil {
			return nil, err
		}
	}
	return enc.Finish()
}
