// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashtable

import (
	"github.com/cuulee/duckdb/pkg/agg"
	"github.com/cuulee/duckdb/pkg/common/moerr"
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/cuulee/duckdb/pkg/logutil"
	"github.com/cuulee/duckdb/pkg/vectorops"
	"go.uber.org/zap"
)

// Config carries the construction parameters SPEC_FULL.md §6 names.
type Config struct {
	InitialCapacity uint64
	GroupWidth      uint64
	PayloadWidth    uint64
	AggregateKinds  []agg.Kind
	// AggregateTypes gives the declared output type of each non-COUNT_STAR
	// aggregate, in the same order as the non-COUNT_STAR entries of
	// AggregateKinds; it drives the width and arithmetic semantics of
	// each PAYLOAD field (SPEC_FULL.md §4.3).
	AggregateTypes []types.Type
	Parallel       bool
	// Ops overrides the vector-primitive implementation; nil selects
	// vectorops.Default{}. Any Primitives implementation may be given,
	// including vectorops.MockPrimitives.
	Ops vectorops.Primitives
	// Logger receives diagnostic events (capacity, observed max_chain).
	// A nil Logger uses pkg/logutil's global logger, which is
	// zap.NewNop() unless logutil.SetGlobal replaced it.
	Logger *zap.Logger
}

// Table is the HashTable entity of SPEC_FULL.md §3: a contiguous,
// exclusively-owned byte buffer of fixed-width slots, mutated only by
// AddChunk and scanned non-destructively by Scan. After AddChunk or Scan
// returns an error the table's contents are unspecified, and the table
// must not be used again.
type Table struct {
	layout   slotLayout
	capacity uint64
	data     []byte
	entries  uint64
	maxChain uint64

	kinds          []agg.Kind
	payloadKinds   []agg.Kind // AggregateKinds minus CountStar, in order
	payloadTypes   []types.Type
	payloadOffsets []uint64 // byte offset of each payloadKinds[i] field within PAYLOAD
	dispatch       map[agg.Kind]agg.Funcs

	parallel bool
	ops      vectorops.Primitives
	log      *zap.Logger
}

// New constructs a Table with capacity fixed at cfg.InitialCapacity.
// Resizing a non-empty table is unimplemented (SPEC_FULL.md §9); callers
// must size initial_capacity above the expected distinct-group count
// (pkg/config.EstimateCapacity helps with that).
func New(cfg Config) (*Table, error) {
	if len(cfg.AggregateTypes) != countPayloadKinds(cfg.AggregateKinds) {
		return nil, moerr.NewInvariantViolation(
			"got %d aggregate types for %d non-COUNT_STAR aggregate kinds",
			len(cfg.AggregateTypes), countPayloadKinds(cfg.AggregateKinds))
	}

	dispatch, err := agg.Dispatch(cfg.AggregateKinds)
	if err != nil {
		return nil, err
	}

	ops := cfg.Ops
	if ops == nil {
		ops = vectorops.Default{}
	}
	log := cfg.Logger
	if log == nil {
		log = logutil.Get()
	}

	payloadKinds := make([]agg.Kind, 0, len(cfg.AggregateKinds))
	for _, k := range cfg.AggregateKinds {
		if k.HasPayload() {
			payloadKinds = append(payloadKinds, k)
		}
	}
	offsets := make([]uint64, len(payloadKinds))
	var running uint64
	for i, typ := range cfg.AggregateTypes {
		offsets[i] = running
		running += uint64(typ.Oid.Size())
	}
	if running != cfg.PayloadWidth {
		return nil, moerr.NewInvariantViolation(
			"declared payload_width %d does not match summed aggregate widths %d",
			cfg.PayloadWidth, running)
	}

	layout := newSlotLayout(cfg.GroupWidth, cfg.PayloadWidth)
	capacity := cfg.InitialCapacity
	if capacity == 0 {
		capacity = 16
	}

	t := &Table{
		layout:         layout,
		capacity:       capacity,
		data:           make([]byte, capacity*layout.tupleSize),
		kinds:          cfg.AggregateKinds,
		payloadKinds:   payloadKinds,
		payloadTypes:   cfg.AggregateTypes,
		payloadOffsets: offsets,
		dispatch:       dispatch,
		parallel:       cfg.Parallel,
		ops:            ops,
		log:            log,
	}
	// data is zero-initialized by make(), and flagEmpty == 0, so every
	// slot starts EMPTY without an explicit fill pass.
	t.log.Debug("hashtable constructed", logutil.TableField(capacity))
	return t, nil
}

func countPayloadKinds(kinds []agg.Kind) int {
	n := 0
	for _, k := range kinds {
		if k.HasPayload() {
			n++
		}
	}
	return n
}

// Capacity returns the fixed slot count.
func (t *Table) Capacity() uint64 { return t.capacity }

// Entries returns the number of occupied slots.
func (t *Table) Entries() uint64 { return t.entries }

// MaxChain returns the longest observed probe distance across all
// ingested rows, a diagnostic value per SPEC_FULL.md §3.
func (t *Table) MaxChain() uint64 { return t.maxChain }

// Grow is the documented extension seam for resizing SPEC_FULL.md §9
// leaves unimplemented: growing a table that already has entries.
func (t *Table) Grow(newCapacity uint64) error {
	if t.entries > 0 {
		return moerr.NewUnimplemented("resize of non-empty table")
	}
	if newCapacity <= t.capacity {
		return moerr.NewUnimplemented("downsize")
	}
	t.capacity = newCapacity
	t.data = make([]byte, newCapacity*t.layout.tupleSize)
	return nil
}
