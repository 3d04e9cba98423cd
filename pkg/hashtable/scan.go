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
	"github.com/cuulee/duckdb/pkg/container/batch"
	"github.com/cuulee/duckdb/pkg/container/types"
)

// countStarType is the declared output type of a COUNT_STAR column:
// the raw 8-byte unsigned COUNT field reinterpreted as a bigint, since
// no grouped count ever needs the sign bit.
var countStarType = types.Type{Oid: types.T_bigint}

// Scan walks the table non-destructively from *cursor forward, filling
// groupsOut and resultOut with up to their allocated capacity's worth
// of FULL slots, and advances *cursor past the last slot visited
// (SPEC_FULL.md §4.4). *cursor is a slot index, not a byte offset
// (SPEC_FULL.md §9 resolves the original's ambiguity this way: see
// original_source/src/execution/aggregate_hashtable.cpp, where
// scan_position is written as a byte offset but read back as a slot
// index a few lines later).
//
// A Scan call that finds zero FULL slots — because *cursor already
// reached the end of the table — sets both chunks' Count to 0 and
// leaves *cursor at t.Capacity(); callers treat that as end-of-scan.
// resultOut must carry exactly len(Config.AggregateKinds) columns, in
// declaration order, each pre-sized to its aggregate's output type
// (COUNT_STAR columns use countStarType).
func (t *Table) Scan(cursor *uint64, groupsOut, resultOut *batch.DataChunk) error {
	groupsOut.Reset()
	resultOut.Reset()

	maxOut := groupsOut.MaxRows()
	if out := resultOut.MaxRows(); out < maxOut {
		maxOut = out
	}

	addrs := make([]uint32, 0, maxOut)
	idx := *cursor
	for idx < t.capacity && len(addrs) < maxOut {
		base := t.layout.slotBase(idx)
		if t.data[t.layout.flagOffset(base)] == flagFull {
			addrs = append(addrs, uint32(idx))
		}
		idx++
	}
	*cursor = idx

	count := len(addrs)
	if count == 0 {
		return nil
	}

	groupAddrs := make([]uint64, count)
	payloadAddrs := make([]uint64, count)
	for i, slotIdx := range addrs {
		base := t.layout.slotBase(uint64(slotIdx))
		groupAddrs[i] = t.layout.groupOffset(base)
		payloadAddrs[i] = t.layout.payloadOffset(base)
	}

	// Grouping columns, in declaration order: each column's field
	// width is read off the output vector itself, since the table
	// core never separately tracks a per-grouping-column type list
	// (SPEC_FULL.md §3 treats GROUP_KEYS as one opaque span).
	pos := groupAddrs
	for _, col := range groupsOut.Columns {
		t.ops.GatherSet(t.data, pos, col.Typ, col)
		col.Count = count
		pos = advance(pos, uint64(col.Typ.Size()))
	}
	groupsOut.Count = count

	// Aggregate columns, first pass: every non-COUNT_STAR kind reads
	// from payloadAddrs, which walks forward one field at a time; a
	// second pass below fills COUNT_STAR columns from the trailing
	// COUNT field payloadAddrs ends up pointing at.
	payloadIdx := 0
	for i, kind := range t.kinds {
		col := resultOut.Columns[i]
		if kind == agg.CountStar {
			continue
		}
		typ := t.payloadTypes[payloadIdx]
		if kind == agg.Avg {
			distanceToCount := t.layout.payloadWidth - t.payloadOffsets[payloadIdx]
			if err := t.ops.GatherAverage(t.data, payloadAddrs, typ, distanceToCount, col); err != nil {
				return err
			}
		} else {
			t.ops.GatherSet(t.data, payloadAddrs, typ, col)
		}
		col.Count = count
		payloadAddrs = advance(payloadAddrs, uint64(typ.Size()))
		payloadIdx++
	}

	// payloadAddrs now points at the trailing COUNT field for every
	// row; fill any COUNT_STAR columns from it.
	for i, kind := range t.kinds {
		if kind != agg.CountStar {
			continue
		}
		col := resultOut.Columns[i]
		t.ops.GatherSet(t.data, payloadAddrs, countStarType, col)
		col.Count = count
	}
	resultOut.Count = count

	return nil
}

func advance(addrs []uint64, delta uint64) []uint64 {
	out := make([]uint64, len(addrs))
	for i, a := range addrs {
		out[i] = a + delta
	}
	return out
}
