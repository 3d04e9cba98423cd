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
	"bytes"

	"github.com/RoaringBitmap/roaring"
	"github.com/cuulee/duckdb/pkg/common/moerr"
	"github.com/cuulee/duckdb/pkg/container/batch"
	"github.com/cuulee/duckdb/pkg/logutil"
)

// AddChunk ingests one batch: address computation, then a row-at-a-time
// probe-and-classify pass, then vectorized aggregate update. It
// implements SPEC_FULL.md §4.1–§4.3 verbatim.
//
// groups must carry one column per grouping key, concatenating to
// exactly GroupWidth bytes per row; payload must carry one column per
// non-COUNT_STAR aggregate, in the same order as Config.AggregateKinds
// with COUNT_STAR entries removed, each sized to its declared output
// type. Both chunks must report the same row Count.
func (t *Table) AddChunk(groups, payload *batch.DataChunk) error {
	if groups.Count == 0 {
		return nil
	}
	if t.parallel {
		return moerr.NewUnimplemented("parallel ingest")
	}
	if payload.Count != groups.Count {
		return moerr.NewInvariantViolation(
			"groups.Count=%d does not match payload.Count=%d", groups.Count, payload.Count)
	}

	n := groups.Count

	// --- Address Computation (SPEC_FULL.md §4.1) ---
	hashes := t.ops.Hash(groups.Columns[0])
	for _, col := range groups.Columns[1:] {
		t.ops.CombineHash(hashes, col)
	}
	addrs := t.ops.Widen(hashes)
	t.ops.Modulo(addrs, t.capacity)
	t.ops.Multiply(addrs, t.layout.tupleSize)

	// --- Probe & Classify (SPEC_FULL.md §4.2) ---
	newSel, updatedSel, err := t.probeAndClassify(groups, addrs, n)
	if err != nil {
		return err
	}

	// --- Aggregate Update (SPEC_FULL.md §4.3) ---
	t.updateAggregates(payload, addrs, newSel, updatedSel)

	t.log.Debug("chunk ingested",
		logutil.ChainField(t.maxChain),
		logutil.TableField(t.capacity))
	return nil
}

// probeAndClassify runs the tight per-row scan the vectorized pipeline
// frames on either side (SPEC_FULL.md §9). addrs holds each row's slot
// byte-offset on entry; on return it holds the PAYLOAD base offset for
// that row, per §4.2's "reposition cursor" rule.
func (t *Table) probeAndClassify(groups *batch.DataChunk, addrs []uint64, n int) (newSel, updatedSel []uint32, err error) {
	newBM := roaring.New()
	updatedBM := roaring.New()
	groupData := make([]byte, t.layout.groupWidth)
	tupleBytes := t.capacity * t.layout.tupleSize

	for i := 0; i < n; i++ {
		pos := 0
		for _, col := range groups.Columns {
			row := col.Rows()[i]
			v := col.At(row)
			copy(groupData[pos:], v)
			pos += len(v)
		}

		base := addrs[i]
		var chain uint64
		for {
			flagOff := t.layout.flagOffset(base)
			switch t.data[flagOff] {
			case flagEmpty:
				t.data[flagOff] = flagFull
				copy(t.data[t.layout.groupOffset(base):], groupData)
				zeroRange(t.data, t.layout.payloadOffset(base), t.layout.payloadWidth+countSize)
				newBM.Add(uint32(i))
				t.entries++
			case flagFull:
				keyStart := t.layout.groupOffset(base)
				if bytes.Equal(t.data[keyStart:keyStart+t.layout.groupWidth], groupData) {
					updatedBM.Add(uint32(i))
				} else {
					chain++
					if chain >= t.capacity {
						return nil, nil, moerr.NewCapacityExhausted(
							"probe for row %d wrapped the table without finding a slot", i)
					}
					base += t.layout.tupleSize
					if base >= tupleBytes {
						base = 0
					}
					continue
				}
			default:
				return nil, nil, moerr.NewInvariantViolation("slot flag byte %d is neither EMPTY nor FULL", t.data[flagOff])
			}
			break
		}

		if chain > t.maxChain {
			t.maxChain = chain
		}
		addrs[i] = t.layout.payloadOffset(base)
	}

	return newBM.ToArray(), updatedBM.ToArray(), nil
}

// updateAggregates dispatches the initial-set/update action for each
// non-COUNT_STAR aggregate in declaration order, then unconditionally
// increments the trailing COUNT for every row (SPEC_FULL.md §4.3).
func (t *Table) updateAggregates(payload *batch.DataChunk, addrs []uint64, newSel, updatedSel []uint32) {
	for i, kind := range t.payloadKinds {
		typ := t.payloadTypes[i]
		col := payload.Columns[i]
		funcs := t.dispatch[kind]

		if len(newSel) > 0 {
			funcs.InitialSet(t.ops, t.data, addrs, newSel, col, typ)
		}
		if len(updatedSel) > 0 {
			funcs.Update(t.ops, t.data, addrs, updatedSel, col, typ)
		}
		t.ops.Add(addrs, uint64(typ.Oid.Size()))
	}
	t.ops.ScatterAddOne(t.data, addrs, nil)
}

func zeroRange(buf []byte, offset, length uint64) {
	for i := offset; i < offset+length; i++ {
		buf[i] = 0
	}
}
