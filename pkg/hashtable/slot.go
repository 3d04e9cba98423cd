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

// Package hashtable is the core: a linear-probing, open-addressed hash
// table of fixed-width byte slots, used to evaluate GROUP BY with
// COUNT/COUNT(*)/SUM/AVG/MIN/MAX. It is grounded on the upstream
// container/hashtable package's cell-based hash maps (Int64HashMap,
// StringHashMap) generalized from a fixed Key/Mapped cell to an
// arbitrary-width slot carrying grouping keys and aggregate state, per
// SPEC_FULL.md §3.
package hashtable

const (
	flagEmpty byte = 0
	flagFull  byte = 1
	flagSize       = 1
	countSize      = 8
)

// slotLayout is the typed view over one slot's byte offsets, computed
// once at construction from group_width and payload_width. The offset of
// each aggregate field inside PAYLOAD is kept on Table (payloadOffsets),
// and the probe and scan loops step across fields and slots by adding
// widths to the offsets this view returns.
type slotLayout struct {
	groupWidth   uint64
	payloadWidth uint64
	tupleSize    uint64
}

func newSlotLayout(groupWidth, payloadWidth uint64) slotLayout {
	return slotLayout{
		groupWidth:   groupWidth,
		payloadWidth: payloadWidth,
		tupleSize:    flagSize + groupWidth + payloadWidth + countSize,
	}
}

func (l slotLayout) flagOffset(slotBase uint64) uint64 {
	return slotBase
}

func (l slotLayout) groupOffset(slotBase uint64) uint64 {
	return slotBase + flagSize
}

func (l slotLayout) payloadOffset(slotBase uint64) uint64 {
	return slotBase + flagSize + l.groupWidth
}

func (l slotLayout) countOffset(slotBase uint64) uint64 {
	return slotBase + flagSize + l.groupWidth + l.payloadWidth
}

// slotBase returns the byte offset of the slot at index idx.
func (l slotLayout) slotBase(idx uint64) uint64 {
	return idx * l.tupleSize
}
