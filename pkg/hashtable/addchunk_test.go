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
	"testing"

	"github.com/cuulee/duckdb/pkg/agg"
	"github.com/cuulee/duckdb/pkg/common/moerr"
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/stretchr/testify/require"
)

func newSumTable(t *testing.T, capacity uint64) *Table {
	t.Helper()
	tbl, err := New(Config{
		InitialCapacity: capacity,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.NoError(t, err)
	return tbl
}

func TestAddChunkSkipsEmptyInput(t *testing.T) {
	tbl := newSumTable(t, 16)
	require.NoError(t, tbl.AddChunk(chunkOf(bigintVec()), chunkOf(bigintVec())))
	require.Zero(t, tbl.Entries())
}

func TestAddChunkRejectsParallelConfig(t *testing.T) {
	tbl, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
		Parallel:        true,
	})
	require.NoError(t, err)

	err = tbl.AddChunk(chunkOf(bigintVec(1)), chunkOf(bigintVec(10)))
	require.Error(t, err)
	var merr *moerr.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, moerr.ErrUnimplemented, merr.Code)
}

func TestAddChunkRejectsRowCountMismatch(t *testing.T) {
	tbl := newSumTable(t, 16)
	err := tbl.AddChunk(chunkOf(bigintVec(1, 2)), chunkOf(bigintVec(10)))
	require.Error(t, err)
	var merr *moerr.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, moerr.ErrInvariantViolation, merr.Code)
}

// S3: two distinct group keys whose raw hash collides into the same
// slot force a chain of length 1, landing the second key at the next
// slot over (SPEC_FULL.md §4.2's linear-probe rule).
func TestAddChunkFollowsChainOnCollision(t *testing.T) {
	tbl := newSumTable(t, 4)
	tbl.ops = fixedHashOps{hashes: []uint32{0, 4}} // both %4 == 0

	groups := chunkOf(bigintVec(100, 200))
	payload := chunkOf(bigintVec(1, 2))
	require.NoError(t, tbl.AddChunk(groups, payload))

	require.EqualValues(t, 2, tbl.Entries())
	require.EqualValues(t, 1, tbl.MaxChain())

	base0 := tbl.layout.slotBase(0)
	base1 := tbl.layout.slotBase(1)
	require.Equal(t, byte(flagFull), tbl.data[tbl.layout.flagOffset(base0)])
	require.Equal(t, byte(flagFull), tbl.data[tbl.layout.flagOffset(base1)])
}

// S4: a chain that reaches the last slot wraps back around to slot 0
// rather than running off the end of the buffer.
func TestAddChunkWrapsAroundTheEndOfTheTable(t *testing.T) {
	tbl := newSumTable(t, 4)
	tbl.ops = fixedHashOps{hashes: []uint32{3, 3}}

	groups := chunkOf(bigintVec(7, 8))
	payload := chunkOf(bigintVec(70, 80))
	require.NoError(t, tbl.AddChunk(groups, payload))

	require.EqualValues(t, 2, tbl.Entries())
	require.EqualValues(t, 1, tbl.MaxChain())

	base3 := tbl.layout.slotBase(3)
	base0 := tbl.layout.slotBase(0)
	require.Equal(t, byte(flagFull), tbl.data[tbl.layout.flagOffset(base3)])
	require.Equal(t, byte(flagFull), tbl.data[tbl.layout.flagOffset(base0)])
}

// Every row hashing to the same slot with a distinct group key must
// eventually report CapacityExhausted once the chain has visited every
// slot in the table without finding room (the probe-bound invariant).
func TestAddChunkReportsCapacityExhausted(t *testing.T) {
	tbl := newSumTable(t, 4)
	tbl.ops = fixedHashOps{hashes: []uint32{0, 0, 0, 0, 0}}

	groups := chunkOf(bigintVec(1, 2, 3, 4, 5))
	payload := chunkOf(bigintVec(1, 1, 1, 1, 1))

	err := tbl.AddChunk(groups, payload)
	require.Error(t, err)
	var merr *moerr.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, moerr.ErrCapacityExhausted, merr.Code)
}

// A row revisiting a group key already present updates in place rather
// than allocating a new slot: entries stays 1 and the accumulator
// reflects both rows.
func TestAddChunkUpdatesAnExistingGroupInPlace(t *testing.T) {
	tbl := newSumTable(t, 16)
	require.NoError(t, tbl.AddChunk(chunkOf(bigintVec(9)), chunkOf(bigintVec(3))))
	require.NoError(t, tbl.AddChunk(chunkOf(bigintVec(9)), chunkOf(bigintVec(4))))
	require.EqualValues(t, 1, tbl.Entries())
}
