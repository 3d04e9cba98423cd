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

func TestNewRejectsAggregateTypeCountMismatch(t *testing.T) {
	_, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum, agg.Min},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.Error(t, err)
	var merr *moerr.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, moerr.ErrInvariantViolation, merr.Code)
}

func TestNewRejectsPayloadWidthMismatch(t *testing.T) {
	_, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    99,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.Error(t, err)
}

func TestNewRejectsUnknownAggregateKind(t *testing.T) {
	_, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Kind(200)},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.Error(t, err)
}

func TestNewDefaultsCapacityWhenZero(t *testing.T) {
	tbl, err := New(Config{
		GroupWidth:     8,
		PayloadWidth:   8,
		AggregateKinds: []agg.Kind{agg.Sum},
		AggregateTypes: []types.Type{types.New(types.T_bigint)},
	})
	require.NoError(t, err)
	require.EqualValues(t, 16, tbl.Capacity())
	require.Zero(t, tbl.Entries())
	require.Zero(t, tbl.MaxChain())
}

func TestGrowRejectsNonEmptyTable(t *testing.T) {
	tbl, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.NoError(t, err)

	groups := chunkOf(bigintVec(1))
	payload := chunkOf(bigintVec(10))
	require.NoError(t, tbl.AddChunk(groups, payload))

	require.Error(t, tbl.Grow(32))
}

func TestGrowRejectsDownsize(t *testing.T) {
	tbl, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.NoError(t, err)
	require.Error(t, tbl.Grow(8))
}

func TestGrowExpandsAnEmptyTable(t *testing.T) {
	tbl, err := New(Config{
		InitialCapacity: 16,
		GroupWidth:      8,
		PayloadWidth:    8,
		AggregateKinds:  []agg.Kind{agg.Sum},
		AggregateTypes:  []types.Type{types.New(types.T_bigint)},
	})
	require.NoError(t, err)
	require.NoError(t, tbl.Grow(64))
	require.EqualValues(t, 64, tbl.Capacity())
}
