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

package agg

import (
	"github.com/cuulee/duckdb/pkg/common/moerr"
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/cuulee/duckdb/pkg/container/vector"
	"github.com/cuulee/duckdb/pkg/vectorops"
)

// Funcs holds the two actions Aggregate Update dispatches for one
// non-COUNT_STAR aggregate: the initial-set action for new_entries and
// the update action for updated_entries (SPEC_FULL.md §4.3).
type Funcs struct {
	InitialSet func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)
	Update     func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)
}

// Dispatch builds the function-pointer table for kinds, keyed by Kind.
// CountStar has no entry: it is skipped by the per-aggregate payload
// loop and handled solely via the trailing COUNT field.
func Dispatch(kinds []Kind) (map[Kind]Funcs, error) {
	table := make(map[Kind]Funcs, len(kinds))
	for _, k := range kinds {
		if _, ok := table[k]; ok {
			continue
		}
		switch k {
		case CountStar:
			continue
		case Count:
			table[k] = Funcs{
				InitialSet: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, _ *vector.Vector, _ types.Type) {
					ops.ScatterSetCount(buf, addrs, sel)
				},
				Update: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, _ *vector.Vector, _ types.Type) {
					ops.ScatterAddOne(buf, addrs, sel)
				},
			}
		case Sum, Avg:
			table[k] = Funcs{
				InitialSet: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterSet(buf, addrs, sel, col, typ)
				},
				Update: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterAdd(buf, addrs, sel, col, typ)
				},
			}
		case Min:
			table[k] = Funcs{
				InitialSet: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterSet(buf, addrs, sel, col, typ)
				},
				Update: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterMin(buf, addrs, sel, col, typ)
				},
			}
		case Max:
			table[k] = Funcs{
				InitialSet: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterSet(buf, addrs, sel, col, typ)
				},
				Update: func(ops vectorops.Primitives, buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
					ops.ScatterMax(buf, addrs, sel, col, typ)
				},
			}
		default:
			return nil, moerr.NewUnimplemented("unknown aggregate kind %d", k)
		}
	}
	return table, nil
}
