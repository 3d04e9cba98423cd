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
	"encoding/binary"

	"github.com/cuulee/duckdb/pkg/container/batch"
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/cuulee/duckdb/pkg/container/vector"
	"github.com/cuulee/duckdb/pkg/vectorops"
)

func bigintVec(values ...int64) *vector.Vector {
	v := vector.New(types.New(types.T_bigint), len(values))
	for i, val := range values {
		binary.LittleEndian.PutUint64(v.At(uint32(i)), uint64(val))
	}
	return v
}

func bigintOut(n int) *vector.Vector {
	return vector.New(types.New(types.T_bigint), n)
}

func chunkOf(cols ...*vector.Vector) *batch.DataChunk {
	return batch.New(cols...)
}

// fixedHashOps wraps vectorops.Default, overriding only Hash so tests
// can place rows at chosen slot indices without reimplementing Scatter
// and Gather. The rest of the Primitives contract is the real
// byte-arithmetic implementation, so assertions about stored values
// stay meaningful.
type fixedHashOps struct {
	vectorops.Default
	hashes []uint32
}

func (f fixedHashOps) Hash(col *vector.Vector) []uint32 {
	out := make([]uint32, len(f.hashes))
	copy(out, f.hashes)
	return out
}

func readInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}
