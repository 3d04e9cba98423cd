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

// Package vectorops is the vector-primitive library the hash table core
// treats as an external collaborator (SPEC_FULL.md §6): batch hashing,
// address arithmetic, and the Scatter/Gather memory primitives. The
// table depends on the Primitives interface, not on this package's
// concrete implementation, so tests can substitute MockPrimitives.
package vectorops

import (
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/cuulee/duckdb/pkg/container/vector"
)

// Primitives is the full contract SPEC_FULL.md §6 names. Addresses are
// always byte offsets into a caller-owned buffer, never raw pointers
// (SPEC_FULL.md §9, "address-as-integer arithmetic"): every method that
// resolves an address to memory takes the target buffer explicitly.
type Primitives interface {
	// Hash computes a 32-bit deterministic hash per row of col.
	Hash(col *vector.Vector) []uint32

	// CombineHash folds col's per-row hashes into the running hashes in
	// place, order-independent in the sense required by SPEC_FULL.md
	// §4.1: combining the same set of column hashes in the same column
	// order always yields the same result.
	CombineHash(hashes []uint32, col *vector.Vector)

	// Widen casts a 32-bit hash vector to pointer-width addresses.
	Widen(src []uint32) []uint64

	// Modulo, Multiply and Add are element-wise arithmetic over an
	// address vector, selection-vector free (the address vector always
	// covers every row of the current batch at the point they're
	// called).
	Modulo(addrs []uint64, scalar uint64)
	Multiply(addrs []uint64, scalar uint64)
	Add(addrs []uint64, scalar uint64)

	// ScatterSet writes col's values, restricted to sel, to buf at the
	// matching addresses. Used for the SUM/AVG/MIN/MAX initial-set case.
	ScatterSet(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)

	// ScatterSetCount initializes the 8-byte accumulator at each
	// selected address to 1, for the COUNT initial-set case.
	ScatterSetCount(buf []byte, addrs []uint64, sel []uint32)

	// ScatterAddOne adds 1 to the 8-byte unsigned counter at each
	// selected address. Used both for the COUNT update case and for
	// the unconditional trailing-COUNT increment (sel == nil there).
	ScatterAddOne(buf []byte, addrs []uint64, sel []uint32)

	// ScatterAdd adds col's values, restricted to sel, into the
	// accumulator at the matching addresses (SUM/AVG update case).
	ScatterAdd(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)

	// ScatterMin/ScatterMax replace the accumulator with
	// min(accumulator, value) / max(accumulator, value).
	ScatterMin(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)
	ScatterMax(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type)

	// GatherSet reads a typ-wide value from buf at each address into
	// out, in address order.
	GatherSet(buf []byte, addrs []uint64, typ types.Type, out *vector.Vector)

	// GatherAverage reads the sum at each address and the count at
	// countOffset bytes further along, and writes sum/count into out
	// using typ's division semantics (SPEC_FULL.md §4.3).
	GatherAverage(buf []byte, addrs []uint64, typ types.Type, countOffset uint64, out *vector.Vector) error
}
