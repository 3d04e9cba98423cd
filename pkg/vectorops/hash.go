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

package vectorops

import (
	"math/bits"
	"math/rand"

	"github.com/cuulee/duckdb/pkg/container/vector"
)

// hashkey is the process-wide seed, matching the randomized-seed design
// of the upstream container/hashtable package: hashing is deterministic
// within one process lifetime (required by SPEC_FULL.md §4.1: repeated
// ingests of the same keys within one run must combine identically) but
// is not required to be stable across restarts.
var hashkey uint64

func init() {
	hashkey = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// hashBytes is a wyhash-derived byte mixer, the same family of hash the
// upstream container/hashtable package uses for its crc32/wyhash paths,
// reimplemented here in portable Go (no assembly primitive is assumed
// present).
func hashBytes(data []byte) uint32 {
	seed := hashkey ^ m1
	var a uint64
	for _, b := range data {
		a = mix(a^uint64(b), seed^m2)
	}
	full := mix(m1^uint64(len(data)), a^seed)
	return uint32(full ^ (full >> 32))
}

// Hash implements Primitives.Hash.
func (Default) Hash(col *vector.Vector) []uint32 {
	rows := col.Rows()
	out := make([]uint32, len(rows))
	for i, r := range rows {
		out[i] = hashBytes(col.At(r))
	}
	return out
}

// CombineHash implements Primitives.CombineHash. The fold is
// deterministic: the same columns combined in the same order always
// give the same hashes. It is not symmetric in column order, since the
// running hash and the column hash are xored with different constants
// before mixing, so combining the columns in another order generally
// gives different hashes.
func (Default) CombineHash(hashes []uint32, col *vector.Vector) {
	rows := col.Rows()
	for i, r := range rows {
		if i >= len(hashes) {
			break
		}
		h := hashBytes(col.At(r))
		hashes[i] = uint32(mix(uint64(hashes[i])^m1, uint64(h)^m2))
	}
}
