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

// Package vector holds Vector, the single-column carrier every vector
// primitive in pkg/vectorops reads from and writes to.
package vector

import "github.com/cuulee/duckdb/pkg/container/types"

// Vector is one fixed-width column: a contiguous byte buffer of Count
// (or len(Sel), when Sel is set) elements of Typ, plus an optional
// selection vector restricting which logical rows a primitive touches.
type Vector struct {
	Typ   types.Type
	Data  []byte
	Count int
	Sel   []uint32 // nil means "all Count rows, in order"
}

// New allocates a Vector with room for n elements of typ.
func New(typ types.Type, n int) *Vector {
	return &Vector{
		Typ:   typ,
		Data:  make([]byte, typ.Size()*n),
		Count: n,
	}
}

// Reset clears Count and Sel without releasing the backing buffer, so a
// Vector reused across ingest batches doesn't reallocate every call.
func (v *Vector) Reset() {
	v.Count = 0
	v.Sel = nil
}

// Rows returns the logical row indices this Vector currently addresses:
// 0..Count-1 when unrestricted, or Sel verbatim when a selection vector
// is set.
func (v *Vector) Rows() []uint32 {
	if v.Sel != nil {
		return v.Sel
	}
	rows := make([]uint32, v.Count)
	for i := range rows {
		rows[i] = uint32(i)
	}
	return rows
}

// At returns the byte slice holding the value for logical row i.
func (v *Vector) At(i uint32) []byte {
	w := v.Typ.Size()
	off := int(i) * w
	return v.Data[off : off+w]
}
