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
	"github.com/cuulee/duckdb/pkg/container/types"
	"github.com/cuulee/duckdb/pkg/container/vector"
)

// Default is the concrete, in-process implementation of Primitives. It
// is stateless; its methods are value receivers so the zero value is
// ready to use.
type Default struct{}

var _ Primitives = Default{}

// Widen implements Primitives.Widen: Cast(hash, address) from the spec's
// step 2, widening a 32-bit hash to a pointer-width address.
func (Default) Widen(src []uint32) []uint64 {
	out := make([]uint64, len(src))
	for i, h := range src {
		out[i] = uint64(h)
	}
	return out
}

func (Default) Modulo(addrs []uint64, scalar uint64) {
	for i, a := range addrs {
		addrs[i] = a % scalar
	}
}

func (Default) Multiply(addrs []uint64, scalar uint64) {
	for i, a := range addrs {
		addrs[i] = a * scalar
	}
}

func (Default) Add(addrs []uint64, scalar uint64) {
	for i, a := range addrs {
		addrs[i] = a + scalar
	}
}

func selOrAll(sel []uint32, n int) []uint32 {
	if sel != nil {
		return sel
	}
	all := make([]uint32, n)
	for i := range all {
		all[i] = uint32(i)
	}
	return all
}

// ScatterSet implements Primitives.ScatterSet.
func (Default) ScatterSet(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	w := typ.Oid.Size()
	for _, row := range selOrAll(sel, len(addrs)) {
		dst := buf[addrs[row] : addrs[row]+uint64(w)]
		src := col.At(row)
		if typ.Oid == types.T_decimal {
			writeFloat(dst, readFloat(src))
		} else {
			writeInt(dst, typ, readInt(src, typ))
		}
	}
}

// ScatterSetCount implements Primitives.ScatterSetCount.
func (Default) ScatterSetCount(buf []byte, addrs []uint64, sel []uint32) {
	for _, row := range selOrAll(sel, len(addrs)) {
		writeUint64(buf[addrs[row]:addrs[row]+8], 1)
	}
}

// ScatterAddOne implements Primitives.ScatterAddOne.
func (Default) ScatterAddOne(buf []byte, addrs []uint64, sel []uint32) {
	for _, row := range selOrAll(sel, len(addrs)) {
		cur := readUint64(buf[addrs[row] : addrs[row]+8])
		writeUint64(buf[addrs[row]:addrs[row]+8], cur+1)
	}
}

// ScatterAdd implements Primitives.ScatterAdd.
func (Default) ScatterAdd(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	w := typ.Oid.Size()
	for _, row := range selOrAll(sel, len(addrs)) {
		dst := buf[addrs[row] : addrs[row]+uint64(w)]
		src := col.At(row)
		if typ.Oid == types.T_decimal {
			writeFloat(dst, readFloat(dst)+readFloat(src))
		} else {
			writeInt(dst, typ, readInt(dst, typ)+readInt(src, typ))
		}
	}
}

// ScatterMin implements Primitives.ScatterMin.
func (Default) ScatterMin(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	w := typ.Oid.Size()
	for _, row := range selOrAll(sel, len(addrs)) {
		dst := buf[addrs[row] : addrs[row]+uint64(w)]
		src := col.At(row)
		if typ.Oid == types.T_decimal {
			writeFloat(dst, minOrdered(readFloat(dst), readFloat(src)))
		} else {
			writeInt(dst, typ, minOrdered(readInt(dst, typ), readInt(src, typ)))
		}
	}
}

// ScatterMax implements Primitives.ScatterMax.
func (Default) ScatterMax(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	w := typ.Oid.Size()
	for _, row := range selOrAll(sel, len(addrs)) {
		dst := buf[addrs[row] : addrs[row]+uint64(w)]
		src := col.At(row)
		if typ.Oid == types.T_decimal {
			writeFloat(dst, maxOrdered(readFloat(dst), readFloat(src)))
		} else {
			writeInt(dst, typ, maxOrdered(readInt(dst, typ), readInt(src, typ)))
		}
	}
}

// GatherSet implements Primitives.GatherSet.
func (Default) GatherSet(buf []byte, addrs []uint64, typ types.Type, out *vector.Vector) {
	w := typ.Oid.Size()
	for i, addr := range addrs {
		src := buf[addr : addr+uint64(w)]
		dst := out.At(uint32(i))
		copy(dst, src)
	}
}

// GatherAverage implements Primitives.GatherAverage: SPEC_FULL.md §4.4
// step 3, dividing the stored sum by the per-slot COUNT in one pass.
// Integer types truncate per Go's integer division; DECIMAL divides as
// IEEE-754 floats.
func (Default) GatherAverage(buf []byte, addrs []uint64, typ types.Type, countOffset uint64, out *vector.Vector) error {
	switch typ.Oid {
	case types.T_tinyint, types.T_smallint, types.T_integer, types.T_bigint, types.T_pointer, types.T_date:
		for i, addr := range addrs {
			sum := readInt(buf[addr:addr+uint64(typ.Oid.Size())], typ)
			count := readUint64(buf[addr+countOffset : addr+countOffset+8])
			writeInt(out.At(uint32(i)), typ, sum/int64(count))
		}
		return nil
	case types.T_decimal:
		for i, addr := range addrs {
			sum := readFloat(buf[addr : addr+8])
			count := readUint64(buf[addr+countOffset : addr+countOffset+8])
			writeFloat(out.At(uint32(i)), sum/float64(count))
		}
		return nil
	default:
		return unsupportedType(typ)
	}
}
