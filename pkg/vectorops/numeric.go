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
	"encoding/binary"
	"math"

	"github.com/cuulee/duckdb/pkg/common/moerr"
	"github.com/cuulee/duckdb/pkg/container/types"
	"golang.org/x/exp/constraints"
)

// readInt decodes a signed integer of typ's width, little-endian, from
// the head of buf. POINTER reads as unsigned but is returned widened
// into an int64 since the table never stores a pointer large enough to
// overflow that range in practice.
func readInt(buf []byte, typ types.Type) int64 {
	switch typ.Oid {
	case types.T_tinyint:
		return int64(int8(buf[0]))
	case types.T_smallint:
		return int64(int16(binary.LittleEndian.Uint16(buf)))
	case types.T_integer, types.T_date:
		return int64(int32(binary.LittleEndian.Uint32(buf)))
	case types.T_bigint:
		return int64(binary.LittleEndian.Uint64(buf))
	case types.T_pointer:
		return int64(binary.LittleEndian.Uint64(buf))
	default:
		return 0
	}
}

func writeInt(buf []byte, typ types.Type, v int64) {
	switch typ.Oid {
	case types.T_tinyint:
		buf[0] = byte(int8(v))
	case types.T_smallint:
		binary.LittleEndian.PutUint16(buf, uint16(int16(v)))
	case types.T_integer, types.T_date:
		binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
	case types.T_bigint, types.T_pointer:
		binary.LittleEndian.PutUint64(buf, uint64(v))
	}
}

func readFloat(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}

func writeFloat(buf []byte, v float64) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
}

// readUint64 decodes the trailing 8-byte little-endian COUNT field.
func readUint64(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}

func writeUint64(buf []byte, v uint64) {
	binary.LittleEndian.PutUint64(buf, v)
}

func minOrdered[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOrdered[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// unsupportedType reports a scalar type the AVG gather loop (or any
// other type-dispatching primitive) does not recognize.
func unsupportedType(typ types.Type) error {
	return moerr.NewUnimplemented("unknown scalar type %s in gather", typ.Oid)
}
