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

// Package batch holds DataChunk, the columnar batch abstraction the
// hash table's external interface is specified against (SPEC_FULL.md
// §6). It is the Go analogue of the upstream container/batch.Batch,
// trimmed to the shape the table core actually consumes.
package batch

import "github.com/cuulee/duckdb/pkg/container/vector"

// DataChunk is a columnar batch: one Vector per column, all sharing the
// same logical row count.
type DataChunk struct {
	Columns []*vector.Vector
	Count   int
}

// New builds a DataChunk over the given columns, taking its Count from
// the first column (0 when there are no columns).
func New(columns ...*vector.Vector) *DataChunk {
	count := 0
	if len(columns) > 0 {
		count = columns[0].Count
	}
	return &DataChunk{Columns: columns, Count: count}
}

// ColumnCount reports the number of columns, matching the spec's
// column_count field name.
func (c *DataChunk) ColumnCount() int {
	return len(c.Columns)
}

// Reset zeroes Count and every column's Count/Sel without releasing
// buffers, mirroring DataChunk::Reset in the original source.
func (c *DataChunk) Reset() {
	c.Count = 0
	for _, col := range c.Columns {
		col.Reset()
	}
}

// MaxRows reports how many rows this chunk's column buffers were
// allocated to hold, derived from the first column's backing buffer
// rather than tracked separately. Scan uses it as the output batch
// size ceiling (SPEC_FULL.md §4.4's "result.maximum_size").
func (c *DataChunk) MaxRows() int {
	if len(c.Columns) == 0 {
		return 0
	}
	w := c.Columns[0].Typ.Size()
	if w == 0 {
		return 0
	}
	return len(c.Columns[0].Data) / w
}
