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

package config

import (
	hll "github.com/axiomhq/hyperloglog"
)

// EstimateCapacity sketches a sample of canonicalized grouping-key byte
// slices and recommends an initial_capacity comfortably above the
// estimated distinct-group cardinality, addressing SPEC_FULL.md §9's
// "load-factor guarantee" design note: the spec's core never resizes a
// non-empty table, so callers are expected to size conservatively up
// front.
func EstimateCapacity(sampleKeys [][]byte, loadFactorCeiling float64) uint64 {
	sk := hll.New()
	for _, key := range sampleKeys {
		sk.Insert(key)
	}
	distinct := sk.Estimate()
	if loadFactorCeiling <= 0 || loadFactorCeiling >= 1 {
		loadFactorCeiling = DefaultTableConfig().LoadFactorCeiling
	}
	want := uint64(float64(distinct) / loadFactorCeiling)
	return nextPowerOfTwo(want)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n < 16 {
		return 16
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
