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

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeOfEachFixedWidthType(t *testing.T) {
	cases := map[T]int{
		T_tinyint:  1,
		T_smallint: 2,
		T_integer:  4,
		T_date:     4,
		T_bigint:   8,
		T_decimal:  8,
		T_pointer:  8,
	}
	for oid, want := range cases {
		require.Equal(t, want, oid.Size(), oid.String())
	}
}
