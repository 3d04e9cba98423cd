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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchSkipsCountStar(t *testing.T) {
	table, err := Dispatch([]Kind{CountStar, Sum, Min, Max, Count, Avg})
	require.NoError(t, err)
	_, ok := table[CountStar]
	require.False(t, ok)
	require.Len(t, table, 5)
}

func TestDispatchRejectsUnknownKind(t *testing.T) {
	_, err := Dispatch([]Kind{Kind(200)})
	require.Error(t, err)
}
