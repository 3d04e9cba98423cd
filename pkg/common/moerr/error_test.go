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

package moerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := NewCapacityExhausted("probe wrapped after %d hops", 16)
	require.Equal(t, "capacity exhausted: probe wrapped after 16 hops", err.Error())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := NewUnimplemented("")
	err := NewUnimplemented("parallel ingest")
	require.True(t, errors.Is(err, sentinel))

	other := NewInvariantViolation("count read as 0")
	require.False(t, errors.Is(err, other))
}
