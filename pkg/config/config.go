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

// Package config loads the hash table's construction parameters,
// following the TOML-based configuration pattern of cmd/db-server and
// pkg/frontend/util.go in the upstream tree.
package config

import "github.com/BurntSushi/toml"

// TableConfig is the TOML-loadable subset of SPEC_FULL.md §6's
// construction parameters that a deployment typically tunes without a
// code change: everything else (group_width, payload_width,
// aggregate_kinds) is derived from the query plan at construction time.
type TableConfig struct {
	InitialCapacity   uint64  `toml:"initial_capacity"`
	LoadFactorCeiling float64 `toml:"load_factor_ceiling"`
	Parallel          bool    `toml:"parallel"`
}

// DefaultTableConfig matches the spec's guidance: size above the
// expected distinct-group count, and never request parallel ingest
// since it is unimplemented (SPEC_FULL.md §5).
func DefaultTableConfig() TableConfig {
	return TableConfig{
		InitialCapacity:   1024,
		LoadFactorCeiling: 0.75,
		Parallel:          false,
	}
}

// Load reads a TableConfig from a TOML file, filling in defaults for any
// field the file omits.
func Load(path string) (TableConfig, error) {
	cfg := DefaultTableConfig()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
