// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the engine's tunable limits and evaluator
// weights from an optional TOML file, falling back to hardcoded
// defaults when none is given.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Search holds the search limits a TOML file may set. Only Time is
// handed to IterSearch; Depth and Nodes are loaded but no search code
// reads them.
type Search struct {
	// Depth is a configured maximum depth; it does not limit
	// IterSearch, which deepens until Time runs out.
	Depth int `toml:"depth"`

	// Nodes is a configured node cap; it does not limit Search.
	Nodes uint64 `toml:"nodes"`

	// Time is the wall-clock budget handed to IterSearch.
	Time time.Duration `toml:"time"`
}

// Eval holds the evaluator's material weights, keyed the same way as
// pkg/eval's internal table, so a TOML file can retune the engine
// without a rebuild.
type Eval struct {
	Pawn   int `toml:"pawn"`
	Knight int `toml:"knight"`
	Bishop int `toml:"bishop"`
	Rook   int `toml:"rook"`
	Queen  int `toml:"queen"`
}

// Config is the top-level document loaded from a TOML file.
type Config struct {
	Search Search `toml:"search"`
	Eval   Eval   `toml:"eval"`
}

// Default is used whenever no TOML file is given, matching
// original_source/search.c's and eval.c's hardcoded constants.
var Default = Config{
	Search: Search{
		Depth: 6,
		Nodes: 0,
		Time:  5 * time.Second,
	},
	Eval: Eval{
		Pawn:   100,
		Knight: 350,
		Bishop: 350,
		Rook:   500,
		Queen:  900,
	},
}

// Load reads a TOML config file at path and overlays it on top of
// Default: fields absent from the file keep their default value. An
// empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
