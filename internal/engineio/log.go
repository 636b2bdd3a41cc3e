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

// Package engineio carries the engine's I/O boundary: leveled logging
// of search progress, grounded on the op/go-logging usage of the
// example repos' engines (each package there keeps its own
// *logging.Logger, configured once at startup through a shared
// backend/format).
package engineio

import (
	"os"

	"github.com/op/go-logging"

	"weakgo/pkg/search"
)

// Log is the package-level logger every engineio caller writes
// through. It defaults to an stderr backend at Info level; SetLevel
// changes the level.
var Log = logging.MustGetLogger("weak")

// DebugLevel is re-exported so cmd/weak does not need its own import
// of github.com/op/go-logging just to call SetLevel.
const DebugLevel = logging.DEBUG

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// SetLevel adjusts the verbosity of Log; callers (cmd/weak's flag
// parsing) use this to turn on Debug-level search tracing.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}

// ReportSearch logs one completed iterative-deepening depth, carrying
// the same information the teacher's iterativeDeepening Printf line
// did (depth, score, nodes, nps, time, best move), as a leveled
// Info line instead of unconditional stdout output.
func ReportSearch(r search.Report) {
	nps := float64(0)
	if secs := r.Time.Seconds(); secs > 0 {
		nps = float64(r.Nodes) / secs
	}

	Log.Infof("depth %d score %d nodes %d nps %.f time %d pv %s",
		r.Depth, r.Score, r.Nodes, nps, r.Time.Milliseconds(), r.Move)
}
