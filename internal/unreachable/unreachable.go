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

// Package unreachable wraps panic for core invariant violations: states
// that a correct move generator and a valid starting position should
// never produce (an unrecognised move type, a capture of a missing
// piece, a search root with no legal move). These are programming bugs,
// not user-input errors, so the core never tries to recover from them.
package unreachable

import "fmt"

// Unreachable formats msg with args and panics with the result.
// pkg/game and pkg/search fail fast through it on an invariant
// violation; the lower-level packages (pkg/piece, pkg/square,
// pkg/move, pkg/attacks) call panic directly.
func Unreachable(msg string, args ...any) {
	panic(fmt.Sprintf("unreachable: "+msg, args...))
}
