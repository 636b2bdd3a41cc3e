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

package attacks

import "weakgo/pkg/attacks/magic"

// MaxRookBlockerSets and MaxBishopBlockerSets bound the size of each
// square's move table: a rook sees at most 12 relevant blocker bits
// (2^12 = 4096 permutations), a bishop at most 9 (2^9 = 512).
const (
	MaxRookBlockerSets   = 4096
	MaxBishopBlockerSets = 512
)

// RookTable and BishopTable are the magic hash tables populated by
// init in attack.go. Queen attacks reuse both (see queen.go).
var (
	RookTable   = magic.Table{MaxMaskN: MaxRookBlockerSets}
	BishopTable = magic.Table{MaxMaskN: MaxBishopBlockerSets}
)
