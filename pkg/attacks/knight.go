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

import (
	"weakgo/pkg/bitboard"
	"weakgo/pkg/square"
)

// knightAttacksFrom generates the attack bitboard of all squares a
// knight can move to from the given square.
func knightAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	b.addAttack(2, 1)
	b.addAttack(1, 2)
	b.addAttack(1, -2)
	b.addAttack(2, -1)
	b.addAttack(-1, 2)
	b.addAttack(-2, 1)
	b.addAttack(-2, -1)
	b.addAttack(-1, -2)

	return b.board
}
