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

package square

// Diagonal indexes one of the 15 a1-h8-parallel diagonals of the board.
// Index 7 is the main diagonal (a1-h8); Square.Diagonal computes it as
// rank - file + 7.
type Diagonal int

// DiagonalN is the number of diagonals in one direction.
const DiagonalN = 15

// AntiDiagonal indexes one of the 15 a8-h1-parallel diagonals of the
// board. Index 7 is the main anti-diagonal (a8-h1); Square.AntiDiagonal
// computes it as rank + file.
type AntiDiagonal int
