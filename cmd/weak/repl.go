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

// Package main implements the interactive front-end spec.md §6 treats
// as external to the core: a REPL of board/moves/move/analysis/perft/
// perftfull/fen/quit commands, reading lines from stdin and printing
// to an unbuffered stdout, grounded on the teacher's pkg/uci.Client
// read-eval-print loop (bufio.NewReader.ReadString('\n') plus
// strings.Fields dispatch), but serving this spec's own command set
// instead of the UCI protocol.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"weakgo/internal/engineio"
	"weakgo/pkg/config"
	"weakgo/pkg/game"
	"weakgo/pkg/move"
	"weakgo/pkg/search"
)

// errQuit unwinds the REPL loop cleanly on the quit command.
var errQuit = errors.New("quit")

// repl owns the single Game the session operates on and the search
// limits loaded from config.
type repl struct {
	game *game.Game
	cfg  config.Config

	in  *bufio.Reader
	out io.Writer
}

func newREPL(cfg config.Config) *repl {
	return &repl{
		game: game.NewGame(),
		cfg:  cfg,
		in:   bufio.NewReader(os.Stdin),
		out:  os.Stdout,
	}
}

// run reads one command per line until quit or EOF, returning nil on
// a clean quit and a non-nil error for anything that should exit 1.
func (r *repl) run() error {
	for {
		line, err := r.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch err := r.dispatch(args[0], args[1:]); {
		case err == nil:
		case err == errQuit:
			return nil
		default:
			fmt.Fprintln(r.out, err)
		}
	}
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "board":
		return r.cmdBoard()
	case "moves":
		return r.cmdMoves()
	case "move":
		return r.cmdMove(args)
	case "analysis":
		return r.cmdAnalysis()
	case "perft":
		return r.cmdPerft(args)
	case "perftfull":
		return r.cmdPerftFull(args)
	case "fen":
		return r.cmdFEN(args)
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("%s: unknown command", cmd)
	}
}

func (r *repl) cmdBoard() error {
	fmt.Fprint(r.out, renderBoard(r.game))
	fmt.Fprintln(r.out, "Fen:", r.game.FEN())
	return nil
}

func (r *repl) cmdMoves() error {
	var buf move.List
	game.AllMoves(&buf, r.game)

	for i := 0; i < buf.Len(); i++ {
		fmt.Fprintln(r.out, formatMove(buf.At(i)))
	}
	return nil
}

func (r *repl) cmdMove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("move: expected exactly one argument")
	}

	m, ok := findMove(r.game, args[0])
	if !ok {
		return fmt.Errorf("move: %q is not a legal move", args[0])
	}
	r.game.DoMove(m)

	reply := r.engineMove()
	if reply != move.Null {
		fmt.Fprintln(r.out, formatMove(reply))
	} else {
		fmt.Fprintln(r.out, "no reply: game over")
	}
	return nil
}

func (r *repl) cmdAnalysis() error {
	reply := r.engineMove()
	if reply == move.Null {
		return fmt.Errorf("analysis: no legal move in the current position")
	}
	fmt.Fprintln(r.out, formatMove(reply))
	return nil
}

// engineMove runs IterSearch within the configured time budget and
// plays the result, returning move.Null if the position is already
// terminal.
func (r *repl) engineMove() move.Move {
	if r.game.Checkmated() || r.game.Stalemated() {
		return move.Null
	}

	ctx := search.NewContext(r.game)
	best := search.IterSearch(ctx, r.cfg.Search.Time, engineio.ReportSearch)
	r.game.DoMove(best)
	return best
}

func (r *repl) cmdPerft(args []string) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}

	start := time.Now()
	count := game.Perft(r.game, depth)
	fmt.Fprintf(r.out, "perft(%d) = %d (%s)\n", depth, count, time.Since(start))
	return nil
}

func (r *repl) cmdPerftFull(args []string) error {
	depth, err := parseDepth(args)
	if err != nil {
		return err
	}

	stats := game.PerftFull(r.game, depth)
	fmt.Fprintf(r.out, "nodes %d captures %d ep %d castles %d promotions %d checks %d mates %d\n",
		stats.Count, stats.Captures, stats.EnPassants, stats.Castles,
		stats.Promotions, stats.Checks, stats.Checkmates)
	return nil
}

func (r *repl) cmdFEN(args []string) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("fen: expected a FEN string")
	}
	// NewGameFromFEN panics on a malformed FEN; report that as an
	// error and keep the current game.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("fen: %v", p)
		}
	}()
	r.game = game.NewGameFromFEN(strings.Join(args, " "))
	return nil
}

// parseDepth validates a single positive-integer depth argument,
// spec.md §7's "bad perft depth" user-input error.
func parseDepth(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("perft: expected exactly one depth argument")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth <= 0 {
		return 0, fmt.Errorf("perft: %q is not a positive depth", args[0])
	}
	return depth, nil
}

// findMove locates the legal move in g matching alg, either the long
// algebraic <from><to>[promotion] engine form or spec.md's external
// notation, so users can type either "e2e4"/"e7e8q" or "O-O".
func findMove(g *game.Game, alg string) (move.Move, bool) {
	var buf move.List
	game.AllMoves(&buf, g)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.String() == alg || formatMove(m) == alg {
			return m, true
		}
	}
	return move.Null, false
}
