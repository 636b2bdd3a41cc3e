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

package main

import (
	"flag"
	"fmt"
	"os"

	"weakgo/internal/engineio"
	"weakgo/pkg/config"
	"weakgo/pkg/eval"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file overriding search/eval defaults")
	debug := flag.Bool("debug", false, "log search trace at Debug level")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "weak: unexpected positional arguments")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	eval.ApplyWeights(cfg.Eval)

	if *debug {
		engineio.SetLevel(engineio.DebugLevel)
	}

	if err := newREPL(cfg).run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
