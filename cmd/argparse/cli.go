// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/shayne/yargs"
)

type globalFlagsParsed struct {
	Color string `flag:"color" help:"Colorize output (auto|always|never)"`
	Quiet bool   `flag:"quiet" short:"q" help:"Only report errors"`
}

type parseFlagsParsed struct {
	Typed bool `flag:"typed" help:"Convert values using each argument's type"`
}

type initFlagsParsed struct {
	Format string `flag:"format" help:"Definition format (toml|yaml)"`
	Force  bool   `flag:"force" help:"Overwrite an existing file"`
}

type checkFlagsParsed struct {
	Jobs int `flag:"jobs" short:"j" help:"Cases to run at once (default GOMAXPROCS)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// splitPassthrough cuts args at the first "--". Everything after it belongs
// to the parser under test and never reaches yargs, so a "-h" there is not
// taken as a request for our own help.
func splitPassthrough(args []string) (own, rest []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "argparse",
			Description: "Build, inspect and test declarative argument parsers",
			Examples: []string{
				"argparse parse cp.toml -- -f a b dest",
				"argparse usage cp.toml",
				"argparse check testdata/*.yaml",
				"argparse demo -- -r --debug src",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"parse": {
				Name:        "parse",
				Description: "Parse tokens after -- with a definition and print the results",
				Usage:       "[DEF] [--typed] [-- TOKENS...]",
				Examples:    []string{"argparse parse -- a b", "argparse parse cp.yaml --typed -- --mode 0755 a b"},
			},
			"usage": {
				Name:        "usage",
				Description: "Print the help text of a definition",
				Usage:       "[DEF]",
			},
			"check": {
				Name:        "check",
				Description: "Run scenario suites and report each case",
				Usage:       "SUITE [SUITE...] [--jobs=N]",
				Examples:    []string{"argparse check pkg/argcheck/testdata/cp.yaml"},
			},
			"demo": {
				Name:        "demo",
				Description: "Parse tokens after -- with the built-in hacky definition",
				Usage:       "[-- TOKENS...]",
				Aliases:     []string{"hacky"},
			},
			"init": {
				Name:        "init",
				Description: "Write the hacky definition as a starting point",
				Usage:       "[PATH] [--format=toml|yaml] [--force]",
				Examples:    []string{"argparse init", "argparse init parser.yaml"},
			},
		},
	}
}
