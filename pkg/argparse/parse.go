// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"os"

	"tailscale.com/util/mak"
)

// ParseArgs parses the process arguments, excluding the program name.
func (p *Parser) ParseArgs() (Results, error) {
	return p.Parse(os.Args[1:])
}

// Parse matches tokens against the registered arguments.
//
// Optional flags are resolved left to right, then the remaining tokens are
// distributed over the positional arguments in declaration order. Defaults
// are seeded for destinations that collected nothing.
//
// Parse returns ErrHelp or ErrVersion after writing the help text or version
// to the parser output. Any other failure is an *Error. The first call
// freezes the Parser; later registration attempts fail.
func (p *Parser) Parse(tokens []string) (Results, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.frozen.Store(true)

	s := newScanner(p, tokens)
	if err := s.run(); err != nil {
		return nil, err
	}
	results := s.results

	optionals := p.specs(Optional)
	applyDefaults(optionals, &results)
	for _, a := range optionals {
		if a.required && results.Get(a.dest).Empty() {
			return nil, newError(ComponentParser, ErrMissingOptional, "missing required optional argument: %s", a.flagsString())
		}
	}

	positionals := p.specs(Positional)
	if err := distribute(positionals, s.queue, &results); err != nil {
		return nil, err
	}
	applyDefaults(positionals, &results)

	if results == nil {
		results = Results{}
	}
	return results, nil
}

func applyDefaults(specs []*Arg, results *Results) {
	for _, a := range specs {
		if a.def == "" || !results.Get(a.dest).Empty() {
			continue
		}
		mak.Set(results, a.dest, NewResult(a.def))
	}
}
