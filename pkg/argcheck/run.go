// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argcheck

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/yeetrun/argparse/pkg/argparse"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one case.
type Outcome struct {
	Name   string // "suite/case", or the case name for unnamed suites
	Case   Case
	Passed bool
	Got    map[string][]string // nil when parsing failed
	Err    error               // parse error, if any
	Diff   string              // want/got diff of a failed success case
}

// Run builds the suite's parser and parses every case concurrently, at
// most limit at a time (GOMAXPROCS when limit <= 0). Outcomes are in case
// order. The error is non-nil only when the parser cannot be built or ctx
// is done.
func Run(ctx context.Context, s *Suite, limit int) ([]Outcome, error) {
	def, err := s.LoadDefinition()
	if err != nil {
		return nil, err
	}
	p, err := def.Build(argparse.WithOutput(io.Discard))
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", def.Name, err)
	}

	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	outcomes := make([]Outcome, len(s.Cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range s.Cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = runCase(p, c)
			if s.Name != "" {
				outcomes[i].Name = s.Name + "/" + c.Name
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runCase(p *argparse.Parser, c Case) Outcome {
	o := Outcome{Name: c.Name, Case: c}
	res, err := p.Parse(c.Args)
	o.Err = err
	if err == nil {
		o.Got = res.Map()
	}

	if c.Error != "" {
		o.Passed = err != nil && strings.Contains(err.Error(), c.Error)
		return o
	}
	if err != nil {
		return o
	}
	o.Diff = cmp.Diff(c.Want, o.Got, cmpopts.EquateEmpty())
	o.Passed = o.Diff == ""
	return o
}

// Failed counts the failed outcomes.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}
