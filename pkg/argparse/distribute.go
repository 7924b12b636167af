// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "tailscale.com/util/mak"

// distribute assigns contiguous runs of queue to specs, in order.
//
// reserved counts the minimum number of tokens still owed to the specs not
// yet processed. Exact specs take their minimum and release it; "?" and "*"
// only take tokens beyond the reservation; "+" releases its one mandatory
// token, takes it, then behaves like "*". With only one variable spec this
// is plain greedy matching. With several, the earliest variable spec wins
// every token that is not reserved.
func distribute(specs []*Arg, queue []string, results *Results) error {
	lower := 0
	for _, a := range specs {
		lower += a.arity.Min()
	}

	if len(queue) < lower {
		total := 0
		for _, a := range specs {
			total += a.arity.Min()
			if total > len(queue) {
				return newError(ComponentParser, ErrMissingPositional, "missing positional argument: %s", a.flagsString())
			}
		}
	}

	take := func(a *Arg) {
		r := results.Get(a.dest)
		r.Append(queue[0])
		queue = queue[1:]
		mak.Set(results, a.dest, r)
	}

	reserved := lower
	for _, a := range specs {
		switch a.arity.kind {
		case arityExact:
			for range a.arity.n {
				take(a)
				reserved--
			}
		case arityZeroOrOne:
			if len(queue) > reserved {
				take(a)
			}
		case arityZeroOrMore:
			for len(queue) > reserved {
				take(a)
			}
		case arityOneOrMore:
			reserved--
			take(a)
			for len(queue) > reserved {
				take(a)
			}
		}
	}

	if len(queue) > 0 {
		return newError(ComponentPosArg, ErrUnrecognizedArgs, "unrecognized arguments: %s", reprJoin(queue))
	}
	return nil
}
