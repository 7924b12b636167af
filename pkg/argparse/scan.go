// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"slices"
	"strings"

	"tailscale.com/util/mak"
)

// scanner walks the tokens of one Parse call, resolves optional flags and
// collects everything else into queue for positional distribution.
type scanner struct {
	p      *Parser
	tokens []string
	// literal is the index of a value split off a "--flag=value" token.
	// That token is never split again.
	literal int

	results Results
	queue   []string
}

func newScanner(p *Parser, tokens []string) *scanner {
	return &scanner{
		p:       p,
		tokens:  slices.Clone(tokens),
		literal: -1,
	}
}

func (s *scanner) run() error {
	for i := 0; i < len(s.tokens); i++ {
		tok := s.tokens[i]

		// Everything after "--" is positional.
		if tok == "--" {
			s.queue = append(s.queue, s.tokens[i+1:]...)
			return nil
		}

		if !strings.HasPrefix(tok, "-") {
			s.queue = append(s.queue, tok)
			continue
		}

		id, ok := s.p.flags[tok]
		if !ok && i != s.literal {
			// --flag=value becomes --flag value
			if left, right, found := strings.Cut(tok, "="); found {
				if lid, lok := s.p.flags[left]; lok {
					s.tokens = slices.Insert(s.tokens, i+1, right)
					s.literal = i + 1
					id, ok = lid, true
				}
			}
		}
		if !ok {
			return newError(ComponentParser, ErrUnknownOptional, "unrecognized optional argument: %s", tok)
		}

		next, err := s.dispatch(s.p.args[id], i)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

// dispatch runs the action of a, whose flag is at index i. It returns the
// index of the last token consumed.
func (s *scanner) dispatch(a *Arg, i int) (int, error) {
	if !s.results.Get(a.dest).Empty() {
		return i, newError(ComponentParser, ErrAlreadyProvided, "optional argument already provided: %s", a.flagsString())
	}

	switch a.action {
	case StoreTrue, StoreFalse, StoreConst:
		s.update(a.dest, func(r *Result) { r.Prepend(a.konst) })
	case Count, AppendConst:
		s.update(a.dest, func(r *Result) { r.Append(a.konst) })
	case Version:
		if _, err := fmt.Fprintln(s.p.out, s.p.version); err != nil {
			return i, fmt.Errorf("writing version: %w", err)
		}
		return i, ErrVersion
	case Help:
		if err := s.p.WriteHelp(s.p.out); err != nil {
			return i, fmt.Errorf("writing help: %w", err)
		}
		return i, ErrHelp
	case Store, Extend, Append:
		return s.consume(a, i)
	default:
		return i, newError(ComponentParser, ErrUnknownAction, "unrecognized action: %s", a.action)
	}
	return i, nil
}

// consume reads values for a from the tokens after index i until the arity
// is full or a flag-looking token is reached.
func (s *scanner) consume(a *Arg, i int) (int, error) {
	r := s.results.Get(a.dest)
	if a.action == Store {
		r.Clear()
	}
	want := a.arity.Min()
	got := 0
	for !a.arity.full(got) && i+1 < len(s.tokens) {
		next := s.tokens[i+1]
		if strings.HasPrefix(next, "-") {
			if got < want {
				return i, newError(ComponentParser, ErrAmbiguousValue, "%s expects %s %d value(s), but got ambiguous value: %s",
					a.flagsString(), expectWord(a.arity), want, repr(next))
			}
			break
		}
		r.Append(next)
		got++
		i++
	}
	if got < want {
		return i, newError(ComponentParser, ErrTooFewValues, "%s expects %s %d value(s), but got %d",
			a.flagsString(), expectWord(a.arity), want, got)
	}
	if !r.Empty() {
		mak.Set(&s.results, a.dest, r)
	}
	return i, nil
}

func (s *scanner) update(dest string, fn func(*Result)) {
	r := s.results.Get(dest)
	fn(&r)
	mak.Set(&s.results, dest, r)
}

func expectWord(a Arity) string {
	if !a.Variable() {
		return "exactly"
	}
	return "at least"
}
