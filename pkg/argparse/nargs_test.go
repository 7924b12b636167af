// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"testing"
)

func TestArityBounds(t *testing.T) {
	tests := []struct {
		arity     Arity
		str       string
		min, max  int
		unbounded bool
	}{
		{arity: Exact(0), str: "0", min: 0, max: 0},
		{arity: Exact(2), str: "2", min: 2, max: 2},
		{arity: Exact(-1), str: "0", min: 0, max: 0},
		{arity: ZeroOrOne, str: "?", min: 0, max: 1},
		{arity: ZeroOrMore, str: "*", min: 0, max: 0, unbounded: true},
		{arity: OneOrMore, str: "+", min: 1, max: 0, unbounded: true},
	}
	for _, tt := range tests {
		a := tt.arity
		if a.String() != tt.str || a.Min() != tt.min || a.Max() != tt.max || a.Unbounded() != tt.unbounded {
			t.Errorf("%v: min=%d max=%d unbounded=%v, want %s min=%d max=%d unbounded=%v",
				a, a.Min(), a.Max(), a.Unbounded(), tt.str, tt.min, tt.max, tt.unbounded)
		}
	}
	var zero Arity
	if zero != Exact(0) {
		t.Errorf("zero Arity = %v, want Exact(0)", zero)
	}
}

func TestParseArity(t *testing.T) {
	for _, s := range []string{"?", "*", "+", "0", "12"} {
		a, err := ParseArity(s)
		if err != nil {
			t.Errorf("ParseArity(%q) error = %v", s, err)
			continue
		}
		if a.String() != s {
			t.Errorf("ParseArity(%q).String() = %q", s, a.String())
		}
	}
	for _, s := range []string{"", "x", "-2", "1.0", "++"} {
		_, err := ParseArity(s)
		if !errors.Is(err, ErrInvalidNargs) {
			t.Errorf("ParseArity(%q) error = %v, want ErrInvalidNargs", s, err)
			continue
		}
		if got, want := err.Error(), "nargs must be either a positive integer or one of: '?', '*', '+'"; got != want {
			t.Errorf("ParseArity(%q) error = %q, want %q", s, got, want)
		}
	}
}

func TestParseAction(t *testing.T) {
	names := map[string]Action{
		"store":        Store,
		"store_true":   StoreTrue,
		"store_false":  StoreFalse,
		"store_const":  StoreConst,
		"append_const": AppendConst,
		"append":       Append,
		"extend":       Extend,
		"count":        Count,
		"help":         Help,
		"version":      Version,
	}
	for name, want := range names {
		got, err := ParseAction(name)
		if err != nil || got != want {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", name, got, err, want)
		}
		if got.String() != name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), name)
		}
	}
	if _, err := ParseAction("frobnicate"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ParseAction(frobnicate) error = %v, want ErrUnknownAction", err)
	}
}

func TestActionConsumesValues(t *testing.T) {
	for _, a := range []Action{Store, Append, Extend} {
		if !a.ConsumesValues() {
			t.Errorf("%v.ConsumesValues() = false", a)
		}
		if _, ok := a.FixedArity(); ok {
			t.Errorf("%v.FixedArity() ok = true", a)
		}
	}
	for _, a := range []Action{StoreTrue, StoreFalse, StoreConst, AppendConst, Count, Help, Version} {
		if a.ConsumesValues() {
			t.Errorf("%v.ConsumesValues() = true", a)
		}
	}
	if got := Action(200).String(); got != "action(200)" {
		t.Errorf("Action(200).String() = %q", got)
	}
}
