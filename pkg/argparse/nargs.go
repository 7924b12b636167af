// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"strconv"
)

type arityKind uint8

const (
	arityExact arityKind = iota
	arityZeroOrOne
	arityZeroOrMore
	arityOneOrMore
)

// Arity is the number of values an argument accepts.
//
// The zero value is Exact(0).
type Arity struct {
	kind arityKind
	n    int
}

// Predefined variable arities.
var (
	ZeroOrOne  = Arity{kind: arityZeroOrOne}  // "?"
	ZeroOrMore = Arity{kind: arityZeroOrMore} // "*"
	OneOrMore  = Arity{kind: arityOneOrMore}  // "+"
)

// Exact returns an arity of exactly n values. Negative n is treated as 0.
func Exact(n int) Arity {
	if n < 0 {
		n = 0
	}
	return Arity{kind: arityExact, n: n}
}

// ParseArity parses a nargs token: "?", "*", "+" or a non-negative decimal
// integer.
func ParseArity(s string) (Arity, error) {
	switch s {
	case "?":
		return ZeroOrOne, nil
	case "*":
		return ZeroOrMore, nil
	case "+":
		return OneOrMore, nil
	}
	if !isNumber(s) {
		return Arity{}, newError(ComponentAction, ErrInvalidNargs, "nargs must be either a positive integer or one of: '?', '*', '+'")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Arity{}, newError(ComponentAction, ErrInvalidNargs, "nargs must be either a positive integer or one of: '?', '*', '+'")
	}
	return Exact(n), nil
}

// Min is the minimum number of values.
func (a Arity) Min() int {
	switch a.kind {
	case arityExact:
		return a.n
	case arityOneOrMore:
		return 1
	}
	return 0
}

// Max is the maximum number of values. For "*" and "+" it is 0, meaning
// unbounded; use Unbounded to tell Exact(0) apart.
func (a Arity) Max() int {
	switch a.kind {
	case arityExact:
		return a.n
	case arityZeroOrOne:
		return 1
	}
	return 0
}

// Unbounded reports whether the arity has no upper limit.
func (a Arity) Unbounded() bool {
	return a.kind == arityZeroOrMore || a.kind == arityOneOrMore
}

// Variable reports whether the arity is one of "?", "*" or "+".
func (a Arity) Variable() bool {
	return a.kind != arityExact
}

// String returns the nargs token for a.
func (a Arity) String() string {
	switch a.kind {
	case arityZeroOrOne:
		return "?"
	case arityZeroOrMore:
		return "*"
	case arityOneOrMore:
		return "+"
	}
	return strconv.Itoa(a.n)
}

// full reports whether count values satisfy the upper bound.
func (a Arity) full(count int) bool {
	if a.Unbounded() {
		return false
	}
	return count >= a.Max()
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
