// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"slices"
	"strconv"
)

// Result holds the tokens collected for one destination, in order.
//
// Scalar accessors look at the first token; collection accessors at all of
// them. An empty Result converts to the zero value of every type.
type Result struct {
	values []string
}

// NewResult returns a Result holding values.
func NewResult(values ...string) Result {
	return Result{values: slices.Clone(values)}
}

// Append adds v at the end.
func (r *Result) Append(v string) {
	r.values = append(r.values, v)
}

// Prepend inserts v at the front.
func (r *Result) Prepend(v string) {
	r.values = slices.Insert(r.values, 0, v)
}

// Clear drops all values.
func (r *Result) Clear() {
	r.values = nil
}

// Len reports the number of tokens.
func (r Result) Len() int {
	return len(r.values)
}

// Empty reports whether r holds no tokens.
func (r Result) Empty() bool {
	return len(r.values) == 0
}

// Values returns a copy of the collected tokens.
func (r Result) Values() []string {
	return slices.Clone(r.values)
}

// Bool interprets the first token, which must be "true" or "false".
func (r Result) Bool() (bool, error) {
	if len(r.values) == 0 {
		return false, nil
	}
	switch r.values[0] {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &TypeError{Value: r.values[0], Want: "bool"}
}

// Int interprets the first token as a decimal integer made only of digits.
func (r Result) Int() (int, error) {
	if len(r.values) == 0 {
		return 0, nil
	}
	return atoi(r.values[0])
}

// Uint is Int for unsigned values.
func (r Result) Uint() (uint, error) {
	if len(r.values) == 0 {
		return 0, nil
	}
	v := r.values[0]
	if !isNumber(v) {
		return 0, &TypeError{Value: v, Want: "uint"}
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		return 0, &TypeError{Value: v, Want: "uint"}
	}
	return uint(n), nil
}

// String returns the first token, or "" when there is none.
func (r Result) String() string {
	if len(r.values) == 0 {
		return ""
	}
	return r.values[0]
}

// Strings returns every token.
func (r Result) Strings() []string {
	if len(r.values) == 0 {
		return []string{}
	}
	return slices.Clone(r.values)
}

// Ints converts every token; it fails if any is not an integer.
func (r Result) Ints() ([]int, error) {
	out := make([]int, 0, len(r.values))
	for _, v := range r.values {
		n, err := atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// As converts r according to a type name as recorded by Arg.Type:
// "string", "strings", "bool", "int", "ints" or "uint".
func (r Result) As(typeName string) (any, error) {
	switch typeName {
	case "", "string":
		return r.String(), nil
	case "strings":
		return r.Strings(), nil
	case "bool":
		return r.Bool()
	case "int":
		return r.Int()
	case "ints":
		return r.Ints()
	case "uint":
		return r.Uint()
	}
	return nil, fmt.Errorf("unsupported type %q: %w", typeName, ErrType)
}

func atoi(v string) (int, error) {
	if !isNumber(v) {
		return 0, &TypeError{Value: v, Want: "int"}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &TypeError{Value: v, Want: "int"}
	}
	return n, nil
}

// Results maps destinations to their collected values. Destinations that
// collected nothing have no entry.
type Results map[string]Result

// Get returns the Result for dest, empty if it is missing.
func (rs Results) Get(dest string) Result {
	return rs[dest]
}

// Has reports whether dest has an entry.
func (rs Results) Has(dest string) bool {
	_, ok := rs[dest]
	return ok
}

// Dests returns the destinations in sorted order.
func (rs Results) Dests() []string {
	dests := make([]string, 0, len(rs))
	for d := range rs {
		dests = append(dests, d)
	}
	slices.Sort(dests)
	return dests
}

// Map returns the results as plain string slices.
func (rs Results) Map() map[string][]string {
	m := make(map[string][]string, len(rs))
	for d, r := range rs {
		m[d] = r.Strings()
	}
	return m
}
