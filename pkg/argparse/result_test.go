// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"reflect"
	"testing"
)

func TestResultBool(t *testing.T) {
	tests := []struct {
		values  []string
		want    bool
		wantErr bool
	}{
		{values: nil, want: false},
		{values: []string{"true"}, want: true},
		{values: []string{"false"}, want: false},
		{values: []string{"false", "true"}, want: false},
		{values: []string{"yes"}, wantErr: true},
		{values: []string{"1"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewResult(tt.values...).Bool()
		if tt.wantErr {
			if !errors.Is(err, ErrType) {
				t.Errorf("Bool(%q) error = %v, want ErrType", tt.values, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Bool(%q) = %v, %v; want %v", tt.values, got, err, tt.want)
		}
	}
}

func TestResultInt(t *testing.T) {
	tests := []struct {
		values  []string
		want    int
		wantErr bool
	}{
		{values: nil, want: 0},
		{values: []string{"42"}, want: 42},
		{values: []string{"007"}, want: 7},
		{values: []string{"-1"}, wantErr: true},
		{values: []string{"+1"}, wantErr: true},
		{values: []string{"1.5"}, wantErr: true},
		{values: []string{""}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewResult(tt.values...).Int()
		if tt.wantErr {
			var te *TypeError
			if !errors.As(err, &te) || te.Want != "int" {
				t.Errorf("Int(%q) error = %v, want int TypeError", tt.values, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Int(%q) = %v, %v; want %v", tt.values, got, err, tt.want)
		}
	}
}

func TestResultUint(t *testing.T) {
	if got, err := NewResult("8").Uint(); err != nil || got != 8 {
		t.Errorf("Uint(8) = %v, %v", got, err)
	}
	if _, err := NewResult("x").Uint(); !errors.Is(err, ErrType) {
		t.Errorf("Uint(x) error = %v, want ErrType", err)
	}
}

func TestResultCollections(t *testing.T) {
	r := NewResult()
	if got := r.Strings(); got == nil || len(got) != 0 {
		t.Errorf("empty Strings() = %#v, want empty non-nil", got)
	}
	if got := r.String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}

	r.Append("2")
	r.Append("3")
	r.Prepend("1")
	if got, want := r.Strings(), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v, want %v", got, want)
	}
	if got, err := r.Ints(); err != nil || !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Ints() = %v, %v", got, err)
	}
	if r.Len() != 3 || r.Empty() {
		t.Errorf("Len, Empty = %d, %v", r.Len(), r.Empty())
	}

	r.Append("x")
	if _, err := r.Ints(); !errors.Is(err, ErrType) {
		t.Errorf("Ints() error = %v, want ErrType", err)
	}

	r.Clear()
	if !r.Empty() {
		t.Errorf("Empty() after Clear = false")
	}
}

func TestResultValuesIsCopy(t *testing.T) {
	src := []string{"a"}
	r := NewResult(src...)
	src[0] = "changed"
	v := r.Values()
	v[0] = "changed"
	if got := r.String(); got != "a" {
		t.Errorf("String() = %q after mutating inputs and outputs", got)
	}
}

func TestResultAs(t *testing.T) {
	tests := []struct {
		typ    string
		values []string
		want   any
	}{
		{typ: "", values: []string{"a", "b"}, want: "a"},
		{typ: "string", values: []string{"a"}, want: "a"},
		{typ: "strings", values: []string{"a", "b"}, want: []string{"a", "b"}},
		{typ: "bool", values: []string{"true"}, want: true},
		{typ: "int", values: []string{"3"}, want: 3},
		{typ: "ints", values: []string{"3", "4"}, want: []int{3, 4}},
		{typ: "uint", values: []string{"5"}, want: uint(5)},
	}
	for _, tt := range tests {
		got, err := NewResult(tt.values...).As(tt.typ)
		if err != nil {
			t.Errorf("As(%q) error = %v", tt.typ, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("As(%q) = %#v, want %#v", tt.typ, got, tt.want)
		}
	}
	if _, err := NewResult("x").As("float"); !errors.Is(err, ErrType) {
		t.Errorf("As(float) error = %v, want ErrType", err)
	}
}

func TestResults(t *testing.T) {
	rs := Results{
		"b": NewResult("2"),
		"a": NewResult("1", "one"),
		"c": NewResult(),
	}
	if got, want := rs.Dests(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Dests() = %v, want %v", got, want)
	}
	if !rs.Has("c") || rs.Has("d") {
		t.Errorf("Has(c), Has(d) = %v, %v", rs.Has("c"), rs.Has("d"))
	}
	if !rs.Get("d").Empty() {
		t.Errorf("Get(missing) not empty")
	}
	want := map[string][]string{"a": {"1", "one"}, "b": {"2"}, "c": {}}
	if got := rs.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestTypeErrorMessage(t *testing.T) {
	err := &TypeError{Value: "abc", Want: "int"}
	if got, want := err.Error(), `not a int: "abc"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
