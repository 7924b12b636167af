// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func groupDests(g *Group) []string {
	var out []string
	for _, a := range g.Args() {
		out = append(out, a.Spec().Dest)
	}
	return out
}

func TestNewDefaultGroups(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	groups := p.Groups()
	if len(groups) != 2 {
		t.Fatalf("len(Groups()) = %d, want 2", len(groups))
	}
	if groups[0].Name() != PositionalGroup || groups[1].Name() != OptionalGroup {
		t.Errorf("group names = %q, %q", groups[0].Name(), groups[1].Name())
	}
	if got := groupDests(groups[1]); !reflect.DeepEqual(got, []string{"help"}) {
		t.Errorf("Options = %v, want [help]", got)
	}
	if a, ok := p.Lookup("-h"); !ok || a.Spec().Action != Help {
		t.Errorf("Lookup(-h) = %v, %v; want help action", a, ok)
	}
}

func TestAddArgumentRouting(t *testing.T) {
	p := New("prog", WithOutput(io.Discard), WithoutHelp())
	p.AddArgument("--verbose")
	p.AddArgument("source")
	p.AddArgument("--out")
	p.AddArgument("target")
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	groups := p.Groups()
	if got, want := groupDests(groups[0]), []string{"source", "target"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Positional Arguments = %v, want %v", got, want)
	}
	if got, want := groupDests(groups[1]), []string{"verbose", "out"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}
}

func TestArgumentGroups(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	general := p.AddArgumentGroup("General")
	general.AddArgument("--threads", "-t")
	general.AddArgument("paths").Nargs(ZeroOrMore)
	output := p.AddArgumentGroup("Output")
	output.AddArgument("--quiet", "-q").Action(StoreTrue)
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, g := range p.Groups() {
		names = append(names, g.Name())
	}
	want := []string{PositionalGroup, OptionalGroup, "General", "Output"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("group names = %v, want %v", names, want)
	}
	if got := groupDests(general); !reflect.DeepEqual(got, []string{"threads", "paths"}) {
		t.Errorf("General = %v", got)
	}

	// Positionals in custom groups still take part in distribution.
	res, err := p.Parse([]string{"a", "b", "-q"})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Get("paths").Strings(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("paths = %v", got)
	}
}

func TestDuplicateFlags(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Parser)
		msg   string
	}{
		{
			name: "same group",
			build: func(p *Parser) {
				p.AddArgument("--count", "-c")
				p.AddArgument("-c")
			},
			msg: "duplicate flags: -c/--count uses -c",
		},
		{
			name: "across groups",
			build: func(p *Parser) {
				p.AddArgumentGroup("Extra").AddArgument("--count", "-c")
				p.AddArgument("--other", "--count")
			},
			msg: "duplicate flags: -c/--count uses --count",
		},
		{
			name: "help flag",
			build: func(p *Parser) {
				p.AddArgument("-h")
			},
			msg: "duplicate flags: -h/--help uses -h",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("prog", WithOutput(io.Discard))
			tt.build(p)
			err := p.Err()
			if !errors.Is(err, ErrDuplicateFlag) {
				t.Fatalf("Err() = %v, want ErrDuplicateFlag", err)
			}
			if err.Error() != tt.msg {
				t.Errorf("Err() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestSetHelp(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	p.SetHelp(false)
	if _, ok := p.Lookup("--help"); ok {
		t.Fatal("--help still registered after SetHelp(false)")
	}
	if got := p.Groups()[1].Args(); len(got) != 0 {
		t.Errorf("Options has %d args after removing help", len(got))
	}
	// Re-enabling is a no-op once help has been added.
	p.SetHelp(true)
	if _, ok := p.Lookup("--help"); ok {
		t.Error("--help registered again after second SetHelp(true)")
	}
	// The flags are free for user arguments.
	p.AddArgument("--help").Action(StoreTrue)
	p.SetHelp(false)
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	if a, ok := p.Lookup("--help"); !ok || a.Spec().Action != StoreTrue {
		t.Errorf("user --help removed or replaced: %v, %v", a, ok)
	}
}

func TestSetHelpWithoutHelp(t *testing.T) {
	p := New("prog", WithOutput(io.Discard), WithoutHelp())
	if _, ok := p.Lookup("-h"); ok {
		t.Fatal("-h registered with WithoutHelp")
	}
	p.SetHelp(true)
	if _, ok := p.Lookup("-h"); !ok {
		t.Fatal("-h not registered after SetHelp(true)")
	}
	p.SetHelp(false)
	if _, ok := p.Lookup("-h"); ok {
		t.Fatal("-h still registered after SetHelp(false)")
	}
	if _, err := p.Parse([]string{"-h"}); !errors.Is(err, ErrUnknownOptional) {
		t.Errorf("Parse(-h) error = %v, want ErrUnknownOptional", err)
	}
}

func TestPositionalNamesNotIndexed(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	p.AddArgument("name")
	if _, ok := p.Lookup("name"); ok {
		t.Error("positional name found by Lookup")
	}
}

func TestAddArgumentGroupAfterParse(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	if _, err := p.Parse(nil); err != nil {
		t.Fatal(err)
	}
	p.AddArgumentGroup("Late")
	if err := p.Err(); !errors.Is(err, ErrFrozen) {
		t.Errorf("Err() = %v, want ErrFrozen", err)
	}
	if n := len(p.Groups()); n != 2 {
		t.Errorf("len(Groups()) = %d, want 2", n)
	}
}

func TestSetterAfterParse(t *testing.T) {
	p := New("prog", WithOutput(io.Discard))
	a := p.AddArgument("--name")
	if _, err := p.Parse(nil); err != nil {
		t.Fatal(err)
	}
	a.Default("late")
	if err := p.Err(); !errors.Is(err, ErrFrozen) {
		t.Errorf("Err() = %v, want ErrFrozen", err)
	}
	if got := a.Spec().Default; got != "" {
		t.Errorf("Default = %q after frozen setter", got)
	}
}
