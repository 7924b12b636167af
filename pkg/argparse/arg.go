// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"slices"
	"strings"
)

// Kind tells positional arguments apart from optional (flag) arguments.
type Kind uint8

const (
	Positional Kind = iota
	Optional
)

func (k Kind) String() string {
	if k == Optional {
		return "optional"
	}
	return "positional"
}

// field is one bit per builder method; an Arg records the methods that
// have already been called.
type field uint16

const (
	fieldDest field = 1 << iota
	fieldNargs
	fieldAction
	fieldDefault
	fieldConst
	fieldType
	fieldMetavar
	fieldHelp
	fieldRequired
)

func (f field) String() string {
	switch f {
	case fieldDest:
		return "dest"
	case fieldNargs:
		return "nargs"
	case fieldAction:
		return "action"
	case fieldDefault:
		return "default_value"
	case fieldConst:
		return "const_value"
	case fieldType:
		return "type"
	case fieldMetavar:
		return "metavar"
	case fieldHelp:
		return "help"
	case fieldRequired:
		return "required"
	}
	return "unknown"
}

// Arg is the specification of one argument. It is returned by AddArgument
// and configured through chained calls:
//
//	p.AddArgument("--count", "-c").Nargs(argparse.Exact(1)).Default("1")
//
// Every setter may be called at most once per Arg. Errors are recorded on
// the owning Parser and reported by Parser.Err and Parser.Parse.
type Arg struct {
	p  *Parser // nil for a detached Arg returned after a registration error
	id int

	flags    []string
	kind     Kind
	dest     string
	metavar  string
	arity    Arity
	action   Action
	def      string
	konst    string
	typ      string
	required bool
	help     string

	set field
}

func newArg(p *Parser, flags []string, kind Kind) *Arg {
	return &Arg{
		p:        p,
		flags:    slices.Clone(flags),
		kind:     kind,
		dest:     destFromFlags(flags),
		arity:    Exact(1),
		action:   Store,
		typ:      "string",
		required: kind == Positional,
	}
}

// configure marks f as set. It returns false when the Arg is detached or f
// was already configured.
func (a *Arg) configure(f field) bool {
	if a.p == nil {
		return false
	}
	if a.p.frozen.Load() {
		a.p.fail(newError(ComponentAction, ErrFrozen, "cannot provide .%s after parsing has started", f))
		return false
	}
	if a.set&f != 0 {
		a.p.fail(newError(ComponentAction, ErrFieldSet, "cannot provide .%s twice", f))
		return false
	}
	a.set |= f
	return true
}

// Dest sets the key under which values are stored.
func (a *Arg) Dest(dest string) *Arg {
	if !a.configure(fieldDest) {
		return a
	}
	if dest == "" {
		a.p.fail(newError(ComponentAction, ErrEmptyDest, "argument cannot contain an empty dest"))
		return a
	}
	a.dest = dest
	return a
}

// Nargs sets the number of values the argument accepts.
func (a *Arg) Nargs(arity Arity) *Arg {
	if !a.configure(fieldNargs) {
		return a
	}
	a.arity = arity
	return a
}

// NargsString is Nargs with the arity given as a token ("?", "*", "+", "2").
func (a *Arg) NargsString(s string) *Arg {
	if !a.configure(fieldNargs) {
		return a
	}
	arity, err := ParseArity(s)
	if err != nil {
		a.p.fail(err)
		return a
	}
	a.arity = arity
	return a
}

// Action sets the action. Actions that take no values also fix the arity to
// Exact(0), and StoreTrue, StoreFalse and Count fix the const value; both
// then count as configured.
func (a *Arg) Action(act Action) *Arg {
	if !a.configure(fieldAction) {
		return a
	}
	if _, ok := act.params(); !ok {
		a.p.fail(newError(ComponentAction, ErrUnknownAction, "unrecognized action: %s", act))
		return a
	}
	if arity, ok := act.FixedArity(); ok {
		if !a.configure(fieldNargs) {
			return a
		}
		a.arity = arity
	}
	if konst, ok := act.ImpliedConst(); ok {
		if !a.configure(fieldConst) {
			return a
		}
		a.konst = konst
	}
	a.action = act
	return a
}

// Default sets the value seeded when the argument collects nothing.
func (a *Arg) Default(v string) *Arg {
	if a.configure(fieldDefault) {
		a.def = v
	}
	return a
}

// Const sets the value stored by StoreConst and AppendConst.
func (a *Arg) Const(v string) *Arg {
	if a.configure(fieldConst) {
		a.konst = v
	}
	return a
}

// Type records the value type name used by Result.As.
func (a *Arg) Type(name string) *Arg {
	if a.configure(fieldType) {
		a.typ = name
	}
	return a
}

// Metavar sets the display name used in help text.
func (a *Arg) Metavar(v string) *Arg {
	if a.configure(fieldMetavar) {
		a.metavar = v
	}
	return a
}

// Help sets the help text.
func (a *Arg) Help(text string) *Arg {
	if a.configure(fieldHelp) {
		a.help = text
	}
	return a
}

// Required overrides whether the argument must be supplied.
func (a *Arg) Required(v bool) *Arg {
	if a.configure(fieldRequired) {
		a.required = v
	}
	return a
}

// Spec is a read-only snapshot of an Arg.
type Spec struct {
	Flags    []string
	Kind     Kind
	Dest     string
	Metavar  string
	Arity    Arity
	Action   Action
	Default  string
	Const    string
	Type     string
	Required bool
	Help     string
}

// Spec returns the current configuration of a.
func (a *Arg) Spec() Spec {
	return Spec{
		Flags:    slices.Clone(a.flags),
		Kind:     a.kind,
		Dest:     a.dest,
		Metavar:  a.displayName(),
		Arity:    a.arity,
		Action:   a.action,
		Default:  a.def,
		Const:    a.konst,
		Type:     a.typ,
		Required: a.required,
		Help:     a.help,
	}
}

func (a *Arg) displayName() string {
	if a.metavar != "" {
		return a.metavar
	}
	return strings.ToUpper(a.dest)
}

func (a *Arg) flagsString() string {
	return flagsString(a.flags)
}

// classify derives the kind of an argument from its flags.
func classify(flags []string) (Kind, error) {
	if len(flags) == 0 {
		return 0, newError(ComponentAction, ErrNoFlags, "must have at least one option string")
	}
	for _, f := range flags {
		if !strings.HasPrefix(f, "-") {
			if len(flags) > 1 {
				return 0, newError(ComponentAction, ErrMixedFlags, "cannot use multiple flags unless they all have leading hyphens")
			}
			return Positional, nil
		}
	}
	return Optional, nil
}

// destFromFlags picks the longest flag (first wins on ties) and strips up
// to two leading hyphens.
func destFromFlags(flags []string) string {
	var longest string
	for _, f := range flags {
		if len(f) > len(longest) {
			longest = f
		}
	}
	for range 2 {
		s, ok := strings.CutPrefix(longest, "-")
		if !ok {
			break
		}
		longest = s
	}
	return longest
}

// flagsString joins flags with "/" ordered by length, e.g. "-f/--flag".
func flagsString(flags []string) string {
	sorted := slices.Clone(flags)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return len(a) - len(b)
	})
	return strings.Join(sorted, "/")
}
