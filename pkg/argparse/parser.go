// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"io"
	"os"
	"slices"
	"sync/atomic"
)

// Names of the groups every Parser starts with.
const (
	PositionalGroup = "Positional Arguments"
	OptionalGroup   = "Options"
)

const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
	helpText      = "Show this menu and exit."
)

// Parser is a registry of argument specifications. Build it once with
// AddArgument and AddArgumentGroup, then call Parse as often as needed.
//
// A Parser is not safe for concurrent building. Once building is done it is
// read-only and Parse may be called from multiple goroutines.
type Parser struct {
	name        string
	version     string
	usage       string
	description string
	out         io.Writer

	args   []*Arg         // arena, indexed by Arg.id
	groups []*Group       // declaration order
	flags  map[string]int // optional flag -> arena id

	noHelp      bool
	helpID      int // arena id of the auto-added help spec, -1 if absent
	helpAdded   bool
	helpRemoved bool

	err    error // first registration error
	frozen atomic.Bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithVersion sets the string printed by the Version action.
func WithVersion(v string) Option {
	return func(p *Parser) { p.version = v }
}

// WithUsage replaces the generated usage line.
func WithUsage(usage string) Option {
	return func(p *Parser) { p.usage = usage }
}

// WithDescription sets the text printed after the argument listing.
func WithDescription(desc string) Option {
	return func(p *Parser) { p.description = desc }
}

// WithOutput sets where help and version text are written. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.out = w }
}

// WithoutHelp keeps New from adding the --help/-h argument.
func WithoutHelp() Option {
	return func(p *Parser) { p.noHelp = true }
}

// New returns a Parser with the default positional and optional groups and,
// unless WithoutHelp is given, a --help/-h argument.
func New(name string, opts ...Option) *Parser {
	p := &Parser{
		name:   name,
		out:    os.Stdout,
		flags:  make(map[string]int),
		helpID: -1,
	}
	p.groups = []*Group{
		{p: p, name: PositionalGroup},
		{p: p, name: OptionalGroup},
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.noHelp {
		p.SetHelp(true)
	}
	return p
}

// Name is the program name shown in the usage line.
func (p *Parser) Name() string { return p.name }

// Version is what the version action prints.
func (p *Parser) Version() string { return p.version }

// Description is printed after the argument listing in help.
func (p *Parser) Description() string { return p.description }

// Err returns the first registration error, if any.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Group is a named, ordered set of arguments.
type Group struct {
	p    *Parser
	name string
	ids  []int
}

// Name is the heading of the group in help.
func (g *Group) Name() string { return g.name }

// Args returns the arguments of g in declaration order.
func (g *Group) Args() []*Arg {
	out := make([]*Arg, len(g.ids))
	for i, id := range g.ids {
		out[i] = g.p.args[id]
	}
	return out
}

// AddArgumentGroup appends an empty group.
func (p *Parser) AddArgumentGroup(name string) *Group {
	g := &Group{p: p, name: name}
	if p.frozen.Load() {
		p.fail(newError(ComponentAction, ErrFrozen, "cannot add group %s after parsing has started", name))
		return g
	}
	p.groups = append(p.groups, g)
	return g
}

// Groups returns the groups in declaration order.
func (p *Parser) Groups() []*Group {
	return slices.Clone(p.groups)
}

// AddArgument registers an argument in the default group for its kind:
// positionals go to PositionalGroup, optionals to OptionalGroup.
func (p *Parser) AddArgument(flags ...string) *Arg {
	kind, err := classify(flags)
	if err != nil {
		p.fail(err)
		return &Arg{flags: flags}
	}
	if kind == Positional {
		return p.groups[0].add(flags, kind)
	}
	return p.groups[1].add(flags, kind)
}

// AddArgument registers an argument in g.
func (g *Group) AddArgument(flags ...string) *Arg {
	kind, err := classify(flags)
	if err != nil {
		g.p.fail(err)
		return &Arg{flags: flags}
	}
	return g.add(flags, kind)
}

func (g *Group) add(flags []string, kind Kind) *Arg {
	p := g.p
	if p.frozen.Load() {
		p.fail(newError(ComponentAction, ErrFrozen, "cannot add %s after parsing has started", flagsString(flags)))
		return &Arg{flags: flags}
	}
	for _, f := range flags {
		if id, ok := p.flags[f]; ok {
			p.fail(newError(ComponentAction, ErrDuplicateFlag, "duplicate flags: %s uses %s", p.args[id].flagsString(), f))
			return &Arg{flags: flags}
		}
	}
	a := newArg(p, flags, kind)
	a.id = len(p.args)
	p.args = append(p.args, a)
	g.ids = append(g.ids, a.id)
	if kind == Optional {
		for _, f := range flags {
			p.flags[f] = a.id
		}
	}
	return a
}

// Lookup returns the optional argument registered for flag.
func (p *Parser) Lookup(flag string) (*Arg, bool) {
	id, ok := p.flags[flag]
	if !ok {
		return nil, false
	}
	return p.args[id], true
}

// SetHelp adds or removes the --help/-h argument. Each direction takes
// effect at most once; later calls are no-ops. Removal only touches the
// argument SetHelp added.
func (p *Parser) SetHelp(enabled bool) {
	if enabled {
		if p.helpAdded {
			return
		}
		p.helpAdded = true
		a := p.groups[1].add([]string{helpFlagLong, helpFlagShort}, Optional)
		a.Action(Help).Help(helpText)
		if a.p != nil {
			p.helpID = a.id
		}
		return
	}
	if p.helpRemoved || p.helpID < 0 {
		return
	}
	if p.frozen.Load() {
		p.fail(newError(ComponentAction, ErrFrozen, "cannot remove %s after parsing has started", helpFlagLong))
		return
	}
	p.helpRemoved = true
	help := p.args[p.helpID]
	for _, f := range help.flags {
		if p.flags[f] == p.helpID {
			delete(p.flags, f)
		}
	}
	for _, g := range p.groups {
		g.ids = slices.DeleteFunc(g.ids, func(id int) bool { return id == p.helpID })
	}
	p.helpID = -1
}

// specs returns every argument of kind in group order.
func (p *Parser) specs(kind Kind) []*Arg {
	var out []*Arg
	for _, g := range p.groups {
		for _, id := range g.ids {
			if a := p.args[id]; a.kind == kind {
				out = append(out, a)
			}
		}
	}
	return out
}
