// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "fmt"

// Action is what happens when an optional flag is encountered.
type Action uint8

const (
	Store Action = iota
	StoreTrue
	StoreFalse
	StoreConst
	AppendConst
	Append
	Extend
	Count
	Help
	Version
)

// actionParams are the parameters an action fixes on the spec it is
// assigned to.
type actionParams struct {
	name     string
	consumes bool   // reads values from the following tokens
	konst    string // implied const value
	hasConst bool
}

var actionTable = [...]actionParams{
	Store:       {name: "store", consumes: true},
	StoreTrue:   {name: "store_true", konst: "true", hasConst: true},
	StoreFalse:  {name: "store_false", konst: "false", hasConst: true},
	StoreConst:  {name: "store_const"},
	AppendConst: {name: "append_const"},
	Append:      {name: "append", consumes: true},
	Extend:      {name: "extend", consumes: true},
	Count:       {name: "count", konst: "1", hasConst: true},
	Help:        {name: "help"},
	Version:     {name: "version"},
}

func (a Action) params() (actionParams, bool) {
	if int(a) >= len(actionTable) {
		return actionParams{}, false
	}
	return actionTable[a], true
}

func (a Action) String() string {
	if p, ok := a.params(); ok {
		return p.name
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ConsumesValues reports whether the action reads values from the tokens
// that follow its flag.
func (a Action) ConsumesValues() bool {
	p, _ := a.params()
	return p.consumes
}

// FixedArity returns the arity an action imposes on its spec. Actions that
// consume values leave the arity to the spec and return ok=false.
func (a Action) FixedArity() (arity Arity, ok bool) {
	p, known := a.params()
	if !known || p.consumes {
		return Arity{}, false
	}
	return Exact(0), true
}

// ImpliedConst returns the constant the action stores, if it has one.
func (a Action) ImpliedConst() (string, bool) {
	p, _ := a.params()
	return p.konst, p.hasConst
}

// ParseAction returns the action with the given name, e.g. "store_true".
func ParseAction(name string) (Action, error) {
	for i, p := range actionTable {
		if p.name == name {
			return Action(i), nil
		}
	}
	return 0, newError(ComponentAction, ErrUnknownAction, "unrecognized action: %s", name)
}
