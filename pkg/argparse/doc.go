// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse is a declarative command-line argument parser.
//
// Callers register positional and optional arguments on a Parser, then parse
// a token list into Results, a map from destination name to the values
// collected for it.
//
// # Building a Parser
//
//	p := argparse.New("dedupe", argparse.WithVersion("1.0.0"))
//	p.AddArgument("sources").Nargs(argparse.OneOrMore).Help("Directories to scan")
//	p.AddArgument("--threads", "-t").Default("1").Help("Worker count")
//	p.AddArgument("--recursive", "-r").Action(argparse.StoreTrue)
//	if err := p.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Flags that all start with "-" make an optional argument; a single flag
// without a hyphen makes a positional one. The destination defaults to the
// longest flag with its leading hyphens (at most two) removed, so the
// example above stores into "sources", "threads" and "recursive".
//
// Every setter on Arg may be called once. Setting an action that takes no
// values (StoreTrue, Count, ...) also fixes the arity to Exact(0), and
// StoreTrue, StoreFalse and Count also fix the const value.
//
// # Parsing
//
//	res, err := p.Parse(os.Args[1:])
//	if errors.Is(err, argparse.ErrHelp) {
//	    os.Exit(1)
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	threads, err := res.Get("threads").Int()
//
// Parsing proceeds in this order:
//   - "--" ends flag processing; every later token is positional
//   - "--flag=value" is treated as "--flag value" when --flag is registered
//   - each optional flag runs its action; value-taking actions consume
//     tokens until their arity is full or a token starting with "-" appears
//   - an optional may be supplied once per parse
//   - defaults are seeded for optionals, then required optionals are checked
//   - the remaining tokens are distributed over the positionals in order,
//     then defaults are seeded for positionals
//
// # Errors
//
// All failures are *Error values whose Kind is one of the sentinel errors
// (ErrDuplicateFlag, ErrUnknownOptional, ErrMissingPositional, ...), so they
// can be matched with errors.Is. Registration errors are held by the Parser
// and returned by Err and by every Parse call.
//
// Result accessors return a *TypeError when a value does not convert.
package argparse
