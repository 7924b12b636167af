// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"io"
	"strings"
)

const (
	entryIndent = "    "
	helpIndent  = "        "
)

// FormatUsage returns the usage line: the custom usage if one was set,
// otherwise "Usage: NAME" followed by every positional and then every
// optional argument.
func (p *Parser) FormatUsage() string {
	if p.usage != "" {
		return p.usage
	}
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(p.name)
	for _, a := range p.specs(Positional) {
		if u := positionalUsage(a); u != "" {
			b.WriteString(" ")
			b.WriteString(u)
		}
	}
	for _, a := range p.specs(Optional) {
		b.WriteString(" [")
		b.WriteString(optionalUsage(a))
		b.WriteString("]")
	}
	return b.String()
}

// FormatHelp returns the usage line, the argument listing for each non-empty
// group and the description.
func (p *Parser) FormatHelp() string {
	var b strings.Builder
	b.WriteString(p.FormatUsage())
	b.WriteString("\n\n")

	for _, g := range p.groups {
		if len(g.ids) == 0 {
			continue
		}
		b.WriteString(g.name)
		b.WriteString("\n")
		for _, a := range g.Args() {
			b.WriteString(entryIndent)
			if a.kind == Positional {
				b.WriteString(a.dest)
			} else {
				b.WriteString(a.flagsString())
				if a.action.ConsumesValues() {
					b.WriteString("=")
					b.WriteString(a.displayName())
				}
			}
			b.WriteString("\n")
			if a.help != "" {
				fmt.Fprintf(&b, "%s%s\n", helpIndent, a.help)
			}
		}
		b.WriteString("\n")
	}

	if p.description != "" {
		b.WriteString(p.description)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteHelp writes FormatHelp to w.
func (p *Parser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, p.FormatHelp())
	return err
}

func positionalUsage(a *Arg) string {
	return valuesUsage(a.displayName(), a.arity)
}

func optionalUsage(a *Arg) string {
	fs := a.flagsString()
	if !a.action.ConsumesValues() {
		return fs
	}
	if v := valuesUsage(a.displayName(), a.arity); v != "" {
		return fs + " " + v
	}
	return fs
}

// valuesUsage renders the values an arity accepts: "X X", "[X]", "[X ...]"
// or "X [X ...]".
func valuesUsage(m string, arity Arity) string {
	switch arity.kind {
	case arityZeroOrOne:
		return "[" + m + "]"
	case arityZeroOrMore:
		return "[" + m + " ...]"
	case arityOneOrMore:
		return m + " [" + m + " ...]"
	}
	parts := make([]string, arity.n)
	for i := range parts {
		parts[i] = m
	}
	return strings.Join(parts, " ")
}
