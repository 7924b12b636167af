// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argdef describes argument parsers in TOML or YAML files and builds
// them into *argparse.Parser values.
package argdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argparse/pkg/argparse"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/set"
)

// FileName is the definition file Find looks for.
const FileName = "argparse.toml"

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Definition is a parser described as data.
type Definition struct {
	Name        string `toml:"name" yaml:"name"`
	Version     string `toml:"version,omitempty" yaml:"version,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Usage       string `toml:"usage,omitempty" yaml:"usage,omitempty"`
	// AddHelp controls the automatic --help/-h argument. Unset means true.
	AddHelp   *bool      `toml:"add_help,omitempty" yaml:"add_help,omitempty"`
	Arguments []Argument `toml:"arguments,omitempty" yaml:"arguments,omitempty"`
	Groups    []Group    `toml:"groups,omitempty" yaml:"groups,omitempty"`
}

type Group struct {
	Name      string     `toml:"name" yaml:"name"`
	Arguments []Argument `toml:"arguments" yaml:"arguments"`
}

// Argument mirrors the argparse.Arg setters. Empty fields are left at the
// argparse defaults.
type Argument struct {
	Flags    []string `toml:"flags" yaml:"flags"`
	Dest     string   `toml:"dest,omitempty" yaml:"dest,omitempty"`
	Nargs    string   `toml:"nargs,omitempty" yaml:"nargs,omitempty"`
	Action   string   `toml:"action,omitempty" yaml:"action,omitempty"`
	Default  string   `toml:"default,omitempty" yaml:"default,omitempty"`
	Const    string   `toml:"const,omitempty" yaml:"const,omitempty"`
	Type     string   `toml:"type,omitempty" yaml:"type,omitempty"`
	Metavar  string   `toml:"metavar,omitempty" yaml:"metavar,omitempty"`
	Help     string   `toml:"help,omitempty" yaml:"help,omitempty"`
	Required *bool    `toml:"required,omitempty" yaml:"required,omitempty"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown definition format for %s (want .toml, .yaml or .yml)", path)
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a definition. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown definition format %q", format)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Find returns the path of the nearest FileName in startDir or one of its
// parents. It returns os.ErrNotExist when there is none.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Validate checks what can be checked without building: a name, a semantic
// version if one is given, unique group names and flags on every argument.
// Conflicts between arguments are reported by Build.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("definition has no name")
	}
	if d.Version != "" {
		if _, err := semver.NewVersion(d.Version); err != nil {
			return fmt.Errorf("invalid version %q: %w", d.Version, err)
		}
	}
	seen := set.Of(argparse.PositionalGroup, argparse.OptionalGroup)
	for _, g := range d.Groups {
		if g.Name == "" {
			return errors.New("group has no name")
		}
		if seen.Contains(g.Name) {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		seen.Add(g.Name)
	}
	for _, a := range d.allArguments() {
		if len(a.Flags) == 0 {
			return errors.New("argument has no flags")
		}
	}
	return nil
}

func (d *Definition) allArguments() []Argument {
	all := append([]Argument(nil), d.Arguments...)
	for _, g := range d.Groups {
		all = append(all, g.Arguments...)
	}
	return all
}

// Build returns the parser d describes. opts are applied after the options
// derived from d, so they can override them.
func (d *Definition) Build(opts ...argparse.Option) (*argparse.Parser, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var base []argparse.Option
	if d.Version != "" {
		base = append(base, argparse.WithVersion(d.Version))
	}
	if d.Usage != "" {
		base = append(base, argparse.WithUsage(d.Usage))
	}
	if d.Description != "" {
		base = append(base, argparse.WithDescription(d.Description))
	}
	if d.AddHelp != nil && !*d.AddHelp {
		base = append(base, argparse.WithoutHelp())
	}
	p := argparse.New(d.Name, append(base, opts...)...)

	for _, a := range d.Arguments {
		if err := a.apply(p, p.AddArgument(a.Flags...)); err != nil {
			return nil, err
		}
	}
	for _, g := range d.Groups {
		group := p.AddArgumentGroup(g.Name)
		for _, a := range g.Arguments {
			if err := a.apply(p, group.AddArgument(a.Flags...)); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func (a Argument) apply(p *argparse.Parser, arg *argparse.Arg) error {
	if a.Dest != "" {
		arg.Dest(a.Dest)
	}
	if a.Nargs != "" {
		arg.NargsString(a.Nargs)
	}
	if a.Action != "" {
		act, err := argparse.ParseAction(a.Action)
		if err != nil {
			return fmt.Errorf("argument %s: %w", strings.Join(a.Flags, "/"), err)
		}
		arg.Action(act)
	}
	if a.Default != "" {
		arg.Default(a.Default)
	}
	if a.Const != "" {
		arg.Const(a.Const)
	}
	if a.Type != "" {
		arg.Type(a.Type)
	}
	if a.Metavar != "" {
		arg.Metavar(a.Metavar)
	}
	if a.Help != "" {
		arg.Help(a.Help)
	}
	if a.Required != nil {
		arg.Required(*a.Required)
	}
	if err := p.Err(); err != nil {
		return fmt.Errorf("argument %s: %w", strings.Join(a.Flags, "/"), err)
	}
	return nil
}

// Encode writes d in format.
func (d *Definition) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown definition format %q", format)
}
