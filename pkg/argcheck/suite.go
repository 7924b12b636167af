// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argcheck runs parse scenarios against a parser definition and
// prints a pass/fail report.
//
// A suite is a YAML document:
//
//	definition: hacky.toml
//	cases:
//	  - name: one source
//	    args: [a]
//	    want: {sources: [a], threads: ["1"]}
//	  - name: no sources
//	    args: []
//	    error: missing positional argument
//
// The definition may instead be given inline under "parser". A case with
// "error" passes when parsing fails with a message containing it; any other
// case passes when parsing succeeds with exactly the results in "want".
package argcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeetrun/argparse/pkg/argdef"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/set"
)

type Suite struct {
	// Name prefixes case names in reports. Load sets it from the file name.
	Name string `yaml:"name,omitempty"`

	Definition string             `yaml:"definition,omitempty"`
	Parser     *argdef.Definition `yaml:"parser,omitempty"`
	Cases      []Case             `yaml:"cases"`

	dir string // resolves a relative Definition
}

type Case struct {
	Name  string              `yaml:"name"`
	Args  []string            `yaml:"args"`
	Want  map[string][]string `yaml:"want,omitempty"`
	Error string              `yaml:"error,omitempty"`
}

// Load reads the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a suite. Relative definition paths are
// resolved against the working directory.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) Validate() error {
	switch {
	case s.Definition == "" && s.Parser == nil:
		return errors.New("suite needs a definition path or an inline parser")
	case s.Definition != "" && s.Parser != nil:
		return errors.New("suite has both a definition path and an inline parser")
	}
	if s.Parser != nil {
		if err := s.Parser.Validate(); err != nil {
			return fmt.Errorf("inline parser: %w", err)
		}
	}
	if len(s.Cases) == 0 {
		return errors.New("suite has no cases")
	}
	names := make(set.Set[string])
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d has no name", i)
		}
		if names.Contains(c.Name) {
			return fmt.Errorf("duplicate case %q", c.Name)
		}
		names.Add(c.Name)
		if c.Error != "" && len(c.Want) > 0 {
			return fmt.Errorf("case %q has both want and error", c.Name)
		}
	}
	return nil
}

// LoadDefinition returns the inline parser or loads the referenced file.
func (s *Suite) LoadDefinition() (*argdef.Definition, error) {
	if s.Parser != nil {
		return s.Parser, nil
	}
	path := s.Definition
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	return argdef.Load(path)
}
