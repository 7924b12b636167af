// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argparse builds parsers from definition files and runs them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/argparse/pkg/argcheck"
	"github.com/yeetrun/argparse/pkg/argdef"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/diag"
	"github.com/yeetrun/argparse/pkg/tui"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// passthrough holds the tokens after the first "--".
	passthrough []string
	colorMode   tui.Mode
	logger      = diag.New(os.Stderr, tui.Colorizer{})
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	args, passthrough = splitPassthrough(args)
	globalFlags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	colorMode, err = tui.ParseMode(globalFlags.Color)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger = diag.New(stderr, tui.ForWriter(colorMode, stderr))
	logger.SetThreshold(diag.Info)
	if globalFlags.Quiet {
		logger.SetThreshold(diag.Error)
	}

	handlers := map[string]yargs.SubcommandHandler{
		"parse": handleParse,
		"usage": handleUsage,
		"check": handleCheck,
		"demo":  handleDemo,
		"init":  handleInit,
	}
	if err := yargs.RunSubcommands(context.Background(), remaining, buildHelpConfig(), globalFlagsParsed{}, handlers); err != nil {
		logger.Report(err)
		return 1
	}
	return 0
}

// loadDefinition loads path, or the nearest argparse.toml when path is empty.
func loadDefinition(path string) (*argdef.Definition, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = argdef.Find(cwd)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s found; pass a definition path or run 'argparse init'", argdef.FileName)
		}
		if err != nil {
			return nil, err
		}
	}
	logger.Debugf(diag.DefaultComponent, "loading definition %s", path)
	return argdef.Load(path)
}

// stripCommand removes the command name that yargs leaves in args. It is
// the first non-flag argument; flags given before it stay in place.
func stripCommand(name string, args []string) []string {
	for i, arg := range args {
		if arg == name {
			return slices.Concat(args[:i], args[i+1:])
		}
		if !strings.HasPrefix(arg, "-") {
			break
		}
	}
	return args
}

// optionalPath returns the single positional argument, if any.
func optionalPath(cmd string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%s: unexpected arguments: %s", cmd, strings.Join(args[1:], " "))
}

func handleParse(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[parseFlagsParsed](stripCommand("parse", args))
	if err != nil {
		return err
	}
	path, err := optionalPath("parse", result.Args)
	if err != nil {
		return err
	}
	def, err := loadDefinition(path)
	if err != nil {
		return err
	}
	p, err := def.Build(argparse.WithOutput(stdout))
	if err != nil {
		return err
	}
	res, err := p.Parse(passthrough)
	if err != nil {
		return err
	}
	return printResults(stdout, p, res, result.Flags.Typed)
}

func handleUsage(_ context.Context, args []string) error {
	path, err := optionalPath("usage", stripCommand("usage", args))
	if err != nil {
		return err
	}
	def, err := loadDefinition(path)
	if err != nil {
		return err
	}
	p, err := def.Build()
	if err != nil {
		return err
	}
	return p.WriteHelp(stdout)
}

func handleCheck(ctx context.Context, args []string) error {
	result, err := yargs.ParseFlags[checkFlagsParsed](stripCommand("check", args))
	if err != nil {
		return err
	}
	if len(result.Args) == 0 {
		return errors.New("check: missing suite path")
	}
	c := tui.ForWriter(colorMode, stdout)
	failed := 0
	for _, path := range result.Args {
		s, err := argcheck.Load(path)
		if err != nil {
			return err
		}
		outcomes, err := argcheck.Run(ctx, s, result.Flags.Jobs)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := argcheck.Report(stdout, outcomes, c); err != nil {
			return err
		}
		failed += argcheck.Failed(outcomes)
	}
	if failed > 0 {
		return fmt.Errorf("%d case(s) failed", failed)
	}
	return nil
}

func handleDemo(_ context.Context, args []string) error {
	if args = stripCommand("demo", args); len(args) > 0 {
		return fmt.Errorf("demo: unexpected arguments: %s (put parser tokens after --)", strings.Join(args, " "))
	}
	p, err := argdef.Hacky().Build(argparse.WithOutput(stdout))
	if err != nil {
		return err
	}
	res, err := p.Parse(passthrough)
	if err != nil {
		return err
	}
	level, err := res.Get("loglevel").Int()
	if err != nil {
		return fmt.Errorf("loglevel: %w", err)
	}
	// --quiet wins over the demo's own log level.
	if logger.Threshold() < diag.Error {
		logger.SetThreshold(diag.Level(level))
	}
	threads := res.Get("threads").String()
	logger.Debugf("hacky", "threads=%s separator=%q", threads, res.Get("separator").String())
	logger.Infof("hacky", "checking %d source(s)", res.Get("sources").Len())
	if res.Get("silent").Len() > 0 {
		return nil
	}
	return printResults(stdout, p, res, false)
}

func handleInit(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[initFlagsParsed](stripCommand("init", args))
	if err != nil {
		return err
	}
	path, err := optionalPath("init", result.Args)
	if err != nil {
		return err
	}
	format := argdef.Format(strings.ToLower(result.Flags.Format))
	switch {
	case path == "" && format == "":
		path, format = argdef.FileName, argdef.FormatTOML
	case path == "":
		path = "argparse." + string(format)
	case format == "":
		if format, err = argdef.FormatOf(path); err != nil {
			return err
		}
	}
	if format != argdef.FormatTOML && format != argdef.FormatYAML {
		return fmt.Errorf("unknown definition format %q (want toml|yaml)", format)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if result.Flags.Force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if err := argdef.Hacky().Encode(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Infof(diag.DefaultComponent, "wrote %s", path)
	return nil
}

// printResults writes each destination followed by its values, indented two
// spaces. With typed set, values are converted with the destination's type.
func printResults(w io.Writer, p *argparse.Parser, res argparse.Results, typed bool) error {
	if len(res) == 0 {
		return nil
	}
	c := tui.ForWriter(colorMode, w)
	types := destTypes(p)

	var b strings.Builder
	b.WriteString(c.Paint("Parsed Arguments", color.Underline))
	b.WriteString("\n")
	for _, dest := range res.Dests() {
		r := res.Get(dest)
		typ := types[dest]
		if !typed || typ == "" {
			b.WriteString(dest + "\n")
			for _, v := range r.Values() {
				b.WriteString("  " + v + "\n")
			}
			continue
		}
		v, err := r.As(typ)
		if err != nil {
			return fmt.Errorf("%s: %w", dest, err)
		}
		fmt.Fprintf(&b, "%s (%s)\n", dest, typ)
		switch v := v.(type) {
		case []string:
			for _, s := range v {
				fmt.Fprintf(&b, "  %s\n", s)
			}
		case []int:
			for _, n := range v {
				fmt.Fprintf(&b, "  %d\n", n)
			}
		default:
			fmt.Fprintf(&b, "  %v\n", v)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// destTypes maps each destination to the first converting type declared for
// it.
func destTypes(p *argparse.Parser) map[string]string {
	types := make(map[string]string)
	for _, g := range p.Groups() {
		for _, a := range g.Args() {
			s := a.Spec()
			// "string" is the identity conversion; printing it raw keeps
			// every token instead of the first.
			if s.Type == "" || s.Type == "string" || types[s.Dest] != "" {
				continue
			}
			types[s.Dest] = s.Type
		}
	}
	return types
}
