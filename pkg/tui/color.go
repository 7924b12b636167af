// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Mode selects when output is colored.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses a --color value. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways, ModeNever:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto|always|never)", s)
}

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in ANSI attributes when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer unless enabled is false or the
// environment asks for plain output (NO_COLOR, TERM unset or dumb).
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter resolves mode for output going to w. In ModeAuto, w must be a
// terminal and the environment must allow color.
func ForWriter(mode Mode, w io.Writer) Colorizer {
	switch mode {
	case ModeAlways:
		return Colorizer{Enabled: true}
	case ModeNever:
		return Colorizer{}
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return Colorizer{}
	}
	return NewColorizer(isTerminalFn(int(f.Fd())))
}

// Paint wraps text in the escape sequence for attrs.
func (c Colorizer) Paint(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	col := color.New(attrs...)
	// color.NoColor is decided globally from os.Stdout; c already decided.
	col.EnableColor()
	return col.Sprint(text)
}

// Red, Green, Yellow and Dim paint text with a single foreground color.
func (c Colorizer) Red(text string) string    { return c.Paint(text, color.FgRed) }
func (c Colorizer) Green(text string) string  { return c.Paint(text, color.FgGreen) }
func (c Colorizer) Yellow(text string) string { return c.Paint(text, color.FgYellow) }
func (c Colorizer) Dim(text string) string    { return c.Paint(text, color.FgHiBlack) }
