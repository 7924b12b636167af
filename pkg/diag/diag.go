// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag writes leveled diagnostics of the form
//
//	[component level]: message
//
// with the bracketed part colored by level.
package diag

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/tui"
)

// Level is a diagnostic severity. Larger is more severe.
type Level int

const (
	Debug    Level = 10
	Info     Level = 20
	Warning  Level = 30
	Error    Level = 40
	Critical Level = 50
)

var levelNames = map[Level]string{
	Debug:    "debug",
	Info:     "info",
	Warning:  "warning",
	Error:    "error",
	Critical: "critical",
}

var levelAttrs = map[Level][]color.Attribute{
	Debug:    {color.FgCyan},
	Info:     {color.FgGreen},
	Warning:  {color.FgYellow},
	Error:    {color.FgRed},
	Critical: {color.BgRed},
}

// String returns the level name, or level(N) for unnamed levels.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel accepts a level name ("warning") or its number ("30").
func ParseLevel(s string) (Level, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return Level(n), nil
	}
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Logger writes diagnostics at or above its threshold.
type Logger struct {
	out       *log.Logger
	color     tui.Colorizer
	threshold atomic.Int64
}

// New returns a Logger writing to w that reports every level.
func New(w io.Writer, c tui.Colorizer) *Logger {
	l := &Logger{
		out:   log.New(w, "", 0),
		color: c,
	}
	l.threshold.Store(int64(Debug))
	return l
}

// SetThreshold drops diagnostics below level.
func (l *Logger) SetThreshold(level Level) {
	l.threshold.Store(int64(level))
}

// Threshold returns the lowest level that is written.
func (l *Logger) Threshold() Level {
	return Level(l.threshold.Load())
}

// Log writes msg for component at level.
func (l *Logger) Log(level Level, component, msg string) {
	if level < l.Threshold() {
		return
	}
	tag := "[" + component + " " + level.String() + "]"
	l.out.Print(l.color.Paint(tag, levelAttrs[level]...) + ": " + msg)
}

// Criticalf, Errorf, Warnf, Infof and Debugf format a message and log it
// at the named level.
func (l *Logger) Criticalf(component, format string, args ...any) {
	l.Log(Critical, component, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(component, format string, args ...any) {
	l.Log(Error, component, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(component, format string, args ...any) {
	l.Log(Warning, component, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(component, format string, args ...any) {
	l.Log(Info, component, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(component, format string, args ...any) {
	l.Log(Debug, component, fmt.Sprintf(format, args...))
}

// DefaultComponent is used by Report for errors that do not carry one.
const DefaultComponent = "argparse"

// Report logs err at Error level under the component recorded in the
// *argparse.Error it wraps, if any. Help and version exits are not errors
// and are not reported.
func (l *Logger) Report(err error) {
	if err == nil || errors.Is(err, argparse.ErrHelp) || errors.Is(err, argparse.ErrVersion) {
		return
	}
	component := DefaultComponent
	var perr *argparse.Error
	if errors.As(err, &perr) && perr.Component != "" {
		component = perr.Component
	}
	l.Log(Error, component, err.Error())
}
