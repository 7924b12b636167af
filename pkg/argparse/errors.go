// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Components reported with every Error. They name the part of the parser
// that detected the problem.
const (
	ComponentAction = "Action"
	ComponentParser = "parser"
	ComponentPosArg = "ArgumentParser"
)

// Sentinel errors for early exits. Parse returns them unwrapped after the
// help text or version string has been written to the parser output.
var (
	// ErrHelp is returned when a help action was triggered.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned when a version action was triggered.
	ErrVersion = errors.New("version requested")
)

// Registration errors.
var (
	ErrNoFlags       = errors.New("no option strings")
	ErrMixedFlags    = errors.New("mixed positional and optional flags")
	ErrDuplicateFlag = errors.New("duplicate flag")
	ErrFieldSet      = errors.New("field already configured")
	ErrInvalidNargs  = errors.New("invalid nargs")
	ErrEmptyDest     = errors.New("empty dest")
	ErrFrozen        = errors.New("parser already in use")
)

// Parse errors.
var (
	ErrUnknownOptional   = errors.New("unrecognized optional argument")
	ErrAlreadyProvided   = errors.New("optional argument already provided")
	ErrAmbiguousValue    = errors.New("ambiguous value")
	ErrTooFewValues      = errors.New("too few values")
	ErrMissingOptional   = errors.New("missing required optional argument")
	ErrMissingPositional = errors.New("missing positional argument")
	ErrUnrecognizedArgs  = errors.New("unrecognized arguments")
	ErrUnknownAction     = errors.New("unrecognized action")
)

// ErrType is wrapped by every TypeError.
var ErrType = errors.New("type error")

// Error is returned for every registration and parse failure. Kind is one of
// the sentinel errors above and can be matched with errors.Is.
type Error struct {
	Component string
	Kind      error
	Msg       string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(component string, kind error, format string, args ...any) *Error {
	return &Error{
		Component: component,
		Kind:      kind,
		Msg:       fmt.Sprintf(format, args...),
	}
}

// TypeError is returned by Result accessors when a token cannot be
// interpreted as the requested type.
type TypeError struct {
	Value string // offending token
	Want  string // "bool", "int", ...
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("not a %s: %q", e.Want, e.Value)
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

// repr quotes a token for diagnostics only when it contains a space.
func repr(s string) string {
	if !strings.Contains(s, " ") {
		return s
	}
	return strconv.Quote(s)
}

func reprJoin(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = repr(v)
	}
	return strings.Join(parts, " ")
}
