// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argcheck

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yeetrun/argparse/pkg/tui"
)

const (
	namePrefix    = "tests:"
	minNameColumn = 24
)

// Report writes one line per outcome, then a summary:
//
//	tests:suite/one               -> [PASSED]
//	tests:suite/two               -> [FAILED] | {"sources": ["a"]} got error: missing positional argument: sources
//	1 passed, 1 failed
func Report(w io.Writer, outcomes []Outcome, c tui.Colorizer) error {
	width := minNameColumn
	for _, o := range outcomes {
		width = max(width, len(namePrefix)+len(o.Name)+1)
	}

	var b strings.Builder
	for _, o := range outcomes {
		name := namePrefix + o.Name
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", width-len(name)))
		b.WriteString(" -> ")
		if o.Passed {
			b.WriteString(c.Green("[PASSED]"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(c.Red("[FAILED]"))
		b.WriteString(" | ")
		b.WriteString(expected(o.Case))
		b.WriteString(" ")
		b.WriteString(c.Dim(actual(o)))
		b.WriteString("\n")
	}
	failed := Failed(outcomes)
	fmt.Fprintf(&b, "%d passed, %d failed\n", len(outcomes)-failed, failed)

	_, err := io.WriteString(w, b.String())
	return err
}

func expected(c Case) string {
	if c.Error != "" {
		return "{error: " + strconv.Quote(c.Error) + "}"
	}
	return formatValues(c.Want)
}

func actual(o Outcome) string {
	if o.Err != nil {
		return "got error: " + o.Err.Error()
	}
	return "got " + formatValues(o.Got)
}

// formatValues renders results as {"dest": ["v1", "v2"], ...} with sorted
// destinations.
func formatValues(m map[string][]string) string {
	dests := make([]string, 0, len(m))
	for d := range m {
		dests = append(dests, d)
	}
	slices.Sort(dests)

	parts := make([]string, len(dests))
	for i, d := range dests {
		vals := make([]string, len(m[d]))
		for j, v := range m[d] {
			vals[j] = strconv.Quote(v)
		}
		parts[i] = strconv.Quote(d) + ": [" + strings.Join(vals, ", ") + "]"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
