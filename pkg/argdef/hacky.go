// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argdef

func ptr[T any](v T) *T { return &v }

// Hacky returns the definition of "hacky", a duplicate file finder. It uses
// custom groups, flag actions, a store_const sharing its destination with a
// store optional, and its own help argument.
func Hacky() *Definition {
	return &Definition{
		Name:    "hacky",
		Version: "0.1.0",
		AddHelp: ptr(false),
		Groups: []Group{
			{
				Name: "Positional",
				Arguments: []Argument{
					{Flags: []string{"sources"}, Nargs: "+", Help: "Path(s) to SOURCE directories to check for file duplicates in."},
				},
			},
			{
				Name: "General",
				Arguments: []Argument{
					{Flags: []string{"--threads", "-t"}, Default: "1", Type: "int", Help: "How many threads to use."},
					{Flags: []string{"--recursive", "-r"}, Action: "store_true", Type: "bool", Help: "Walk all subdirectories of SOURCES."},
					{Flags: []string{"--noempty", "--skip-empty"}, Action: "store_true", Type: "bool", Help: "Skip empty files (all empty files hash to the same value, so it's worth skipping them)."},
					{Flags: []string{"--si", "--binary"}, Action: "store_true", Type: "bool", Help: "Use binary prefixes (KiB, MiB, etc.) instead of the default (KB, MB, etc.)."},
					{Flags: []string{"--zero"}, Dest: "separator", Default: "\n", Const: "\x00", Action: "store_const", Help: "Use a null-terminator instead of newline to separate files and groups in the output."},
				},
			},
			{
				Name: "Output",
				Arguments: []Argument{
					{Flags: []string{"--quiet", "-q"}, Action: "store_true", Type: "bool", Help: "Don't display the files (still displays anything else that is normally displayed)."},
					{Flags: []string{"--silent", "-s"}, Action: "store_true", Type: "bool", Help: "Show no output."},
					{Flags: []string{"--loglevel"}, Default: "30", Type: "int", Help: "Adjust the logging level manually."},
					{Flags: []string{"--debug"}, Dest: "loglevel", Action: "store_const", Const: "10", Help: "Show all output."},
				},
			},
			{
				Name: "Informational",
				Arguments: []Argument{
					{Flags: []string{"--progress"}, Action: "store_true", Type: "bool", Help: "Show a progress bar."},
					{Flags: []string{"--timed"}, Action: "store_true", Type: "bool", Help: "Show elapsed time from the moment parsing has finished to the moment the program is done doing its work."},
					{Flags: []string{"--wasted", "--wasted-space"}, Action: "store_true", Type: "bool", Help: "Show total space taken up by duplicate files (not including the unique one)."},
					{Flags: []string{"--version", "-V"}, Action: "version", Help: "Show the version and exit."},
					{Flags: []string{"--help", "-h"}, Action: "help", Help: "Show this help menu and then exit."},
				},
			},
		},
	}
}
