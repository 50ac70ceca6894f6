// Copyright 2019 The gg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// getopt normalizes command-line arguments for shell scripts, in the
// manner of getopt(1) but driven by the suffix-grammar option
// specifications of gg-scm.io/pkg/getopt.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gg-scm.io/pkg/getopt"
	"gg-scm.io/pkg/getopt/internal/escape"
	"github.com/fatih/color"
	"golang.org/x/xerrors"
)

const synopsis = "getopt [options] [--] ARG [...]"

const description = "getopt parses ARG [...] against the option definitions given with -s\n" +
	"and prints a shell-quoted normalization: each recognized option in\n" +
	"definition order, then \"--\", then the remaining arguments.  The\n" +
	"output is suitable for `eval set -- \"$(getopt ...)\"`.\n" +
	"\n" +
	"Each SPEC is KEY[,SHORT[,DESCRIPTION]].  KEY is a long option name\n" +
	"with an optional suffix: \":\" requires an argument, \"::\" makes the\n" +
	"argument optional (text after the colons is its default), and \"[]\"\n" +
	"makes the option repeatable."

func main() {
	pctx := &processContext{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if err := run(pctx, os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		if isUsage(err) {
			os.Exit(64)
		}
		os.Exit(1)
	}
}

// processContext is the state that main passes into run, so tests can
// substitute their own streams.
type processContext struct {
	stdout io.Writer
	stderr io.Writer
}

func run(pctx *processContext, args []string) error {
	own := getopt.New()
	own.MustAdd("spec[]", "s", "option definition KEY[,SHORT[,DESCRIPTION]]")
	own.MustAdd("print-help", "p", "print help for the given definitions instead of parsing")
	own.MustAdd("header::Options:", "H", "header line used by --print-help")
	own.MustAdd("help", "h", "show this help")

	opts, operands, err := getopt.Parse(own, args)
	if err != nil {
		return usagef("%v", err)
	}
	if opts.Has("help") {
		own.Help(pctx.stdout, synopsis+"\n\n"+description+"\n")
		return nil
	}

	spec := getopt.New()
	for _, entry := range opts.Strings("spec") {
		key, short, usage := splitSpecEntry(entry)
		if err := spec.Add(key, short, usage); err != nil {
			return usagef("%v", xerrors.Errorf("-s %s: %w", entry, err))
		}
	}
	if opts.Has("print-help") {
		header, ok := opts.String("header")
		if !ok {
			header = "Options:"
		}
		spec.Help(pctx.stdout, header)
		return nil
	}
	parsed, rest, err := getopt.Parse(spec, operands)
	if err != nil {
		return xerrors.Errorf("getopt: %w", err)
	}
	fmt.Fprintln(pctx.stdout, normalize(spec, parsed, rest))
	return nil
}

// splitSpecEntry splits a -s argument into its at most three
// comma-separated fields.  The description may contain commas.
func splitSpecEntry(entry string) (key, short, usage string) {
	parts := strings.SplitN(entry, ",", 3)
	key = parts[0]
	if len(parts) > 1 {
		short = parts[1]
	}
	if len(parts) > 2 {
		usage = parts[2]
	}
	return
}

// normalize renders the parse result as one shell-quotable line:
// options in definition order, the "--" divider, then the positional
// arguments.
func normalize(spec *getopt.Spec, opts getopt.Options, operands []string) string {
	var words []string
	for _, name := range spec.Names() {
		v, ok := opts[name]
		if !ok {
			continue
		}
		switch v.Kind() {
		case getopt.Scalar:
			s, _ := v.Scalar()
			words = append(words, "--"+name, escape.Shell(s))
		case getopt.Repeated:
			for _, s := range v.Strings() {
				words = append(words, "--"+name, escape.Shell(s))
			}
		default:
			words = append(words, "--"+name)
		}
	}
	words = append(words, "--")
	for _, a := range operands {
		words = append(words, escape.Shell(a))
	}
	return strings.Join(words, " ")
}

type usageError string

func usagef(format string, args ...interface{}) error {
	e := usageError(fmt.Sprintf(format, args...))
	return &e
}

func (ue *usageError) Error() string {
	return "getopt: usage: " + string(*ue)
}

func isUsage(e error) bool {
	_, ok := e.(*usageError)
	return ok
}
