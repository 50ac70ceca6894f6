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

// Package getopt parses command-line options against a compact
// Getopt::Long-style specification.  An option is registered under a
// key whose suffix selects its behavior: a bare key is a flag, a
// trailing ':' requires an argument, a trailing '::' makes the
// argument optional (with an inline default after the colons), and a
// trailing "[]" makes the option repeatable.  Unlike the Go standard
// library flag package, it distinguishes long "--name" options from
// single-character "-x" options and supports grouping several short
// flags after one dash.
package getopt // import "gg-scm.io/pkg/getopt"

import (
	"strconv"
	"strings"
)

// A Spec is an ordered set of option definitions.  The zero value is
// an empty specification.  Insertion order is preserved for help
// rendering and for iteration with Names.
type Spec struct {
	opts  []*option
	long  map[string]*option
	short map[byte]*option
}

// An option is a single definition after its key suffix has been
// interpreted.
type option struct {
	long  string
	short byte // 0 if none
	kind  kind
	def   string // optional-argument inline default; "" means the flag sentinel
	usage string
}

// kind classifies how an option treats arguments.
type kind int

const (
	flagOnly kind = iota
	requiredArg
	optionalArg
	repeatedArg
)

// New returns a new, empty specification.
func New() *Spec {
	return new(Spec)
}

// Add registers an option.  key is the long name plus an arity suffix
// (see the package documentation), short is a single-character
// abbreviation or empty, and usage is the help description.  Add
// returns a *SpecError if the key does not match the suffix grammar
// or if the long or short name collides with an earlier registration.
func (s *Spec) Add(key, short, usage string) error {
	name, k, def, err := parseKey(key)
	if err != nil {
		return err
	}
	if len(short) > 1 {
		return &SpecError{Key: key, Reason: "short name must be a single character"}
	}
	if _, exists := s.long[name]; exists {
		return &SpecError{Key: key, Reason: "duplicate option name " + strconv.Quote(name)}
	}
	opt := &option{
		long:  name,
		kind:  k,
		def:   def,
		usage: usage,
	}
	if short != "" {
		c := short[0]
		if prev, exists := s.short[c]; exists {
			return &SpecError{Key: key, Reason: "short name " + strconv.Quote(short) + " already used by " + strconv.Quote(prev.long)}
		}
		opt.short = c
	}
	if s.long == nil {
		s.long = make(map[string]*option)
		s.short = make(map[byte]*option)
	}
	s.opts = append(s.opts, opt)
	s.long[name] = opt
	if opt.short != 0 {
		s.short[opt.short] = opt
	}
	return nil
}

// MustAdd is like Add but panics on error.  It simplifies building
// static specifications.
func (s *Spec) MustAdd(key, short, usage string) {
	if err := s.Add(key, short, usage); err != nil {
		panic(err)
	}
}

// Names returns the long names of all registered options in
// registration order.
func (s *Spec) Names() []string {
	names := make([]string, len(s.opts))
	for i, opt := range s.opts {
		names[i] = opt.long
	}
	return names
}

// parseKey interprets a specification key's arity suffix.  It is a
// hand-written scan, not a regexp, so that malformed keys are rejected
// with a precise reason at registration time.
func parseKey(key string) (name string, k kind, def string, err error) {
	i := strings.IndexAny(key, ":[")
	switch {
	case i == -1:
		name, k = key, flagOnly
	case key[i] == '[':
		if i != len(key)-2 || key[i+1] != ']' {
			return "", 0, "", &SpecError{Key: key, Reason: "text after \"[]\" suffix"}
		}
		name, k = key[:i], repeatedArg
	case strings.HasPrefix(key[i:], "::"):
		// Everything after the double colon is the default value,
		// which may itself contain colons.
		name, k, def = key[:i], optionalArg, key[i+2:]
	case i == len(key)-1:
		name, k = key[:i], requiredArg
	default:
		return "", 0, "", &SpecError{Key: key, Reason: "text after ':' suffix"}
	}
	if name == "" {
		return "", 0, "", &SpecError{Key: key, Reason: "empty option name"}
	}
	if strings.HasPrefix(name, "-") {
		return "", 0, "", &SpecError{Key: key, Reason: "option name may not start with '-'"}
	}
	if j := strings.IndexAny(name, "=:[] \t"); j != -1 {
		return "", 0, "", &SpecError{Key: key, Reason: "invalid character " + strconv.QuoteRune(rune(name[j])) + " in option name"}
	}
	return name, k, def, nil
}

// defaultValue returns the value stored when an option is named
// without an argument: the inline default for an optional-argument
// option that declares one, otherwise the flag sentinel.
func (o *option) defaultValue() Value {
	if o.kind == optionalArg && o.def != "" {
		return Value{kind: Scalar, str: o.def}
	}
	return Value{kind: Flag}
}
