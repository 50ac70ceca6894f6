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

package getopt

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse scans args against spec and returns the parsed options along
// with the unconsumed trailing arguments.  args must not include the
// program name; callers typically pass os.Args[1:].
//
// Scanning proceeds left to right and stops at "--" (consumed), at
// the first token that is not an option, or at the end of args.
// Everything not consumed is returned in rest with its relative order
// preserved.  On error both return values are nil; parsing has no
// partial results.
func Parse(spec *Spec, args []string) (opts Options, rest []string, err error) {
	p := &parser{
		spec: spec,
		args: args,
		opts: make(Options),
	}
	if err := p.run(); err != nil {
		return nil, nil, err
	}
	return p.opts, p.rest, nil
}

// A parser holds the scan state: the argument cursor, the
// specification's lookup tables, and the accumulating result.  All
// state is explicit here rather than captured by closures so each
// step reads as a plain method.
type parser struct {
	spec *Spec
	args []string
	i    int
	opts Options
	rest []string
}

func (p *parser) run() error {
	for p.i < len(p.args) {
		a := p.args[p.i]
		switch {
		case a == "--":
			p.i++
			p.rest = p.args[p.i:]
			return nil
		case strings.HasPrefix(a, "--"):
			p.i++
			if err := p.longOption(a[2:]); err != nil {
				return err
			}
		case len(a) >= 2 && a[0] == '-':
			p.i++
			if err := p.shortOption(a[1:]); err != nil {
				return err
			}
		default:
			// First positional argument (or a bare "-") ends the
			// scan without being consumed.
			p.rest = p.args[p.i:]
			return nil
		}
	}
	return nil
}

// longOption handles "--name" and "--name=value".  body is the token
// with the leading dashes removed.
func (p *parser) longOption(body string) error {
	name, val, hasVal := splitValue(body)
	opt := p.spec.long[name]
	if opt == nil {
		return &ParseError{Code: UnrecognizedOption, Opt: "--" + name}
	}
	return p.store(opt, "--"+name, val, hasVal)
}

// shortOption handles "-x", "-x=value", and grouped flags like "-xyz".
// body is the token with the leading dash removed.
func (p *parser) shortOption(body string) error {
	name, val, hasVal := splitValue(body)
	if !hasVal && len(name) > 1 {
		// Grouped short flags.  Every character must name an option
		// that can stand without an argument.
		for j := 0; j < len(name); j++ {
			opt := p.spec.short[name[j]]
			as := "-" + string(name[j])
			if opt == nil {
				return &ParseError{Code: UnrecognizedOption, Opt: as}
			}
			if opt.kind == requiredArg || opt.kind == repeatedArg {
				return &ParseError{Code: MashedArgRequired, Opt: as}
			}
			p.opts[opt.long] = opt.defaultValue()
		}
		return nil
	}
	if len(name) != 1 {
		return &ParseError{Code: UnrecognizedOption, Opt: "-" + name}
	}
	opt := p.spec.short[name[0]]
	if opt == nil {
		return &ParseError{Code: UnrecognizedOption, Opt: "-" + name}
	}
	return p.store(opt, "-"+name, val, hasVal)
}

// store records a value for opt, consuming a following token when the
// option takes an argument and none was supplied inline.  as is the
// option as written, for error messages.
func (p *parser) store(opt *option, as string, val string, hasVal bool) error {
	if hasVal {
		if opt.kind == flagOnly {
			return &ParseError{Code: UnexpectedArgument, Opt: as}
		}
		if val == "" {
			return &ParseError{Code: EmptyValueAfterEquals, Opt: as}
		}
		p.set(opt, val)
		return nil
	}
	switch opt.kind {
	case requiredArg, repeatedArg:
		if p.i >= len(p.args) {
			return &ParseError{Code: MissingRequiredArgument, Opt: as}
		}
		p.set(opt, p.args[p.i])
		p.i++
	case optionalArg:
		// An optional argument is only taken from the next token if
		// that token cannot be an option itself.
		if p.i < len(p.args) && !strings.HasPrefix(p.args[p.i], "-") {
			p.set(opt, p.args[p.i])
			p.i++
		} else {
			p.opts[opt.long] = opt.defaultValue()
		}
	default:
		p.opts[opt.long] = Value{kind: Flag}
	}
	return nil
}

// set stores a string argument, appending for repeatable options and
// overwriting otherwise.
func (p *parser) set(opt *option, arg string) {
	if opt.kind == repeatedArg {
		v := p.opts[opt.long]
		v.kind = Repeated
		v.list = append(v.list, arg)
		p.opts[opt.long] = v
		return
	}
	p.opts[opt.long] = scalarValue(arg)
}

// splitValue splits an option body at the first '='.
func splitValue(body string) (name, value string, hasValue bool) {
	i := strings.IndexByte(body, '=')
	if i == -1 {
		return body, "", false
	}
	return body[:i], body[i+1:], true
}

// An ErrorCode classifies a command-line parse failure.
type ErrorCode int

const (
	// UnrecognizedOption means a long or short name is not present
	// in the specification.
	UnrecognizedOption ErrorCode = iota

	// UnexpectedArgument means a value was supplied to an option
	// that takes none.
	UnexpectedArgument

	// EmptyValueAfterEquals means "=" was written with nothing after
	// it.
	EmptyValueAfterEquals

	// MissingRequiredArgument means input ended before a required
	// argument's value token.
	MissingRequiredArgument

	// MashedArgRequired means a grouped short flag names an option
	// that requires an argument.
	MashedArgRequired
)

// A ParseError reports a malformed command line.  Opt is the option
// as it was written, like "--frob" or "-x".
type ParseError struct {
	Code ErrorCode
	Opt  string
}

func (e *ParseError) Error() string {
	switch e.Code {
	case UnrecognizedOption:
		return fmt.Sprintf("unrecognized option %s", e.Opt)
	case UnexpectedArgument:
		return fmt.Sprintf("option %s does not take an argument", e.Opt)
	case EmptyValueAfterEquals:
		return fmt.Sprintf("option %s: empty value after '='", e.Opt)
	case MissingRequiredArgument:
		return fmt.Sprintf("option %s requires an argument", e.Opt)
	case MashedArgRequired:
		return fmt.Sprintf("option %s requires an argument and cannot be grouped", e.Opt)
	default:
		return fmt.Sprintf("invalid option %s", e.Opt)
	}
}

// A SpecError reports an invalid specification entry, detected when
// the entry is registered and before any argument is read.
type SpecError struct {
	Key    string
	Reason string
}

func (e *SpecError) Error() string {
	return "option spec " + strconv.Quote(e.Key) + ": " + e.Reason
}
