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

import "strings"

// A ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	// Flag is the presence sentinel: the option was named on the
	// command line but carries no argument.  It reads as boolean
	// false for compatibility with callers that test the stored
	// value rather than the key's presence.
	Flag ValueKind = iota

	// Scalar is a single string argument.
	Scalar

	// Repeated is an ordered list of arguments accumulated from a
	// repeatable option.
	Repeated
)

// A Value is the parsed result for one option.  It is a tagged union:
// exactly one of the three variants is populated.  The zero Value is
// the Flag sentinel.
type Value struct {
	kind ValueKind
	str  string
	list []string
}

// scalarValue returns a Scalar Value holding s.
func scalarValue(s string) Value {
	return Value{kind: Scalar, str: s}
}

// Kind returns the variant v holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsFlag reports whether v is the presence sentinel.
func (v Value) IsFlag() bool {
	return v.kind == Flag
}

// Scalar returns the single argument value.  ok is false unless v is
// a Scalar.
func (v Value) Scalar() (_ string, ok bool) {
	if v.kind != Scalar {
		return "", false
	}
	return v.str, true
}

// Strings returns a copy of the accumulated arguments of a Repeated
// value in encounter order.  It returns nil for other variants.
func (v Value) Strings() []string {
	if v.kind != Repeated {
		return nil
	}
	return append([]string(nil), v.list...)
}

// String renders v for debugging.
func (v Value) String() string {
	switch v.kind {
	case Scalar:
		return v.str
	case Repeated:
		return "[" + strings.Join(v.list, " ") + "]"
	default:
		return "false"
	}
}

// Options maps long option names to their parsed values.  Only
// options that appeared on the command line have entries.
type Options map[string]Value

// Has reports whether the named option appeared on the command line.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns the scalar value of the named option.  ok is false
// if the option is absent or holds a different variant.
func (o Options) String(name string) (_ string, ok bool) {
	return o[name].Scalar()
}

// Strings returns the accumulated values of the named repeatable
// option, or nil if it never appeared.
func (o Options) Strings(name string) []string {
	return o[name].Strings()
}
