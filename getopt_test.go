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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key string

		name    string
		kind    kind
		def     string
		invalid bool
	}{
		{key: "help", name: "help", kind: flagOnly},
		{key: "name:", name: "name", kind: requiredArg},
		{key: "opt::", name: "opt", kind: optionalArg},
		{key: "opt::def", name: "opt", kind: optionalArg, def: "def"},
		{key: "opt::a:b", name: "opt", kind: optionalArg, def: "a:b"},
		{key: "define[]", name: "define", kind: repeatedArg},
		{key: "long-name", name: "long-name", kind: flagOnly},
		{key: "", invalid: true},
		{key: ":", invalid: true},
		{key: "::", invalid: true},
		{key: "[]", invalid: true},
		{key: "a:b", invalid: true},
		{key: "a[]b", invalid: true},
		{key: "a[", invalid: true},
		{key: "a]b", invalid: true},
		{key: "a=b", invalid: true},
		{key: "a b", invalid: true},
		{key: "-a", invalid: true},
	}
	for _, test := range tests {
		name, k, def, err := parseKey(test.key)
		if test.invalid {
			if err == nil {
				t.Errorf("parseKey(%q) = %q, %d, %q, <nil>; want error", test.key, name, k, def)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseKey(%q): %v", test.key, err)
			continue
		}
		if name != test.name || k != test.kind || def != test.def {
			t.Errorf("parseKey(%q) = %q, %d, %q; want %q, %d, %q", test.key, name, k, def, test.name, test.kind, test.def)
		}
	}
}

func TestSpecAdd(t *testing.T) {
	t.Run("DuplicateLongName", func(t *testing.T) {
		spec := New()
		if err := spec.Add("name:", "n", ""); err != nil {
			t.Fatal(err)
		}
		if err := spec.Add("name", "", ""); err == nil {
			t.Error("Add(\"name\") after Add(\"name:\") did not fail")
		}
	})
	t.Run("DuplicateShortName", func(t *testing.T) {
		spec := New()
		if err := spec.Add("name:", "n", ""); err != nil {
			t.Fatal(err)
		}
		if err := spec.Add("dry-run", "n", ""); err == nil {
			t.Error("second Add with short name \"n\" did not fail")
		}
	})
	t.Run("LongShortName", func(t *testing.T) {
		spec := New()
		if err := spec.Add("name:", "na", ""); err == nil {
			t.Error("Add with two-character short name did not fail")
		}
	})
	t.Run("MalformedKey", func(t *testing.T) {
		spec := New()
		err := spec.Add("name:extra", "", "")
		if err == nil {
			t.Fatal("Add(\"name:extra\") did not fail")
		}
		if _, ok := err.(*SpecError); !ok {
			t.Errorf("Add(\"name:extra\") error type = %T; want *SpecError", err)
		}
	})
}

func TestSpecNames(t *testing.T) {
	spec := New()
	spec.MustAdd("zebra", "z", "")
	spec.MustAdd("apple:", "a", "")
	spec.MustAdd("mango[]", "", "")
	want := []string{"zebra", "apple", "mango"}
	if diff := cmp.Diff(want, spec.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
}

func TestMustAddPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAdd with malformed key did not panic")
		}
	}()
	New().MustAdd("a:b", "", "")
}
