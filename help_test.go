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
	"bytes"
	"strings"
	"testing"
)

func TestHelp(t *testing.T) {
	spec := New()
	spec.MustAdd("help", "h", "show help")
	spec.MustAdd("name:", "n", "set name")
	spec.MustAdd("output::out.txt", "o", "output file")
	spec.MustAdd("define[]", "D", "define a symbol")
	spec.MustAdd("verbose", "", "verbose output")

	buf := new(bytes.Buffer)
	spec.Help(buf, "usage: prog [options]")

	want := strings.Join([]string{
		"usage: prog [options]",
		"-h  --help           show help",
		"-n  --name=arg       set name",
		"-o  --output=        output file",
		"-D  --define=arg     define a symbol",
		"    --verbose        verbose output",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Help output = %q; want %q", got, want)
	}
}

func TestHelpColumn(t *testing.T) {
	tests := []struct {
		key, short string
		want       string
	}{
		{"help", "h", "-h  --help"},
		{"help", "", "    --help"},
		{"name:", "n", "-n  --name=arg"},
		{"opt::def", "", "    --opt="},
		{"define[]", "D", "-D  --define=arg"},
	}
	for _, test := range tests {
		spec := New()
		spec.MustAdd(test.key, test.short, "")
		if got := spec.opts[0].helpColumn(); got != test.want {
			t.Errorf("helpColumn for Add(%q, %q) = %q; want %q", test.key, test.short, got, test.want)
		}
	}
}

func TestWriteWrapped(t *testing.T) {
	tests := []struct {
		text  string
		limit int
		col   int
		want  string
	}{
		{"short", 40, 4, "short"},
		{"no wrapping when limit is zero", 0, 4, "no wrapping when limit is zero"},
		{"one two three four", 9, 2, "one two\n  three\n  four"},
		{"overlongword tail", 5, 1, "overlongword\n tail"},
	}
	for _, test := range tests {
		sb := new(strings.Builder)
		writeWrapped(sb, test.text, test.limit, test.col)
		if got := sb.String(); got != test.want {
			t.Errorf("writeWrapped(%q, %d, %d) = %q; want %q", test.text, test.limit, test.col, got, test.want)
		}
	}
}
