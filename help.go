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
	"io"
	"strings"

	"gg-scm.io/pkg/getopt/internal/terminal"
)

// helpGutter is the number of spaces between the widest option column
// and the description column.
const helpGutter = 5

// minWrapWidth is the narrowest description column worth wrapping to.
const minWrapWidth = 20

// Help writes header followed by a two-column listing of the options
// in registration order.  Descriptions are aligned to a common column
// computed from the widest option.  If w is a terminal with a known
// width, long descriptions wrap with continuation lines aligned to
// the description column.  Help never fails; write errors are
// ignored, matching its use on the way out of a program.
func (s *Spec) Help(w io.Writer, header string) {
	left := make([]string, len(s.opts))
	width := 0
	for i, opt := range s.opts {
		left[i] = opt.helpColumn()
		if len(left[i]) > width {
			width = len(left[i])
		}
	}
	descCol := width + helpGutter
	wrapAt := 0
	if cols, ok := terminal.Width(w); ok && cols-descCol >= minWrapWidth {
		wrapAt = cols - descCol
	}

	sb := new(strings.Builder)
	sb.WriteString(header)
	sb.WriteByte('\n')
	for i, opt := range s.opts {
		sb.WriteString(left[i])
		for pad := descCol - len(left[i]); pad > 0; pad-- {
			sb.WriteByte(' ')
		}
		writeWrapped(sb, opt.usage, wrapAt, descCol)
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// helpColumn renders the option column: the short name (or aligning
// spaces), the long name, and an annotation of how the option takes
// its argument.
func (o *option) helpColumn() string {
	sb := new(strings.Builder)
	if o.short != 0 {
		sb.WriteByte('-')
		sb.WriteByte(o.short)
		sb.WriteString("  ")
	} else {
		sb.WriteString("    ")
	}
	sb.WriteString("--")
	sb.WriteString(o.long)
	switch o.kind {
	case requiredArg, repeatedArg:
		sb.WriteString("=arg")
	case optionalArg:
		sb.WriteByte('=')
	}
	return sb.String()
}

// writeWrapped writes text to sb, breaking at spaces so no line
// exceeds limit columns and indenting continuation lines to col.  A
// limit of zero disables wrapping.
func writeWrapped(sb *strings.Builder, text string, limit, col int) {
	if limit <= 0 {
		sb.WriteString(text)
		return
	}
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+1+len(word) > limit {
			sb.WriteByte('\n')
			for pad := 0; pad < col; pad++ {
				sb.WriteByte(' ')
			}
			line = 0
		} else if line > 0 {
			sb.WriteByte(' ')
			line++
		}
		sb.WriteString(word)
		line += len(word)
	}
}
