// Copyright 2026 Trevor Strong
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Trevor-Strong/bracefmt/placeholder"
)

const (
	EOF         Kind = iota // End of the template.
	Text                    // A run of literal text with no braces.
	Escaped                 // A doubled brace standing for one literal brace.
	Placeholder             // A `{...}` placeholder.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Text:
		return "Text"
	case Escaped:
		return "Escaped"
	case Placeholder:
		return "Placeholder"
	default:
		return fmt.Sprintf("template.Kind(%d)", int(k))
	}
}

// Token is one piece of a template.
type Token struct {
	Kind Kind
	// Byte offset of the token in the template.
	Start int
	// The token's text in the template, including any braces.
	Raw string

	// The literal brace, if Kind is Escaped.
	Byte byte
	// The parsed placeholder, if Kind is Placeholder.
	Placeholder placeholder.Placeholder
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Start + len(t.Raw)
}

// String returns a description of the token's contents, for debugging.
func (t Token) String() string {
	switch t.Kind {
	case Text:
		return strconv.Quote(t.Raw)
	case Escaped:
		return strconv.QuoteRune(rune(t.Byte))
	case Placeholder:
		ph := &t.Placeholder
		arg := ph.Arg.String()
		if arg == "" {
			arg = "_"
		}

		var out strings.Builder
		fmt.Fprintf(&out, "arg=%s spec=%q", arg, ph.Spec())
		if !ph.HasOptions {
			return out.String()
		}

		opts := ph.Options
		if opts.Align != placeholder.AlignNone {
			fmt.Fprintf(&out, " align=%v", opts.Align)
		}
		if opts.HasFill {
			fmt.Fprintf(&out, " fill=%q", opts.Fill)
		}
		if !opts.Width.IsNone() {
			fmt.Fprintf(&out, " width=%v", opts.Width)
		}
		if !opts.Precision.IsNone() {
			fmt.Fprintf(&out, " prec=%v", opts.Precision)
		}
		return out.String()
	default:
		return ""
	}
}
