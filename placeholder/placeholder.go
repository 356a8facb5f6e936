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

package placeholder

import (
	"strings"

	"github.com/Trevor-Strong/bracefmt/reporter"
)

// Span is a half-open byte range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Placeholder is a parsed `{...}`.
type Placeholder struct {
	// The text between the braces.
	Raw string
	// Offset of Raw in the template it came from; zero for a placeholder
	// parsed on its own.
	Offset int

	Arg Name

	// Only meaningful if HasOptions is set, i.e. Raw contains a ':'.
	Options    Options
	HasOptions bool

	// Relative to Raw.
	spec, opts Span
}

// Parse parses the text between a pair of braces.
func Parse(raw string) (Placeholder, error) {
	return ParseAt(raw, 0)
}

// ParseAt is like [Parse], but records that raw begins at offset in some
// enclosing template. Error positions and the spans returned by
// [Placeholder.SpecSpan] and [Placeholder.OptionsSpan] include offset.
func ParseAt(raw string, offset int) (Placeholder, error) {
	p := Placeholder{Raw: raw, Offset: offset}

	var pos int
	switch {
	case strings.HasPrefix(raw, "["):
		end := strings.IndexByte(raw[1:], ']')
		if end < 0 {
			return Placeholder{}, reporter.ErrorAt(offset, ErrInvalidArgument)
		}
		p.Arg = ByName(raw[1 : end+1])
		pos = end + 2
	case raw != "" && isDigit(raw[0]):
		p.Arg = ByIndex(int(raw[0] - '0'))
		pos = 1
	}

	colon := strings.IndexByte(raw[pos:], ':')
	if colon < 0 {
		p.spec = Span{pos, len(raw)}
		return p, nil
	}
	p.spec = Span{pos, pos + colon}

	start := pos + colon + 1
	opts, err := ParseOptionsAt(raw[start:], offset+start)
	if err != nil {
		return Placeholder{}, err
	}
	p.Options = opts
	p.HasOptions = true
	p.opts = Span{start, len(raw)}
	return p, nil
}

// Spec returns the opaque format spec, between the selector and the ':'.
func (p Placeholder) Spec() string {
	return p.Raw[p.spec.Start:p.spec.End]
}

// SpecSpan returns the location of [Placeholder.Spec] in the enclosing
// template.
func (p Placeholder) SpecSpan() Span {
	return Span{p.Offset + p.spec.Start, p.Offset + p.spec.End}
}

// OptionsText returns the text after the ':', if there was one.
func (p Placeholder) OptionsText() (string, bool) {
	if !p.HasOptions {
		return "", false
	}
	return p.Raw[p.opts.Start:p.opts.End], true
}

// OptionsSpan returns the location of [Placeholder.OptionsText] in the
// enclosing template.
func (p Placeholder) OptionsSpan() (Span, bool) {
	if !p.HasOptions {
		return Span{}, false
	}
	return Span{p.Offset + p.opts.Start, p.Offset + p.opts.End}, true
}
