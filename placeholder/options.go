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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

// Alignment is where a rendered value sits within its minimum width.
type Alignment uint8

const (
	AlignNone   Alignment = iota // Renderer's choice.
	AlignLeft                    // '<'
	AlignRight                   // '>'
	AlignCenter                  // '^'
)

// String implements [fmt.Stringer].
func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "None"
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignCenter:
		return "Center"
	default:
		return fmt.Sprintf("placeholder.Alignment(%d)", int(a))
	}
}

// Marker returns the template character for a, or 0 for AlignNone.
func (a Alignment) Marker() byte {
	switch a {
	case AlignLeft:
		return '<'
	case AlignRight:
		return '>'
	case AlignCenter:
		return '^'
	default:
		return 0
	}
}

func alignment(b byte) (Alignment, bool) {
	switch b {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	default:
		return AlignNone, false
	}
}

// SizeKind is the kind of a [Size].
type SizeKind uint8

const (
	SizeNone    SizeKind = iota // Not given.
	SizeLiteral                 // Fixed in the template.
	SizeArg                     // Taken from an argument when rendering.
)

// String implements [fmt.Stringer].
func (k SizeKind) String() string {
	switch k {
	case SizeNone:
		return "None"
	case SizeLiteral:
		return "Literal"
	case SizeArg:
		return "Arg"
	default:
		return fmt.Sprintf("placeholder.SizeKind(%d)", int(k))
	}
}

// Size is a width or precision.
type Size struct {
	Kind SizeKind
	// Set if Kind is SizeLiteral.
	Value uint
	// Set if Kind is SizeArg: the text between the brackets of `[...]`.
	Arg string
}

// Literal returns a fixed Size.
func Literal(v uint) Size {
	return Size{Kind: SizeLiteral, Value: v}
}

// ArgRef returns a Size deferred to the named argument.
func ArgRef(name string) Size {
	return Size{Kind: SizeArg, Arg: name}
}

// IsNone returns whether no size was given.
func (s Size) IsNone() bool {
	return s.Kind == SizeNone
}

// String returns s as it would be written in a template.
func (s Size) String() string {
	switch s.Kind {
	case SizeLiteral:
		return strconv.FormatUint(uint64(s.Value), 10)
	case SizeArg:
		return "[" + s.Arg + "]"
	default:
		return ""
	}
}

// Options is the layout part of a placeholder, after the ':'.
//
// The zero value is the result of parsing an empty string.
type Options struct {
	Align Alignment
	// Only meaningful if HasFill is set.
	Fill    rune
	HasFill bool

	Width     Size
	Precision Size
}

// String returns o in the form [ParseOptions] accepts.
func (o Options) String() string {
	var out strings.Builder
	if o.Align != AlignNone {
		if o.HasFill {
			out.WriteRune(o.Fill)
		}
		out.WriteByte(o.Align.Marker())
	} else if o.HasFill && o.Width.Kind == SizeLiteral && o.Width.Value != 0 {
		// The only way to get a fill without an alignment is the zero-pad
		// shorthand. A lone "0" is both the shorthand and the width.
		out.WriteByte('0')
	}
	out.WriteString(o.Width.String())
	if !o.Precision.IsNone() {
		out.WriteByte('.')
		out.WriteString(o.Precision.String())
	}
	return out.String()
}

// ParseOptions parses the text after a placeholder's ':'.
func ParseOptions(text string) (Options, error) {
	return ParseOptionsAt(text, 0)
}

// ParseOptionsAt is like [ParseOptions], but positions in errors are offset by
// offset, the position of text within an enclosing template.
func ParseOptionsAt(text string, offset int) (Options, error) {
	var opts Options
	if text == "" {
		return opts, nil
	}

	p := optionsParser{text: text, offset: offset}

	c0, n, err := utf8codec.Decode(text)
	if err != nil {
		return Options{}, reporter.ErrorAt(offset, fmt.Errorf("%w: %w", ErrInvalidUTF8, err))
	}
	if align, ok := p.alignAt(n); ok {
		opts.Fill, opts.HasFill = c0, true
		opts.Align = align
		p.pos = n + 1
	} else if align, ok := p.alignAt(0); ok {
		opts.Align = align
		p.pos = 1
	} else if n > 1 {
		// A wide character can only be a fill, and fills need an alignment.
		return Options{}, p.errorAt(0)
	}

	if p.peekDigit() && !opts.HasFill && p.text[p.pos] == '0' {
		opts.Fill, opts.HasFill = '0', true
	}
	if opts.Width, err = p.size(true); err != nil {
		return Options{}, err
	}

	if p.peek() == '.' {
		p.pos++
		if opts.Precision, err = p.size(false); err != nil {
			return Options{}, err
		}
	}

	if !p.done() {
		return Options{}, p.errorAt(p.pos)
	}
	return opts, nil
}

type optionsParser struct {
	text        string
	pos, offset int
}

func (p *optionsParser) done() bool {
	return p.pos >= len(p.text)
}

// peek returns the next byte, or 0 at the end.
func (p *optionsParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.text[p.pos]
}

func (p *optionsParser) peekDigit() bool {
	return isDigit(p.peek())
}

func (p *optionsParser) alignAt(i int) (Alignment, bool) {
	if i >= len(p.text) {
		return AlignNone, false
	}
	return alignment(p.text[i])
}

func (p *optionsParser) errorAt(i int) error {
	return reporter.ErrorAt(p.offset+i, ErrInvalidOptions)
}

// size parses a width or precision, if one is present.
//
// A width's digit run may only be followed by '.' or the end of the text;
// a precision's only by the end.
func (p *optionsParser) size(width bool) (Size, error) {
	switch {
	case p.peekDigit():
		start := p.pos
		for p.peekDigit() {
			p.pos++
		}
		if !p.done() && (!width || p.peek() != '.') {
			return Size{}, p.errorAt(p.pos)
		}

		v, ok := parseDecimal[uint](p.text[start:p.pos])
		if !ok {
			return Size{}, p.errorAt(start)
		}
		return Literal(v), nil

	case p.peek() == '[':
		start := p.pos
		end := strings.IndexByte(p.text[start+1:], ']')
		if end < 0 {
			return Size{}, p.errorAt(start)
		}
		p.pos = start + end + 2
		return ArgRef(p.text[start+1 : start+1+end]), nil

	default:
		return Size{}, nil
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseDecimal parses a run of ASCII digits, reporting false on overflow.
func parseDecimal[T constraints.Unsigned](digits string) (T, bool) {
	var v T
	limit := ^T(0)
	for i := range len(digits) {
		d := T(digits[i] - '0')
		if v > (limit-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}
