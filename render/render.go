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

package render

import (
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

var (
	// ErrUnknownSpec is returned for a spec this package does not implement.
	ErrUnknownSpec = errors.New("unknown format spec")
	// ErrBadValue is returned when a value cannot be written with the
	// requested spec.
	ErrBadValue = errors.New("value does not support format spec")
	// ErrLayoutTooLarge is returned for a width or precision above [MaxSize].
	ErrLayoutTooLarge = errors.New("width or precision too large")
)

// MaxSize is the largest width or precision a [Layout] may carry.
const MaxSize = 1_000_000

// Layout is a placeholder's options with every size resolved.
type Layout struct {
	Align placeholder.Alignment

	Fill    rune
	HasFill bool

	Width    int
	HasWidth bool

	Precision    int
	HasPrecision bool
}

// Renderer writes values. The zero value measures widths in grapheme
// clusters.
type Renderer struct {
	// If set, widths are measured in terminal cells, so that wide characters
	// count twice.
	TerminalCells bool
}

// Append formats value with the zero [Renderer].
func Append(dst []byte, spec string, layout Layout, value any) ([]byte, error) {
	return Renderer{}.Append(dst, spec, layout, value)
}

// Append formats value according to spec and layout, and appends the result
// to dst. On error, dst is returned unchanged.
func (r Renderer) Append(dst []byte, spec string, layout Layout, value any) ([]byte, error) {
	if (layout.HasWidth && layout.Width > MaxSize) || (layout.HasPrecision && layout.Precision > MaxSize) {
		return dst, fmt.Errorf("%w: width %d, precision %d", ErrLayoutTooLarge, layout.Width, layout.Precision)
	}
	body, numeric, err := format(spec, layout, value)
	if err != nil {
		return dst, err
	}
	return r.pad(dst, body, numeric, layout)
}

func (r Renderer) measure(s string) int {
	if r.TerminalCells {
		return uniseg.StringWidth(s)
	}
	return uniseg.GraphemeClusterCount(s)
}

func (r Renderer) pad(dst []byte, body string, numeric bool, layout Layout) ([]byte, error) {
	missing := layout.Width - r.measure(body)
	if !layout.HasWidth || missing <= 0 {
		return append(dst, body...), nil
	}

	fill := ' '
	if layout.HasFill {
		fill = layout.Fill
	}
	enc, err := utf8codec.EncodeArray(fill)
	if err != nil {
		return dst, fmt.Errorf("fill %U: %w", fill, err)
	}

	// A fill that is wider than one unit is repeated as often as it fits,
	// and the remainder is made up with spaces.
	unit := max(r.measure(enc.String()), 1)
	padding := func(dst []byte, n int) []byte {
		for range n / unit {
			dst = append(dst, enc.Bytes()...)
		}
		for range n % unit {
			dst = append(dst, ' ')
		}
		return dst
	}

	align := layout.Align
	if align == placeholder.AlignNone {
		if numeric && layout.HasFill && fill == '0' {
			// Zero padding goes between the sign and the digits.
			if body != "" && (body[0] == '-' || body[0] == '+') {
				dst = append(dst, body[0])
				body = body[1:]
			}
			dst = padding(dst, missing)
			return append(dst, body...), nil
		}

		align = placeholder.AlignLeft
		if numeric {
			align = placeholder.AlignRight
		}
	}

	switch align {
	case placeholder.AlignRight:
		dst = padding(dst, missing)
		dst = append(dst, body...)
	case placeholder.AlignCenter:
		dst = padding(dst, missing/2)
		dst = append(dst, body...)
		dst = padding(dst, missing-missing/2)
	default:
		dst = append(dst, body...)
		dst = padding(dst, missing)
	}
	return dst, nil
}

// format writes value without padding. numeric is set when the result is a
// number, which changes the default alignment.
func format(spec string, layout Layout, value any) (body string, numeric bool, err error) {
	v := reflect.ValueOf(value)
	kind := v.Kind()

	bad := func() (string, bool, error) {
		return "", false, fmt.Errorf("%w: {%s} with %T", ErrBadValue, spec, value)
	}

	switch spec {
	case "":
		switch {
		case isInteger(kind):
			return formatInteger(v, 10), true, nil
		case isFloat(kind):
			verb := byte('g')
			if layout.HasPrecision {
				verb = 'f'
			}
			return formatFloat(v, verb, layout), true, nil
		}
		return truncate(fmt.Sprint(value), layout), false, nil

	case "s":
		return truncate(fmt.Sprint(value), layout), false, nil

	case "d", "o", "b":
		if !isInteger(kind) {
			return bad()
		}
		base := map[string]int{"d": 10, "o": 8, "b": 2}[spec]
		return formatInteger(v, base), true, nil

	case "x", "X":
		var s string
		switch {
		case isInteger(kind):
			s, numeric = formatInteger(v, 16), true
		case kind == reflect.String:
			s = hex.EncodeToString([]byte(v.String()))
		case kind == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
			s = hex.EncodeToString(v.Bytes())
		default:
			return bad()
		}
		if spec == "X" {
			s = strings.ToUpper(s)
		}
		return s, numeric, nil

	case "e", "f", "g":
		switch {
		case isFloat(kind):
		case isInteger(kind):
			f, _ := strconv.ParseFloat(formatInteger(v, 10), 64)
			v = reflect.ValueOf(f)
		default:
			return bad()
		}
		return formatFloat(v, spec[0], layout), true, nil

	case "c":
		if !isInteger(kind) {
			return bad()
		}
		n, err := strconv.ParseInt(formatInteger(v, 10), 10, 32)
		if err != nil {
			n = -1
		}
		buf, err := utf8codec.AppendRune(nil, rune(n))
		if err != nil {
			return "", false, fmt.Errorf("{c} with %v: %w", value, err)
		}
		return truncate(string(buf), layout), false, nil

	case "?":
		if kind == reflect.String {
			return strconv.Quote(v.String()), false, nil
		}
		return fmt.Sprintf("%#v", value), false, nil

	default:
		return "", false, fmt.Errorf("%w: %q", ErrUnknownSpec, spec)
	}
}

func isInteger(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func formatInteger(v reflect.Value, base int) string {
	if v.CanInt() {
		return strconv.FormatInt(v.Int(), base)
	}
	return strconv.FormatUint(v.Uint(), base)
}

func formatFloat(v reflect.Value, verb byte, layout Layout) string {
	prec := -1
	if layout.HasPrecision {
		prec = layout.Precision
	}
	return strconv.FormatFloat(v.Float(), verb, prec, v.Type().Bits())
}

// truncate applies a precision to text, keeping at most that many grapheme
// clusters.
func truncate(s string, layout Layout) string {
	if !layout.HasPrecision {
		return s
	}

	var n, end int
	for gs := uniseg.NewGraphemes(s); n < layout.Precision && gs.Next(); n++ {
		end += len(gs.Str())
	}
	return s[:end]
}
