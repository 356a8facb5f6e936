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

package render_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/render"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func width(n int) render.Layout {
	return render.Layout{Width: n, HasWidth: true}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	zeroPad := render.Layout{Fill: '0', HasFill: true, Width: 6, HasWidth: true}
	prec := func(n int) render.Layout { return render.Layout{Precision: n, HasPrecision: true} }

	tests := []struct {
		spec   string
		layout render.Layout
		value  any
		want   string
	}{
		{value: "plain", want: "plain"},
		{value: 42, want: "42"},
		{value: uint8(7), want: "7"},
		{value: 1.5, want: "1.5"},
		{value: true, want: "true"},
		{value: nil, want: "<nil>"},
		{value: stringer{}, want: "stringer"},
		{value: fmt.Errorf("oops"), want: "oops"},

		{spec: "s", value: 12, want: "12"},
		{spec: "d", value: -12, want: "-12"},
		{spec: "x", value: 255, want: "ff"},
		{spec: "X", value: 255, want: "FF"},
		{spec: "x", value: "hi", want: "6869"},
		{spec: "X", value: []byte{0xab}, want: "AB"},
		{spec: "o", value: 8, want: "10"},
		{spec: "b", value: uint(5), want: "101"},
		{spec: "e", value: 1234.5, layout: prec(2), want: "1.23e+03"},
		{spec: "f", value: 2, layout: prec(3), want: "2.000"},
		{spec: "g", value: float32(0.5), want: "0.5"},
		{spec: "c", value: 0x1F600, want: "😀"},
		{spec: "c", value: int8('A'), want: "A"},
		{spec: "?", value: "a\"b", want: `"a\"b"`},
		{spec: "?", value: []int{1}, want: "[]int{1}"},

		{value: 3.14159, layout: prec(2), want: "3.14"},
		{value: "héllo", layout: prec(2), want: "hé"},
		{value: "éa", layout: prec(1), want: "é"},
		{value: "abc", layout: prec(0), want: ""},
		{value: "ab", layout: prec(5), want: "ab"},

		{value: "ab", layout: width(5), want: "ab   "},
		{value: 12, layout: width(5), want: "   12"},
		{value: "ab", layout: width(1), want: "ab"},
		{value: "ab", layout: render.Layout{Align: placeholder.AlignRight, Width: 4, HasWidth: true}, want: "  ab"},
		{value: 12, layout: render.Layout{Align: placeholder.AlignLeft, Width: 4, HasWidth: true}, want: "12  "},
		{
			value:  "ab",
			layout: render.Layout{Align: placeholder.AlignCenter, Fill: '*', HasFill: true, Width: 7, HasWidth: true},
			want:   "**ab***",
		},
		{
			value:  "x",
			layout: render.Layout{Align: placeholder.AlignLeft, Fill: 'é', HasFill: true, Width: 3, HasWidth: true},
			want:   "xéé",
		},
		{value: "日本", layout: width(3), want: "日本 "},
		{value: -42, layout: zeroPad, want: "-00042"},
		{value: 42, layout: zeroPad, want: "000042"},
		{value: -1.5, layout: zeroPad, want: "-001.5"},
		{value: "ab", layout: zeroPad, want: "ab0000"},
		{
			value:  -42,
			layout: render.Layout{Align: placeholder.AlignRight, Fill: '0', HasFill: true, Width: 5, HasWidth: true},
			want:   "00-42",
		},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/%v/%+v", tt.spec, tt.value, tt.layout)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := render.Append([]byte("pre:"), tt.spec, tt.layout, tt.value)
			require.NoError(t, err)
			assert.Equal(t, "pre:"+tt.want, string(got))
		})
	}
}

func TestAppendErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec   string
		layout render.Layout
		value  any
		want   error
	}{
		{spec: "q", value: 1, want: render.ErrUnknownSpec},
		{spec: "ss", value: "x", want: render.ErrUnknownSpec},
		{spec: "d", value: "x", want: render.ErrBadValue},
		{spec: "x", value: 1.5, want: render.ErrBadValue},
		{spec: "f", value: "x", want: render.ErrBadValue},
		{spec: "c", value: "x", want: render.ErrBadValue},
		{spec: "c", value: 0xD800, want: utf8codec.ErrSurrogateCodepoint},
		{spec: "c", value: 0x110000, want: utf8codec.ErrCodepointTooLarge},
		{spec: "c", value: int64(1) << 40, want: utf8codec.ErrCodepointTooLarge},
		{
			value:  "x",
			layout: render.Layout{Fill: 0xDC00, HasFill: true, Width: 3, HasWidth: true},
			want:   utf8codec.ErrSurrogateCodepoint,
		},
		{value: "x", layout: render.Layout{Width: render.MaxSize + 1, HasWidth: true}, want: render.ErrLayoutTooLarge},
		{spec: "f", value: 1.5, layout: render.Layout{Precision: render.MaxSize + 1, HasPrecision: true}, want: render.ErrLayoutTooLarge},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.spec, tt.value), func(t *testing.T) {
			t.Parallel()
			dst := []byte("keep")
			got, err := render.Append(dst, tt.spec, tt.layout, tt.value)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, "keep", string(got))
		})
	}
}

func TestTerminalCells(t *testing.T) {
	t.Parallel()

	cells := render.Renderer{TerminalCells: true}

	got, err := cells.Append(nil, "", width(6), "日本")
	require.NoError(t, err)
	assert.Equal(t, "日本  ", string(got))

	// A wide fill is repeated as often as it fits.
	layout := render.Layout{Align: placeholder.AlignRight, Fill: '😀', HasFill: true, Width: 6, HasWidth: true}
	got, err = cells.Append(nil, "", layout, "a")
	require.NoError(t, err)
	assert.Equal(t, "😀😀 a", string(got))

	got, err = render.Append(nil, "", layout, "a")
	require.NoError(t, err)
	assert.Equal(t, "😀😀😀😀😀a", string(got))
}
