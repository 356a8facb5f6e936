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

package placeholder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want placeholder.Options
	}{
		{text: ""},
		{text: "<", want: placeholder.Options{Align: placeholder.AlignLeft}},
		{text: "^", want: placeholder.Options{Align: placeholder.AlignCenter}},
		{text: "<<", want: placeholder.Options{Align: placeholder.AlignLeft, Fill: '<', HasFill: true}},
		{text: "1>", want: placeholder.Options{Align: placeholder.AlignRight, Fill: '1', HasFill: true}},
		{text: "é^", want: placeholder.Options{Align: placeholder.AlignCenter, Fill: 'é', HasFill: true}},
		{text: "😀<3", want: placeholder.Options{
			Align: placeholder.AlignLeft, Fill: '😀', HasFill: true,
			Width: placeholder.Literal(3),
		}},
		{text: "0>34.12", want: placeholder.Options{
			Align: placeholder.AlignRight, Fill: '0', HasFill: true,
			Width: placeholder.Literal(34), Precision: placeholder.Literal(12),
		}},
		{text: "~^[1]", want: placeholder.Options{
			Align: placeholder.AlignCenter, Fill: '~', HasFill: true,
			Width: placeholder.ArgRef("1"),
		}},
		{text: "42", want: placeholder.Options{Width: placeholder.Literal(42)}},
		{text: "08", want: placeholder.Options{Fill: '0', HasFill: true, Width: placeholder.Literal(8)}},
		{text: "0", want: placeholder.Options{Fill: '0', HasFill: true, Width: placeholder.Literal(0)}},
		{text: ">05", want: placeholder.Options{
			Align: placeholder.AlignRight, Fill: '0', HasFill: true,
			Width: placeholder.Literal(5),
		}},
		{text: "*<05", want: placeholder.Options{
			Align: placeholder.AlignLeft, Fill: '*', HasFill: true,
			Width: placeholder.Literal(5),
		}},
		{text: ".3", want: placeholder.Options{Precision: placeholder.Literal(3)}},
		{text: "5.", want: placeholder.Options{Width: placeholder.Literal(5)}},
		{text: ".", want: placeholder.Options{}},
		{text: "[w].[p]", want: placeholder.Options{
			Width: placeholder.ArgRef("w"), Precision: placeholder.ArgRef("p"),
		}},
		{text: "[].[]", want: placeholder.Options{
			Width: placeholder.ArgRef(""), Precision: placeholder.ArgRef(""),
		}},
		{text: "^.[x]", want: placeholder.Options{
			Align: placeholder.AlignCenter, Precision: placeholder.ArgRef("x"),
		}},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.text), func(t *testing.T) {
			t.Parallel()

			got, err := placeholder.ParseOptions(tt.text)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOptions(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}

			// The canonical form must parse back to the same options.
			again, err := placeholder.ParseOptions(got.String())
			require.NoError(t, err, "reparsing %q", got.String())
			assert.Equal(t, got, again)
		})
	}
}

func TestParseOptionsErrors(t *testing.T) {
	t.Parallel()

	overflow := strconv.FormatUint(math.MaxUint64, 10) + "0"
	tests := []struct {
		text   string
		offset int
	}{
		{"é", 0},
		{"😀5", 0},
		{"5x", 1},
		{"5[a]", 1},
		{"[abc", 0},
		{"<[", 1},
		{".[abc", 1},
		{".5x", 2},
		{".x", 1},
		{"5.5.", 3},
		{"<>x", 2},
		{"[a]b", 3},
		{overflow, 0},
		{"." + overflow, 1},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.text), func(t *testing.T) {
			t.Parallel()

			_, err := placeholder.ParseOptionsAt(tt.text, 100)
			require.ErrorIs(t, err, placeholder.ErrInvalidOptions)

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Equal(t, 100+tt.offset, ewp.GetPosition().Offset)
		})
	}
}

func TestParseOptionsBadUTF8(t *testing.T) {
	t.Parallel()

	_, err := placeholder.ParseOptions("\xED\xA0\x80<")
	require.ErrorIs(t, err, placeholder.ErrInvalidUTF8)
	assert.ErrorIs(t, err, utf8codec.ErrSurrogateCodepoint)

	_, err = placeholder.ParseOptions("\xE2\x82")
	require.ErrorIs(t, err, placeholder.ErrInvalidUTF8)
	assert.ErrorIs(t, err, utf8codec.ErrCodepointTruncated)
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := placeholder.Parse("[name]spec:~^[1]")
	require.NoError(t, err)
	assert.Equal(t, placeholder.ByName("name"), p.Arg)
	assert.Equal(t, "spec", p.Spec())
	assert.Equal(t, placeholder.Span{Start: 6, End: 10}, p.SpecSpan())
	require.True(t, p.HasOptions)
	assert.Equal(t, placeholder.Options{
		Align: placeholder.AlignCenter, Fill: '~', HasFill: true,
		Width: placeholder.ArgRef("1"),
	}, p.Options)
	text, ok := p.OptionsText()
	assert.True(t, ok)
	assert.Equal(t, "~^[1]", text)

	p, err = placeholder.Parse("")
	require.NoError(t, err)
	assert.True(t, p.Arg.IsAnonymous())
	assert.Empty(t, p.Spec())
	assert.False(t, p.HasOptions)
	_, ok = p.OptionsText()
	assert.False(t, ok)

	p, err = placeholder.Parse("3x")
	require.NoError(t, err)
	assert.Equal(t, placeholder.ByIndex(3), p.Arg)
	assert.Equal(t, "x", p.Spec())

	// Only one digit is a selector; the rest is spec.
	p, err = placeholder.Parse("12")
	require.NoError(t, err)
	assert.Equal(t, placeholder.ByIndex(1), p.Arg)
	assert.Equal(t, "2", p.Spec())

	p, err = placeholder.Parse("[]:")
	require.NoError(t, err)
	assert.Equal(t, placeholder.ByName(""), p.Arg)
	assert.True(t, p.HasOptions)
	assert.Equal(t, placeholder.Options{}, p.Options)

	// Only the first ':' separates.
	_, err = placeholder.Parse("a:b:c")
	assert.ErrorIs(t, err, placeholder.ErrInvalidOptions)

	p, err = placeholder.Parse("x[y]:>4")
	require.NoError(t, err)
	assert.True(t, p.Arg.IsAnonymous())
	assert.Equal(t, "x[y]", p.Spec())
}

func TestParseAt(t *testing.T) {
	t.Parallel()

	template := "abc{s:~^[1]}"
	p, err := placeholder.ParseAt(template[4:11], 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Offset)

	span := p.SpecSpan()
	assert.Equal(t, "s", template[span.Start:span.End])

	span, ok := p.OptionsSpan()
	require.True(t, ok)
	assert.Equal(t, "~^[1]", template[span.Start:span.End])
	assert.Equal(t, 5, span.Len())

	_, err = placeholder.ParseAt("[name", 7)
	require.ErrorIs(t, err, placeholder.ErrInvalidArgument)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, 7, ewp.GetPosition().Offset)

	_, err = placeholder.ParseAt("s:<x", 10)
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, 13, ewp.GetPosition().Offset)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", placeholder.Name{}.String())
	assert.Equal(t, "7", placeholder.ByIndex(7).String())
	assert.Equal(t, "[x]", placeholder.ByName("x").String())
	assert.Equal(t, "String", placeholder.String.String())

	assert.Equal(t, "", placeholder.Size{}.String())
	assert.Equal(t, "12", placeholder.Literal(12).String())
	assert.Equal(t, "[w]", placeholder.ArgRef("w").String())

	assert.Equal(t, "Center", placeholder.AlignCenter.String())
	assert.Equal(t, byte('^'), placeholder.AlignCenter.Marker())
	assert.Equal(t, byte(0), placeholder.AlignNone.Marker())

	opts, err := placeholder.ParseOptions("0>34.12")
	require.NoError(t, err)
	assert.Equal(t, "0>34.12", opts.String())

	for _, text := range []string{"0", "08", "0.5", "08.[p]"} {
		opts, err := placeholder.ParseOptions(text)
		require.NoError(t, err)
		assert.Equal(t, text, opts.String())
	}
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"", "[name]spec:~^[1]", "0>34.12", "s:😀<5.[p]", "[x", "a:b", ":\xff<",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		p, err := placeholder.Parse(raw)
		if err != nil {
			return
		}
		span := p.SpecSpan()
		if span.Start < 0 || span.End > len(raw) || span.Start > span.End {
			t.Fatalf("Parse(%q): bad spec span %v", raw, span)
		}
		if p.HasOptions {
			again, err := placeholder.ParseOptions(p.Options.String())
			if err != nil {
				t.Fatalf("Parse(%q): canonical options %q do not parse: %v", raw, p.Options.String(), err)
			}
			if again != p.Options {
				t.Fatalf("Parse(%q): options %+v reparse as %+v", raw, p.Options, again)
			}
		}
	})
}
