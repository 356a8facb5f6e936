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

package template_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trevor-Strong/bracefmt/internal/corpora"
	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/template"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "BRACEFMT_REFRESH",
		Extension: "tmpl",
		Outputs: []corpora.Output{
			{Extension: "tokens.tsv"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string) []string {
		var tokens strings.Builder
		for tok, err := range template.NewParser(text).All() {
			if err != nil {
				err = reporter.NewFileInfo(path, text).Locate(err)
				return []string{tokens.String(), err.Error() + "\n"}
			}
			fmt.Fprintf(&tokens, "%v\t%d\t%d\t%v\n", tok.Kind, tok.Start, tok.End(), tok)
		}
		return []string{tokens.String(), ""}
	})
}

// summary is a comparable view of a token.
type summary struct {
	Kind template.Kind
	Raw  string
	Spec string
}

func summarize(t *testing.T, text string) []summary {
	t.Helper()

	tokens, err := template.Tokens(text)
	require.NoError(t, err)

	var out []summary
	for _, tok := range tokens {
		s := summary{Kind: tok.Kind, Raw: tok.Raw}
		if tok.Kind == template.Placeholder {
			s.Spec = tok.Placeholder.Spec()
		}
		out = append(out, s)
	}
	return out
}

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []summary
	}{
		{text: ""},
		{text: "plain", want: []summary{{template.Text, "plain", ""}}},
		{text: "first {format} second", want: []summary{
			{template.Text, "first ", ""},
			{template.Placeholder, "{format}", "format"},
			{template.Text, " second", ""},
		}},
		{text: "{{", want: []summary{{template.Escaped, "{{", ""}}},
		{text: "}}", want: []summary{{template.Escaped, "}}", ""}}},
		{text: "a{{b}}c", want: []summary{
			{template.Text, "a", ""},
			{template.Escaped, "{{", ""},
			{template.Text, "b", ""},
			{template.Escaped, "}}", ""},
			{template.Text, "c", ""},
		}},
		{text: "{}{}", want: []summary{
			{template.Placeholder, "{}", ""},
			{template.Placeholder, "{}", ""},
		}},
		// A '{' inside a placeholder is ordinary spec text.
		{text: "{a{b}", want: []summary{{template.Placeholder, "{a{b}", "a{b"}}},
		{text: "{{{x}}}", want: []summary{
			{template.Escaped, "{{", ""},
			{template.Placeholder, "{x}", "x"},
			{template.Escaped, "}}", ""},
		}},
		{text: "héllo {😀}", want: []summary{
			{template.Text, "héllo ", ""},
			{template.Placeholder, "{😀}", "😀"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, summarize(t, tt.text), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tokens(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestEscapedByte(t *testing.T) {
	t.Parallel()

	p := template.NewParser("{{}}")
	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, template.Escaped, tok.Kind)
	assert.Equal(t, byte('{'), tok.Byte)

	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('}'), tok.Byte)
	assert.Equal(t, 2, tok.Start)
	assert.Equal(t, 4, tok.End())
}

func TestPlaceholderToken(t *testing.T) {
	t.Parallel()

	text := "{s:~^[1]}"
	tokens, err := template.Tokens(text)
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	ph := tokens[0].Placeholder
	assert.Equal(t, template.Placeholder, tokens[0].Kind)
	assert.Equal(t, "s", ph.Spec())
	assert.Equal(t, placeholder.Options{
		Align: placeholder.AlignCenter, Fill: '~', HasFill: true,
		Width: placeholder.ArgRef("1"),
	}, ph.Options)

	// Spans index the original template.
	span := ph.SpecSpan()
	assert.Equal(t, "s", text[span.Start:span.End])
	span, ok := ph.OptionsSpan()
	require.True(t, ok)
	assert.Equal(t, "~^[1]", text[span.Start:span.End])
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		want   error
		offset int
	}{
		{"{", template.ErrUnmatchedBrace, 0},
		{"}", template.ErrUnmatchedBrace, 0},
		{"abc}", template.ErrUnmatchedBrace, 3},
		{"ab{cd", template.ErrUnmatchedBrace, 2},
		{"{{{", template.ErrUnmatchedBrace, 2},
		{"x{[name}", placeholder.ErrInvalidArgument, 2},
		{"x{:5q}", placeholder.ErrInvalidOptions, 4},
		{"{:\xC0<}", placeholder.ErrInvalidUTF8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			p := template.NewParser(tt.text)
			var err error
			for err == nil {
				var tok template.Token
				tok, err = p.Next()
				require.False(t, err == nil && tok.Kind == template.EOF, "expected an error")
			}
			require.ErrorIs(t, err, tt.want)

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Equal(t, tt.offset, ewp.GetPosition().Offset)
			assert.Equal(t, tt.offset, p.Offset())

			// Errors are sticky.
			_, again := p.Next()
			assert.Equal(t, err, again)
			assert.Equal(t, tt.offset, p.Offset())

			assert.Equal(t, err, template.Validate(tt.text))
		})
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	p := template.NewParser("a}")
	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Raw)
	_, err = p.Next()
	require.Error(t, err)

	p.Reset()
	assert.Equal(t, 0, p.Offset())
	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Raw)
	assert.Equal(t, "a}", p.Text())
}

func TestEOF(t *testing.T) {
	t.Parallel()

	p := template.NewParser("x")
	_, err := p.Next()
	require.NoError(t, err)
	for range 3 {
		tok, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, template.EOF, tok.Kind)
		assert.Equal(t, 1, tok.Start)
	}
}

func TestPeekKind(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"", "abc", "{{x}}", "a{b}c{{", "{:>5}}}{}", "ü{0}",
	} {
		p := template.NewParser(text)
		for {
			kind := p.PeekKind()
			offset := p.Offset()
			tok, err := p.Next()
			require.NoError(t, err)
			assert.Equal(t, tok.Kind, kind, "%q at %d", text, offset)
			if tok.Kind == template.EOF {
				break
			}
			assert.Greater(t, p.Offset(), offset)
		}
	}

	// Lookahead does not validate.
	assert.Equal(t, template.Placeholder, template.NewParser("}").PeekKind())
	assert.Equal(t, template.Placeholder, template.NewParser("{[").PeekKind())
}

func TestValid(t *testing.T) {
	t.Parallel()

	var kinds []template.Kind
	for tok := range template.Valid("a{b}{{") {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []template.Kind{template.Text, template.Placeholder, template.Escaped}, kinds)

	// Breaking early is fine.
	for range template.Valid("a{b}") {
		break
	}

	assert.Panics(t, func() {
		for range template.Valid("a{b") {
		}
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Placeholder", template.Placeholder.String())
	assert.Equal(t, "template.Kind(9)", template.Kind(9).String())
}

func FuzzValidate(f *testing.F) {
	for _, seed := range []string{
		"", "first {format} second", "{s:~^[1]}", "{{}}", "}", "{", "{:é}", "{[x}",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// Validate succeeds if and only if iteration never fails.
		var iterErr error
		var last int
		for tok, err := range template.NewParser(text).All() {
			if err != nil {
				iterErr = err
				break
			}
			if tok.Start != last {
				t.Fatalf("token at %d does not follow previous one ending at %d", tok.Start, last)
			}
			last = tok.End()
		}

		err := template.Validate(text)
		if (err == nil) != (iterErr == nil) {
			t.Fatalf("Validate(%q) = %v, iteration error = %v", text, err, iterErr)
		}
		if err == nil && last != len(text) {
			t.Fatalf("tokens of %q cover %d bytes, want %d", text, last, len(text))
		}
	})
}
