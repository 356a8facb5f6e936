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

package bracefmt

import (
	"bytes"
	"io"

	"github.com/Trevor-Strong/bracefmt/bind"
	"github.com/Trevor-Strong/bracefmt/render"
	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/template"
)

// Args holds the values a template is executed with.
type Args = bind.Args

// Template is a validated template.
type Template struct {
	name   string
	text   string
	tokens []template.Token
	usage  bind.Usage
}

// Compile validates text and prepares it for execution.
func Compile(text string) (*Template, error) {
	return CompileNamed("", text)
}

// CompileNamed is like [Compile], but errors, including those from executing
// the template, are reported as coming from the file name.
func CompileNamed(name, text string) (*Template, error) {
	return compile(name, text)
}

// MustCompile is like [Compile] but panics on error.
func MustCompile(text string) *Template {
	t, err := Compile(text)
	if err != nil {
		panic("bracefmt: Compile(" + text + "): " + err.Error())
	}
	return t
}

func compile(name, text string) (*Template, error) {
	if err := template.Validate(text); err != nil {
		return nil, reporter.NewFileInfo(name, text).Locate(err)
	}

	t := &Template{name: name, text: text}
	for tok := range template.Valid(text) {
		t.tokens = append(t.tokens, tok)
		if tok.Kind == template.Placeholder {
			t.usage.Add(tok.Placeholder)
		}
	}
	return t, nil
}

// Name returns the name the template was compiled under; empty unless it came
// from a [Compiler].
func (t *Template) Name() string {
	return t.name
}

// String returns the template's source.
func (t *Template) String() string {
	return t.text
}

// Tokens returns the template's tokens. The slice must not be modified.
func (t *Template) Tokens() []template.Token {
	return t.tokens
}

// Usage returns the arguments the template refers to.
func (t *Template) Usage() *bind.Usage {
	return &t.usage
}

// Execute writes the template to w, filled in from args.
//
// Nothing is written if an argument is missing or cannot be formatted.
func (t *Template) Execute(w io.Writer, args Args) error {
	buf, err := t.Append(nil, args)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// Append is like [Template.Execute], but appends to dst.
func (t *Template) Append(dst []byte, args Args) ([]byte, error) {
	return t.AppendWith(render.Renderer{}, dst, args)
}

// AppendWith is like [Template.Append], but values are written by r.
//
// Errors for a particular placeholder carry its position. On error, dst is
// returned unchanged.
func (t *Template) AppendWith(r render.Renderer, dst []byte, args Args) ([]byte, error) {
	args, err := bind.Project(&t.usage, args)
	if err != nil {
		return dst, err
	}

	out := dst
	resolver := bind.NewResolver(args)
	for _, tok := range t.tokens {
		switch tok.Kind {
		case template.Text:
			out = append(out, tok.Raw...)
		case template.Escaped:
			out = append(out, tok.Byte)
		case template.Placeholder:
			ph := &tok.Placeholder
			value, err := resolver.Resolve(ph.Arg)
			if err != nil {
				return dst, t.errorAt(tok.Start, err)
			}

			var layout render.Layout
			if ph.HasOptions {
				layout, err = resolver.ResolveOptions(ph.Options)
				if err != nil {
					return dst, t.errorAt(tok.Start, err)
				}
			}

			out, err = r.Append(out, ph.Spec(), layout, value)
			if err != nil {
				return dst, t.errorAt(tok.Start, err)
			}
		}
	}
	return out, nil
}

func (t *Template) errorAt(offset int, err error) error {
	return reporter.NewFileInfo(t.name, t.text).Locate(reporter.ErrorAt(offset, err))
}

// Format executes text with positional arguments.
func Format(text string, args ...any) (string, error) {
	return FormatArgs(text, Args{Positional: args})
}

// FormatArgs executes text with args.
func FormatArgs(text string, args Args) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, text, args); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint executes text with args, writing the result to w.
func Fprint(w io.Writer, text string, args Args) error {
	t, err := Compile(text)
	if err != nil {
		return err
	}
	return t.Execute(w, args)
}
