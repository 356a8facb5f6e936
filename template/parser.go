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
	"errors"
	"iter"
	"strings"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/reporter"
)

// ErrUnmatchedBrace is returned for a `}` that is neither doubled nor closes a
// placeholder, and for a `{` with no `}` after it.
var ErrUnmatchedBrace = errors.New("unmatched brace")

// Parser produces the tokens of a template one at a time.
//
// A Parser is not safe for concurrent use, but any number of Parsers may read
// the same template at once.
type Parser struct {
	text string
	pos  int
	err  error
}

// NewParser returns a parser positioned at the start of text.
func NewParser(text string) *Parser {
	return &Parser{text: text}
}

// Text returns the template being parsed.
func (p *Parser) Text() string {
	return p.text
}

// Offset returns the position of the cursor. After an error, this is where
// the problem was found.
func (p *Parser) Offset() int {
	return p.pos
}

// Reset rewinds the parser to the start of its template and forgets any
// error.
func (p *Parser) Reset() {
	p.pos = 0
	p.err = nil
}

// Next returns the next token. At the end of the template it returns a token
// of kind [EOF], every time it is called.
//
// Errors are [reporter.ErrorWithPos] values wrapping [ErrUnmatchedBrace] or
// one of package placeholder's errors. Once Next fails, it keeps returning
// the same error until [Parser.Reset].
func (p *Parser) Next() (Token, error) {
	if p.err != nil {
		return Token{}, p.err
	}

	start := p.pos
	rest := p.text[start:]
	if rest == "" {
		return Token{Kind: EOF, Start: start}, nil
	}

	switch c := rest[0]; c {
	case '{', '}':
		if len(rest) > 1 && rest[1] == c {
			p.pos += 2
			return Token{Kind: Escaped, Start: start, Raw: rest[:2], Byte: c}, nil
		}
		if c == '}' {
			return p.fail(reporter.ErrorAt(start, ErrUnmatchedBrace))
		}

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return p.fail(reporter.ErrorAt(start, ErrUnmatchedBrace))
		}
		ph, err := placeholder.ParseAt(rest[1:end], start+1)
		if err != nil {
			return p.fail(err)
		}
		p.pos += end + 1
		return Token{Kind: Placeholder, Start: start, Raw: rest[:end+1], Placeholder: ph}, nil
	}

	end := strings.IndexAny(rest, "{}")
	if end < 0 {
		end = len(rest)
	}
	p.pos += end
	return Token{Kind: Text, Start: start, Raw: rest[:end]}, nil
}

// fail records err and moves the cursor to where it occurred.
func (p *Parser) fail(err error) (Token, error) {
	var ewp reporter.ErrorWithPos
	if errors.As(err, &ewp) {
		p.pos = ewp.GetPosition().Offset
	}
	p.err = err
	return Token{}, err
}

// PeekKind returns the kind of token [Parser.Next] would return, looking only
// at the next one or two bytes.
//
// For a well-formed template the answer is exact. For a malformed one it is
// a guess: a lone `}` or an unterminated `{` is reported as [Placeholder], and
// a pending error is not taken into account.
func (p *Parser) PeekKind() Kind {
	rest := p.text[p.pos:]
	switch {
	case rest == "":
		return EOF
	case rest[0] == '{' || rest[0] == '}':
		if len(rest) > 1 && rest[1] == rest[0] {
			return Escaped
		}
		return Placeholder
	default:
		return Text
	}
}

// All returns an iterator over the remaining tokens, not including the final
// [EOF]. If an error occurs, it is yielded with a zero Token and iteration
// stops.
func (p *Parser) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := p.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if tok.Kind == EOF || !yield(tok, nil) {
				return
			}
		}
	}
}

// Validate checks that text is a well-formed template. It returns the first
// error [Parser.Next] would produce, or nil.
func Validate(text string) error {
	p := NewParser(text)
	for {
		tok, err := p.Next()
		if err != nil {
			return err
		}
		if tok.Kind == EOF {
			return nil
		}
	}
}

// Tokens returns all of the tokens of text.
func Tokens(text string) ([]Token, error) {
	var tokens []Token
	for tok, err := range NewParser(text).All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Valid returns an iterator over the tokens of text, which must be a template
// for which [Validate] returned nil.
//
// Valid panics if text turns out to be malformed. It exists so that callers
// who validate once and format many times need not handle errors that cannot
// happen; it is not a way to ignore errors in unvalidated input.
func Valid(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		p := NewParser(text)
		for {
			tok, err := p.Next()
			if err != nil {
				panic("template: Valid called on an invalid template: " + err.Error())
			}
			if tok.Kind == EOF || !yield(tok) {
				return
			}
		}
	}
}
