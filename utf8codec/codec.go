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

package utf8codec

import "fmt"

const (
	// MaxCodepoint is the largest Unicode scalar value.
	MaxCodepoint rune = 0x10FFFF
	// MaxLen is the maximum number of bytes in one encoded codepoint.
	MaxLen = 4

	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF

	contMask byte = 0b1100_0000
	contTag  byte = 0b1000_0000
)

// Text is any type a codepoint can be decoded from.
type Text interface {
	~string | ~[]byte
}

// Options controls how strict decoding and encoding are.
//
// The zero value is strict UTF-8.
type Options struct {
	// If set, encoded surrogates (U+D800 to U+DFFF) are accepted. This is
	// what WTF-8 permits.
	AllowSurrogates bool
	// If set, sequences longer than necessary are accepted.
	AllowOverlong bool
}

var (
	// Strict is RFC 3629 UTF-8.
	Strict = Options{}
	// WTF8 additionally accepts encoded surrogates.
	WTF8 = Options{AllowSurrogates: true}
)

// ByteKind classifies a single byte by its high bits.
type ByteKind byte

const (
	ASCII        ByteKind = iota // 0xxxxxxx
	Lead2                        // 110xxxxx
	Lead3                        // 1110xxxx
	Lead4                        // 11110xxx
	Continuation                 // 10xxxxxx
	InvalidLead                  // 11111xxx
)

// Classify returns the kind of b.
func Classify(b byte) ByteKind {
	switch {
	case b < 0x80:
		return ASCII
	case b&contMask == contTag:
		return Continuation
	case b&0b1110_0000 == 0b1100_0000:
		return Lead2
	case b&0b1111_0000 == 0b1110_0000:
		return Lead3
	case b&0b1111_1000 == 0b1111_0000:
		return Lead4
	default:
		return InvalidLead
	}
}

// String implements [fmt.Stringer].
func (k ByteKind) String() string {
	switch k {
	case ASCII:
		return "ASCII"
	case Lead2:
		return "Lead2"
	case Lead3:
		return "Lead3"
	case Lead4:
		return "Lead4"
	case Continuation:
		return "Continuation"
	case InvalidLead:
		return "InvalidLead"
	default:
		return fmt.Sprintf("utf8codec.ByteKind(%d)", int(k))
	}
}

// RequiredBytes returns the length of the sequence that lead begins.
func RequiredBytes(lead byte) (int, error) {
	switch Classify(lead) {
	case ASCII:
		return 1, nil
	case Lead2:
		return 2, nil
	case Lead3:
		return 3, nil
	case Lead4:
		return 4, nil
	case Continuation:
		return 0, ErrLeadingContinuation
	default:
		return 0, ErrInvalidCodeunit
	}
}

// EncodedLen returns the number of bytes needed to encode r.
//
// Surrogates are not rejected here; they have a well-defined three byte
// length, which WTF-8 uses.
func EncodedLen(r rune) (int, error) {
	switch {
	case r < 0 || r > MaxCodepoint:
		return 0, ErrCodepointTooLarge
	case r < 0x80:
		return 1, nil
	case r < 0x800:
		return 2, nil
	case r < 0x10000:
		return 3, nil
	default:
		return 4, nil
	}
}

// IsSurrogate returns whether r is reserved for UTF-16 surrogate pairs.
func IsSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

func isContinuation(b byte) bool {
	return b&contMask == contTag
}
