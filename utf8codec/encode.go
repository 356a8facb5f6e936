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

// Encode writes the strict UTF-8 encoding of r to dst and returns the number
// of bytes written.
func Encode(dst []byte, r rune) (int, error) {
	return EncodeWith(dst, r, Strict)
}

// EncodeWith is like [Encode], but surrogates are permitted if
// opts.AllowSurrogates is set. opts.AllowOverlong has no effect: the encoder
// always produces the shortest form.
//
// Errors are checked in the order [ErrCodepointTooLarge],
// [ErrSurrogateCodepoint], [ErrNotEnoughSpace]. Nothing is written on error.
func EncodeWith(dst []byte, r rune, opts Options) (int, error) {
	n, err := EncodedLen(r)
	if err != nil {
		return 0, err
	}
	if n == 3 && IsSurrogate(r) && !opts.AllowSurrogates {
		return 0, ErrSurrogateCodepoint
	}
	if len(dst) < n {
		return 0, ErrNotEnoughSpace
	}

	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		_ = dst[1]
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = contTag | byte(r)&0x3F
	case 3:
		_ = dst[2]
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = contTag | byte(r>>6)&0x3F
		dst[2] = contTag | byte(r)&0x3F
	default:
		_ = dst[3]
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = contTag | byte(r>>12)&0x3F
		dst[2] = contTag | byte(r>>6)&0x3F
		dst[3] = contTag | byte(r)&0x3F
	}
	return n, nil
}

// Array is a fixed-size buffer holding one encoded codepoint.
//
// The zero value holds no bytes.
type Array struct {
	buf [MaxLen]byte
	n   uint8
}

// EncodeArray encodes r into a new [Array], with the same validation as
// [Encode].
func EncodeArray(r rune) (Array, error) {
	var a Array
	n, err := Encode(a.buf[:], r)
	if err != nil {
		return Array{}, err
	}
	a.n = uint8(n)
	return a, nil
}

// Len returns the number of encoded bytes.
func (a Array) Len() int { return int(a.n) }

// Bytes returns the encoded bytes.
func (a Array) Bytes() []byte { return a.buf[:a.n] }

// String returns the encoded bytes as a string.
func (a Array) String() string { return string(a.buf[:a.n]) }

// AppendRune appends the strict UTF-8 encoding of r to dst, growing it as
// needed. On error, dst is returned unchanged.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	return AppendRuneWith(dst, r, Strict)
}

// AppendRuneWith is like [AppendRune] but with the validation of [EncodeWith].
func AppendRuneWith(dst []byte, r rune, opts Options) ([]byte, error) {
	var buf [MaxLen]byte
	n, err := EncodeWith(buf[:], r, opts)
	if err != nil {
		return dst, err
	}
	return append(dst, buf[:n]...), nil
}
