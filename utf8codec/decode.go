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

// Decode decodes the first codepoint of s under strict UTF-8 rules.
//
// See [DecodeWith].
func Decode[S Text](s S) (r rune, n int, err error) {
	return DecodeWith(s, Strict)
}

// DecodeWith decodes the first codepoint of s, returning it along with the
// number of bytes it occupies.
//
// If s ends partway through a sequence, the available prefix is still
// checked: a prefix that no continuation could make valid is reported with
// the specific error (e.g. [ErrOverlongEncoding]), and only a prefix that is
// consistent with some valid sequence yields [ErrCodepointTruncated]. An empty
// s is also [ErrCodepointTruncated].
func DecodeWith[S Text](s S, opts Options) (r rune, n int, err error) {
	if len(s) == 0 {
		return 0, 0, ErrCodepointTruncated
	}

	n, err = RequiredBytes(s[0])
	if err != nil {
		return 0, 0, err
	}

	if len(s) >= n {
		switch n {
		case 1:
			r = rune(s[0])
		case 2:
			r, err = Decode2(s, opts)
		case 3:
			r, err = Decode3(s, opts)
		default:
			r, err = Decode4(s, opts)
		}
		if err != nil {
			return 0, 0, err
		}
		return r, n, nil
	}

	// The sequence is incomplete. Report whatever the prefix already rules
	// out before blaming the length.
	if err := checkLead(s[0], opts); err != nil {
		return 0, 0, err
	}
	if len(s) >= 2 {
		if err := checkSecond(s[0], s[1], opts); err != nil {
			return 0, 0, err
		}
	}
	for i := 2; i < len(s); i++ {
		if !isContinuation(s[i]) {
			return 0, 0, ErrExpectedContinuation
		}
	}
	return 0, 0, ErrCodepointTruncated
}

// Decode2 decodes a two byte sequence.
//
// s must contain at least two bytes and s[0] must be a [Lead2] byte; neither
// is checked.
func Decode2[S Text](s S, opts Options) (rune, error) {
	if err := checkLead(s[0], opts); err != nil {
		return 0, err
	}
	if !isContinuation(s[1]) {
		return 0, ErrExpectedContinuation
	}
	return rune(s[0]&0x1F)<<6 | rune(s[1]&0x3F), nil
}

// Decode3 decodes a three byte sequence.
//
// s must contain at least three bytes and s[0] must be a [Lead3] byte;
// neither is checked.
func Decode3[S Text](s S, opts Options) (rune, error) {
	if err := checkSecond(s[0], s[1], opts); err != nil {
		return 0, err
	}
	if !isContinuation(s[2]) {
		return 0, ErrExpectedContinuation
	}
	return rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), nil
}

// Decode4 decodes a four byte sequence.
//
// s must contain at least four bytes and s[0] must be a [Lead4] byte; neither
// is checked.
func Decode4[S Text](s S, opts Options) (rune, error) {
	if err := checkLead(s[0], opts); err != nil {
		return 0, err
	}
	if err := checkSecond(s[0], s[1], opts); err != nil {
		return 0, err
	}
	if !isContinuation(s[2]) || !isContinuation(s[3]) {
		return 0, ErrExpectedContinuation
	}
	return rune(s[0]&0x07)<<18 | rune(s[1]&0x3F)<<12 |
		rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F), nil
}

// checkLead rejects lead bytes that are invalid regardless of what follows.
func checkLead(lead byte, opts Options) error {
	switch {
	case lead >= 0xC0 && lead < 0xC2:
		if !opts.AllowOverlong {
			return ErrOverlongEncoding
		}
	case lead > 0xF4 && lead < 0xF8:
		return ErrCodepointTooLarge
	}
	return nil
}

// checkSecond validates the byte after a multi-byte lead, which is the only
// continuation byte whose legal range depends on the lead.
func checkSecond(lead, b byte, opts Options) error {
	if !isContinuation(b) {
		return ErrExpectedContinuation
	}

	switch lead {
	case 0xE0:
		if b < 0xA0 && !opts.AllowOverlong {
			return ErrOverlongEncoding
		}
	case 0xED:
		if b >= 0xA0 && !opts.AllowSurrogates {
			return ErrSurrogateCodepoint
		}
	case 0xF0:
		if b < 0x90 && !opts.AllowOverlong {
			return ErrOverlongEncoding
		}
	case 0xF4:
		if b > 0x8F {
			return ErrCodepointTooLarge
		}
	}
	return nil
}
