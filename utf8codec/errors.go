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

import "errors"

var (
	// ErrLeadingContinuation is returned when a sequence starts with a
	// continuation byte (10xxxxxx).
	ErrLeadingContinuation = errors.New("utf8: sequence starts with a continuation byte")
	// ErrInvalidCodeunit is returned for bytes that can never appear in UTF-8,
	// 0xF8 through 0xFF.
	ErrInvalidCodeunit = errors.New("utf8: invalid code unit")
	// ErrCodepointTruncated is returned when the input ends in the middle of an
	// otherwise valid sequence.
	ErrCodepointTruncated = errors.New("utf8: truncated codepoint")
	// ErrExpectedContinuation is returned when a lead byte is followed by
	// something other than a continuation byte.
	ErrExpectedContinuation = errors.New("utf8: expected continuation byte")
	// ErrOverlongEncoding is returned for a sequence that is longer than the
	// shortest encoding of its codepoint.
	ErrOverlongEncoding = errors.New("utf8: overlong encoding")
	// ErrSurrogateCodepoint is returned for codepoints in [0xD800, 0xDFFF].
	ErrSurrogateCodepoint = errors.New("utf8: surrogate codepoint")
	// ErrCodepointTooLarge is returned for codepoints above [MaxCodepoint].
	ErrCodepointTooLarge = errors.New("utf8: codepoint too large")
	// ErrNotEnoughSpace is returned by encoders whose destination is too short.
	ErrNotEnoughSpace = errors.New("utf8: not enough space in destination")
)
