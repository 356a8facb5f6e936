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

// InvalidError is returned by [Validate] and [Count] to report where a buffer
// stops being well-formed.
type InvalidError struct {
	// Byte offset of the first byte of the bad sequence.
	Offset int
	// One of this package's sentinel errors.
	Err error
}

// Error implements [error].
func (e *InvalidError) Error() string {
	return fmt.Sprintf("%v (at byte %d)", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel.
func (e *InvalidError) Unwrap() error {
	return e.Err
}

// Validate checks that all of s is well-formed under opts.
func Validate[S Text](s S, opts Options) error {
	_, err := Count(s, opts)
	return err
}

// Count returns the number of codepoints in s, or an [*InvalidError] if s is
// not well-formed under opts.
func Count[S Text](s S, opts Options) (int, error) {
	var count int
	for i := 0; i < len(s); count++ {
		if s[i] < 0x80 {
			i++
			continue
		}

		_, n, err := DecodeWith(s[i:], opts)
		if err != nil {
			return count, &InvalidError{Offset: i, Err: err}
		}
		i += n
	}
	return count, nil
}
