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

package placeholder

import "errors"

var (
	// ErrInvalidArgument is returned for an argument selector that starts
	// with '[' but has no closing ']'.
	ErrInvalidArgument = errors.New("invalid argument selector")
	// ErrInvalidOptions is returned for malformed fill, alignment, width or
	// precision.
	ErrInvalidOptions = errors.New("invalid placeholder options")
	// ErrInvalidUTF8 is returned when the fill character is not valid UTF-8.
	// The codec error is wrapped alongside it.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in placeholder options")
)
