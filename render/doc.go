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

// Package render formats a single value according to a placeholder's spec
// and layout.
//
// The spec is the text between a placeholder's selector and its ':'. It picks
// how the value itself is written:
//
//	""   default: %v, with precision applied to strings and floats
//	s    string
//	d    decimal integer
//	x X  hexadecimal integer, or hex-encoded string or bytes
//	o    octal integer
//	b    binary integer
//	e f g  floating point
//	c    the codepoint with the given integer value
//	?    Go syntax
//
// The layout then pads the result to its width, measured in grapheme clusters
// unless a [Renderer] is configured to measure terminal cells.
package render
