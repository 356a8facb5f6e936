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

// Package placeholder parses the inside of one `{...}` template placeholder.
//
// The grammar, between the braces, is
//
//	placeholder := argsel? spec (':' options)?
//	argsel      := '[' name ']' | DIGIT
//	spec        := (byte-not-':')*
//	options     := fillalign? width? ('.' precision)?
//	fillalign   := (codepoint align) | align
//	align       := '<' | '>' | '^'
//	width       := DIGIT+ | '[' name ']'
//	precision   := DIGIT+ | '[' name ']'
//
// The spec is opaque: it is returned as-is for the renderer to interpret.
//
// Parsing never copies: every string in a [Placeholder] is a substring of the
// text it was parsed from, and substrings are located by offsets, so they can
// be mapped back into the enclosing template.
package placeholder
