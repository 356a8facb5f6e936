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

// Package utf8codec is a strict UTF-8 encoder and decoder.
//
// Unlike [unicode/utf8], which silently maps malformed input to U+FFFD, every
// function in this package reports precisely why a byte sequence is not
// well-formed. Decoding is strict by default: overlong encodings and encoded
// surrogates are rejected. Both checks can be relaxed through [Options], the
// surrogate one to support WTF-8.
//
// All functions operate on either strings or byte slices and never allocate,
// except for [AppendRune], which grows its destination.
package utf8codec
