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

// Package reporter contains the types used for reporting errors from the
// tokenizer and placeholder parser.
//
// Errors carry a [SourcePos]. The core packages only know byte offsets; a
// [FileInfo] resolves those to lines and columns when a message is shown to
// a human. A [Handler] collects errors for tools that check many templates.
package reporter
