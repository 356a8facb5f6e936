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

// Package bracefmt formats text from `{...}` templates.
//
// A template is literal text with placeholders:
//
//	Hello, {[name]}! You have {0:>4} new {1}.
//
// Each placeholder selects an argument (the next positional one, a single
// digit index, or a bracketed name), optionally names a spec for how the
// value is written, and after a ':' gives layout options: a fill and
// alignment, a width and a precision. Widths and precisions may themselves
// refer to arguments, as in `{:>[w].[2]}`. Doubled braces `{{` and `}}` stand
// for literal braces.
//
// [Format] and [Fprint] do everything at once. [Compile] validates a template
// up front, so that it can be executed many times without reparsing.
//
// # Compiler
//
// A [Compiler] loads and compiles template files in parallel. Files are
// located by a [Resolver]; a minimal Compiler that reads files relative to
// the working directory is
//
//	compiler := bracefmt.Compiler{
//	    Resolver: &bracefmt.SourceResolver{},
//	}
//
// Errors are reported through a [reporter.Reporter], which may choose to
// swallow them so that every problem in a set of files is found in one run.
//
// The packages under this one each handle one layer: utf8codec decodes and
// validates text, placeholder parses the inside of a placeholder, template
// tokenizes whole templates, bind matches placeholders with arguments, and
// render writes individual values.
package bracefmt
