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

// Package template splits a template string into tokens.
//
// A template is literal text interspersed with `{{` and `}}` escapes and
// `{...}` placeholders, whose insides are parsed by package placeholder.
// Tokens borrow from the template string; nothing is copied.
//
// The usual entry point is [Parser]:
//
//	p := template.NewParser("Hello, {[name]}!")
//	for tok, err := range p.All() {
//		if err != nil {
//			return err
//		}
//		// ...
//	}
//
// Callers that have already run [Validate] on a template may use [Valid] to
// iterate over it without handling errors.
package template
