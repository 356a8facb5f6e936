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

// Package bind connects placeholders to the arguments they select.
//
// Binding happens in two passes. [Collect] (or [Usage.Add]) walks the
// placeholders of a template and records every argument they reference,
// including those referenced by `[name]` widths and precisions. [Project] then
// reduces a caller's [Args] to exactly that set, failing if anything
// referenced is missing. A [Resolver] finally hands out values in template
// order while rendering.
package bind
