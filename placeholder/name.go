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

import (
	"fmt"
	"strconv"
)

// NameKind is the kind of an argument selector.
type NameKind uint8

const (
	Anonymous NameKind = iota // No selector; the next positional argument.
	Number                    // A single digit selecting a positional argument.
	String                    // A bracketed name.
)

// String implements [fmt.Stringer].
func (k NameKind) String() string {
	switch k {
	case Anonymous:
		return "Anonymous"
	case Number:
		return "Number"
	case String:
		return "String"
	default:
		return fmt.Sprintf("placeholder.NameKind(%d)", int(k))
	}
}

// Name selects the argument a placeholder refers to.
//
// The zero value is an anonymous selector.
type Name struct {
	Kind NameKind
	// Set if Kind is Number.
	Index int
	// Set if Kind is String. May be empty, for `{[]}`.
	Text string
}

// ByIndex returns a Number selector.
func ByIndex(i int) Name {
	return Name{Kind: Number, Index: i}
}

// ByName returns a String selector.
func ByName(name string) Name {
	return Name{Kind: String, Text: name}
}

// IsAnonymous returns whether this name selects the next positional argument.
func (n Name) IsAnonymous() bool {
	return n.Kind == Anonymous
}

// String returns the selector as it would be written in a template.
func (n Name) String() string {
	switch n.Kind {
	case Number:
		return strconv.Itoa(n.Index)
	case String:
		return "[" + n.Text + "]"
	default:
		return ""
	}
}
