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

package bind

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/btree"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/template"
)

var (
	// ErrMissingArgument is returned when a template references an argument
	// the caller did not supply.
	ErrMissingArgument = errors.New("missing argument")
	// ErrBadSize is returned when a width or precision is not a non-negative
	// integer no larger than [render.MaxSize].
	ErrBadSize = errors.New("width or precision argument is not a non-negative integer")
)

// Args is the set of values a template is rendered with.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Usage records which arguments a template references, and how often.
//
// The zero value is an empty Usage, ready to use.
type Usage struct {
	indices btree.Map[int, int]
	names   btree.Map[string, int]

	next         int // Index of the next anonymous placeholder.
	placeholders int
}

// Collect tokenizes text and returns the arguments its placeholders use.
func Collect(text string) (*Usage, error) {
	u := new(Usage)
	for tok, err := range template.NewParser(text).All() {
		if err != nil {
			return nil, err
		}
		if tok.Kind == template.Placeholder {
			u.Add(tok.Placeholder)
		}
	}
	return u, nil
}

// Add records the arguments referenced by ph. Placeholders must be added in
// template order, since anonymous selectors are numbered as they are seen.
func (u *Usage) Add(ph placeholder.Placeholder) {
	u.placeholders++

	arg := ph.Arg
	if arg.IsAnonymous() {
		arg = placeholder.ByIndex(u.next)
		u.next++
	}
	u.use(arg)

	if !ph.HasOptions {
		return
	}
	for _, size := range []placeholder.Size{ph.Options.Width, ph.Options.Precision} {
		if size.Kind == placeholder.SizeArg {
			u.use(SizeName(size))
		}
	}
}

func (u *Usage) use(name placeholder.Name) {
	switch name.Kind {
	case placeholder.Number:
		n, _ := u.indices.Get(name.Index)
		u.indices.Set(name.Index, n+1)
	case placeholder.String:
		n, _ := u.names.Get(name.Text)
		u.names.Set(name.Text, n+1)
	}
}

// Placeholders returns the number of placeholders added.
func (u *Usage) Placeholders() int {
	return u.placeholders
}

// Indices returns the referenced positional indices in ascending order.
func (u *Usage) Indices() []int {
	out := make([]int, 0, u.indices.Len())
	u.indices.Scan(func(i, _ int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Names returns the referenced names in ascending order.
func (u *Usage) Names() []string {
	out := make([]string, 0, u.names.Len())
	u.names.Scan(func(name string, _ int) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Count returns how many times name is referenced. Anonymous names are
// never counted; they are recorded under their assigned index.
func (u *Usage) Count(name placeholder.Name) int {
	var n int
	switch name.Kind {
	case placeholder.Number:
		n, _ = u.indices.Get(name.Index)
	case placeholder.String:
		n, _ = u.names.Get(name.Text)
	}
	return n
}

// Project returns the subset of args that u references. Positional
// arguments keep their indices; unreferenced ones are nil, and the slice
// ends at the highest referenced index.
func Project(u *Usage, args Args) (Args, error) {
	var out Args

	if u.indices.Len() > 0 {
		var last int
		u.indices.Scan(func(i, _ int) bool {
			last = i
			return true
		})
		if last >= len(args.Positional) {
			return Args{}, fmt.Errorf("%w: positional argument %d (have %d)",
				ErrMissingArgument, last, len(args.Positional))
		}

		out.Positional = make([]any, last+1)
		u.indices.Scan(func(i, _ int) bool {
			out.Positional[i] = args.Positional[i]
			return true
		})
	}

	if u.names.Len() > 0 {
		out.Named = make(map[string]any, u.names.Len())
		var missing error
		u.names.Scan(func(name string, _ int) bool {
			v, ok := args.Named[name]
			if !ok {
				missing = fmt.Errorf("%w: %q", ErrMissingArgument, name)
				return false
			}
			out.Named[name] = v
			return true
		})
		if missing != nil {
			return Args{}, missing
		}
	}

	return out, nil
}

// SizeName returns the argument a `[...]` width or precision refers to.
// Unsigned decimal text selects a positional argument; anything else is a
// name.
func SizeName(size placeholder.Size) placeholder.Name {
	if size.Arg != "" && isDecimal(size.Arg) {
		if i, err := strconv.Atoi(size.Arg); err == nil {
			return placeholder.ByIndex(i)
		}
	}
	return placeholder.ByName(size.Arg)
}

func isDecimal(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
