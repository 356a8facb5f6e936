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
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/Trevor-Strong/bracefmt/placeholder"
	"github.com/Trevor-Strong/bracefmt/render"
)

// Resolver maps selectors to values, numbering anonymous selectors in the
// order they are resolved.
type Resolver struct {
	args Args
	next int
}

// NewResolver returns a resolver over args.
func NewResolver(args Args) *Resolver {
	return &Resolver{args: args}
}

// Resolve returns the value name selects.
func (r *Resolver) Resolve(name placeholder.Name) (any, error) {
	switch name.Kind {
	case placeholder.Anonymous:
		i := r.next
		r.next++
		return r.positional(i)
	case placeholder.Number:
		return r.positional(name.Index)
	default:
		v, ok := r.args.Named[name.Text]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingArgument, name.Text)
		}
		return v, nil
	}
}

func (r *Resolver) positional(i int) (any, error) {
	if i >= len(r.args.Positional) {
		return nil, fmt.Errorf("%w: positional argument %d (have %d)",
			ErrMissingArgument, i, len(r.args.Positional))
	}
	return r.args.Positional[i], nil
}

// ResolveSize turns a width or precision into a number. ok is false if the
// size was not given. Sizes above [render.MaxSize] are rejected.
func (r *Resolver) ResolveSize(size placeholder.Size) (n int, ok bool, err error) {
	switch size.Kind {
	case placeholder.SizeLiteral:
		n, ok = fromInteger(size.Value)
	case placeholder.SizeArg:
		var v any
		v, err = r.Resolve(SizeName(size))
		if err != nil {
			return 0, false, err
		}
		n, ok = toInt(v)
	default:
		return 0, false, nil
	}

	if !ok || n > render.MaxSize {
		return 0, false, fmt.Errorf("%w: %v", ErrBadSize, size)
	}
	return n, true, nil
}

// ResolveOptions resolves every size in opts, producing the layout a
// renderer needs.
func (r *Resolver) ResolveOptions(opts placeholder.Options) (render.Layout, error) {
	layout := render.Layout{
		Align:   opts.Align,
		Fill:    opts.Fill,
		HasFill: opts.HasFill,
	}

	var err error
	if layout.Width, layout.HasWidth, err = r.ResolveSize(opts.Width); err != nil {
		return render.Layout{}, err
	}
	if layout.Precision, layout.HasPrecision, err = r.ResolveSize(opts.Precision); err != nil {
		return render.Layout{}, err
	}
	return layout, nil
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInteger(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromInteger(rv.Uint())
	default:
		return 0, false
	}
}

// fromInteger converts v to a non-negative int, if it fits.
func fromInteger[T constraints.Integer](v T) (int, bool) {
	if v < 0 || uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}
