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

package bracefmt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/Trevor-Strong/bracefmt/reporter"
	"github.com/Trevor-Strong/bracefmt/utf8codec"
)

// ErrNoResolver is returned by [Compiler.Compile] when the Compiler has no
// Resolver.
var ErrNoResolver = errors.New("compiler has no resolver")

// Compiler loads and compiles template files.
//
// Each file is checked in two steps: its bytes must be valid UTF-8 (as
// configured by UTF8), and it must be a well-formed template.
type Compiler struct {
	// Locates the files to compile. This is the only required field.
	Resolver Resolver
	// The maximum number of files compiled at once. If not positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified, compilation fails
	// at the first error and warnings are ignored.
	Reporter reporter.Reporter
	// Which relaxations of UTF-8 to accept. Text that is only accepted
	// because of a relaxation is reported as a warning.
	UTF8 utf8codec.Options
}

// Compile compiles the named files, in order. Names that appear more than
// once are compiled once.
//
// If the reporter swallows every error, the result is
// [reporter.ErrInvalidSource].
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*Template, error) {
	if c.Resolver == nil {
		return nil, ErrNoResolver
	}
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(c.Reporter)
	e := executor{
		c:       c,
		h:       h,
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.compile(ctx, f)
	}

	for _, r := range results {
		<-r.ready
	}
	if err := h.ReporterError(); err != nil {
		return nil, err
	}

	templates := make([]*Template, len(files))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		templates[i] = r.res
	}
	if err := h.Error(); err != nil {
		return nil, err
	}
	return templates, nil
}

type result struct {
	ready chan struct{}
	res   *Template
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(t *Template) {
	r.res = t
	close(r.ready)
}

type executor struct {
	c      *Compiler
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go e.doCompile(ctx, file, r)
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		e.fail(r, err)
		return
	}
	if sr.Template != nil {
		if sr.Template.Name() != file {
			e.fail(r, fmt.Errorf("search result for %q returned template %q", file, sr.Template.Name()))
			return
		}
		r.complete(sr.Template)
		return
	}
	if sr.Source == nil {
		e.fail(r, fmt.Errorf("search result for %q has no source", file))
		return
	}

	text, err := readSource(sr.Source)
	if err != nil {
		e.fail(r, fmt.Errorf("%s: %w", file, err))
		return
	}

	t, err := e.check(file, text)
	if err != nil {
		e.fail(r, err)
		return
	}
	r.complete(t)
}

// fail passes err to the handler. If the reporter swallows it, the file is
// left without a template and compilation of the others continues.
func (e *executor) fail(r *result, err error) {
	if err = e.h.HandleError(err); err != nil {
		e.cancel()
		r.fail(err)
		return
	}
	r.complete(nil)
}

// check validates the encoding of text, then compiles it.
func (e *executor) check(file, text string) (*Template, error) {
	info := reporter.NewFileInfo(file, text)

	if err := utf8codec.Validate(text, e.c.UTF8); err != nil {
		return nil, locateInvalid(info, err)
	}
	if e.c.UTF8 != utf8codec.Strict {
		if err := utf8codec.Validate(text, utf8codec.Strict); err != nil {
			var invalid *utf8codec.InvalidError
			if errors.As(err, &invalid) {
				e.h.HandleWarning(info.SourcePos(invalid.Offset), invalid.Err)
			}
		}
	}

	return compile(file, text)
}

func locateInvalid(info *reporter.FileInfo, err error) error {
	var invalid *utf8codec.InvalidError
	if !errors.As(err, &invalid) {
		return err
	}
	return reporter.Error(info.SourcePos(invalid.Offset), invalid.Err)
}

func readSource(src io.Reader) (string, error) {
	if c, ok := src.(io.Closer); ok {
		defer func() {
			_ = c.Close()
		}()
	}
	var buf strings.Builder
	if _, err := io.Copy(&buf, src); err != nil {
		return "", err
	}
	return buf.String(), nil
}
