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

package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Trevor-Strong/bracefmt"
	"github.com/Trevor-Strong/bracefmt/reporter"
)

// errCheckFailed is returned by check after its errors have been printed.
var errCheckFailed = errors.New("check failed")

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE or GLOB]...",
		Short: "Check that templates are well-formed",
		Long: `Check validates the encoding and then the syntax of each template, printing
every problem as file:line:column: message.

Arguments are file names or doublestar globs such as "templates/**/*.tmpl".
Without arguments, the config file's include globs are checked, or else
` + DefaultInclude + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.Context(), args)
		},
	}
}

func (a *app) check(ctx context.Context, patterns []string) error {
	if len(patterns) == 0 {
		patterns = a.cfg.Include
	}
	if len(patterns) == 0 {
		patterns = []string{DefaultInclude}
	}

	files, err := expand(ctx, patterns, a.cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %q", patterns)
	}
	a.logger.Info("checking", "files", len(files), "jobs", a.cfg.Jobs)

	var mu sync.Mutex
	var errs, warnings int
	report := func(prefix string, err reporter.ErrorWithPos) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(a.stderr, "%s%v\n", prefix, err)
	}

	compiler := bracefmt.Compiler{
		Resolver:       &bracefmt.SourceResolver{},
		MaxParallelism: a.cfg.Jobs,
		UTF8:           a.cfg.UTF8(),
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				report("", err)
				mu.Lock()
				errs++
				mu.Unlock()
				return nil
			},
			func(err reporter.ErrorWithPos) {
				report("warning: ", err)
				mu.Lock()
				warnings++
				mu.Unlock()
			},
		),
	}

	_, err = compiler.Compile(ctx, files...)
	a.logger.Info("checked", "files", len(files), "errors", errs, "warnings", warnings)
	if errors.Is(err, reporter.ErrInvalidSource) {
		return fmt.Errorf("%w: %d error(s) in %d file(s)", errCheckFailed, errs, len(files))
	}
	return err
}

// expand matches each pattern against the file system, concurrently, and
// returns the sorted, deduplicated matches that no exclude pattern matches.
func expand(ctx context.Context, patterns, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("bad exclude pattern %q", pattern)
		}
	}

	matches := make([][]string, len(patterns))
	g, ctx := errgroup.WithContext(ctx)
	for i, pattern := range patterns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("pattern %q: %w", pattern, err)
			}
			matches[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var files []string
	for _, found := range matches {
	next:
		for _, file := range found {
			for _, pattern := range exclude {
				if ok, _ := doublestar.PathMatch(pattern, file); ok {
					continue next
				}
			}
			files = append(files, file)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
