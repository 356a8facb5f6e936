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

// Package fuzztesting holds helpers for regression tests built from inputs
// that made a fuzz target slow.
package fuzztesting

import (
	"context"
	"testing"
	"time"

	"github.com/Trevor-Strong/bracefmt/internal"
)

// Budget is how long [RunWithTimeout] allows for all of its iterations.
func Budget() time.Duration {
	if internal.IsRace {
		// The race detector slows tokenizing by close to an order of magnitude.
		return 20 * time.Second
	}
	return 2 * time.Second
}

// RunWithTimeout calls fn a few times under a context that expires after
// [Budget], and fails t if the budget runs out.
func RunWithTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()

	budget := Budget()
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
	if ctx.Err() != nil {
		t.Errorf("took longer than %v", budget)
	}
}
