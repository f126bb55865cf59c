// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is. Lattice validation errors (dimensions,
// bias) come from gridgraph and are returned wrapped with builder context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/core"
)

// ErrNoNextBuild indicates NextBuild was called with no pending wall, either
// before BuildIncrementally or after the build drained.
var ErrNoNextBuild = fmt.Errorf("%w: builder: no pending build step", core.ErrInvalidState)
