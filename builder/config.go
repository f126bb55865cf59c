// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • height, width = 10, 10  (rect)
//   • size          = 1       (hex)
//   • bias          = 0.5
//   • seed          = 0       (time-based per build)
//   • method        = kruskal

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

const (
	defaultHeight = 10
	defaultWidth  = 10
	defaultSize   = 1
	defaultBias   = 0.5
)

// builderConfig aggregates every builder knob.
type builderConfig struct {
	height, width int
	size          int
	bias          float64
	seed          int64
	rng           *rand.Rand
	method        prim_kruskal.Method
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		height: defaultHeight,
		width:  defaultWidth,
		size:   defaultSize,
		bias:   defaultBias,
		method: prim_kruskal.MethodKruskal,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
