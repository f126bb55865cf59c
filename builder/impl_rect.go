// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// impl_rect.go — RectBuilder: square-cell mazes on a height x width grid.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

// RectBuilder builds rectangular mazes. Cells are row-major; openings head
// Up, Down, Left or Right.
type RectBuilder struct {
	pipeline
}

var _ Builder = (*RectBuilder)(nil)

// NewRect returns a RectBuilder. Dimensions and bias are validated by the
// first build.
func NewRect(opts ...BuilderOption) *RectBuilder {
	b := &RectBuilder{}
	b.kind = "rect"
	b.cfg = newBuilderConfig(opts...)
	b.layout = rectLayout
	return b
}

func rectLayout(cfg builderConfig, rng *rand.Rand) (*core.Graph, error) {
	return gridgraph.NewRect(cfg.height, cfg.width, cfg.bias, rng)
}

// Height returns the configured number of rows.
func (b *RectBuilder) Height() int { return b.cfg.height }

// Width returns the configured number of columns.
func (b *RectBuilder) Width() int { return b.cfg.width }

// Geometry returns the row/column mapping of the built graph.
func (b *RectBuilder) Geometry() gridgraph.Rect {
	return gridgraph.Rect{Height: b.cfg.height, Width: b.cfg.width}
}
