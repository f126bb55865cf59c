// SPDX-License-Identifier: MIT
// Package: mazegraph/builder
//
// impl_hex.go — HexBuilder: hexagonal-cell mazes inside a hexagon.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/gridgraph"
)

// HexBuilder builds hexagonal mazes of a given radius. Openings head Up,
// Down and along the four diagonals. It runs the same pipeline as
// RectBuilder and is steppable in the same way.
type HexBuilder struct {
	pipeline
}

var _ Builder = (*HexBuilder)(nil)

// NewHex returns a HexBuilder. Radius and bias are validated by the first build.
func NewHex(opts ...BuilderOption) *HexBuilder {
	b := &HexBuilder{}
	b.kind = "hex"
	b.cfg = newBuilderConfig(opts...)
	b.layout = hexLayout
	return b
}

func hexLayout(cfg builderConfig, rng *rand.Rand) (*core.Graph, error) {
	return gridgraph.NewHex(cfg.size, cfg.bias, rng)
}

// Size returns the configured radius.
func (b *HexBuilder) Size() int { return b.cfg.size }

// Geometry returns the axial mapping of the built graph.
func (b *HexBuilder) Geometry() gridgraph.Hex {
	return gridgraph.NewHexGeometry(b.cfg.size)
}
