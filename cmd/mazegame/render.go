package main

import (
	"bufio"
	"io"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/game"
)

// glyphs maps tags to the character drawn in a cell's centre.
var glyphs = map[core.Tag]byte{
	core.TagBackground:    ' ',
	core.TagOrigin:        'O',
	core.TagTarget:        'T',
	core.TagCursor:        '@',
	core.TagUserVisited:   '.',
	core.TagSearchVisited: '~',
	core.TagPath:          '*',
}

// render draws a rectangular maze as ASCII boxes:
//
//	+---+---+
//	| O     |
//	+   +---+
//	| *   T |
//	+---+---+
func render(w io.Writer, s game.State) error {
	out := bufio.NewWriter(w)
	height, width := s.Height(), s.Width()

	border := func(row int) {
		for col := 0; col < width; col++ {
			out.WriteByte('+')
			// row -1 is the top edge of the grid
			if row >= 0 && s.HasEdgeIn(core.VertexID(row*width+col), core.Down) {
				out.WriteString("   ")
			} else {
				out.WriteString("---")
			}
		}
		out.WriteString("+\n")
	}

	border(-1)
	for row := 0; row < height; row++ {
		out.WriteByte('|')
		for col := 0; col < width; col++ {
			v := core.VertexID(row*width + col)
			tag, err := s.Tag(v)
			if err != nil {
				return err
			}
			out.WriteByte(' ')
			out.WriteByte(glyphs[tag])
			out.WriteByte(' ')
			if s.HasEdgeIn(v, core.Right) {
				out.WriteByte(' ')
			} else {
				out.WriteByte('|')
			}
		}
		out.WriteByte('\n')
		border(row)
	}
	return out.Flush()
}
