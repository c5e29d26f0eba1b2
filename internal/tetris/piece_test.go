package tetris

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupiedCellsValid(t *testing.T) {
	for _, shape := range AllShapes {
		for rot := range 4 {
			t.Run(fmt.Sprintf("%s/rot%d", shape, rot), func(t *testing.T) {
				p := NewPiece(shape, Coord{Row: 5, Col: 3})
				p.Rotation = rot
				cells := p.Cells()

				seen := make(map[Coord]bool)
				for _, c := range cells {
					assert.True(t, c.InBounds(), "cell %v out of bounds", c)
					seen[c] = true
				}
				assert.Len(t, seen, 4, "cells must be distinct")
			})
		}
	}
}

func TestCellsStayInsideRotationBox(t *testing.T) {
	for _, shape := range AllShapes {
		for rot := range 4 {
			for _, c := range shape.Cells(rot) {
				assert.GreaterOrEqual(t, c.Row, 0)
				assert.GreaterOrEqual(t, c.Col, 0)
				assert.Less(t, c.Row, shape.BoxSize())
				assert.Less(t, c.Col, shape.BoxSize())
			}
		}
	}
}

func TestORotationIsNoop(t *testing.T) {
	p := NewPiece(ShapeO, Coord{Row: 3, Col: 4})
	want := p.Cells()

	for rot := range 4 {
		p.Rotation = rot
		assert.Equal(t, want, p.Cells(), "rotation %d", rot)
	}

	p.Rotation = 0
	p.RotateRight()
	assert.Equal(t, 0, p.Rotation)
	p.RotateLeft()
	assert.Equal(t, 0, p.Rotation)
}

func TestRotationCycles(t *testing.T) {
	for _, shape := range AllShapes {
		p := NewPiece(shape, Coord{Row: 4, Col: 4})
		start := p.Cells()

		for range 4 {
			p.RotateRight()
		}
		assert.Equal(t, 0, p.Rotation, shape.String())
		assert.Equal(t, start, p.Cells(), shape.String())

		p.RotateRight()
		p.RotateLeft()
		assert.Equal(t, start, p.Cells(), shape.String())

		// O never leaves rotation 0
		want := 3
		if shape == ShapeO {
			want = 0
		}
		p.RotateLeft()
		assert.Equal(t, want, p.Rotation, shape.String())
	}
}

func TestTRotation(t *testing.T) {
	p := NewPiece(ShapeT, Coord{})
	p.RotateRight()

	assert.ElementsMatch(t,
		[]Coord{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		p.Cells(),
		"T rotated clockwise points right",
	)
}

func TestMoves(t *testing.T) {
	p := NewPiece(ShapeL, Coord{Row: 2, Col: 2})

	p.MoveLeft()
	assert.Equal(t, Coord{Row: 2, Col: 1}, p.Anchor)
	p.MoveRight()
	p.MoveRight()
	assert.Equal(t, Coord{Row: 2, Col: 3}, p.Anchor)
	p.MoveDown()
	assert.Equal(t, Coord{Row: 3, Col: 3}, p.Anchor)

	moved := p.Shifted(2, -1)
	assert.Equal(t, Coord{Row: 5, Col: 2}, moved.Anchor)
	assert.Equal(t, Coord{Row: 3, Col: 3}, p.Anchor, "Shifted must not mutate the receiver")
}

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		shape  Shape
		rot    int
		lo, hi Coord
	}{
		{ShapeI, 0, Coord{1, 0}, Coord{1, 3}},
		{ShapeI, 1, Coord{0, 2}, Coord{3, 2}},
		{ShapeO, 2, Coord{0, 0}, Coord{1, 1}},
		{ShapeT, 0, Coord{0, 0}, Coord{1, 2}},
		{ShapeS, 1, Coord{0, 1}, Coord{2, 2}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/rot%d", tc.shape, tc.rot), func(t *testing.T) {
			p := NewPiece(tc.shape, Coord{})
			p.Rotation = tc.rot
			lo, hi := p.BoundingBox()
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}

	assert.Equal(t, 1, NewPiece(ShapeI, Coord{}).Height())
	assert.Equal(t, 4, NewPiece(ShapeI, Coord{}).Width())
}

func TestShapeMetadata(t *testing.T) {
	names := ""
	colors := make(map[any]bool)
	for _, s := range AllShapes {
		names += s.String()
		colors[s.Color()] = true
	}
	assert.Equal(t, "IOLJSZT", names)
	assert.Len(t, colors, ShapeCount, "every shape gets its own color")
	assert.Equal(t, "?", Shape(42).String())
}
