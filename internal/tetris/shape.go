package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
	ShapeT
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// AllShapes lists every shape in declaration order.
var AllShapes = [ShapeCount]Shape{ShapeI, ShapeO, ShapeL, ShapeJ, ShapeS, ShapeZ, ShapeT}

type shapeDef struct {
	name  string
	box   int      // side of the square box the cells rotate in
	base  [4]Coord // cells at rotation 0, relative to the box's top-left
	color core.Color
}

var shapeDefs = [ShapeCount]shapeDef{
	ShapeI: {
		name:  "I",
		box:   4,
		base:  [4]Coord{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		color: core.ColorCyan,
	},
	ShapeO: {
		name:  "O",
		box:   3,
		base:  [4]Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		color: core.ColorYellow,
	},
	ShapeL: {
		name:  "L",
		box:   3,
		base:  [4]Coord{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		color: core.ColorOrange,
	},
	ShapeJ: {
		name:  "J",
		box:   3,
		base:  [4]Coord{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		color: core.ColorBlue,
	},
	ShapeS: {
		name:  "S",
		box:   3,
		base:  [4]Coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		color: core.ColorGreen,
	},
	ShapeZ: {
		name:  "Z",
		box:   3,
		base:  [4]Coord{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		color: core.ColorRed,
	},
	ShapeT: {
		name:  "T",
		box:   3,
		base:  [4]Coord{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		color: core.ColorMagenta,
	},
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if int(s) >= ShapeCount {
		return "?"
	}
	return shapeDefs[s].name
}

// Color returns the palette color of the shape.
func (s Shape) Color() core.Color {
	return shapeDefs[s].color
}

// BoxSize returns the side length of the rotation box.
func (s Shape) BoxSize() int {
	return shapeDefs[s].box
}

// Cells returns the shape's cells at the given rotation, relative to the top-left
// of its rotation box. O ignores rotation.
func (s Shape) Cells(rotation int) [4]Coord {
	def := shapeDefs[s]
	cells := def.base
	if s == ShapeO {
		return cells
	}
	for range normRotation(rotation) {
		for i, c := range cells {
			cells[i] = Coord{Row: c.Col, Col: def.box - 1 - c.Row}
		}
	}
	return cells
}

func normRotation(r int) int {
	return ((r % 4) + 4) % 4
}
