// Package tetris implements the falling-block engine: the playfield, the seven
// tetrominoes, collision and rotation rules, and the tick-driven session state
// machine. It has no terminal, clock or global state; the platform layer feeds
// it one action per tick and renders the Frame it produces.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Playfield dimensions in logical cells. Row 0 is the top.
const (
	BoardWidth  = 10
	BoardHeight = 18
)

// Coord is a board position.
type Coord struct {
	Row, Col int
}

// Add returns the sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// InBounds reports whether the coordinate lies on the playfield.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardHeight && c.Col >= 0 && c.Col < BoardWidth
}

// CellState distinguishes empty cells from the two kinds of occupied cells.
type CellState uint8

const (
	CellEmpty   CellState = iota
	CellFalling           // active piece drawn onto a display copy, never collides
	CellLocked            // settled block
)

// Cell is a single playfield square.
type Cell struct {
	State CellState
	Color core.Color
}

// Occupied builds a filled cell.
func Occupied(color core.Color, locked bool) Cell {
	if locked {
		return Cell{State: CellLocked, Color: color}
	}
	return Cell{State: CellFalling, Color: color}
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c.State == CellEmpty
}

// IsLocked reports whether the cell is a settled block.
func (c Cell) IsLocked() bool {
	return c.State == CellLocked
}

type grid [BoardHeight][BoardWidth]Cell

// Board is the fixed-size playfield. The zero value is an empty board.
type Board struct {
	cells grid
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = grid{}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func mustInBounds(row, col int) {
	if row < 0 || row >= BoardHeight || col < 0 || col >= BoardWidth {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d board", row, col, BoardHeight, BoardWidth))
	}
}

// IsSpace reports whether the cell at (row, col) is empty.
// Out-of-range coordinates are a programming error and panic.
func (b *Board) IsSpace(row, col int) bool {
	mustInBounds(row, col)
	return b.cells[row][col].IsEmpty()
}

// At returns the cell at c. Out-of-range coordinates panic.
func (b *Board) At(c Coord) Cell {
	mustInBounds(c.Row, c.Col)
	return b.cells[c.Row][c.Col]
}

// SetCell writes a cell. Out-of-range coordinates panic.
func (b *Board) SetCell(c Coord, cell Cell) {
	mustInBounds(c.Row, c.Col)
	b.cells[c.Row][c.Col] = cell
}

// SetSpace empties a cell. Out-of-range coordinates panic.
func (b *Board) SetSpace(c Coord) {
	b.SetCell(c, Cell{})
}

// FullRows returns, top to bottom, the rows whose every column is locked.
func (b *Board) FullRows() []int {
	var rows []int
	for r := range BoardHeight {
		full := true
		for c := range BoardWidth {
			if !b.cells[r][c].IsLocked() {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	return rows
}

// ClearAndCollapse removes the given rows and lets everything above them fall
// into the gap. The board ends up with len(rows) empty rows at the top.
func (b *Board) ClearAndCollapse(rows []int) {
	b.cells = collapse(b.cells, rows)
}

// collapse builds a new grid from the rows of g that are not listed, keeping
// their order, and pads the top with empty rows. Out-of-range and duplicate
// entries in rows are ignored.
func collapse(g grid, rows []int) grid {
	var remove [BoardHeight]bool
	for _, r := range rows {
		if r >= 0 && r < BoardHeight {
			remove[r] = true
		}
	}

	var out grid
	dst := BoardHeight - 1
	for src := BoardHeight - 1; src >= 0; src-- {
		if remove[src] {
			continue
		}
		out[dst] = g[src]
		dst--
	}
	return out
}

// Overlay returns a display copy of the board with cells drawn as unlocked
// blocks of the given color. Cells above the field are skipped.
func (b *Board) Overlay(cells []Coord, color core.Color) *Board {
	out := b.Clone()
	for _, c := range cells {
		if c.InBounds() {
			out.cells[c.Row][c.Col] = Occupied(color, false)
		}
	}
	return out
}
