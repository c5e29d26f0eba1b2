package tetris

// PieceStatus tracks where a piece is in its lifecycle.
type PieceStatus uint8

const (
	StatusSpawning PieceStatus = iota // dropping in from above the field
	StatusFalling                     // in the field, subject to gravity and lock delay
	StatusLocked                      // merged into the board
)

// String returns the lowercase status name.
func (s PieceStatus) String() string {
	switch s {
	case StatusSpawning:
		return "spawning"
	case StatusFalling:
		return "falling"
	case StatusLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Piece is the active tetromino. It is a small value type: transforms return
// or mutate a copy and the session decides whether to keep it.
type Piece struct {
	Shape    Shape
	Rotation int   // 0-3 clockwise quarter turns, always 0 for O
	Anchor   Coord // top-left of the rotation box on the board
	Status   PieceStatus
}

// NewPiece creates a piece at rotation 0 with its box at anchor.
func NewPiece(s Shape, anchor Coord) Piece {
	return Piece{Shape: s, Anchor: anchor, Status: StatusSpawning}
}

// Cells returns the four board cells the piece occupies.
func (p Piece) Cells() [4]Coord {
	cells := p.Shape.Cells(p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.Anchor)
	}
	return cells
}

// RotateRight turns the piece a quarter clockwise. No-op for O.
func (p *Piece) RotateRight() {
	if p.Shape == ShapeO {
		return
	}
	p.Rotation = normRotation(p.Rotation + 1)
}

// RotateLeft turns the piece a quarter counter-clockwise. No-op for O.
func (p *Piece) RotateLeft() {
	if p.Shape == ShapeO {
		return
	}
	p.Rotation = normRotation(p.Rotation - 1)
}

// MoveLeft shifts the piece one column left.
func (p *Piece) MoveLeft() { p.Anchor.Col-- }

// MoveRight shifts the piece one column right.
func (p *Piece) MoveRight() { p.Anchor.Col++ }

// MoveDown shifts the piece one row down.
func (p *Piece) MoveDown() { p.Anchor.Row++ }

// Shifted returns a copy moved by (dr, dc).
func (p Piece) Shifted(dr, dc int) Piece {
	p.Anchor = p.Anchor.Add(Coord{Row: dr, Col: dc})
	return p
}

// Rotated returns a copy turned a quarter clockwise.
func (p Piece) Rotated() Piece {
	p.RotateRight()
	return p
}

// BoundingBox returns the inclusive top-left and bottom-right of the occupied cells.
func (p Piece) BoundingBox() (lo, hi Coord) {
	cells := p.Cells()
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.Row = min(lo.Row, c.Row)
		lo.Col = min(lo.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
	}
	return lo, hi
}

// Height returns the number of rows the piece spans.
func (p Piece) Height() int {
	lo, hi := p.BoundingBox()
	return hi.Row - lo.Row + 1
}

// Width returns the number of columns the piece spans.
func (p Piece) Width() int {
	lo, hi := p.BoundingBox()
	return hi.Col - lo.Col + 1
}
