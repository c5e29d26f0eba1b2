package tetris

// Direction is a one-step translation.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 1, 0
	}
}

// CanOccupy reports whether every cell is on the board and empty.
// The active piece is never written to the board before it locks, so it
// cannot block itself.
func CanOccupy(b *Board, cells []Coord) bool {
	for _, c := range cells {
		if !c.InBounds() || !b.IsSpace(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// CanEnter is the drop-in variant of CanOccupy: cells above the top row are
// free as long as their column is on the board.
func CanEnter(b *Board, cells []Coord) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= BoardWidth || c.Row >= BoardHeight {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if !b.IsSpace(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// CanMove reports whether p can take one step in dir.
func CanMove(b *Board, p Piece, dir Direction) bool {
	dr, dc := dir.delta()
	cells := p.Shifted(dr, dc).Cells()
	return CanOccupy(b, cells[:])
}

// kickOffsets are the column shifts tried, in order, when a rotation collides.
var kickOffsets = [...]int{0, -1, 1}

// TryRotate turns p clockwise, trying the rotation in place, then one column
// left, then one column right. It returns the first placement that fits, or p
// unchanged and false.
func TryRotate(b *Board, p Piece) (Piece, bool) {
	rotated := p.Rotated()
	for _, dc := range kickOffsets {
		candidate := rotated.Shifted(0, dc)
		cells := candidate.Cells()
		if CanOccupy(b, cells[:]) {
			return candidate, true
		}
	}
	return p, false
}

// GhostDrop returns how many rows p can fall before it lands.
func GhostDrop(b *Board, p Piece) int {
	n := 0
	for CanMove(b, p.Shifted(n, 0), DirDown) {
		n++
	}
	return n
}
