package tetris

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Score         int
	Lines         int
	Level         int
	GravityPeriod int
	Easy          bool
	Shape         Shape
	Rotation      int
	AnchorRow     int
	AnchorCol     int
	Status        PieceStatus
	HasPiece      bool
	Next          Shape
	StandStill    int
	DropIn        int
	LockedCells   int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	locked := 0
	for r := range BoardHeight {
		for c := range BoardWidth {
			if s.board.cells[r][c].IsLocked() {
				locked++
			}
		}
	}

	return Snapshot{
		Tick:          s.tick,
		Phase:         s.phase,
		Score:         s.score,
		Lines:         s.lines,
		Level:         s.level,
		GravityPeriod: s.gravityPeriod,
		Easy:          s.easy,
		Shape:         s.piece.Shape,
		Rotation:      s.piece.Rotation,
		AnchorRow:     s.piece.Anchor.Row,
		AnchorCol:     s.piece.Anchor.Col,
		Status:        s.piece.Status,
		HasPiece:      s.hasPiece,
		Next:          s.next,
		StandStill:    s.standStill,
		DropIn:        s.dropInRemaining,
		LockedCells:   locked,
	}
}
