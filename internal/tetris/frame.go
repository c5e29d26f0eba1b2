package tetris

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Board    *Board // settled cells with the active piece overlaid as unlocked cells
	Piece    Piece
	HasPiece bool
	Next     Shape

	Score int
	Lines int
	Level int
	Easy  bool

	// Ghost holds the landing cells of the active piece in easy mode, nil otherwise.
	Ghost []Coord
	// Clearing lists completed rows while they flash before collapsing.
	Clearing []int
	// ClearTick counts the flash down to zero.
	ClearTick int

	Phase    Phase
	GameOver bool
}

// Renderer turns a frame into visual output. It is called once per tick and
// must return quickly; a slow renderer slows the game down.
type Renderer interface {
	Render(f Frame) string
}

// Frame captures the current state for rendering.
func (s *Session) Frame() Frame {
	f := Frame{
		Next:      s.next,
		Score:     s.score,
		Lines:     s.lines,
		Level:     s.level,
		Easy:      s.easy,
		ClearTick: s.clearTicks,
		Phase:     s.phase,
		GameOver:  s.phase == PhaseGameOver,
	}
	if len(s.clearing) > 0 {
		f.Clearing = append([]int(nil), s.clearing...)
	}

	if !s.hasPiece {
		f.Board = s.board.Clone()
		return f
	}

	cells := s.piece.Cells()
	f.Board = s.board.Overlay(cells[:], s.piece.Shape.Color())
	f.Piece = s.piece
	f.HasPiece = true

	if s.easy && s.piece.Status == StatusFalling {
		if drop := GhostDrop(s.board, s.piece); drop > 0 {
			ghost := s.piece.Shifted(drop, 0).Cells()
			f.Ghost = ghost[:]
		}
	}
	return f
}
