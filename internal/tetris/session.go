package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config holds the per-session settings. It is validated at the process
// boundary (see internal/config) and trusted here.
type Config struct {
	StartLevel     int   // 1-25
	Easy           bool  // ghost piece and one extra lock-delay tick
	Seed           int64 // piece sequence seed
	LineClearTicks int   // ticks completed rows flash before collapsing, 0 to collapse at once
}

// DefaultConfig matches the classic defaults: level 8, normal mode.
func DefaultConfig() Config {
	return Config{
		StartLevel:     8,
		LineClearTicks: 12,
	}
}

// Phase is the session state machine position.
type Phase uint8

const (
	PhaseSpawning  Phase = iota // new piece dropping in from above the field
	PhaseFalling                // piece under gravity and lock delay
	PhaseLineClear              // completed rows flashing before collapse
	PhaseGameOver               // no piece could enter, waiting for restart or quit
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLineClear:
		return "line_clear"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome tells the shell what to do once the session stops running.
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeExit            // the player quit
)

// StepResult reports what happened during one tick.
type StepResult struct {
	Phase        Phase
	Locked       bool // a piece merged into the board
	LinesCleared int  // rows completed by that lock
	Points       int  // score awarded by that lock
	LevelUp      bool
	GameOver     bool // the session ended on this tick
	Restarted    bool
	Quit         bool
}

// Session owns the board, the active and next pieces and all counters.
// It is advanced one tick at a time by Step and is not safe for concurrent use.
type Session struct {
	cfg   Config
	rng   *Randomizer
	board *Board

	piece    Piece
	hasPiece bool
	next     Shape

	phase    Phase
	tick     uint64
	restarts int
	outcome  Outcome

	score         int
	lines         int
	level         int
	gravityPeriod int
	easy          bool

	fallTicker      int // ticks since the last gravity step
	standStill      int // consecutive gravity steps the piece could not fall
	dropInRemaining int

	clearing   []int
	clearTicks int
}

// NewSession creates a session and spawns its first piece.
func NewSession(cfg Config) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   NewRandomizer(cfg.Seed),
		board: NewBoard(),
	}
	s.reset()
	return s
}

// reset reinitialises the board and counters and starts a new piece sequence.
func (s *Session) reset() {
	s.board.Reset()
	s.hasPiece = false
	s.outcome = OutcomeRunning
	s.score = 0
	s.lines = 0
	s.level = s.cfg.StartLevel
	s.gravityPeriod = GravityPeriod(s.level)
	s.easy = s.cfg.Easy
	s.clearing = nil
	s.clearTicks = 0
	s.next = s.rng.First()
	s.spawn(nil)
}

// Step advances the session by one tick, applying at most one action.
func (s *Session) Step(a core.Action) StepResult {
	var res StepResult
	if s.outcome == OutcomeExit {
		res.Phase = s.phase
		res.Quit = true
		return res
	}
	s.tick++

	switch a {
	case core.ActionQuit:
		s.outcome = OutcomeExit
		res.Quit = true
		res.Phase = s.phase
		return res
	case core.ActionRestart:
		s.restarts++
		s.reset()
		res.Restarted = true
		res.Phase = s.phase
		return res
	}

	if a == core.ActionToggleEasy && s.phase != PhaseGameOver {
		s.easy = !s.easy
	}

	switch s.phase {
	case PhaseGameOver:
		// only restart and quit are honored
	case PhaseLineClear:
		s.clearTicks--
		if s.clearTicks <= 0 {
			s.finishClear(&res)
		}
	default:
		s.fallTicker++
		if s.fallTicker >= s.gravityPeriod {
			s.fallTicker = 0
			s.gravity(&res)
		}
		// a piece spawned by this tick's lock does not take the same input
		if s.hasPiece && !res.Locked {
			s.handleInput(a, &res)
		}
	}

	res.Phase = s.phase
	return res
}

func (s *Session) handleInput(a core.Action, res *StepResult) {
	if s.piece.Status == StatusSpawning {
		switch a {
		case core.ActionSoftDrop:
			s.dropIn(res)
		case core.ActionHardDrop:
			for s.hasPiece && s.piece.Status == StatusSpawning {
				s.dropIn(res)
			}
			if s.hasPiece {
				s.hardDrop(res)
			}
		}
		// lateral moves and rotation wait until the piece is in the field
		return
	}

	switch a {
	case core.ActionRotate:
		if p, ok := TryRotate(s.board, s.piece); ok {
			s.piece = p
		}
	case core.ActionLeft:
		if CanMove(s.board, s.piece, DirLeft) {
			s.piece.MoveLeft()
		}
	case core.ActionRight:
		if CanMove(s.board, s.piece, DirRight) {
			s.piece.MoveRight()
		}
	case core.ActionSoftDrop:
		if CanMove(s.board, s.piece, DirDown) {
			s.piece.MoveDown()
			s.standStill = 0
		}
	case core.ActionHardDrop:
		s.hardDrop(res)
	}
}

// gravity runs one automatic drop: a drop-in step while spawning, otherwise a
// fall or a stall that may lock the piece.
func (s *Session) gravity(res *StepResult) {
	if !s.hasPiece {
		return
	}
	if s.piece.Status == StatusSpawning {
		s.dropIn(res)
		return
	}

	if CanMove(s.board, s.piece, DirDown) {
		s.piece.MoveDown()
		s.standStill = 0
		return
	}
	s.standStill++
	if s.standStill > LockThreshold(s.easy) {
		s.lock(res)
	}
}

func (s *Session) hardDrop(res *StepResult) {
	s.piece = s.piece.Shifted(GhostDrop(s.board, s.piece), 0)
	s.lock(res)
}

// spawn promotes the next shape, centers it just above the field and runs the
// first drop-in step, which ends the game if the entry cells are taken.
func (s *Session) spawn(res *StepResult) {
	p := NewPiece(s.next, Coord{})
	lo, hi := p.BoundingBox()
	left := (BoardWidth - (hi.Col - lo.Col + 1)) / 2
	p.Anchor = Coord{Row: -1 - hi.Row, Col: left - lo.Col}

	s.piece = p
	s.hasPiece = true
	s.next = s.rng.Next(p.Shape)
	s.standStill = 0
	s.fallTicker = 0
	s.dropInRemaining = hi.Row - lo.Row + 1
	s.phase = PhaseSpawning

	s.dropIn(res)
}

// dropIn moves a spawning piece one row into the field.
func (s *Session) dropIn(res *StepResult) {
	moved := s.piece.Shifted(1, 0)
	cells := moved.Cells()
	if !CanEnter(s.board, cells[:]) {
		s.endGame(res)
		return
	}
	s.piece = moved
	s.dropInRemaining--
	if s.dropInRemaining <= 0 {
		s.dropInRemaining = 0
		s.piece.Status = StatusFalling
		s.phase = PhaseFalling
	}
}

func (s *Session) endGame(res *StepResult) {
	s.hasPiece = false
	s.phase = PhaseGameOver
	if res != nil {
		res.GameOver = true
	}
}

// lock merges the piece into the board, scores completed rows and either
// starts the line-clear flash or spawns the next piece.
func (s *Session) lock(res *StepResult) {
	color := s.piece.Shape.Color()
	for _, c := range s.piece.Cells() {
		s.board.SetCell(c, Occupied(color, true))
	}
	s.piece.Status = StatusLocked
	s.hasPiece = false
	res.Locked = true

	rows := s.board.FullRows()
	n := len(rows)
	points := Points(n, s.level)
	s.score += points
	s.lines += n
	res.LinesCleared = n
	res.Points = points

	if ShouldAdvance(s.lines, s.level, s.cfg.StartLevel) {
		s.level++
		s.gravityPeriod = GravityPeriod(s.level)
		res.LevelUp = true
	}

	if n > 0 && s.cfg.LineClearTicks > 0 {
		s.clearing = rows
		s.clearTicks = s.cfg.LineClearTicks
		s.phase = PhaseLineClear
		return
	}
	if n > 0 {
		s.board.ClearAndCollapse(rows)
	}
	s.spawn(res)
}

func (s *Session) finishClear(res *StepResult) {
	s.board.ClearAndCollapse(s.clearing)
	s.clearing = nil
	s.clearTicks = 0
	s.spawn(res)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the number of rows cleared this session.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// StartLevel returns the level the session started on.
func (s *Session) StartLevel() int { return s.cfg.StartLevel }

// GravityPeriod returns the current ticks between automatic drops.
func (s *Session) GravityPeriod() int { return s.gravityPeriod }

// Easy reports whether easy mode is on.
func (s *Session) Easy() bool { return s.easy }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// Phase returns the state machine position.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns the shell-level result flag.
func (s *Session) Outcome() Outcome { return s.outcome }

// Restarts returns how many times the session was restarted.
func (s *Session) Restarts() int { return s.restarts }

// Tick returns the number of ticks stepped so far.
func (s *Session) Tick() uint64 { return s.tick }

// Piece returns the active piece, if any.
func (s *Session) Piece() (Piece, bool) { return s.piece, s.hasPiece }

// Next returns the previewed shape.
func (s *Session) Next() Shape { return s.next }

// Board returns a copy of the settled playfield.
func (s *Session) Board() *Board { return s.board.Clone() }
