package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// newFrame returns a frame with one locked red cell in the bottom-left corner.
func newFrame() tetris.Frame {
	b := tetris.NewBoard()
	b.SetCell(tetris.Coord{Row: 17, Col: 0}, tetris.Occupied(core.ColorRed, true))
	return tetris.Frame{
		Board: b,
		Next:  tetris.ShapeI,
		Score: 1234,
		Lines: 5,
		Level: 8,
		Phase: tetris.PhaseFalling,
	}
}

// drawExact draws into a screen that fits the layout with no margin, so board
// cell (row, col) lands at x = 1 + 2*col, y = 1 + row.
func drawExact(f tetris.Frame) *core.Screen {
	return NewBoardRenderer(MinScreenW, boardBoxH).Draw(f)
}

func TestDrawTooSmall(t *testing.T) {
	s := NewBoardRenderer(20, 10).Draw(newFrame())
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", s.String())
	}
}

func TestDrawFitsExactlyAtMinimumSize(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		tooSmall bool
	}{
		{"exact fit", MinScreenW, boardBoxH, false},
		{"one column short", MinScreenW - 1, boardBoxH, true},
		{"one row short", MinScreenW, boardBoxH - 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := NewBoardRenderer(tc.w, tc.h).Draw(newFrame()).String()
			if got := strings.Contains(out, "Window too small"); got != tc.tooSmall {
				t.Errorf("too-small message shown = %v, want %v", got, tc.tooSmall)
			}
		})
	}
}

func TestDrawLockedCell(t *testing.T) {
	s := drawExact(newFrame())

	for _, x := range []int{1, 2} {
		cell := s.GetCell(x, 18)
		if cell.Rune != '█' || cell.Color != core.ColorRed {
			t.Errorf("cell at (%d,18) = %q/%d, want red block", x, cell.Rune, cell.Color)
		}
	}
	if got := s.Get(3, 18); got != ' ' {
		t.Errorf("empty cell drawn as %q", got)
	}
	if got := s.Get(0, 0); got != '┏' {
		t.Errorf("board corner = %q, want ┏", got)
	}
}

func TestDrawPanels(t *testing.T) {
	s := drawExact(newFrame())

	if row := s.Row(7); !strings.Contains(row, "Score") || !strings.Contains(row, "1234") {
		t.Errorf("score row = %q", row)
	}
	if row := s.Row(9); !strings.Contains(row, "Lines") || !strings.Contains(row, "5") {
		t.Errorf("lines row = %q", row)
	}
	if row := s.Row(11); !strings.Contains(row, "Level") || !strings.Contains(row, "8") {
		t.Errorf("level row = %q", row)
	}
	if !strings.Contains(s.String(), "Normal") {
		t.Error("mode panel should show Normal")
	}

	// next I piece is centered in the 14x4 panel interior
	cell := s.GetCell(27, 2)
	if cell.Rune != '█' || cell.Color != core.ColorCyan {
		t.Errorf("next preview at (27,2) = %q/%d, want cyan block", cell.Rune, cell.Color)
	}
}

func TestDrawGhost(t *testing.T) {
	f := newFrame()
	f.Easy = true
	f.Ghost = []tetris.Coord{{Row: 17, Col: 5}}
	s := drawExact(f)

	if got := s.GetCell(11, 18); got.Rune != '░' || got.Color != core.ColorGray {
		t.Errorf("ghost cell = %q/%d", got.Rune, got.Color)
	}
	if !strings.Contains(s.String(), "Easy") {
		t.Error("mode panel should show Easy")
	}
}

func TestDrawFlash(t *testing.T) {
	f := newFrame()
	f.Clearing = []int{17}
	f.Phase = tetris.PhaseLineClear

	f.ClearTick = 2
	if got := drawExact(f).Get(5, 18); got != '▓' {
		t.Errorf("flash on: got %q, want ▓", got)
	}

	f.ClearTick = 3
	s := drawExact(f)
	if got := s.Get(1, 18); got != '█' {
		t.Errorf("flash off: got %q, want the locked block", got)
	}
	if got := s.Get(5, 18); got != ' ' {
		t.Errorf("flash off: got %q, want empty", got)
	}
}

func TestDrawGameOver(t *testing.T) {
	f := newFrame()
	f.GameOver = true
	f.Phase = tetris.PhaseGameOver
	out := drawExact(f).String()

	for _, want := range []string{"GAME OVER", "Score 1234", "Try again?", "(y/n)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderStyledOutput(t *testing.T) {
	out := NewBoardRenderer(80, 23).Render(newFrame())
	if !strings.Contains(out, "TETRIS") {
		t.Error("rendered output should contain the board title")
	}
	if got := strings.Count(out, "\n"); got != 22 {
		t.Errorf("rendered %d line breaks, want 22", got)
	}
}
