package tui

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	cellWidth = 2 // terminal columns per board cell

	boardBoxW = tetris.BoardWidth*cellWidth + 2
	boardBoxH = tetris.BoardHeight + 2
	panelW    = 16
	panelGap  = 1

	flashPeriod = 3 // ticks per flash phase while rows clear
)

// MinScreenW and MinScreenH are the smallest terminal the game screen fits,
// the help line included.
const (
	MinScreenW = boardBoxW + panelGap + panelW
	MinScreenH = boardBoxH + 1
)

// BoardRenderer draws frames into a screen buffer. It implements tetris.Renderer.
type BoardRenderer struct {
	screen *core.Screen
}

var _ tetris.Renderer = (*BoardRenderer)(nil)

// NewBoardRenderer creates a renderer for a drawing area of the given size.
func NewBoardRenderer(width, height int) *BoardRenderer {
	return &BoardRenderer{screen: core.NewScreen(width, height)}
}

// Resize changes the drawing area.
func (r *BoardRenderer) Resize(width, height int) {
	r.screen = core.NewScreen(width, height)
}

// Render draws f and returns the styled result.
func (r *BoardRenderer) Render(f tetris.Frame) string {
	return RenderScreen(r.Draw(f))
}

// Draw draws f into the renderer's screen buffer and returns it.
func (r *BoardRenderer) Draw(f tetris.Frame) *core.Screen {
	dst := r.screen
	dst.Clear()

	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	if !area.Contains(MinScreenW-1, boardBoxH-1) {
		renderTooSmall(dst)
		return dst
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - boardBoxH) / 2

	board := core.NewRect(ox, oy, boardBoxW, boardBoxH)
	dst.DrawTitledBox(board, " TETRIS ", core.ColorWhite)
	drawCells(dst, board.Inner(), f)

	px := board.Right() + panelGap
	drawNext(dst, core.NewRect(px, oy, panelW, 6), f.Next)
	drawStats(dst, core.NewRect(px, oy+6, panelW, 7), f)
	drawMode(dst, core.NewRect(px, oy+13, panelW, 4), f)

	if f.GameOver {
		drawGameOver(dst, core.NewRect(ox+2, oy+7, boardBoxW-4, 6), f.Score)
	}
	return dst
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	y := core.Clamp(dst.Height()/2, 1, max(dst.Height()-1, 1))
	dst.DrawTextCentered(area, y-1, "Window too small")
	dst.DrawTextCentered(area, y, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func drawCells(dst *core.Screen, area core.Rect, f tetris.Frame) {
	ghost := make(map[tetris.Coord]bool, len(f.Ghost))
	for _, c := range f.Ghost {
		ghost[c] = true
	}
	flashOn := len(f.Clearing) > 0 && (f.ClearTick/flashPeriod)%2 == 0

	for row := range tetris.BoardHeight {
		flashing := flashOn && slices.Contains(f.Clearing, row)
		for col := range tetris.BoardWidth {
			pos := tetris.Coord{Row: row, Col: col}
			x := area.X + col*cellWidth
			y := area.Y + row

			cell := f.Board.At(pos)
			switch {
			case flashing:
				dst.DrawTextColored(x, y, "▓▓", core.ColorBrightWhite)
			case !cell.IsEmpty():
				dst.DrawTextColored(x, y, "██", cell.Color)
			case ghost[pos]:
				dst.DrawTextColored(x, y, "░░", core.ColorGray)
			}
		}
	}
}

func drawNext(dst *core.Screen, r core.Rect, s tetris.Shape) {
	dst.DrawTitledBox(r, " NEXT ", core.ColorWhite)
	inner := r.Inner()

	p := tetris.NewPiece(s, tetris.Coord{})
	lo, _ := p.BoundingBox()
	x0 := inner.X + (inner.W-p.Width()*cellWidth)/2
	y0 := inner.Y + (inner.H-p.Height())/2
	for _, c := range p.Cells() {
		dst.DrawTextColored(x0+(c.Col-lo.Col)*cellWidth, y0+c.Row-lo.Row, "██", s.Color())
	}
}

func drawStats(dst *core.Screen, r core.Rect, f tetris.Frame) {
	dst.DrawTitledBox(r, " STATS ", core.ColorWhite)
	inner := r.Inner()
	w := inner.W - 1

	line := func(y int, label string, v int) {
		dst.DrawText(inner.X+1, y, fmt.Sprintf("%-6s%*d", label, w-6, v))
	}
	line(inner.Y, "Score", f.Score)
	line(inner.Y+2, "Lines", f.Lines)
	line(inner.Y+4, "Level", f.Level)
}

func drawMode(dst *core.Screen, r core.Rect, f tetris.Frame) {
	dst.DrawTitledBox(r, " MODE ", core.ColorWhite)
	inner := r.Inner()
	if f.Easy {
		dst.DrawTextColored(inner.X+1, inner.Y, "Easy", core.ColorGreen)
		dst.DrawTextColored(inner.X+1, inner.Y+1, "ghost on", core.ColorGray)
		return
	}
	dst.DrawText(inner.X+1, inner.Y, "Normal")
}

func drawGameOver(dst *core.Screen, r core.Rect, score int) {
	dst.DrawRect(r, ' ')
	dst.DrawTitledBox(r, " GAME OVER ", core.ColorRed)
	inner := r.Inner()
	dst.DrawTextCentered(inner, inner.Y, fmt.Sprintf("Score %d", score))
	dst.DrawTextCentered(inner, inner.Y+2, "Try again?")
	dst.DrawTextCentered(inner, inner.Y+3, "(y/n)")
}
