package tetris

// Level and speed limits.
const (
	MinStartLevel = 1
	MaxStartLevel = 25

	// gravityBase is the tick count between drops at level 0; each level
	// removes one tick.
	gravityBase = 24
	// MinGravityPeriod is the fastest gravity cadence in ticks.
	MinGravityPeriod = 2
)

var lineScores = [...]int{0, 40, 100, 300, 1200}

// Points returns the score for clearing rows lines at once on level.
// Four or more lines all score as a four-line clear.
func Points(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	if rows >= len(lineScores) {
		rows = len(lineScores) - 1
	}
	return lineScores[rows] * level
}

// GravityPeriod returns the number of ticks between automatic drops on level.
func GravityPeriod(level int) int {
	return max(MinGravityPeriod, gravityBase-level)
}

// ShouldAdvance reports whether lines cleared so far earn a level above level.
// A level is left once lines reaches ten times its number; the start level
// additionally advances once lines passes startLevel*10+10.
func ShouldAdvance(lines, level, startLevel int) bool {
	if level == startLevel && lines > startLevel*10+10 {
		return true
	}
	return lines >= level*10
}

// LockThreshold is how many stalled gravity ticks a grounded piece survives.
// Easy mode allows one more, leaving time to slide the piece into place.
func LockThreshold(easy bool) int {
	if easy {
		return 2
	}
	return 1
}
