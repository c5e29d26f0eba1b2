package core

// Action represents a discrete player command, abstracted from physical key presses.
// The engine consumes at most one Action per tick.
type Action int

const (
	ActionNone       Action = iota
	ActionRotate            // Up, W - rotate clockwise
	ActionLeft              // Left, A - move one column left
	ActionRight             // Right, D - move one column right
	ActionSoftDrop          // Down, S - move one row down
	ActionHardDrop          // Space - drop to the floor and lock
	ActionToggleEasy        // E - toggle easy mode (ghost piece, longer lock delay)
	ActionRestart           // R, Y - restart the session
	ActionQuit              // Q, N, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionToggleEasy:
		return "ToggleEasy"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource produces at most one action per tick.
// ActionNone is a valid and common result.
type InputSource interface {
	Poll() Action
}

// DefaultQueueSize is the number of buffered actions an ActionQueue holds
// before it starts dropping new input.
const DefaultQueueSize = 8

// ActionQueue is a bounded FIFO of actions. The platform pushes actions as key
// events arrive and the game loop polls one per tick, so a burst of key presses
// between two ticks is spread over the following ticks instead of being lost.
type ActionQueue struct {
	buf  []Action
	size int
}

// NewActionQueue creates a queue holding up to size actions.
func NewActionQueue(size int) *ActionQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ActionQueue{
		buf:  make([]Action, 0, size),
		size: size,
	}
}

// Push appends an action. Returns false if the queue was full and the action was dropped.
func (q *ActionQueue) Push(a Action) bool {
	if a == ActionNone {
		return true
	}
	if len(q.buf) >= q.size {
		return false
	}
	q.buf = append(q.buf, a)
	return true
}

// Poll removes and returns the oldest action, or ActionNone if empty.
func (q *ActionQueue) Poll() Action {
	if len(q.buf) == 0 {
		return ActionNone
	}
	a := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return a
}

// Len returns the number of queued actions.
func (q *ActionQueue) Len() int {
	return len(q.buf)
}

// Clear drops all queued actions.
func (q *ActionQueue) Clear() {
	q.buf = q.buf[:0]
}

var _ InputSource = (*ActionQueue)(nil)
