package score

import "github.com/vovakirdan/maze-master/internal/core"

// NameBuffer is the three-letter name being entered after a qualifying run.
// One position is active at a time.
type NameBuffer struct {
	chars  [NameLen]byte
	cursor int
}

// NewNameBuffer returns "AAA" with the cursor on the first letter.
func NewNameBuffer() NameBuffer {
	return NameBuffer{chars: [NameLen]byte{'A', 'A', 'A'}}
}

// Cycle moves the active letter by delta through A-Z, wrapping both ways.
func (n *NameBuffer) Cycle(delta int) {
	c := int(n.chars[n.cursor] - 'A')
	n.chars[n.cursor] = byte('A' + core.Wrap(c+delta, 26))
}

// MoveCursor moves the active position by delta, wrapping among the
// letters.
func (n *NameBuffer) MoveCursor(delta int) {
	n.cursor = core.Wrap(n.cursor+delta, NameLen)
}

// Cursor returns the active position.
func (n *NameBuffer) Cursor() int { return n.cursor }

// String returns the buffer contents.
func (n *NameBuffer) String() string { return string(n.chars[:]) }

// Entry commits the buffer as a table entry.
func (n *NameBuffer) Entry(score int) Entry {
	return Entry{Name: n.chars, Score: clampScore(score)}
}
