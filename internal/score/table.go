// Package score keeps the run score rules, the persisted high-score table
// and the persisted settings.
package score

import (
	"math"
	"time"

	"github.com/vovakirdan/maze-master/internal/config"
)

// NameLen is the fixed length of a high-score name.
const NameLen = 3

// TableSize is the number of high-score slots.
const TableSize = 3

// Entry is one high-score slot.
type Entry struct {
	Name  [NameLen]byte
	Score uint16
}

// NewEntry builds an entry from a name, padding or truncating it to NameLen.
func NewEntry(name string, score int) Entry {
	e := Entry{Score: clampScore(score)}
	for i := range e.Name {
		e.Name[i] = '-'
		if i < len(name) {
			e.Name[i] = name[i]
		}
	}
	return e
}

// Placeholder returns the entry used for empty and reset slots.
func Placeholder() Entry {
	return Entry{Name: [NameLen]byte{'-', '-', '-'}}
}

// NameString returns the name as a string.
func (e Entry) NameString() string {
	return string(e.Name[:])
}

// Table is the high-score table, kept sorted by descending score.
type Table [TableSize]Entry

// NewTable returns a table of placeholders.
func NewTable() Table {
	var t Table
	for i := range t {
		t[i] = Placeholder()
	}
	return t
}

// Qualifies reports whether score would enter the table.
func (t *Table) Qualifies(score int) bool {
	s := clampScore(score)
	for _, e := range t {
		if e.Score < s {
			return true
		}
	}
	return false
}

// Insert places e before the first entry with a lower score, shifting the
// rest down and dropping the last. It returns the rank e landed on, or -1
// when e did not qualify.
func (t *Table) Insert(e Entry) int {
	for i := range t {
		if t[i].Score < e.Score {
			copy(t[i+1:], t[i:len(t)-1])
			t[i] = e
			return i
		}
	}
	return -1
}

// ClearBonus returns the level-clear time bonus for a level finished after
// elapsed. Whole seconds are charged; the result never goes below zero.
func ClearBonus(elapsed time.Duration, cfg config.ScoringConfig) int {
	secs := int(elapsed / time.Second)
	bonus := cfg.BaseClearPoints - secs*cfg.PerSecondDeduction
	return max(0, bonus)
}

func clampScore(v int) uint16 {
	return uint16(max(0, min(v, math.MaxUint16)))
}
