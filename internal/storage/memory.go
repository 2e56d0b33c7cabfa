package storage

import (
	"github.com/vovakirdan/maze-master/internal/core"
)

// Memory is a volatile byte store. It starts erased.
type Memory struct {
	bytes  map[uint16]byte
	writes int
}

// NewMemory returns an erased in-memory store.
func NewMemory() *Memory {
	return &Memory{bytes: make(map[uint16]byte)}
}

// Get returns the byte at addr, Erased if it was never written.
func (m *Memory) Get(addr uint16) (byte, error) {
	if v, ok := m.bytes[addr]; ok {
		return v, nil
	}
	return Erased, nil
}

// Update writes v at addr, skipping unchanged bytes.
func (m *Memory) Update(addr uint16, v byte) error {
	if old, ok := m.bytes[addr]; ok && old == v {
		return nil
	}
	m.bytes[addr] = v
	m.writes++
	return nil
}

// Writes returns how many bytes were actually rewritten.
func (m *Memory) Writes() int {
	return m.writes
}

var _ core.ByteStore = (*Memory)(nil)
