package score

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-master/internal/core"
)

// Run is one finished play-through, kept in the optional run history.
type Run struct {
	Name     string
	Score    int
	Level    int // highest level reached, 1-based
	Victory  bool
	Duration time.Duration
	PlayedAt time.Time
}

// History is an append-only log of finished runs.
type History interface {
	SaveRun(r Run) (int64, error)
}

// LoadReport tells what Load had to repair.
type LoadReport struct {
	ScoresReset      bool
	SettingsRepaired bool
}

// Keeper owns the high-score table and the settings and writes every
// change straight through to the byte store. Store failures are logged;
// the in-memory copy stays authoritative.
type Keeper struct {
	store   core.ByteStore
	history History
	logger  *log.Logger

	table    Table
	settings Settings
}

// NewKeeper creates a keeper with a placeholder table and default settings.
// Call Load to read the store.
func NewKeeper(store core.ByteStore, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{
		store:    store,
		logger:   logger,
		table:    NewTable(),
		settings: DefaultSettings(),
	}
}

// SetHistory attaches a run history.
func (k *Keeper) SetHistory(h History) {
	k.history = h
}

// Load reads settings and scores. A table failing its checksum or name
// validation is reset to placeholders and written back; out-of-range
// settings bytes fall back to defaults and are written back.
func (k *Keeper) Load() LoadReport {
	var rep LoadReport

	raw, err := k.read(SettingsAddr, settingsLen)
	if err != nil {
		k.logger.Warn("cannot read settings, using defaults", "err", err)
		rep.SettingsRepaired = true
		k.settings = DefaultSettings()
	} else {
		var b [settingsLen]byte
		copy(b[:], raw)
		s, ok := decodeSettings(b)
		k.settings = s
		rep.SettingsRepaired = !ok
	}
	if rep.SettingsRepaired {
		k.logger.Warn("settings repaired", "settings", fmt.Sprintf("%+v", k.settings))
		k.saveSettings()
	}

	raw, err = k.read(ScoresAddr, TableSize*RecordSize+1)
	if err != nil {
		k.logger.Warn("cannot read high scores", "err", err)
		rep.ScoresReset = true
	} else {
		t, namesOK := decodeTable(raw[:TableSize*RecordSize])
		stored := raw[TableSize*RecordSize]
		if sum := Checksum(&t); !namesOK || sum != stored {
			k.logger.Warn("high score table corrupt, resetting",
				"stored", stored, "computed", sum, "names_ok", namesOK)
			rep.ScoresReset = true
		} else {
			k.table = t
		}
	}
	if rep.ScoresReset {
		k.table = NewTable()
		k.saveTable()
	}

	return rep
}

// Table returns a copy of the high-score table.
func (k *Keeper) Table() Table {
	return k.table
}

// Qualifies reports whether score would enter the table.
func (k *Keeper) Qualifies(score int) bool {
	return k.table.Qualifies(score)
}

// Record inserts e and persists the table. It returns the rank or -1.
func (k *Keeper) Record(e Entry) int {
	rank := k.table.Insert(e)
	if rank >= 0 {
		k.saveTable()
		k.logger.Info("new high score", "name", e.NameString(), "score", e.Score, "rank", rank+1)
	}
	return rank
}

// RecordRun appends r to the run history, if one is attached.
func (k *Keeper) RecordRun(r Run) {
	if k.history == nil {
		return
	}
	if _, err := k.history.SaveRun(r); err != nil {
		k.logger.Warn("cannot save run", "err", err)
	}
}

// ResetScores replaces every entry with a placeholder and persists.
func (k *Keeper) ResetScores() {
	k.table = NewTable()
	k.saveTable()
	k.logger.Info("high scores reset")
}

// Settings returns the current settings.
func (k *Keeper) Settings() Settings {
	return k.settings
}

// UpdateSettings applies fn, clamps the brightness levels and persists.
func (k *Keeper) UpdateSettings(fn func(*Settings)) Settings {
	fn(&k.settings)
	k.settings.LCDBrightness = core.Clamp(k.settings.LCDBrightness, MinBrightness, MaxBrightness)
	k.settings.MatrixBrightness = core.Clamp(k.settings.MatrixBrightness, MinBrightness, MaxBrightness)
	k.saveSettings()
	return k.settings
}

func (k *Keeper) saveSettings() {
	b := k.settings.encode()
	if err := k.write(SettingsAddr, b[:]); err != nil {
		k.logger.Warn("cannot save settings", "err", err)
	}
}

func (k *Keeper) saveTable() {
	buf := append(encodeTable(&k.table), Checksum(&k.table))
	if err := k.write(ScoresAddr, buf); err != nil {
		k.logger.Warn("cannot save high scores", "err", err)
	}
}

func (k *Keeper) read(addr uint16, n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := range buf {
		b, err := k.store.Get(addr + uint16(i))
		if err != nil {
			return nil, fmt.Errorf("score: read %d: %w", addr+uint16(i), err)
		}
		buf[i] = b
	}
	return buf, nil
}

func (k *Keeper) write(addr uint16, data []byte) error {
	for i, b := range data {
		if err := k.store.Update(addr+uint16(i), b); err != nil {
			return fmt.Errorf("score: write %d: %w", addr+uint16(i), err)
		}
	}
	return nil
}
