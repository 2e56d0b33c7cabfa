package score

import (
	"errors"
	"testing"
)

// memStore is an erased byte store.
type memStore struct {
	bytes  map[uint16]byte
	writes int
	fail   bool
}

func newMemStore() *memStore {
	return &memStore{bytes: make(map[uint16]byte)}
}

func (m *memStore) Get(addr uint16) (byte, error) {
	if m.fail {
		return 0, errors.New("bus error")
	}
	if v, ok := m.bytes[addr]; ok {
		return v, nil
	}
	return 0xFF, nil
}

func (m *memStore) Update(addr uint16, v byte) error {
	if m.fail {
		return errors.New("bus error")
	}
	if old, ok := m.bytes[addr]; ok && old == v {
		return nil
	}
	m.bytes[addr] = v
	m.writes++
	return nil
}

func seededKeeper(t *testing.T, store *memStore) *Keeper {
	t.Helper()
	k := NewKeeper(store, nil)
	k.Load()
	k.Record(NewEntry("AAA", 500))
	k.Record(NewEntry("BBB", 300))
	k.Record(NewEntry("CCC", 100))
	return k
}

func TestFreshStoreSelfHeals(t *testing.T) {
	store := newMemStore()
	k := NewKeeper(store, nil)

	rep := k.Load()
	if !rep.ScoresReset || !rep.SettingsRepaired {
		t.Fatalf("erased store should be repaired, got %+v", rep)
	}
	if k.Table() != NewTable() {
		t.Errorf("table = %+v, expected placeholders", k.Table())
	}
	if k.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v, expected defaults", k.Settings())
	}

	// The repaired image loads cleanly.
	rep = NewKeeper(store, nil).Load()
	if rep.ScoresReset || rep.SettingsRepaired {
		t.Errorf("second load still repairing: %+v", rep)
	}
}

func TestTableRoundTrip(t *testing.T) {
	store := newMemStore()
	original := seededKeeper(t, store).Table()

	if stored := store.bytes[ChecksumAddr]; stored != Checksum(&original) {
		t.Errorf("stored checksum %#x, computed %#x", stored, Checksum(&original))
	}

	k := NewKeeper(store, nil)
	if rep := k.Load(); rep.ScoresReset {
		t.Fatal("clean table was reset on load")
	}
	if k.Table() != original {
		t.Errorf("loaded %+v, expected %+v", k.Table(), original)
	}
}

func TestAnyFlippedByteResetsTable(t *testing.T) {
	for addr := uint16(ScoresAddr); addr <= ChecksumAddr; addr++ {
		store := newMemStore()
		seededKeeper(t, store)
		store.bytes[addr] ^= 0xFF

		k := NewKeeper(store, nil)
		if rep := k.Load(); !rep.ScoresReset {
			t.Errorf("flipping byte %d did not reset the table", addr)
			continue
		}
		if k.Table() != NewTable() {
			t.Errorf("byte %d: table = %+v, expected placeholders", addr, k.Table())
		}

		// The reset table was itself persisted.
		if rep := NewKeeper(store, nil).Load(); rep.ScoresReset {
			t.Errorf("byte %d: reset table was not re-persisted", addr)
		}
	}
}

func TestCorruptScoreByteScenario(t *testing.T) {
	store := newMemStore()
	seededKeeper(t, store)

	// Low byte of the second record's score.
	store.bytes[ScoresAddr+RecordSize+NameLen+1]++

	k := NewKeeper(store, nil)
	k.Load()
	for i, e := range k.Table() {
		if e.Score != 0 || e.NameString() != "---" {
			t.Errorf("slot %d = %s %d, expected placeholder", i, e.NameString(), e.Score)
		}
	}
	if store.bytes[ChecksumAddr] != 0 {
		t.Errorf("persisted checksum = %#x, expected 0", store.bytes[ChecksumAddr])
	}
}

func TestRecordPersistsOnlyWhenQualifying(t *testing.T) {
	store := newMemStore()
	k := seededKeeper(t, store)
	writes := store.writes

	if rank := k.Record(NewEntry("LOW", 50)); rank != -1 {
		t.Errorf("Record() rank = %d, expected -1", rank)
	}
	if store.writes != writes {
		t.Error("non-qualifying record touched the store")
	}

	if rank := k.Record(NewEntry("TOP", 900)); rank != 0 {
		t.Errorf("Record() rank = %d, expected 0", rank)
	}
	reloaded := NewKeeper(store, nil)
	reloaded.Load()
	if reloaded.Table()[0].NameString() != "TOP" {
		t.Error("qualifying record was not persisted")
	}
}

func TestResetScores(t *testing.T) {
	store := newMemStore()
	k := seededKeeper(t, store)
	k.ResetScores()

	reloaded := NewKeeper(store, nil)
	if rep := reloaded.Load(); rep.ScoresReset {
		t.Error("reset table failed validation")
	}
	if reloaded.Table() != NewTable() {
		t.Errorf("table = %+v, expected placeholders", reloaded.Table())
	}
}

func TestSettingsWriteThrough(t *testing.T) {
	store := newMemStore()
	k := NewKeeper(store, nil)
	k.Load()

	k.UpdateSettings(func(s *Settings) {
		s.LCDBrightness = 3
		s.Sound = false
	})
	if store.bytes[SettingsAddr+offLCD] != 3 || store.bytes[SettingsAddr+offSound] != 0 {
		t.Errorf("settings not written through: % x", []byte{store.bytes[0], store.bytes[1], store.bytes[2], store.bytes[3]})
	}

	got := k.UpdateSettings(func(s *Settings) { s.MatrixBrightness = 42 })
	if got.MatrixBrightness != MaxBrightness {
		t.Errorf("MatrixBrightness = %d, expected clamp to %d", got.MatrixBrightness, MaxBrightness)
	}

	reloaded := NewKeeper(store, nil)
	if rep := reloaded.Load(); rep.SettingsRepaired {
		t.Error("valid settings were repaired")
	}
	if reloaded.Settings() != got {
		t.Errorf("reloaded %+v, expected %+v", reloaded.Settings(), got)
	}
}

func TestOutOfRangeSettingFallsBack(t *testing.T) {
	store := newMemStore()
	k := NewKeeper(store, nil)
	k.Load()
	k.UpdateSettings(func(s *Settings) {
		s.LCDBrightness = 4
		s.Tilt = true
	})

	store.bytes[SettingsAddr+offLCD] = 0
	store.bytes[SettingsAddr+offTilt] = 7

	reloaded := NewKeeper(store, nil)
	if rep := reloaded.Load(); !rep.SettingsRepaired {
		t.Fatal("out-of-range settings should be repaired")
	}
	s := reloaded.Settings()
	if s.LCDBrightness != DefaultSettings().LCDBrightness || s.Tilt {
		t.Errorf("settings = %+v, expected defaults for the bad bytes", s)
	}
	if store.bytes[SettingsAddr+offLCD] != byte(DefaultSettings().LCDBrightness) {
		t.Error("repaired settings were not written back")
	}
}

func TestStoreFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := newMemStore()
	store.fail = true
	k := NewKeeper(store, nil)

	rep := k.Load()
	if !rep.ScoresReset || !rep.SettingsRepaired {
		t.Errorf("unreadable store should fall back to defaults, got %+v", rep)
	}
	if rank := k.Record(NewEntry("ABC", 10)); rank != 0 {
		t.Errorf("Record() rank = %d, expected 0", rank)
	}
	if k.Table()[0].NameString() != "ABC" {
		t.Error("in-memory table should keep the entry despite the failed write")
	}
}

type fakeHistory struct {
	runs []Run
}

func (h *fakeHistory) SaveRun(r Run) (int64, error) {
	h.runs = append(h.runs, r)
	return int64(len(h.runs)), nil
}

func TestRecordRun(t *testing.T) {
	k := NewKeeper(newMemStore(), nil)
	k.RecordRun(Run{Name: "AAA", Score: 10}) // no history attached

	h := &fakeHistory{}
	k.SetHistory(h)
	k.RecordRun(Run{Name: "BBB", Score: 20, Victory: true})
	if len(h.runs) != 1 || h.runs[0].Name != "BBB" {
		t.Errorf("runs = %+v", h.runs)
	}
}
