package score

import "encoding/binary"

// Persistent store layout.
const (
	SettingsAddr = 0
	settingsLen  = 4

	ScoresAddr   = 20
	RecordSize   = NameLen + 1 + 2 // name, terminator, little-endian score
	ChecksumAddr = ScoresAddr + TableSize*RecordSize
)

// Settings byte offsets from SettingsAddr.
const (
	offLCD = iota
	offMatrix
	offSound
	offTilt
)

// Checksum XOR-folds every byte of every score field.
func Checksum(t *Table) byte {
	var c byte
	for _, e := range t {
		c ^= byte(e.Score) ^ byte(e.Score>>8)
	}
	return c
}

func encodeTable(t *Table) []byte {
	buf := make([]byte, TableSize*RecordSize)
	for i, e := range t {
		rec := buf[i*RecordSize:]
		copy(rec, e.Name[:])
		rec[NameLen] = 0
		binary.LittleEndian.PutUint16(rec[NameLen+1:], e.Score)
	}
	return buf
}

// decodeTable parses the stored records. ok is false when a name byte is
// outside A-Z and '-' or a terminator is missing.
func decodeTable(buf []byte) (t Table, ok bool) {
	ok = true
	for i := range t {
		rec := buf[i*RecordSize:]
		for c := 0; c < NameLen; c++ {
			b := rec[c]
			if (b < 'A' || b > 'Z') && b != '-' {
				ok = false
			}
			t[i].Name[c] = b
		}
		if rec[NameLen] != 0 {
			ok = false
		}
		t[i].Score = binary.LittleEndian.Uint16(rec[NameLen+1:])
	}
	return t, ok
}
